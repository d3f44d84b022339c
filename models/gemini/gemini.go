// Package gemini implements the single-turn generation transport against
// the Google generative language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/heriscience/backend/models"
	"github.com/joho/godotenv"
)

const (
	GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel  = "gemini-2.0-flash-lite"
	// DefaultAPIKeyEnv gates initialization; absence means fallback mode.
	DefaultAPIKeyEnv = "GEMINI_API_KEY"
)

func init() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Gemini_Model is a generation transport speaking the generateContent API.
// The zero value uses the default model, base URL, and key variable.
type Gemini_Model struct {
	Model     string
	BaseURL   string // Optional: custom API base URL
	APIKeyEnv string // Optional: env var name for the API key
	Client    *http.Client
}

// Name implements chatbot.Transport.
func (g *Gemini_Model) Name() string { return "Gemini Flash" }

// Ready reports whether an API key is configured. No network is touched.
func (g *Gemini_Model) Ready() bool {
	return os.Getenv(g.apiKeyEnv()) != ""
}

// Generate performs one synchronous generateContent call using the
// single-prompt shape of the request.
func (g *Gemini_Model) Generate(ctx context.Context, req models.Generation_Request) (string, error) {
	apiKey := os.Getenv(g.apiKeyEnv())
	if apiKey == "" {
		return "", fmt.Errorf("%s environment variable not set", g.apiKeyEnv())
	}

	body := Gemini_Request_Body{
		Contents: []Gemini_Content{
			{Parts: []Gemini_Part{{Text: req.Prompt}}},
		},
	}
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL(), g.model(), apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client().Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("error sending request to Gemini API: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(responseBody))
	}

	var response Gemini_Response
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return "", fmt.Errorf("error unmarshalling response: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("Gemini API error %d: %s", response.Error.Code, response.Error.Message)
	}

	var text strings.Builder
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

func (g *Gemini_Model) model() string {
	if g.Model != "" {
		return g.Model
	}
	return DefaultModel
}

func (g *Gemini_Model) baseURL() string {
	if g.BaseURL != "" {
		return g.BaseURL
	}
	return GeminiBaseURL
}

func (g *Gemini_Model) apiKeyEnv() string {
	if g.APIKeyEnv != "" {
		return g.APIKeyEnv
	}
	return DefaultAPIKeyEnv
}

func (g *Gemini_Model) client() *http.Client {
	if g.Client != nil {
		return g.Client
	}
	return http.DefaultClient
}
