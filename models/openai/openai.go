// Package openai implements the chat-completions transport.
// Any OpenAI-compatible endpoint works via BaseURL.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/heriscience/backend/models"
	"github.com/joho/godotenv"
)

const (
	OpenAIBaseURL = "https://api.openai.com/v1/chat/completions"
	DefaultModel  = "gpt-4o-mini"
	// DefaultAPIKeyEnv gates initialization; absence means fallback mode.
	DefaultAPIKeyEnv = "OPENAI_API_KEY"
)

func init() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// OpenAI_Model is a generation transport speaking the chat completions
// API. The zero value targets OpenAI with the default model and key.
type OpenAI_Model struct {
	Model       string
	Temperature *float64
	MaxTokens   *int
	BaseURL     string // Optional: custom API base URL
	APIKeyEnv   string // Optional: env var name for the API key
	Client      *http.Client
}

// Name implements chatbot.Transport.
func (o *OpenAI_Model) Name() string { return "OpenAI GPT" }

// Ready reports whether an API key is configured. No network is touched.
func (o *OpenAI_Model) Ready() bool {
	return os.Getenv(o.apiKeyEnv()) != ""
}

// Generate performs one synchronous chat completion using the role-tagged
// message shape of the request.
func (o *OpenAI_Model) Generate(ctx context.Context, req models.Generation_Request) (string, error) {
	apiKey := os.Getenv(o.apiKeyEnv())
	if apiKey == "" {
		return "", fmt.Errorf("%s environment variable not set", o.apiKeyEnv())
	}

	body := OpenAIRequest{
		Model:       o.model(),
		Messages:    req.Messages,
		MaxTokens:   o.MaxTokens,
		Temperature: o.Temperature,
	}
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL(), bytes.NewReader(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := o.client().Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("error sending request to chat completions API: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(responseBody))
	}

	var response OpenAIResponse
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return "", fmt.Errorf("error unmarshalling response: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}
	return response.Choices[0].Message.Content, nil
}

func (o *OpenAI_Model) model() string {
	if o.Model != "" {
		return o.Model
	}
	return DefaultModel
}

func (o *OpenAI_Model) baseURL() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}
	return OpenAIBaseURL
}

func (o *OpenAI_Model) apiKeyEnv() string {
	if o.APIKeyEnv != "" {
		return o.APIKeyEnv
	}
	return DefaultAPIKeyEnv
}

func (o *OpenAI_Model) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return http.DefaultClient
}
