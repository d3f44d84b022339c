package processing

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"os"
	"strings"

	"google.golang.org/genai"

	// Register decoders for the formats uploads arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const visionModel = "gemini-2.0-flash"

const visionPrompt = `You are an archaeological analyst. Describe this image of a ` +
	`historical artifact: likely object type, probable civilization and era, notable ` +
	`visual features, and apparent condition. Be concise and factual.`

// AutoAnalysis is the result of /api/auto-analyze.
type AutoAnalysis struct {
	Description   string `json:"description"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"`
	Brightness    string `json:"brightness"`
	DominantColor string `json:"dominant_color"`
	Source        string `json:"source"`
}

// visionAnalyzeFunc is the pluggable vision call (mockable for tests).
var visionAnalyzeFunc = defaultVisionAnalyze

// SetVisionAnalyzeFunc overrides the vision layer for testing. Pass nil to
// restore the default.
func SetVisionAnalyzeFunc(fn func(ctx context.Context, imageBytes []byte, mimeType string) (string, error)) {
	if fn == nil {
		visionAnalyzeFunc = defaultVisionAnalyze
		return
	}
	visionAnalyzeFunc = fn
}

// AutoAnalyze inspects uploaded image bytes. When GEMINI_API_KEY is
// configured the description comes from the vision model; otherwise, or on
// any vision failure, a deterministic heuristic description is built from
// measured image statistics. It never fails for lack of AI credentials.
func AutoAnalyze(ctx context.Context, imageBytes []byte) (AutoAnalysis, error) {
	img, format, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return AutoAnalysis{}, fmt.Errorf("failed to decode image: %w", err)
	}

	brightness := averageBrightness(img)
	analysis := AutoAnalysis{
		Width:         img.Bounds().Dx(),
		Height:        img.Bounds().Dy(),
		Format:        format,
		Brightness:    brightnessLabel(brightness),
		DominantColor: dominantColor(img),
		Source:        "heuristic",
	}

	if os.Getenv("GEMINI_API_KEY") != "" {
		mimeType := http.DetectContentType(imageBytes)
		description, err := visionAnalyzeFunc(ctx, imageBytes, mimeType)
		if err == nil && strings.TrimSpace(description) != "" {
			analysis.Description = strings.TrimSpace(description)
			analysis.Source = "gemini-vision"
			return analysis, nil
		}
	}

	analysis.Description = heuristicDescription(analysis)
	return analysis, nil
}

func defaultVisionAnalyze(ctx context.Context, imageBytes []byte, mimeType string) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(visionPrompt),
		genai.NewPartFromBytes(imageBytes, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := client.Models.GenerateContent(ctx, visionModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to analyze image: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("no analysis in response")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

func heuristicDescription(a AutoAnalysis) string {
	return fmt.Sprintf(
		"A %dx%d %s image with %s lighting and predominantly %s tones. "+
			"The photograph appears to show a historical object; upload details or "+
			"ask a question to learn about its likely origin and significance.",
		a.Width, a.Height, strings.ToUpper(a.Format), a.Brightness, a.DominantColor)
}

func brightnessLabel(b float64) string {
	switch {
	case b < 0.35:
		return "dim"
	case b > 0.75:
		return "bright"
	default:
		return "balanced"
	}
}

// dominantColor buckets a coarse sample of pixels into warm/cool/neutral
// tones, enough for a plain-language description.
func dominantColor(img image.Image) string {
	bounds := img.Bounds()
	if bounds.Empty() {
		return "neutral"
	}
	stepX := bounds.Dx() / 32
	if stepX < 1 {
		stepX = 1
	}
	stepY := bounds.Dy() / 32
	if stepY < 1 {
		stepY = 1
	}

	var rSum, gSum, bSum uint64
	var count uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r)
			gSum += uint64(g)
			bSum += uint64(b)
			count++
		}
	}
	if count == 0 {
		return "neutral"
	}
	r := rSum / count
	g := gSum / count
	b := bSum / count
	switch {
	case r > g+4000 && r > b+4000:
		return "warm earthen"
	case b > r+4000 && b > g+4000:
		return "cool"
	case g > r+4000 && g > b+4000:
		return "verdant"
	default:
		return "neutral"
	}
}
