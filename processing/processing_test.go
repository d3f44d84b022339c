package processing

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEnhanceSuperResolution_DoublesDimensions(t *testing.T) {
	img := testImage(40, 30, color.RGBA{180, 140, 100, 255})

	for _, mode := range []string{ModeAuto, ModeFast, ModeBalanced, ModeQuality, ModeUltra} {
		out, meta, err := EnhanceSuperResolution(img, 0.75, mode)
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", mode, err)
		}
		if out.Bounds().Dx() != 80 || out.Bounds().Dy() != 60 {
			t.Errorf("mode %s: expected 80x60, got %dx%d", mode, out.Bounds().Dx(), out.Bounds().Dy())
		}
		if meta.Technique == "" || meta.ProcessingMode == "" || meta.ProcessingTime == "" {
			t.Errorf("mode %s: incomplete metadata: %+v", mode, meta)
		}
	}
}

func TestRestoreArtifact_PreservesDimensions(t *testing.T) {
	img := testImage(50, 40, color.RGBA{60, 50, 40, 255})

	out, meta, err := RestoreArtifact(img, 0.5, ModeBalanced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 40 {
		t.Errorf("restoration must not resize, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if meta.ProcessingMode != "BALANCED" {
		t.Errorf("expected BALANCED mode label, got %s", meta.ProcessingMode)
	}
}

func TestResolveMode(t *testing.T) {
	small := image.Rect(0, 0, 100, 100)
	if got := resolveMode("auto", small); got != ModeQuality {
		t.Errorf("small auto should resolve to quality, got %s", got)
	}
	huge := image.Rect(0, 0, 3000, 2000)
	if got := resolveMode("auto", huge); got != ModeFast {
		t.Errorf("huge auto should resolve to fast, got %s", got)
	}
	if got := resolveMode("ULTRA", small); got != ModeUltra {
		t.Errorf("explicit mode should win regardless of casing, got %s", got)
	}
	if got := resolveMode("bogus", small); got != ModeQuality {
		t.Errorf("unknown mode should fall through to auto behavior, got %s", got)
	}
}

func TestClampIntensity(t *testing.T) {
	if clampIntensity(-0.5) != 0 {
		t.Error("negative intensity should clamp to 0")
	}
	if clampIntensity(1.5) != 1 {
		t.Error("oversized intensity should clamp to 1")
	}
	if clampIntensity(0.75) != 0.75 {
		t.Error("in-range intensity should pass through")
	}
}

func TestAnalyzeArtifact_Deterministic(t *testing.T) {
	first := AnalyzeArtifact("https://example.com/vase.jpg")
	second := AnalyzeArtifact("https://example.com/vase.jpg")
	if first != second {
		t.Error("same URL must yield identical analysis")
	}
	if first.Type == "" || first.Era == "" || first.Origin == "" || first.Condition == "" {
		t.Errorf("incomplete analysis: %+v", first)
	}
	if first.Confidence < 0.80 || first.Confidence > 0.95 {
		t.Errorf("confidence out of range: %f", first.Confidence)
	}
	if first.FullReport == "" {
		t.Error("full report missing")
	}
}

func TestAutoAnalyze_HeuristicWithoutCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(64, 48, color.RGBA{200, 120, 80, 255})); err != nil {
		t.Fatal(err)
	}

	analysis, err := AutoAnalyze(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Source != "heuristic" {
		t.Errorf("expected heuristic source without credentials, got %s", analysis.Source)
	}
	if analysis.Width != 64 || analysis.Height != 48 {
		t.Errorf("wrong dimensions: %dx%d", analysis.Width, analysis.Height)
	}
	if analysis.Description == "" {
		t.Error("description missing")
	}
	if analysis.DominantColor != "warm earthen" {
		t.Errorf("expected warm earthen tones, got %s", analysis.DominantColor)
	}
}

func TestAutoAnalyze_VisionPath(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	SetVisionAnalyzeFunc(func(ctx context.Context, imageBytes []byte, mimeType string) (string, error) {
		return "A terracotta amphora, likely Greek, 5th century BCE.", nil
	})
	defer SetVisionAnalyzeFunc(nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(32, 32, color.RGBA{120, 120, 120, 255})); err != nil {
		t.Fatal(err)
	}

	analysis, err := AutoAnalyze(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Source != "gemini-vision" {
		t.Errorf("expected gemini-vision source, got %s", analysis.Source)
	}
	if analysis.Description != "A terracotta amphora, likely Greek, 5th century BCE." {
		t.Errorf("unexpected description: %s", analysis.Description)
	}
}

func TestAutoAnalyze_VisionFailureFallsBack(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	SetVisionAnalyzeFunc(func(ctx context.Context, imageBytes []byte, mimeType string) (string, error) {
		return "", context.DeadlineExceeded
	})
	defer SetVisionAnalyzeFunc(nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(32, 32, color.RGBA{120, 120, 120, 255})); err != nil {
		t.Fatal(err)
	}

	analysis, err := AutoAnalyze(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("vision failure must not fail analysis: %v", err)
	}
	if analysis.Source != "heuristic" {
		t.Errorf("expected heuristic fallback, got %s", analysis.Source)
	}
}

func TestAutoAnalyze_RejectsGarbage(t *testing.T) {
	if _, err := AutoAnalyze(context.Background(), []byte("not an image")); err == nil {
		t.Fatal("expected decode error for non-image bytes")
	}
}
