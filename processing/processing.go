// Package processing implements the image enhancement pipelines and the
// artifact analyzers behind the processing endpoints.
package processing

import (
	"fmt"
	"image"
	"strings"
	"time"
)

// Metadata describes how an image was processed, returned alongside the
// processed image in the route layer's JSON envelope.
type Metadata struct {
	Technique      string `json:"technique"`
	ProcessingMode string `json:"processing_mode"`
	ProcessingTime string `json:"processing_time"`
}

// Processing modes. "auto" picks a mode by input size; the rest force one.
const (
	ModeAuto     = "auto"
	ModeFast     = "fast"
	ModeBalanced = "balanced"
	ModeQuality  = "quality"
	ModeUltra    = "ultra"
)

// resolveMode maps the requested mode to an effective one. Auto picks a
// lighter mode for larger inputs so processing time stays bounded.
func resolveMode(mode string, bounds image.Rectangle) string {
	switch strings.ToLower(mode) {
	case ModeFast, ModeBalanced, ModeQuality, ModeUltra:
		return strings.ToLower(mode)
	}
	pixels := bounds.Dx() * bounds.Dy()
	switch {
	case pixels > 4_000_000:
		return ModeFast
	case pixels > 1_000_000:
		return ModeBalanced
	default:
		return ModeQuality
	}
}

func modeLabel(mode string) string {
	return strings.ToUpper(mode)
}

func elapsed(start time.Time) string {
	return fmt.Sprintf("%.1fs", time.Since(start).Seconds())
}

// clampIntensity bounds intensity to [0,1], defaulting out-of-range input
// rather than rejecting it.
func clampIntensity(intensity float64) float64 {
	if intensity < 0 {
		return 0
	}
	if intensity > 1 {
		return 1
	}
	return intensity
}
