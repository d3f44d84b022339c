package processing

import (
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// EnhanceSuperResolution upscales an image 2x through a staged pipeline:
// Lanczos resampling, edge sharpening, and a light contrast lift. Intensity
// (0..1) scales the sharpening and contrast stages; mode trades stages for
// speed. Ultra runs the upscale in two passes for smoother gradients.
func EnhanceSuperResolution(img image.Image, intensity float64, mode string) (image.Image, Metadata, error) {
	start := time.Now()
	intensity = clampIntensity(intensity)
	effective := resolveMode(mode, img.Bounds())

	width := uint(img.Bounds().Dx())
	height := uint(img.Bounds().Dy())

	var out image.Image
	technique := "Lanczos upscaling"

	switch effective {
	case ModeFast:
		out = resize.Resize(width*2, height*2, img, resize.Lanczos2)
	case ModeUltra:
		// Two 1.5x-ish passes land on 2x with fewer ringing artifacts on
		// high-frequency detail than one direct pass.
		mid := resize.Resize(width*3/2, height*3/2, img, resize.Lanczos3)
		out = resize.Resize(width*2, height*2, mid, resize.Lanczos3)
		technique = "Two-pass Lanczos upscaling"
	default: // balanced, quality
		out = resize.Resize(width*2, height*2, img, resize.Lanczos3)
	}

	if effective != ModeFast && intensity > 0 {
		out = imaging.Sharpen(out, 0.5+1.5*intensity)
		technique += " + sharpening"
	}
	if effective == ModeQuality || effective == ModeUltra {
		out = imaging.AdjustContrast(out, 5*intensity)
		technique += " + contrast"
	}

	meta := Metadata{
		Technique:      technique,
		ProcessingMode: modeLabel(effective),
		ProcessingTime: elapsed(start),
	}
	return out, meta, nil
}
