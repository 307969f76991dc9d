package converter

import (
	"image"
	"math"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
)

// LanczosConverter resamples images with a Lanczos3 kernel.
type LanczosConverter struct{}

func NewLanczosConverter() *LanczosConverter {
	return &LanczosConverter{}
}

// Scale resamples img by factor. Both target dimensions are rounded and
// clamped to at least one pixel. When the target size equals the source size
// the image is returned unchanged.
func (c *LanczosConverter) Scale(img image.Image, factor float64) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth := max(1, int(math.Round(float64(width)*factor)))
	newHeight := max(1, int(math.Round(float64(height)*factor)))

	if newWidth == width && newHeight == height {
		return img
	}

	log.Debug().
		Int("width", width).
		Int("height", height).
		Int("newWidth", newWidth).
		Int("newHeight", newHeight).
		Msg("resampling image")

	return resize.Resize(uint(newWidth), uint(newHeight), img, resize.Lanczos3)
}
