package port

import "image"

type ImageConverter interface {
	// Scale resamples img by the given factor. Target dimensions are rounded
	// and clamped to at least one pixel; an unchanged size returns img as is.
	Scale(img image.Image, factor float64) image.Image
}
