package port

import "image"

type ImageEncoder interface {
	// HasAlpha reports whether img carries partial or full transparency.
	HasAlpha(img image.Image) bool
	// Encode serializes img as an optimized PNG. Opaque images are palette
	// quantized, images with transparency keep full color depth.
	Encode(img image.Image) ([]byte, error)
}
