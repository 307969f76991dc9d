package port

import (
	"image"

	"pngexport/internal/core/domain"
)

type ImageDecoder interface {
	// Probe reads the display dimensions of the image at path without a full
	// pixel decode where the codec allows it. Orientations that transpose the
	// image report swapped width and height.
	Probe(path string) (domain.Dimensions, error)
	// Decode decodes the full image and applies the EXIF orientation
	// correction so the pixel buffer matches the intended display
	// orientation. The returned buffer carries no metadata.
	Decode(path string) (image.Image, error)
}
