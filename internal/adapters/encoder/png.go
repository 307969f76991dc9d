package encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/rs/zerolog/log"
)

const paletteSize = 256

// PNGEncoder serializes images as web-optimized PNGs. Opaque images are
// quantized to an adaptive palette, images with transparency are encoded at
// full depth with the highest compression level.
type PNGEncoder struct{}

func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{}
}

// HasAlpha reports whether img has any pixel that is not fully opaque.
func (e *PNGEncoder) HasAlpha(img image.Image) bool {
	if opaquer, ok := img.(interface{ Opaque() bool }); ok {
		return !opaquer.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}

	return false
}

// Encode produces the PNG bytes for img. The encoder configuration is
// deterministic, identical input yields identical output.
func (e *PNGEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	if e.HasAlpha(img) {
		log.Debug().Msg("encoding lossless PNG with alpha")

		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, toNRGBA(img)); err != nil {
			return nil, fmt.Errorf("encoding PNG: %w", err)
		}

		return buf.Bytes(), nil
	}

	log.Debug().Int("colors", paletteSize).Msg("encoding quantized PNG")

	if err := png.Encode(&buf, quantized(img)); err != nil {
		return nil, fmt.Errorf("encoding quantized PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// quantized reduces img to an adaptive 256-color palette with median cut and
// Floyd-Steinberg dithering.
func quantized(img image.Image) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	palette := q.Quantize(make([]color.Color, 0, paletteSize), img)

	bounds := img.Bounds()
	paletted := image.NewPaletted(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), palette)
	draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), img, bounds.Min)

	return paletted
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)

	return dst
}
