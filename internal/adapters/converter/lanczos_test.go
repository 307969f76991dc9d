package converter

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleDimensions(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		factor     float64
		wantWidth  int
		wantHeight int
	}{
		{name: "half", width: 100, height: 50, factor: 0.5, wantWidth: 50, wantHeight: 25},
		{name: "rounds up", width: 3, height: 3, factor: 0.5, wantWidth: 2, wantHeight: 2},
		{name: "clamps to one pixel", width: 2, height: 2, factor: 0.1, wantWidth: 1, wantHeight: 1},
		{name: "upscale", width: 4, height: 4, factor: 1.5, wantWidth: 6, wantHeight: 6},
		{name: "default scenario", width: 3000, height: 2000, factor: 0.5, wantWidth: 1500, wantHeight: 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, tc.width, tc.height))

			out := NewLanczosConverter().Scale(img, tc.factor)

			assert.Equal(t, tc.wantWidth, out.Bounds().Dx())
			assert.Equal(t, tc.wantHeight, out.Bounds().Dy())
		})
	}
}

func TestScaleIdentityReturnsSameImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	out := NewLanczosConverter().Scale(img, 1.0)

	assert.Same(t, img, out.(*image.NRGBA))
}
