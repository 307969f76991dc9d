package decoder

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/gift"
	"github.com/rs/zerolog/log"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"pngexport/internal/core/domain"
)

// ExifDecoder decodes images with the stdlib and x/image codecs and corrects
// the pixel buffer for the EXIF orientation tag.
type ExifDecoder struct{}

func NewExifDecoder() *ExifDecoder {
	return &ExifDecoder{}
}

// Probe reads the image dimensions from the file header. For orientations
// 5-8 width and height are swapped so callers see display dimensions.
func (d *ExifDecoder) Probe(path string) (domain.Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return domain.Dimensions{}, fmt.Errorf("reading image header: %w", err)
	}

	dims := domain.Dimensions{Width: cfg.Width, Height: cfg.Height}
	if transposed(readOrientation(path)) {
		dims.Width, dims.Height = dims.Height, dims.Width
	}

	return dims, nil
}

// Decode decodes the full image and reorients the pixels to match display
// orientation. Metadata is left behind in the source file, the returned
// buffer is pixels only.
func (d *ExifDecoder) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	orientation := readOrientation(path)
	log.Debug().Str("path", path).Str("format", format).Int("orientation", orientation).Msg("decoded image")

	if orientation != 1 {
		img = reorient(img, orientation)
	}

	return img, nil
}

// readOrientation returns the EXIF orientation tag value, or 1 when the file
// has no usable EXIF block. A missing tag is the common case for PNG and BMP
// input and not an error.
func readOrientation(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 1
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil || orientation < 1 || orientation > 8 {
		return 1
	}

	return orientation
}

func transposed(orientation int) bool {
	return orientation >= 5 && orientation <= 8
}

// reorient maps EXIF orientation values 2-8 onto the flip and rotation that
// bring the stored pixels into display orientation.
func reorient(img image.Image, orientation int) image.Image {
	var g *gift.GIFT

	switch orientation {
	case 2:
		g = gift.New(gift.FlipHorizontal())
	case 3:
		g = gift.New(gift.Rotate180())
	case 4:
		g = gift.New(gift.FlipVertical())
	case 5:
		g = gift.New(gift.Transpose())
	case 6:
		g = gift.New(gift.Rotate270())
	case 7:
		g = gift.New(gift.Transverse())
	case 8:
		g = gift.New(gift.Rotate90())
	default:
		return img
	}

	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	return dst
}
