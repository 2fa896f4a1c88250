package pipeline

import (
	"math"

	"github.com/ironsheep/pixfx/internal/errors"
	"github.com/ironsheep/pixfx/internal/imaging"
)

// cutValues is the number of values a crop specification must carry:
// x, y, width and height.
const cutValues = 4

// Params holds everything one run needs. It is built once from the command
// line and never modified afterwards.
type Params struct {
	Input  string // path of the image to read
	Output string // path to write; the extension selects the format

	Blur      uint   // Gaussian blur radius, 0 disables
	Brighten  int    // signed per-channel brightness delta
	Cut       []uint // crop x, y, width, height; nil disables
	Invert    bool   // invert color channels
	HueRotate int    // hue rotation in degrees, any sign, taken modulo 360
	Grayscale bool   // reduce to luminance

	Quality int // JPEG quality 1-100, 0 selects imaging.DefaultJPEGQuality
}

// Validate checks the parameters without touching the filesystem.
//
// It rejects missing paths, a crop specification that does not have exactly
// four values, has a zero width or height or holds a value too large for an
// image coordinate, an output extension the encoder cannot write, and an
// out-of-range JPEG quality.
func (p Params) Validate() error {
	if p.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	if p.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output path is required")
	}

	if p.Cut != nil {
		if len(p.Cut) != cutValues {
			return errors.New(errors.ErrCodeInvalidInput,
				"invalid number of cut values: got %d, the number of values must be %d", len(p.Cut), cutValues)
		}
		if p.Cut[2] == 0 || p.Cut[3] == 0 {
			return errors.New(errors.ErrCodeInvalidInput,
				"invalid cut size %dx%d: width and height must be > 0", p.Cut[2], p.Cut[3])
		}
		for _, v := range p.Cut {
			if v > math.MaxInt {
				return errors.New(errors.ErrCodeCropOutOfBounds,
					"cut value %d is outside image bounds of any size", v)
			}
		}
	}

	if _, err := imaging.FormatFromPath(p.Output); err != nil {
		return errors.Wrap(errors.ErrCodeUnsupportedFormat, err, "cannot write %s", p.Output)
	}

	if p.Quality < 0 || p.Quality > 100 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid quality %d: must be between 1 and 100", p.Quality)
	}
	return nil
}

// CropRect returns the crop rectangle and whether cropping was requested.
// It assumes Validate has passed.
func (p Params) CropRect() (imaging.Rect, bool) {
	if len(p.Cut) != cutValues {
		return imaging.Rect{}, false
	}
	return imaging.Rect{
		X:      int(p.Cut[0]),
		Y:      int(p.Cut[1]),
		Width:  int(p.Cut[2]),
		Height: int(p.Cut[3]),
	}, true
}

func (p Params) quality() int {
	if p.Quality == 0 {
		return imaging.DefaultJPEGQuality
	}
	return p.Quality
}
