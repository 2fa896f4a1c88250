package pipeline

import (
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/pixfx/internal/errors"
	"github.com/ironsheep/pixfx/internal/imaging"
)

// Runner executes the transform pipeline for one image.
//
// The Runner holds no state besides its logger; each Run owns its image
// buffer from decode to encode.
type Runner struct {
	Logger *log.Logger
}

// Result describes the image written by a successful run.
type Result struct {
	Output   string        // path written
	Format   string        // output format, e.g. "png"
	Width    int           // output width in pixels
	Height   int           // output height in pixels
	Channels int           // 1 for grayscale output
	Applied  []string      // names of the steps that ran, in order
	Duration time.Duration // decode to encode inclusive
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// step is one optional transform. Steps run in slice order; disabled steps
// are skipped without touching the buffer.
type step struct {
	name    string
	enabled bool
	attrs   []any
	apply   func(image.Image) (image.Image, error)
}

// steps returns the fixed transform order:
// crop, invert, grayscale, blur, brighten, hue rotation.
func (p Params) steps() []step {
	rect, crop := p.CropRect()
	hue := imaging.NormalizeDegrees(p.HueRotate)

	return []step{
		{
			name:    "crop",
			enabled: crop,
			attrs:   []any{"rect", rect.String()},
			apply: func(img image.Image) (image.Image, error) {
				out, err := imaging.Crop(img, rect)
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeCropOutOfBounds, err, "cannot crop %s", p.Input)
				}
				return out, nil
			},
		},
		{
			name:    "invert",
			enabled: p.Invert,
			apply:   infallible(imaging.Invert),
		},
		{
			name:    "grayscale",
			enabled: p.Grayscale,
			apply:   infallible(imaging.Grayscale),
		},
		{
			name:    "blur",
			enabled: p.Blur > 0,
			attrs:   []any{"radius", p.Blur},
			apply: infallible(func(img image.Image) image.Image {
				return imaging.Blur(img, p.Blur)
			}),
		},
		{
			name:    "brighten",
			enabled: p.Brighten != 0,
			attrs:   []any{"delta", p.Brighten},
			apply: infallible(func(img image.Image) image.Image {
				return imaging.Brighten(img, p.Brighten)
			}),
		},
		{
			name:    "huerotate",
			enabled: hue != 0,
			attrs:   []any{"degrees", hue},
			apply: infallible(func(img image.Image) image.Image {
				return imaging.HueRotate(img, hue)
			}),
		},
	}
}

func infallible(fn func(image.Image) image.Image) func(image.Image) (image.Image, error) {
	return func(img image.Image) (image.Image, error) {
		return fn(img), nil
	}
}

// Run decodes p.Input, applies the enabled steps in their fixed order and
// writes the result to p.Output.
//
// Parameters are validated before any file is opened. Every failure is
// returned as an *errors.Error:
//   - INVALID_INPUT, UNSUPPORTED_FORMAT: bad parameters, nothing was read
//   - DECODE_FAILED: the input could not be opened or decoded
//   - CROP_OUT_OF_BOUNDS: the crop rectangle does not fit the decoded image
//   - ENCODE_FAILED: the output could not be encoded or written
//
// The output path is only created once the whole pipeline has succeeded.
func (r *Runner) Run(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := imaging.Open(p.Input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "failed to open %s", p.Input)
	}

	r.Logger.Info("Processing...")

	in := imaging.Describe(img, p.Input)
	r.Logger.Debug("decoded input",
		"path", p.Input,
		"format", in.Format,
		"width", in.Width,
		"height", in.Height,
		"channels", in.Channels,
		"alpha", in.HasAlpha,
		"depth", in.ColorDepth)

	var applied []string
	for _, s := range p.steps() {
		if !s.enabled {
			continue
		}
		next, err := s.apply(img)
		if err != nil {
			return nil, err
		}
		// Single-channel input stays single-channel at its own depth.
		img = imaging.MatchGray(img, next)
		applied = append(applied, s.name)

		b := img.Bounds()
		r.Logger.Debug("applied "+s.name, append(s.attrs, "width", b.Dx(), "height", b.Dy())...)
	}

	if err := imaging.Save(img, p.Output, p.quality()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "failed to save %s", p.Output)
	}

	out := imaging.Describe(img, p.Output)
	result := &Result{
		Output:   p.Output,
		Format:   out.Format,
		Width:    out.Width,
		Height:   out.Height,
		Channels: out.Channels,
		Applied:  applied,
		Duration: time.Since(start),
	}

	r.Logger.Debug("wrote output",
		"path", result.Output,
		"format", result.Format,
		"width", result.Width,
		"height", result.Height,
		"steps", len(result.Applied),
		"duration", result.Duration.Round(time.Millisecond))

	return result, nil
}
