// Package cli implements the pixfx command-line interface.
//
// The command takes an input and an output path plus a set of transform
// flags, and hands them to the pipeline package as a single Params value.
// The CLI is built with cobra; logging goes to stderr through
// charmbracelet/log.
//
// # Flags
//
// Short flags follow the traditional pixfx spelling, so -h means
// --brighten and help is only available as --help. The four values of
// --cut may be given space separated (-c 0 0 50 50), comma separated
// (--cut=0,0,50,50) or as repeated flags. In the space-separated form every
// number following -c is taken as a cut value, so a file whose name is all
// digits must come after "--" (pixfx -c 0 0 5 5 -- 123 out.png).
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/pixfx/internal/errors"
	"github.com/ironsheep/pixfx/internal/imaging"
	"github.com/ironsheep/pixfx/internal/pipeline"
)

const appName = "pixfx"

var (
	version   = "dev"     // semantic version (e.g., "v1.2.3")
	buildTime = "unknown" // build timestamp
	gitCommit = "unknown" // git commit SHA
)

// SetVersion sets the build information shown by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, built, commit string) {
	version = v
	buildTime = built
	gitCommit = commit
}

// options holds the parsed command-line flags.
type options struct {
	blur      uint   // Gaussian blur radius
	invert    bool   // invert colors
	hueRotate int    // hue rotation in degrees
	brighten  int    // brightness delta
	cut       []uint // crop x, y, width, height
	greyscale bool   // convert to grayscale
	quality   int    // JPEG quality
	verbose   bool   // debug logging
}

// params builds the pipeline parameters. cutSet reports whether --cut was
// given at all, so an explicitly empty cut is still validated.
func (o *options) params(input, output string, cutSet bool) pipeline.Params {
	p := pipeline.Params{
		Input:     input,
		Output:    output,
		Blur:      o.blur,
		Brighten:  o.brighten,
		Invert:    o.invert,
		HueRotate: o.hueRotate,
		Grayscale: o.greyscale,
		Quality:   o.quality,
	}
	if cutSet {
		p.Cut = append([]uint{}, o.cut...)
	}
	return p
}

// newRootCommand creates the pixfx command. Log output and error messages
// go to stderr.
func newRootCommand(stderr io.Writer) *cobra.Command {
	opts := options{quality: imaging.DefaultJPEGQuality}

	cmd := &cobra.Command{
		Use:   appName + " INPUT OUTPUT",
		Short: "Just a simple image processing tool",
		Long: `pixfx applies crop, invert, grayscale, blur, brightness and hue rotation
to an image, always in that order, and writes the result to OUTPUT.
The output format is chosen from the OUTPUT file extension.`,
		Example: `  pixfx photo.jpg thumb.png --cut 0 0 200 200 --greyscale
  pixfx photo.png warm.png -r -30 -h 15`,
		Args:          cobra.ExactArgs(2),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)

			if cmd.Flags().Changed("quality") && opts.quality == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "invalid quality 0: must be between 1 and 100")
			}

			params := opts.params(args[0], args[1], cmd.Flags().Changed("cut"))
			_, err := pipeline.NewRunner(logger).Run(params)
			return err
		},
	}

	cmd.SetVersionTemplate(fmt.Sprintf("%s %s\n  Build time: %s\n  Git commit: %s\n",
		appName, version, buildTime, gitCommit))

	f := cmd.Flags()
	f.SortFlags = false
	f.UintVarP(&opts.blur, "blur", "b", 0, "apply blur to the image with the given radius")
	f.BoolVarP(&opts.invert, "invert", "i", false, "invert image colors")
	f.IntVarP(&opts.hueRotate, "huerotate", "r", 0, "rotate the hue of every pixel by degrees")
	f.IntVarP(&opts.brighten, "brighten", "h", 0, "adjust image brightness (negative values darken)")
	f.UintSliceVarP(&opts.cut, "cut", "c", nil, "crop the image to x y width height\n(every number after -c is a cut value; use -- before numeric file names)")
	f.BoolVarP(&opts.greyscale, "greyscale", "g", false, "apply a grayscale filter to the image")
	f.IntVarP(&opts.quality, "quality", "q", opts.quality, "JPEG output quality (1-100)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	// Registered before cobra adds its own so -h stays free for --brighten.
	f.Bool("help", false, "help for "+appName)

	return cmd
}

// Execute runs pixfx with args (program name excluded).
//
// Help and version output go to stdout. Any failure is printed once to
// stderr and returned; the caller should exit with status 1.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCommand(stderr)
	cmd.SetArgs(gatherCutValues(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return err
	}
	return nil
}
