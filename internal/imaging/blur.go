package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Blur applies a Gaussian blur with the given radius.
//
// A radius of 0 returns img itself so an unset blur leaves the pixel data
// untouched. Pixels near the border are blurred with clamped edge values.
func Blur(img image.Image, radius uint) image.Image {
	if radius == 0 {
		return img
	}
	return blur.Gaussian(img, float64(radius))
}
