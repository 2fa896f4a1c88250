package imaging

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Invert returns img with its color channels inverted.
//
// Each of R, G and B becomes 255 minus its value; alpha is unchanged.
// Inverting twice returns the original 8-bit pixel data.
func Invert(img image.Image) image.Image {
	return imaging.Invert(img)
}

// Grayscale returns a luminance-only version of img.
//
// Luminance is computed by the imaging library with ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B). Opaque results are returned as a
// single-channel *image.Gray; images with any transparency are returned as
// *image.NRGBA with R=G=B so the alpha channel survives.
func Grayscale(img image.Image) image.Image {
	gray := imaging.Grayscale(img)
	if gray.Opaque() {
		return ToGray(gray)
	}
	return gray
}

// Brighten adds delta to every color channel of img, clamping to 0-255.
//
// Positive values lighten, negative values darken, alpha is unchanged.
// A delta of 0 returns img itself. Deltas beyond +/-255 saturate.
func Brighten(img image.Image, delta int) image.Image {
	if delta == 0 {
		return img
	}
	// AdjustBrightness shifts each channel by 255*percentage/100.
	percentage := float64(delta) * 100.0 / 255.0
	return imaging.AdjustBrightness(img, percentage)
}

// NormalizeDegrees maps any degree count onto [0, 360).
func NormalizeDegrees(degrees int) int {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return d
}

// HueRotate shifts the hue of every pixel by degrees around the color wheel.
//
// The rotation happens in HSL space: saturation, lightness and alpha are
// preserved. Degrees are taken modulo 360, so 0, 360 and -360 return img
// itself and 370 produces the same result as 10. Grayscale buffers have no
// hue and are returned unchanged.
func HueRotate(img image.Image, degrees int) image.Image {
	shift := float64(NormalizeDegrees(degrees))
	if shift == 0 || IsGray(img) {
		return img
	}

	dst := imaging.Clone(img)
	width := dst.Rect.Dx()
	for y := 0; y < dst.Rect.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		for i := 0; i < len(row); i += 4 {
			c := colorful.Color{
				R: float64(row[i]) / 255.0,
				G: float64(row[i+1]) / 255.0,
				B: float64(row[i+2]) / 255.0,
			}
			h, s, l := c.Hsl()
			row[i], row[i+1], row[i+2] = colorful.Hsl(math.Mod(h+shift, 360), s, l).Clamped().RGB255()
		}
	}
	return dst
}

// IsGray reports whether img is a single-channel grayscale buffer.
func IsGray(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	return false
}

// MatchGray converts img back to the single-channel layout of ref.
//
// A *image.Gray16 ref yields *image.Gray16 and a *image.Gray ref yields
// *image.Gray, so a grayscale buffer keeps its depth through operations that
// return color buffers. Color refs return img unchanged. The library
// operations work at 8-bit precision, so a 16-bit buffer keeps its layout
// but not its low-order bits.
func MatchGray(ref, img image.Image) image.Image {
	switch ref.(type) {
	case *image.Gray16:
		if _, ok := img.(*image.Gray16); !ok {
			return ToGray16(img)
		}
	case *image.Gray:
		if !IsGray(img) {
			return ToGray(img)
		}
	}
	return img
}

// ToGray16 converts img to a 16-bit single-channel image with bounds at (0,0).
func ToGray16(img image.Image) *image.Gray16 {
	if g, ok := img.(*image.Gray16); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	bounds := img.Bounds()
	dst := image.NewGray16(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// ToGray converts img to an 8-bit single-channel image with bounds at (0,0).
//
// Callers should only pass opaque images: the conversion uses Go's
// premultiplied color model, so translucent pixels would be darkened.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	bounds := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
