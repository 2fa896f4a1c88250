package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Rect is a crop rectangle: (X, Y) is the top-left corner relative to the
// image's own top-left corner, Width and Height are the size to keep.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// String formats r as "WxH+X+Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Crop extracts the region r from img.
//
// The rectangle must lie entirely within the image and have a positive
// width and height. Out-of-range rectangles are rejected rather than
// clamped, so the output size always equals the requested size.
// The result's bounds start at (0,0).
func Crop(img image.Image, r Rect) (image.Image, error) {
	bounds := img.Bounds()

	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("invalid crop region %s: width and height must be > 0", r)
	}
	// Compared against the remaining space so huge values cannot overflow.
	if r.X < 0 || r.Y < 0 || r.Width > bounds.Dx() || r.Height > bounds.Dy() ||
		r.X > bounds.Dx()-r.Width || r.Y > bounds.Dy()-r.Height {
		return nil, fmt.Errorf("crop region %s outside image bounds %dx%d",
			r, bounds.Dx(), bounds.Dy())
	}

	rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height).Add(bounds.Min)
	return imaging.Crop(img, rect), nil
}
