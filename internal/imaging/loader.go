package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Open decodes the image file at path.
//
// Supported input formats are PNG, JPEG, GIF, BMP and TIFF (registered by
// the imaging library) plus WebP. EXIF orientation is ignored: the pixels
// are returned exactly as stored.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not in a supported format or is corrupt
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ImageInfo contains metadata about a decoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Format is the format implied by the file extension, or "unknown".
	Format string

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string

	// Channels is 1 for grayscale buffers and 3 or 4 for color buffers.
	Channels int

	// HasAlpha indicates whether the buffer type carries an alpha channel.
	HasAlpha bool
}

// Describe reports the dimensions and pixel layout of img.
//
// The path is only used to name the format; nothing is read from disk.
// Color depth and alpha are derived from the concrete Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - *image.Gray, *image.Gray16 -> 1 channel
//   - *image.RGBA, *image.NRGBA and their 16-bit forms -> alpha present
//   - All other types -> "8-bit", 3 channels, no alpha
func Describe(img image.Image, path string) ImageInfo {
	bounds := img.Bounds()

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	} else if strings.EqualFold(filepath.Ext(path), ".webp") {
		format = "webp"
	}

	info := ImageInfo{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		ColorDepth: "8-bit",
		Channels:   3,
	}

	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		info.HasAlpha = true
		info.Channels = 4
	case *image.RGBA64, *image.NRGBA64:
		info.HasAlpha = true
		info.Channels = 4
		info.ColorDepth = "16-bit"
	case *image.Gray:
		info.Channels = 1
	case *image.Gray16:
		info.Channels = 1
		info.ColorDepth = "16-bit"
	}

	return info
}
