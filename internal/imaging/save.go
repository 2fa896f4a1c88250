package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// DefaultJPEGQuality is the JPEG quality used when none is given.
const DefaultJPEGQuality = 95

// FormatFromPath returns the output format implied by the extension of path.
//
// Recognized extensions (case-insensitive): .jpg, .jpeg, .png, .gif, .tif,
// .tiff and .bmp. Anything else returns imaging.ErrUnsupportedFormat.
func FormatFromPath(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return f, fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}
	return f, nil
}

// Save encodes img to path in the format implied by its extension.
//
// The image is first written to a uniquely named hidden file next to path
// and renamed over path once fully encoded and closed. If any step fails
// the temporary file is removed and path is left as it was.
//
// quality applies to JPEG output only and must be in 1-100.
func Save(img image.Image, path string, quality int) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err = imaging.Encode(f, img, format, imaging.JPEGQuality(quality)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
