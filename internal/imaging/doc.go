// Package imaging provides the pixel operations applied by the pixfx pipeline.
//
// Each function is a thin adapter over a third-party image library:
//   - Decoding, cropping, inversion, grayscale, brightness and encoding use
//     github.com/disintegration/imaging
//   - Gaussian blur uses github.com/anthonynsimon/bild
//   - Hue rotation uses HSL conversion from github.com/lucasb-eyer/go-colorful
//
// The adapters add the parts the libraries leave to the caller: bounds
// validation for crop rectangles, true no-ops for zero parameters, degree
// normalization for hue rotation, and an atomic write for the output file.
//
// # Coordinate System
//
// Crop coordinates are 0-based and relative to the image's top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Width and Height give the size of the region kept
//
// # Buffers
//
// Functions never modify their input. Operations that change pixels return
// a new image, usually *image.NRGBA (blur returns *image.RGBA). Operations
// given a zero parameter return their input unchanged. Grayscale returns a
// single-channel *image.Gray for opaque images. MatchGray restores the
// single-channel layout (8 or 16 bit) of a grayscale source after an
// operation that returned a color buffer.
//
// # Error Handling
//
// Functions return errors for:
//   - Crop rectangles with zero size or extending past the image
//   - File I/O errors during decoding
//   - Unsupported output extensions and encoding or write failures
package imaging
