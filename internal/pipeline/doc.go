// Package pipeline runs the pixfx transform pipeline on a single image.
//
// A run decodes one input file, applies the requested transforms in a fixed
// order and writes one output file:
//
//  1. crop        (Params.Cut)
//  2. invert      (Params.Invert)
//  3. grayscale   (Params.Grayscale)
//  4. blur        (Params.Blur)
//  5. brighten    (Params.Brighten)
//  6. hue rotate  (Params.HueRotate)
//
// The order cannot be changed. A step whose parameter is zero or unset is
// skipped entirely, so a run with no transforms writes the decoded pixels
// unchanged.
//
// # Crop Bounds
//
// The crop rectangle is checked against the decoded image before cropping.
// A rectangle that does not fit is reported as CROP_OUT_OF_BOUNDS and the
// run stops; it is never clamped and never allowed to reach the imaging
// library.
//
// # Failure
//
// There is no partial success. Parameter errors are reported before the
// input is opened, and the output file only appears once encoding has
// finished.
package pipeline
