// Package raster draws chart primitives into caller-provided pixel targets.
//
// The drawing surface is abstracted behind Target so figures can render into
// an in-memory image for PNG export or a desktop window, or directly into an
// RGB565 framebuffer on small displays. All drawing is software-only and the
// hot paths avoid allocations.
package raster

import "image/color"

// Target is a minimal pixel target for software rendering.
//
// Implementations must clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
}
