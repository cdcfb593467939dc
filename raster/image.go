package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// ImageTarget renders into an *image.RGBA.
type ImageTarget struct {
	img *image.RGBA
}

// NewImageTarget creates a target of the given size. Dimensions below one
// pixel are clamped to one.
func NewImageTarget(w, h int) *ImageTarget {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ImageTarget{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) SetPixel(x, y int, c color.RGBA) {
	b := t.img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return
	}
	t.img.SetRGBA(x, y, c)
}

func (t *ImageTarget) Clear(c color.RGBA) {
	pix := t.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// At returns the pixel at x, y, or the zero color out of bounds.
func (t *ImageTarget) At(x, y int) color.RGBA {
	b := t.img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return color.RGBA{}
	}
	return t.img.RGBAAt(x, y)
}

// Image exposes the backing image for blitting.
func (t *ImageTarget) Image() *image.RGBA { return t.img }

// EncodePNG writes the target contents as PNG.
func (t *ImageTarget) EncodePNG(w io.Writer) error {
	return png.Encode(w, t.img)
}
