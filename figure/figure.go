// Package figure builds and renders chart figures.
//
// A Figure owns one or more Axes. Each Axes plots line series against linear
// or logarithmic scales and can carry any number of secondary axes whose tick
// labels live in a transformed coordinate space (see SecondaryXAxis). Figures
// render into any raster.Target, so the same figure can be exported as PNG,
// shown in a window, or drawn into a framebuffer.
package figure

import (
	"fmt"
	"image/color"
	"os"

	"quarkplot/raster"
)

// Figure is a fixed-size drawing with stacked axes.
type Figure struct {
	W, H       int
	Background color.RGBA

	axes []*Axes
}

// New creates a figure of the given pixel size. Non-positive dimensions fall
// back to 640x480.
func New(w, h int) *Figure {
	if w <= 0 || h <= 0 {
		w, h = 640, 480
	}
	return &Figure{W: w, H: h, Background: colorBG}
}

// AddAxes appends a new axes row to the figure.
func (f *Figure) AddAxes() *Axes {
	a := newAxes(f)
	f.axes = append(f.axes, a)
	return a
}

// Render draws the figure into t.
//
// Multiple axes split the figure height evenly, top to bottom.
func (f *Figure) Render(t raster.Target) {
	if f == nil || t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(f.Background)
	if len(f.axes) == 0 {
		return
	}
	rowH := h / len(f.axes)
	for i, a := range f.axes {
		y0 := i * rowH
		y1 := y0 + rowH - 1
		if i == len(f.axes)-1 {
			y1 = h - 1
		}
		a.render(t, rect{x0: 0, y0: y0, x1: w - 1, y1: y1})
	}
}

// RenderImage renders into a fresh image-backed target sized to the figure.
func (f *Figure) RenderImage() *raster.ImageTarget {
	t := raster.NewImageTarget(f.W, f.H)
	f.Render(t)
	return t
}

// SavePNG renders the figure and writes it to path.
func (f *Figure) SavePNG(path string) error {
	t := f.RenderImage()
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure: create %q: %w", path, err)
	}
	if err := t.EncodePNG(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("figure: encode %q: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("figure: close %q: %w", path, err)
	}
	return nil
}
