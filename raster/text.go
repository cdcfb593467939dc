package raster

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// displayer adapts a Target to the tinyfont pixel interface.
type displayer struct {
	t Target
}

// Displayer wraps t so tinyfont can draw on it.
func Displayer(t Target) drivers.Displayer {
	return &displayer{t: t}
}

func (d *displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), c)
}

func (d *displayer) Display() error { return nil }

// WriteText draws s with its baseline at x, y.
func WriteText(t Target, font tinyfont.Fonter, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(Displayer(t), font, int16(x), int16(y), s, c)
}

// WriteTextRotated draws s rotated by a right angle, baseline starting at x, y.
func WriteTextRotated(t Target, font tinyfont.Fonter, x, y int, s string, c color.RGBA, rot tinyfont.Rotation) {
	tinyfont.WriteLineRotated(Displayer(t), font, int16(x), int16(y), s, c, rot)
}

// MeasureText returns the advance width and line height of s in pixels.
func MeasureText(font tinyfont.Fonter, s string) (w, h int) {
	_, outbox := tinyfont.LineWidth(font, s)
	return int(outbox), int(font.GetYAdvance())
}
