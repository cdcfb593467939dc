package raster

import (
	"bytes"
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont/proggy"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func TestImageTargetPixels(t *testing.T) {
	tg := NewImageTarget(8, 8)
	tg.Clear(white)
	tg.SetPixel(3, 4, red)
	if got := tg.At(3, 4); got != red {
		t.Fatalf("At(3,4) = %v", got)
	}
	if got := tg.At(0, 0); got != white {
		t.Fatalf("At(0,0) = %v", got)
	}
	// Out of bounds writes are dropped.
	tg.SetPixel(-1, 0, red)
	tg.SetPixel(8, 8, red)
	if got := tg.At(-1, 0); got != (color.RGBA{}) {
		t.Fatalf("out-of-bounds read = %v", got)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	tg := NewImageTarget(16, 16)
	tg.Clear(white)
	DrawLine(tg, 2, 3, 12, 9, black)
	if tg.At(2, 3) != black || tg.At(12, 9) != black {
		t.Fatalf("line endpoints not set")
	}
}

func TestDrawDashedLineHasGaps(t *testing.T) {
	tg := NewImageTarget(64, 8)
	tg.Clear(white)
	DrawDashedLine(tg, 0, 4, 63, 4, 4, 3, black)
	on, off := 0, 0
	for x := 0; x < 64; x++ {
		if tg.At(x, 4) == black {
			on++
		} else {
			off++
		}
	}
	if on == 0 || off == 0 {
		t.Fatalf("dashed line on=%d off=%d", on, off)
	}
}

func TestFillRectClips(t *testing.T) {
	tg := NewImageTarget(8, 8)
	tg.Clear(white)
	FillRect(tg, 6, 6, 10, 10, black)
	if tg.At(7, 7) != black {
		t.Fatalf("corner not filled")
	}
	if tg.At(5, 5) != white {
		t.Fatalf("outside rect painted")
	}
}

func TestRGB565Target(t *testing.T) {
	tg := &RGB565Target{Buf: make([]byte, 8*8*2), Stride: 16, W: 8, H: 8}
	tg.Clear(color.RGBA{A: 0xff})
	tg.SetPixel(1, 0, white)
	// White is 0xFFFF in RGB565.
	if tg.Buf[2] != 0xff || tg.Buf[3] != 0xff {
		t.Fatalf("pixel bytes = %x %x", tg.Buf[2], tg.Buf[3])
	}
	tg.SetPixel(100, 100, white) // must not panic
}

func TestDisplayerAdapter(t *testing.T) {
	tg := NewImageTarget(8, 8)
	tg.Clear(white)
	d := Displayer(tg)
	if w, h := d.Size(); w != 8 || h != 8 {
		t.Fatalf("size = %d x %d", w, h)
	}
	d.SetPixel(2, 5, black)
	if tg.At(2, 5) != black {
		t.Fatalf("pixel not forwarded to target")
	}
	if err := d.Display(); err != nil {
		t.Fatalf("display: %v", err)
	}
}

func TestWriteTextMarksPixels(t *testing.T) {
	tg := NewImageTarget(64, 16)
	tg.Clear(white)
	WriteText(tg, &proggy.TinySZ8pt7b, 2, 12, "40", black)
	n := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if tg.At(x, y) == black {
				n++
			}
		}
	}
	if n == 0 {
		t.Fatalf("no glyph pixels drawn")
	}
}

func TestMeasureText(t *testing.T) {
	w, h := MeasureText(&proggy.TinySZ8pt7b, "angle [rad]")
	if w <= 0 || h <= 0 {
		t.Fatalf("measure = %d x %d", w, h)
	}
	w2, _ := MeasureText(&proggy.TinySZ8pt7b, "angle [rad] longer")
	if w2 <= w {
		t.Fatalf("longer text not wider: %d vs %d", w2, w)
	}
}

func TestEncodePNG(t *testing.T) {
	tg := NewImageTarget(4, 4)
	tg.Clear(white)
	var buf bytes.Buffer
	if err := tg.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty png")
	}
}
