package raster

import (
	"image"
	"image/color"
)

// DrawLine draws a straight line with Bresenham stepping.
func DrawLine(t Target, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawDashedLine draws a line with on pixels drawn and off pixels skipped,
// repeating.
func DrawDashedLine(t Target, x0, y0, x1, y1 int, on, off int, c color.RGBA) {
	if on <= 0 {
		on = 4
	}
	if off <= 0 {
		off = 3
	}
	period := on + off
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	i := 0
	for {
		if i%period < on {
			t.SetPixel(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		i++
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawPolyline connects consecutive points.
func DrawPolyline(t Target, pts []image.Point, c color.RGBA) {
	for i := 1; i < len(pts); i++ {
		DrawLine(t, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, c)
	}
}

// FillRect fills the rectangle with corner x, y and the given size.
func FillRect(t Target, x, y, w, h int, c color.RGBA) {
	tw, th := t.Size()
	x0 := clampInt(x, 0, tw)
	y0 := clampInt(y, 0, th)
	x1 := clampInt(x+w, 0, tw)
	y1 := clampInt(y+h, 0, th)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			t.SetPixel(px, py, c)
		}
	}
}

// DrawRect outlines the rectangle with corner x, y and the given size.
func DrawRect(t Target, x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	DrawLine(t, x, y, x+w-1, y, c)
	DrawLine(t, x, y+h-1, x+w-1, y+h-1, c)
	DrawLine(t, x, y, x, y+h-1, c)
	DrawLine(t, x+w-1, y, x+w-1, y+h-1, c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
