package figure

import "image/color"

var (
	colorBG    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorFrame = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	colorText  = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	colorRef   = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
)

// seriesPalette cycles through line colors in plot order.
var seriesPalette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}
