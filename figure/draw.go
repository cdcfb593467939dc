package figure

import (
	"image"
	"math"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"quarkplot/raster"
	"quarkplot/ticker"
)

var (
	tickFont  tinyfont.Fonter = &proggy.TinySZ8pt7b
	labelFont tinyfont.Fonter = &proggy.TinySZ8pt7b
	titleFont tinyfont.Fonter = &freemono.Bold9pt7b
)

const (
	tickLen = 4
	pad     = 6
)

// rect is a pixel rectangle with inclusive bounds.
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) w() int { return r.x1 - r.x0 + 1 }
func (r rect) h() int { return r.y1 - r.y0 + 1 }

// axesRender holds one axes' resolved limits, ticks and geometry for a
// single render pass.
type axesRender struct {
	a      *Axes
	region rect
	frame  rect

	xlo, xhi float64
	ylo, yhi float64

	xticks, yticks   []float64
	xlabels, ylabels []string

	sec []secRender
}

type secRender struct {
	s      *SecondaryAxis
	vals   []float64
	pos    []float64
	labels []string
}

func (a *Axes) render(t raster.Target, region rect) {
	r := &axesRender{a: a, region: region}
	r.xlo, r.xhi = a.xLimits()
	r.ylo, r.yhi = a.yLimits()
	r.locateTicks()
	r.layout()
	r.draw(t)
}

func (r *axesRender) locateTicks() {
	a := r.a

	xloc := a.xlocator
	if xloc == nil {
		xloc = a.xscale.Locator()
	}
	yloc := a.ylocator
	if yloc == nil {
		yloc = a.yscale.Locator()
	}
	r.xticks = xloc.Ticks(r.xlo, r.xhi)
	r.yticks = yloc.Ticks(r.ylo, r.yhi)

	xf := a.xformat
	if xf == nil {
		xf = ticker.AutoFormatter{}
	}
	yf := a.yformat
	if yf == nil {
		yf = ticker.AutoFormatter{}
	}
	r.xlabels = formatAll(xf, r.xticks)
	r.ylabels = formatAll(yf, r.yticks)

	for _, s := range a.secondary {
		lo, hi := r.xlo, r.xhi
		if s.vertical {
			lo, hi = r.ylo, r.yhi
		}
		vals, pos := s.tickValues(lo, hi)
		r.sec = append(r.sec, secRender{
			s:      s,
			vals:   vals,
			pos:    pos,
			labels: formatAll(s.formatter(), vals),
		})
	}
}

func formatAll(f ticker.Formatter, vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = f.Format(v)
	}
	return out
}

func (r *axesRender) layout() {
	a := r.a
	_, tickH := raster.MeasureText(tickFont, "0")
	_, labelH := raster.MeasureText(labelFont, "0")
	_, titleH := raster.MeasureText(titleFont, "0")

	left := pad
	if a.ylabel != "" {
		left += labelH + 4
	}
	left += maxTextWidth(tickFont, r.ylabels) + tickLen + 4

	bottom := pad
	if a.xtickRot == 90 || a.xtickRot == 270 {
		bottom += maxTextWidth(tickFont, r.xlabels) + tickLen + 4
	} else {
		bottom += tickH + tickLen + 4
	}
	if a.xlabel != "" {
		bottom += labelH + 4
	}

	top := pad
	if a.title != "" {
		top += titleH + 4
	}
	right := pad + 8

	// Secondary axis bands are measured against a provisional frame so
	// outward float positions (like 1.2) get room for their offset.
	provW := r.region.w() - left - right
	provH := r.region.h() - top - bottom
	if provW < 1 {
		provW = 1
	}
	if provH < 1 {
		provH = 1
	}

	for i := range r.sec {
		s := r.sec[i].s
		if s.dataPosSet {
			continue // drawn inside the frame
		}
		if s.vertical {
			band := tickLen + 4 + maxTextWidth(tickFont, r.sec[i].labels) + 4
			if s.label != "" {
				band += labelH + 4
			}
			switch {
			case s.pos >= 1:
				right += band + outward(s.pos-1, provW)
			case s.pos <= 0:
				left += band + outward(-s.pos, provW)
			}
		} else {
			band := tickLen + 4 + tickH
			if s.label != "" {
				band += labelH + 2
			}
			switch {
			case s.pos >= 1:
				top += band + outward(s.pos-1, provH)
			case s.pos <= 0:
				bottom += band + outward(-s.pos, provH)
			}
		}
	}

	fr := rect{
		x0: r.region.x0 + left,
		y0: r.region.y0 + top,
		x1: r.region.x1 - right,
		y1: r.region.y1 - bottom,
	}
	// Keep a usable plot area even on tiny targets.
	if fr.x1-fr.x0 < 15 {
		fr.x0 = r.region.x0 + (r.region.w()-16)/2
		if fr.x0 < r.region.x0 {
			fr.x0 = r.region.x0
		}
		fr.x1 = fr.x0 + 15
		if fr.x1 > r.region.x1 {
			fr.x1 = r.region.x1
		}
	}
	if fr.y1-fr.y0 < 15 {
		fr.y0 = r.region.y0 + (r.region.h()-16)/2
		if fr.y0 < r.region.y0 {
			fr.y0 = r.region.y0
		}
		fr.y1 = fr.y0 + 15
		if fr.y1 > r.region.y1 {
			fr.y1 = r.region.y1
		}
	}
	r.frame = fr
}

func outward(frac float64, dim int) int {
	if frac <= 0 {
		return 0
	}
	return int(frac*float64(dim) + 0.5)
}

func maxTextWidth(f tinyfont.Fonter, labels []string) int {
	max := 0
	for _, l := range labels {
		w, _ := raster.MeasureText(f, l)
		if w > max {
			max = w
		}
	}
	return max
}

// xpix maps a data x to a pixel column. ok is false for unmappable values
// (NaN, or non-positive on a log scale).
func (r *axesRender) xpix(v float64) (int, bool) {
	u := r.a.xscale.Unit(v, r.xlo, r.xhi)
	if !isFinite(u) {
		return 0, false
	}
	return r.frame.x0 + int(math.Round(u*float64(r.frame.x1-r.frame.x0))), true
}

func (r *axesRender) ypix(v float64) (int, bool) {
	u := r.a.yscale.Unit(v, r.ylo, r.yhi)
	if !isFinite(u) {
		return 0, false
	}
	return r.frame.y1 - int(math.Round(u*float64(r.frame.y1-r.frame.y0))), true
}

func (r *axesRender) draw(t raster.Target) {
	fr := r.frame
	raster.DrawRect(t, fr.x0, fr.y0, fr.w(), fr.h(), colorFrame)
	r.drawRefLines(t)
	r.drawSeries(t)
	r.drawXTicks(t)
	r.drawYTicks(t)
	r.drawTitleAndLabels(t)
	r.drawSecondary(t)
	r.drawLegend(t)
}

func (r *axesRender) drawRefLines(t raster.Target) {
	fr := r.frame
	for _, l := range r.a.vlines {
		if px, ok := r.xpix(l.v); ok && px >= fr.x0 && px <= fr.x1 {
			raster.DrawDashedLine(t, px, fr.y0, px, fr.y1, 4, 3, l.col)
		}
	}
	for _, l := range r.a.hlines {
		if py, ok := r.ypix(l.v); ok && py >= fr.y0 && py <= fr.y1 {
			raster.DrawDashedLine(t, fr.x0, py, fr.x1, py, 4, 3, l.col)
		}
	}
}

func (r *axesRender) drawSeries(t raster.Target) {
	var pts []image.Point
	for _, s := range r.a.series {
		pts = pts[:0]
		flush := func() {
			raster.DrawPolyline(t, pts, s.col)
			pts = pts[:0]
		}
		for i := range s.xs {
			px, okx := r.xpix(s.xs[i])
			py, oky := r.ypix(s.ys[i])
			if !okx || !oky {
				flush() // pen up across unmappable points
				continue
			}
			pts = append(pts, image.Point{X: px, Y: py})
		}
		flush()
	}
}

func (r *axesRender) drawXTicks(t raster.Target) {
	fr := r.frame
	_, tickH := raster.MeasureText(tickFont, "0")
	for i, v := range r.xticks {
		px, ok := r.xpix(v)
		if !ok || px < fr.x0 || px > fr.x1 {
			continue
		}
		raster.DrawLine(t, px, fr.y1, px, fr.y1+tickLen, colorFrame)
		lbl := r.xlabels[i]
		w, _ := raster.MeasureText(tickFont, lbl)
		switch r.a.xtickRot {
		case 90:
			raster.WriteTextRotated(t, tickFont, px+tickH/2-1, fr.y1+tickLen+2, lbl, colorText, tinyfont.ROTATION_90)
		case 180:
			raster.WriteTextRotated(t, tickFont, px+w/2, fr.y1+tickLen+tickH, lbl, colorText, tinyfont.ROTATION_180)
		case 270:
			raster.WriteTextRotated(t, tickFont, px-tickH/2+1, fr.y1+tickLen+2+w, lbl, colorText, tinyfont.ROTATION_270)
		default:
			raster.WriteText(t, tickFont, px-w/2, fr.y1+tickLen+tickH, lbl, colorText)
		}
	}
}

func (r *axesRender) drawYTicks(t raster.Target) {
	fr := r.frame
	_, tickH := raster.MeasureText(tickFont, "0")
	for i, v := range r.yticks {
		py, ok := r.ypix(v)
		if !ok || py < fr.y0 || py > fr.y1 {
			continue
		}
		raster.DrawLine(t, fr.x0-tickLen, py, fr.x0, py, colorFrame)
		lbl := r.ylabels[i]
		w, _ := raster.MeasureText(tickFont, lbl)
		raster.WriteText(t, tickFont, fr.x0-tickLen-2-w, py+tickH/2-2, lbl, colorText)
	}
}

func (r *axesRender) drawTitleAndLabels(t raster.Target) {
	a := r.a
	fr := r.frame
	_, labelH := raster.MeasureText(labelFont, "0")
	_, titleH := raster.MeasureText(titleFont, "0")

	if a.title != "" {
		w, _ := raster.MeasureText(titleFont, a.title)
		raster.WriteText(t, titleFont, (fr.x0+fr.x1)/2-w/2, r.region.y0+titleH+2, a.title, colorText)
	}
	if a.xlabel != "" {
		w, _ := raster.MeasureText(labelFont, a.xlabel)
		raster.WriteText(t, labelFont, (fr.x0+fr.x1)/2-w/2, r.region.y1-4, a.xlabel, colorText)
	}
	if a.ylabel != "" {
		w, _ := raster.MeasureText(labelFont, a.ylabel)
		raster.WriteTextRotated(t, labelFont, r.region.x0+2+labelH, (fr.y0+fr.y1)/2+w/2, a.ylabel, colorText, tinyfont.ROTATION_270)
	}
}

func (r *axesRender) drawSecondary(t raster.Target) {
	for i := range r.sec {
		if r.sec[i].s.vertical {
			r.drawSecondaryY(t, &r.sec[i])
		} else {
			r.drawSecondaryX(t, &r.sec[i])
		}
	}
}

func (r *axesRender) drawSecondaryX(t raster.Target, sr *secRender) {
	s := sr.s
	fr := r.frame
	_, tickH := raster.MeasureText(tickFont, "0")
	_, labelH := raster.MeasureText(labelFont, "0")

	var ypix int
	above := false
	if s.dataPosSet {
		py, ok := r.ypix(s.dataPos)
		if !ok {
			return
		}
		ypix = py
	} else {
		ypix = fr.y1 - int(math.Round(s.pos*float64(fr.h()-1)))
		above = s.pos >= 1
	}

	raster.DrawLine(t, fr.x0, ypix, fr.x1, ypix, colorFrame)
	for i, x := range sr.pos {
		px, ok := r.xpix(x)
		if !ok || px < fr.x0 || px > fr.x1 {
			continue
		}
		lbl := sr.labels[i]
		w, _ := raster.MeasureText(tickFont, lbl)
		if above {
			raster.DrawLine(t, px, ypix-tickLen, px, ypix, colorFrame)
			raster.WriteText(t, tickFont, px-w/2, ypix-tickLen-3, lbl, colorText)
		} else {
			raster.DrawLine(t, px, ypix, px, ypix+tickLen, colorFrame)
			raster.WriteText(t, tickFont, px-w/2, ypix+tickLen+tickH, lbl, colorText)
		}
	}
	if s.label != "" {
		w, _ := raster.MeasureText(labelFont, s.label)
		cx := (fr.x0+fr.x1)/2 - w/2
		if above {
			raster.WriteText(t, labelFont, cx, ypix-tickLen-tickH-6, s.label, colorText)
		} else {
			raster.WriteText(t, labelFont, cx, ypix+tickLen+tickH+labelH+2, s.label, colorText)
		}
	}
}

func (r *axesRender) drawSecondaryY(t raster.Target, sr *secRender) {
	s := sr.s
	fr := r.frame
	_, tickH := raster.MeasureText(tickFont, "0")

	xpix := fr.x0 + int(math.Round(s.pos*float64(fr.w()-1)))
	rightSide := s.pos >= 0.5

	raster.DrawLine(t, xpix, fr.y0, xpix, fr.y1, colorFrame)
	maxW := 0
	for i, y := range sr.pos {
		py, ok := r.ypix(y)
		if !ok || py < fr.y0 || py > fr.y1 {
			continue
		}
		lbl := sr.labels[i]
		w, _ := raster.MeasureText(tickFont, lbl)
		if w > maxW {
			maxW = w
		}
		if rightSide {
			raster.DrawLine(t, xpix, py, xpix+tickLen, py, colorFrame)
			raster.WriteText(t, tickFont, xpix+tickLen+3, py+tickH/2-2, lbl, colorText)
		} else {
			raster.DrawLine(t, xpix-tickLen, py, xpix, py, colorFrame)
			raster.WriteText(t, tickFont, xpix-tickLen-3-w, py+tickH/2-2, lbl, colorText)
		}
	}
	if s.label != "" {
		wl, _ := raster.MeasureText(labelFont, s.label)
		cy := (fr.y0+fr.y1)/2 - wl/2
		if rightSide {
			raster.WriteTextRotated(t, labelFont, xpix+tickLen+maxW+8, cy, s.label, colorText, tinyfont.ROTATION_90)
		} else {
			raster.WriteTextRotated(t, labelFont, xpix-tickLen-maxW-8, cy, s.label, colorText, tinyfont.ROTATION_90)
		}
	}
}

func (r *axesRender) drawLegend(t raster.Target) {
	if !r.a.showLegend {
		return
	}
	var entries []*Series
	maxW := 0
	for _, s := range r.a.series {
		if s.label == "" {
			continue
		}
		entries = append(entries, s)
		w, _ := raster.MeasureText(labelFont, s.label)
		if w > maxW {
			maxW = w
		}
	}
	if len(entries) == 0 {
		return
	}

	_, rowH := raster.MeasureText(labelFont, "0")
	rowH += 4
	const swatch = 16
	boxW := swatch + 6 + maxW + 10
	boxH := rowH*len(entries) + 6

	fr := r.frame
	x0 := fr.x1 - boxW - 6
	y0 := fr.y0 + 6
	raster.FillRect(t, x0, y0, boxW, boxH, r.a.fig.Background)
	raster.DrawRect(t, x0, y0, boxW, boxH, colorFrame)
	for i, s := range entries {
		cy := y0 + 3 + i*rowH + rowH/2
		raster.DrawLine(t, x0+4, cy, x0+4+swatch, cy, s.col)
		raster.WriteText(t, labelFont, x0+4+swatch+6, cy+3, s.label, colorText)
	}
}
