package figure

import (
	"image/color"
	"math"

	"quarkplot/scale"
	"quarkplot/ticker"
)

// Axes is one plotting area inside a figure.
type Axes struct {
	fig *Figure

	title  string
	xlabel string
	ylabel string

	xscale scale.Scale
	yscale scale.Scale

	xlim limits
	ylim limits

	xlocator ticker.Locator
	ylocator ticker.Locator
	xformat  ticker.Formatter
	yformat  ticker.Formatter

	// xtickRot is the x tick label rotation, snapped to 0 or 90 degrees.
	xtickRot int

	// margin is the autoscale data margin fraction at each limit.
	margin float64

	series     []*Series
	vlines     []*RefLine
	hlines     []*RefLine
	secondary  []*SecondaryAxis
	showLegend bool
}

type limits struct {
	lo, hi float64
	set    bool
}

func newAxes(f *Figure) *Axes {
	return &Axes{
		fig:    f,
		xscale: scale.Linear{},
		yscale: scale.Linear{},
		margin: 0.05,
	}
}

// Series is one plotted line.
type Series struct {
	xs, ys []float64
	col    color.RGBA
	label  string
}

// Plot adds a line series. Mismatched slice lengths truncate to the shorter.
func (a *Axes) Plot(xs, ys []float64) *Series {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	s := &Series{
		xs:  append([]float64(nil), xs[:n]...),
		ys:  append([]float64(nil), ys[:n]...),
		col: seriesPalette[len(a.series)%len(seriesPalette)],
	}
	a.series = append(a.series, s)
	return s
}

// SetLabel names the series in the legend.
func (s *Series) SetLabel(label string) { s.label = label }

// SetColor overrides the palette color.
func (s *Series) SetColor(c color.RGBA) { s.col = c }

func (a *Axes) SetTitle(t string)  { a.title = t }
func (a *Axes) SetXLabel(l string) { a.xlabel = l }
func (a *Axes) SetYLabel(l string) { a.ylabel = l }

func (a *Axes) SetXScale(s scale.Scale) { a.xscale = s }
func (a *Axes) SetYScale(s scale.Scale) { a.yscale = s }

// LogLog switches both axes to logarithmic scales.
func (a *Axes) LogLog() {
	a.xscale = scale.Log{}
	a.yscale = scale.Log{}
}

// SetXLim fixes the x limits; autoscale margins are not applied.
func (a *Axes) SetXLim(lo, hi float64) { a.xlim = limits{lo: lo, hi: hi, set: true} }

// SetYLim fixes the y limits; autoscale margins are not applied.
func (a *Axes) SetYLim(lo, hi float64) { a.ylim = limits{lo: lo, hi: hi, set: true} }

func (a *Axes) SetXLocator(l ticker.Locator)     { a.xlocator = l }
func (a *Axes) SetYLocator(l ticker.Locator)     { a.ylocator = l }
func (a *Axes) SetXFormatter(f ticker.Formatter) { a.xformat = f }
func (a *Axes) SetYFormatter(f ticker.Formatter) { a.yformat = f }

// SetXTickRotation rotates x tick labels. The bitmap fonts rotate in right
// angles only, so the angle snaps to the nearest of 0, 90, 180 or 270.
func (a *Axes) SetXTickRotation(deg int) {
	d := ((deg % 360) + 360) % 360
	a.xtickRot = (d + 45) / 90 * 90 % 360
}

// RefLine is a dashed reference line pinned at one data coordinate.
type RefLine struct {
	v   float64
	col color.RGBA
}

// SetColor overrides the default grey.
func (l *RefLine) SetColor(c color.RGBA) { l.col = c }

// AxVLine draws a dashed vertical reference line at data x.
func (a *Axes) AxVLine(x float64) *RefLine {
	l := &RefLine{v: x, col: colorRef}
	a.vlines = append(a.vlines, l)
	return l
}

// AxHLine draws a dashed horizontal reference line at data y.
func (a *Axes) AxHLine(y float64) *RefLine {
	l := &RefLine{v: y, col: colorRef}
	a.hlines = append(a.hlines, l)
	return l
}

// Legend enables the legend box for labeled series.
func (a *Axes) Legend() { a.showLegend = true }

// xLimits returns the displayed x range, autoscaled with margins unless set.
func (a *Axes) xLimits() (float64, float64) {
	if a.xlim.set {
		return a.xlim.lo, a.xlim.hi
	}
	lo, hi, ok := a.dataRange(func(s *Series) []float64 { return s.xs }, a.xscale)
	if !ok {
		return 0, 1
	}
	return a.xscale.Expand(lo, hi, a.margin)
}

func (a *Axes) yLimits() (float64, float64) {
	if a.ylim.set {
		return a.ylim.lo, a.ylim.hi
	}
	lo, hi, ok := a.dataRange(func(s *Series) []float64 { return s.ys }, a.yscale)
	if !ok {
		return 0, 1
	}
	return a.yscale.Expand(lo, hi, a.margin)
}

func (a *Axes) dataRange(get func(*Series) []float64, sc scale.Scale) (lo, hi float64, ok bool) {
	_, isLog := sc.(scale.Log)
	for _, s := range a.series {
		for _, v := range get(s) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if isLog && v <= 0 {
				continue
			}
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi, ok
}
