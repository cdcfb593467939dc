package figure

import (
	"math"

	"quarkplot/scale"
	"quarkplot/ticker"
	"quarkplot/transform"
)

// SecondaryAxis is an extra axis whose tick labels live in a coordinate
// space derived from the parent axis through a forward/inverse mapping.
//
// Tick values are located in the transformed space, labeled there, and placed
// on the parent axis at the inverse-mapped data coordinate. Ticks whose
// mapped position is non-finite or outside the parent limits are dropped, so
// mappings like Reciprocal that hit +Inf are safe.
type SecondaryAxis struct {
	ax       *Axes
	vertical bool

	// pos is the axis position in axes-fraction coordinates: 0 is the
	// bottom/left frame edge, 1 the top/right. Values outside [0, 1] place
	// the axis outside the frame.
	pos float64

	// dataPos places the axis at a data coordinate on the crossing axis
	// instead of an axes fraction.
	dataPos    float64
	dataPosSet bool

	funcs   transform.Pair
	label   string
	fixed   []float64
	locator ticker.Locator
	format  ticker.Formatter
}

// SecondaryXAxis adds a derived horizontal axis at side "top" or "bottom".
// Unknown sides land on top.
func (a *Axes) SecondaryXAxis(side string, p transform.Pair) *SecondaryAxis {
	pos := 1.0
	if side == "bottom" {
		pos = 0
	}
	return a.addSecondary(&SecondaryAxis{pos: pos, funcs: p})
}

// SecondaryXAxisAt adds a derived horizontal axis at an axes-fraction
// position. Positions outside [0, 1] sit outside the frame.
func (a *Axes) SecondaryXAxisAt(pos float64, p transform.Pair) *SecondaryAxis {
	return a.addSecondary(&SecondaryAxis{pos: pos, funcs: p})
}

// SecondaryXAxisAtData places the axis line at data coordinate y.
func (a *Axes) SecondaryXAxisAtData(y float64, p transform.Pair) *SecondaryAxis {
	return a.addSecondary(&SecondaryAxis{dataPos: y, dataPosSet: true, funcs: p})
}

// SecondaryYAxis adds a derived vertical axis at side "left" or "right".
// Unknown sides land on the right.
func (a *Axes) SecondaryYAxis(side string, p transform.Pair) *SecondaryAxis {
	pos := 1.0
	if side == "left" {
		pos = 0
	}
	return a.addSecondary(&SecondaryAxis{vertical: true, pos: pos, funcs: p})
}

// SecondaryYAxisAt adds a derived vertical axis at an axes-fraction position.
func (a *Axes) SecondaryYAxisAt(pos float64, p transform.Pair) *SecondaryAxis {
	return a.addSecondary(&SecondaryAxis{vertical: true, pos: pos, funcs: p})
}

func (a *Axes) addSecondary(s *SecondaryAxis) *SecondaryAxis {
	s.ax = a
	a.secondary = append(a.secondary, s)
	return s
}

// SetLabel names the axis.
func (s *SecondaryAxis) SetLabel(label string) { s.label = label }

// SetTicks fixes tick values, given in the secondary coordinate space.
func (s *SecondaryAxis) SetTicks(vals []float64) {
	s.fixed = append([]float64(nil), vals...)
}

// SetLocator overrides the tick locator used in the secondary space.
func (s *SecondaryAxis) SetLocator(l ticker.Locator) { s.locator = l }

// SetFormatter overrides the tick label formatter.
func (s *SecondaryAxis) SetFormatter(f ticker.Formatter) { s.format = f }

// parentScale is the scale of the axis the secondary runs along.
func (s *SecondaryAxis) parentScale() scale.Scale {
	if s.vertical {
		return s.ax.yscale
	}
	return s.ax.xscale
}

// tickValues locates ticks for the parent limits lo..hi.
//
// vals holds the tick values in secondary space (for labeling) and pos the
// corresponding parent data coordinates (for placement).
func (s *SecondaryAxis) tickValues(lo, hi float64) (vals, pos []float64) {
	f := s.funcs.OrIdentity()
	slo := f.Forward(lo)
	shi := f.Forward(hi)
	if !isFinite(slo) || !isFinite(shi) {
		return nil, nil
	}

	var loc ticker.Locator
	switch {
	case len(s.fixed) > 0:
		loc = ticker.FixedLocator{Values: s.fixed}
	case s.locator != nil:
		loc = s.locator
	default:
		loc = s.parentScale().Locator()
	}

	plo, phi := lo, hi
	if plo > phi {
		plo, phi = phi, plo
	}
	tol := (phi - plo) * 1e-9

	for _, v := range loc.Ticks(slo, shi) {
		x := f.Inverse(v)
		if !isFinite(x) || x < plo-tol || x > phi+tol {
			continue
		}
		vals = append(vals, v)
		pos = append(pos, x)
	}
	return vals, pos
}

func (s *SecondaryAxis) formatter() ticker.Formatter {
	if s.format != nil {
		return s.format
	}
	return ticker.AutoFormatter{}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
