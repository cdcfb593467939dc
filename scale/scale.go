// Package scale maps data coordinates onto the unit interval of an axis.
package scale

import (
	"math"

	"quarkplot/ticker"
)

// Scale positions data values along an axis.
type Scale interface {
	// Unit maps v into [0, 1] relative to the limits lo..hi. Values outside
	// the limits map outside the unit interval.
	Unit(v, lo, hi float64) float64

	// Expand widens limits by frac of the span at each end, the data margin
	// applied around autoscaled data.
	Expand(lo, hi, frac float64) (float64, float64)

	// Locator returns the default tick locator for the scale.
	Locator() ticker.Locator
}

// Linear is the default scale.
type Linear struct{}

func (Linear) Unit(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func (Linear) Expand(lo, hi, frac float64) (float64, float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		pad := math.Abs(lo) * frac
		if pad == 0 {
			pad = frac
		}
		return lo - pad, hi + pad
	}
	return lo - span*frac, hi + span*frac
}

func (Linear) Locator() ticker.Locator { return ticker.AutoLocator{} }

// Log is a base-10 logarithmic scale. Non-positive values have no position.
type Log struct{}

func (Log) Unit(v, lo, hi float64) float64 {
	if v <= 0 || lo <= 0 || hi <= 0 {
		return math.NaN()
	}
	llo := math.Log10(lo)
	lhi := math.Log10(hi)
	if lhi == llo {
		return 0.5
	}
	return (math.Log10(v) - llo) / (lhi - llo)
}

func (Log) Expand(lo, hi, frac float64) (float64, float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo <= 0 || hi <= 0 {
		return lo, hi
	}
	llo := math.Log10(lo)
	lhi := math.Log10(hi)
	span := lhi - llo
	if span == 0 {
		span = 1
	}
	return math.Pow(10, llo-span*frac), math.Pow(10, lhi+span*frac)
}

func (Log) Locator() ticker.Locator { return ticker.LogLocator{} }
