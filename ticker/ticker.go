// Package ticker locates axis tick values and formats their labels.
package ticker

import "math"

// Locator chooses tick values for a data range.
//
// Implementations normalize reversed ranges and return ticks inside [lo, hi]
// in increasing order.
type Locator interface {
	Ticks(lo, hi float64) []float64
}

// AutoLocator picks round-valued ticks with a step from the
// 1, 2, 2.5, 5 decade progression.
type AutoLocator struct {
	// MaxTicks caps the number of ticks. Zero means the default of 7.
	MaxTicks int
}

func (l AutoLocator) Ticks(lo, hi float64) []float64 {
	lo, hi, ok := orderRange(lo, hi)
	if !ok {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	max := l.MaxTicks
	if max <= 0 {
		max = 7
	}
	step := niceStep((hi - lo) / float64(max))
	return stepTicks(lo, hi, step)
}

// LogLocator places ticks at powers of ten.
//
// Both range ends must be positive; otherwise no ticks are returned.
type LogLocator struct{}

func (LogLocator) Ticks(lo, hi float64) []float64 {
	lo, hi, ok := orderRange(lo, hi)
	if !ok || lo <= 0 || hi <= 0 {
		return nil
	}
	const eps = 1e-9
	klo := int(math.Ceil(math.Log10(lo) - eps))
	khi := int(math.Floor(math.Log10(hi) + eps))
	if klo > khi {
		return nil
	}
	out := make([]float64, 0, khi-klo+1)
	for k := klo; k <= khi; k++ {
		out = append(out, math.Pow(10, float64(k)))
	}
	return out
}

// FixedLocator returns exactly the caller's values that fall in range.
type FixedLocator struct {
	Values []float64
}

func (l FixedLocator) Ticks(lo, hi float64) []float64 {
	lo, hi, ok := orderRange(lo, hi)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(l.Values))
	for _, v := range l.Values {
		if v >= lo && v <= hi {
			out = append(out, v)
		}
	}
	return out
}

// DayLocator ticks day-number axes every Step whole days.
type DayLocator struct {
	// Step is the tick interval in days. Zero means daily.
	Step int
}

func (l DayLocator) Ticks(lo, hi float64) []float64 {
	lo, hi, ok := orderRange(lo, hi)
	if !ok {
		return nil
	}
	step := l.Step
	if step <= 0 {
		step = 1
	}
	return stepTicks(lo, hi, float64(step))
}

func orderRange(lo, hi float64) (float64, float64, bool) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

func stepTicks(lo, hi, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	first := math.Ceil(lo/step) * step
	var out []float64
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		if v == 0 {
			v = 0 // normalize -0
		}
		out = append(out, v)
	}
	return out
}

// niceStep rounds raw up to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 2.5:
		return 2.5 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
