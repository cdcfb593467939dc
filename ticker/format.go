package ticker

import (
	"math"
	"strconv"

	"quarkplot/dates"
)

// Formatter renders a tick value as its label.
type Formatter interface {
	Format(v float64) string
}

// AutoFormatter prints trimmed decimal labels, falling back to scientific
// notation for very large or very small magnitudes.
type AutoFormatter struct{}

func (AutoFormatter) Format(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e7 || abs < 1e-4 {
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// Up to 4 fractional digits, trailing zeros trimmed by -1 after rounding.
	r := math.Round(v*1e4) / 1e4
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// DateFormatter labels day-number ticks as calendar dates.
type DateFormatter struct {
	// Layout is a time layout string. Empty means "2006-01-02".
	Layout string
}

func (f DateFormatter) Format(v float64) string {
	layout := f.Layout
	if layout == "" {
		layout = "2006-01-02"
	}
	return dates.FromNum(v).Format(layout)
}
