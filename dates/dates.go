// Package dates converts times to fractional day numbers for plotting.
//
// A day number counts days since 1970-01-01 UTC, with the fractional part
// carrying the time of day. Date axes plot day numbers and format them back
// through FromNum.
package dates

import (
	"time"

	"quarkplot/transform"
)

const daySeconds = 24 * 60 * 60

// Num returns the day number of t.
func Num(t time.Time) float64 {
	sec := t.Unix()
	ns := t.Nanosecond()
	return float64(sec)/daySeconds + float64(ns)/(daySeconds*1e9)
}

// FromNum returns the time for a day number, in UTC.
func FromNum(v float64) time.Time {
	sec := v * daySeconds
	whole := int64(sec)
	frac := sec - float64(whole)
	return time.Unix(whole, int64(frac*1e9)).UTC()
}

// Since returns a mapping from day numbers to days elapsed since epoch.
//
// It backs "day N of the year" style secondary axes on date plots.
func Since(epoch time.Time) transform.Pair {
	return transform.Affine(1, -Num(epoch))
}

// Range returns n day numbers starting at start, spaced by step.
func Range(start time.Time, n int, step time.Duration) []float64 {
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Num(start.Add(time.Duration(i)*step)))
	}
	return out
}
