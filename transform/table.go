package transform

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Table returns a piecewise-linear mapping fit from sample pairs.
//
// xs must be strictly increasing; ys must be strictly monotonic in either
// direction so that the inverse is well defined. Evaluation outside the
// sampled range clamps to the endpoint values, so extend the table beyond the
// nominal plot limits when the axis will show a wider range than the samples.
func Table(xs, ys []float64) (Pair, error) {
	if len(xs) != len(ys) {
		return Pair{}, fmt.Errorf("transform: table size mismatch: %d xs, %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Pair{}, errors.New("transform: table needs at least two samples")
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return Pair{}, fmt.Errorf("transform: table xs not strictly increasing at index %d", i)
		}
	}

	increasing := ys[1] > ys[0]
	for i := 1; i < len(ys); i++ {
		if increasing && ys[i] <= ys[i-1] || !increasing && ys[i] >= ys[i-1] {
			return Pair{}, fmt.Errorf("transform: table ys not strictly monotonic at index %d", i)
		}
	}

	// The inverse fit needs its abscissae increasing.
	iy, ix := ys, xs
	if !increasing {
		iy = reversed(ys)
		ix = reversed(xs)
	}

	var fwd, inv interp.PiecewiseLinear
	if err := fwd.Fit(append([]float64(nil), xs...), append([]float64(nil), ys...)); err != nil {
		return Pair{}, fmt.Errorf("transform: forward fit: %w", err)
	}
	if err := inv.Fit(append([]float64(nil), iy...), append([]float64(nil), ix...)); err != nil {
		return Pair{}, fmt.Errorf("transform: inverse fit: %w", err)
	}
	return Pair{Forward: fwd.Predict, Inverse: inv.Predict}, nil
}

func reversed(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}
