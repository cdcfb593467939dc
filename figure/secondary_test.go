package figure

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"quarkplot/ticker"
	"quarkplot/transform"
)

func TestSecondaryTicksDegreesToRadians(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	a.SetXLim(0, 360)
	s := a.SecondaryXAxis("top", transform.DegreesRadians())

	vals, pos := s.tickValues(0, 360)
	if len(vals) == 0 {
		t.Fatalf("no secondary ticks")
	}
	if len(vals) != len(pos) {
		t.Fatalf("vals/pos mismatch: %d vs %d", len(vals), len(pos))
	}
	for i, v := range vals {
		// Tick labeled v radians must sit at v*180/pi degrees on the parent.
		want := v * 180 / math.Pi
		if !scalar.EqualWithinAbs(pos[i], want, 1e-9) {
			t.Fatalf("tick %v at %v, want %v", v, pos[i], want)
		}
		if pos[i] < -1e-9 || pos[i] > 360+1e-9 {
			t.Fatalf("tick %v outside parent limits at %v", v, pos[i])
		}
	}
}

func TestSecondaryTicksIdentityDefault(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	s := a.SecondaryXAxisAtData(0, transform.Pair{})
	vals, pos := s.tickValues(0, 10)
	if len(vals) == 0 {
		t.Fatalf("no ticks")
	}
	for i := range vals {
		if vals[i] != pos[i] {
			t.Fatalf("identity tick %v placed at %v", vals[i], pos[i])
		}
	}
}

func TestSecondaryTicksReciprocalSkipsInf(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	a.LogLog()
	s := a.SecondaryXAxis("top", transform.Reciprocal())

	// Parent range includes no zero, so forward limits are finite.
	vals, pos := s.tickValues(0.02, 1)
	if len(vals) == 0 {
		t.Fatalf("no ticks")
	}
	for i, v := range vals {
		if !isFinite(pos[i]) {
			t.Fatalf("tick %v has non-finite position", v)
		}
		if pos[i] < 0.02-1e-12 || pos[i] > 1+1e-12 {
			t.Fatalf("tick %v outside parent range at %v", v, pos[i])
		}
	}
	// A range ending at zero maps to an infinite limit: no ticks.
	if vals, _ := s.tickValues(0, 1); vals != nil {
		t.Fatalf("expected no ticks across zero, got %v", vals)
	}
}

func TestSecondaryTicksLogParentUsesDecades(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	a.LogLog()
	s := a.SecondaryXAxis("top", transform.Reciprocal())
	vals, _ := s.tickValues(0.02, 1)
	for _, v := range vals {
		k := math.Log10(v)
		if !scalar.EqualWithinAbs(k, math.Round(k), 1e-9) {
			t.Fatalf("tick %v is not a decade", v)
		}
	}
}

func TestSecondaryFixedTicksFiltered(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	sq, err := transform.Table(
		[]float64{0, 5, 10, 15, 20},
		[]float64{0, 25, 100, 225, 400},
	)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	s := a.SecondaryXAxis("top", sq)
	s.SetTicks([]float64{10, 20, 40, 60, 80, 100, 500})

	vals, pos := s.tickValues(2, 10.6)
	for i, v := range vals {
		if v == 500 {
			t.Fatalf("out-of-range fixed tick kept")
		}
		if pos[i] < 2-1e-9 || pos[i] > 10.6+1e-9 {
			t.Fatalf("fixed tick %v placed outside parent range at %v", v, pos[i])
		}
	}
	if len(vals) == 0 {
		t.Fatalf("all fixed ticks dropped")
	}
}

func TestSecondaryCustomLocatorAndFormatter(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	s := a.SecondaryXAxis("bottom", transform.Identity())
	s.SetLocator(ticker.FixedLocator{Values: []float64{1, 2, 3}})
	s.SetFormatter(ticker.DateFormatter{})
	vals, _ := s.tickValues(0, 5)
	if len(vals) != 3 {
		t.Fatalf("locator override ignored: %v", vals)
	}
	if got := s.formatter().Format(0); got != "1970-01-01" {
		t.Fatalf("formatter override ignored: %q", got)
	}
}

func TestSecondaryYAxisUsesYLimits(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	a.SetYLim(0, 100)
	s := a.SecondaryYAxis("right", transform.CelsiusFahrenheit())
	vals, pos := s.tickValues(0, 100)
	if len(vals) == 0 {
		t.Fatalf("no ticks")
	}
	for i, v := range vals {
		if v < 32-1e-9 || v > 212+1e-9 {
			t.Fatalf("fahrenheit tick %v outside mapped range", v)
		}
		want := (v - 32) / 1.8
		if !scalar.EqualWithinAbs(pos[i], want, 1e-9) {
			t.Fatalf("tick %v at %v, want %v", v, pos[i], want)
		}
	}
}

func TestSecondarySidePositions(t *testing.T) {
	f := New(320, 240)
	a := f.AddAxes()
	if s := a.SecondaryXAxis("bottom", transform.Identity()); s.pos != 0 {
		t.Fatalf("bottom pos = %v", s.pos)
	}
	if s := a.SecondaryXAxis("top", transform.Identity()); s.pos != 1 {
		t.Fatalf("top pos = %v", s.pos)
	}
	if s := a.SecondaryYAxis("left", transform.Identity()); s.pos != 0 {
		t.Fatalf("left pos = %v", s.pos)
	}
	if s := a.SecondaryYAxisAt(1.2, transform.Identity()); s.pos != 1.2 {
		t.Fatalf("float pos = %v", s.pos)
	}
	if s := a.SecondaryXAxisAtData(0, transform.Identity()); !s.dataPosSet {
		t.Fatalf("data position not recorded")
	}
}
