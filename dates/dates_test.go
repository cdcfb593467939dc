package dates

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNumEpoch(t *testing.T) {
	if got := Num(time.Unix(0, 0)); got != 0 {
		t.Fatalf("Num(unix epoch) = %v, want 0", got)
	}
	noon := time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := Num(noon); got != 0.5 {
		t.Fatalf("Num(noon) = %v, want 0.5", got)
	}
}

func TestNumFromNumRoundTrip(t *testing.T) {
	ts := time.Date(2018, 3, 14, 6, 30, 0, 0, time.UTC)
	got := FromNum(Num(ts))
	if d := got.Sub(ts); d < -time.Millisecond || d > time.Millisecond {
		t.Fatalf("round trip drift %v", d)
	}
}

func TestSince(t *testing.T) {
	epoch := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Since(epoch)
	if got := p.Forward(Num(epoch)); got != 0 {
		t.Fatalf("day of epoch = %v, want 0", got)
	}
	next := epoch.AddDate(0, 0, 1)
	if got := p.Forward(Num(next)); !scalar.EqualWithinAbs(got, 1, 1e-9) {
		t.Fatalf("next day = %v, want 1", got)
	}
	if got := FromNum(p.Inverse(31)); !got.Equal(epoch.AddDate(0, 0, 31)) {
		t.Fatalf("inverse(31) = %v", got)
	}
}

func TestRange(t *testing.T) {
	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	vals := Range(start, 240, 6*time.Hour)
	if len(vals) != 240 {
		t.Fatalf("len = %d, want 240", len(vals))
	}
	if got := vals[4] - vals[0]; !scalar.EqualWithinAbs(got, 1, 1e-9) {
		t.Fatalf("four 6h steps = %v days, want 1", got)
	}
}
