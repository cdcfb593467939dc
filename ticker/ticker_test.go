package ticker

import (
	"testing"
	"time"

	"quarkplot/dates"
)

func TestAutoLocatorDegrees(t *testing.T) {
	ticks := AutoLocator{}.Ticks(0, 360)
	if len(ticks) < 2 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	if ticks[0] < 0 || ticks[len(ticks)-1] > 360 {
		t.Fatalf("ticks out of range: %v", ticks)
	}
	step := ticks[1] - ticks[0]
	for i := 2; i < len(ticks); i++ {
		if d := ticks[i] - ticks[i-1]; d != step {
			t.Fatalf("uneven step at %d: %v vs %v", i, d, step)
		}
	}
	if len(ticks) > 8 {
		t.Fatalf("too many ticks: %v", ticks)
	}
}

func TestAutoLocatorDegenerate(t *testing.T) {
	if got := (AutoLocator{}).Ticks(5, 5); len(got) != 1 || got[0] != 5 {
		t.Fatalf("point range ticks = %v", got)
	}
	if got := (AutoLocator{}).Ticks(10, 0); got[0] < 0 || got[len(got)-1] > 10 {
		t.Fatalf("reversed range ticks = %v", got)
	}
}

func TestLogLocatorDecades(t *testing.T) {
	got := LogLocator{}.Ticks(0.02, 1)
	want := []float64{0.1, 1}
	if len(got) != len(want) {
		t.Fatalf("ticks = %v, want %v", got, want)
	}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}
	if got := (LogLocator{}).Ticks(-1, 10); got != nil {
		t.Fatalf("negative range ticks = %v, want none", got)
	}
}

func TestPointRangeByLocator(t *testing.T) {
	// A zero-width range yields the point only when it lies on a tick of
	// the locator. AutoLocator always returns it.
	if got := (LogLocator{}).Ticks(100, 100); len(got) != 1 || got[0] != 100 {
		t.Fatalf("log point on decade = %v, want [100]", got)
	}
	if got := (LogLocator{}).Ticks(5, 5); got != nil {
		t.Fatalf("log point off decade = %v, want none", got)
	}
	if got := (DayLocator{Step: 10}).Ticks(20, 20); len(got) != 1 || got[0] != 20 {
		t.Fatalf("day point on step = %v, want [20]", got)
	}
	if got := (DayLocator{Step: 10}).Ticks(5, 5); got != nil {
		t.Fatalf("day point off step = %v, want none", got)
	}
}

func TestFixedLocatorFiltersRange(t *testing.T) {
	l := FixedLocator{Values: []float64{10, 20, 40, 60, 80, 100}}
	got := l.Ticks(5, 65)
	want := []float64{10, 20, 40, 60}
	if len(got) != len(want) {
		t.Fatalf("ticks = %v, want %v", got, want)
	}
}

func TestDayLocator(t *testing.T) {
	got := DayLocator{Step: 10}.Ticks(0.3, 31)
	if len(got) != 3 || got[0] != 10 || got[2] != 30 {
		t.Fatalf("ticks = %v, want [10 20 30]", got)
	}
	for _, v := range got {
		if v != float64(int(v)) || int(v)%10 != 0 {
			t.Fatalf("tick %v not a 10-day multiple", v)
		}
	}
}

func TestAutoFormatter(t *testing.T) {
	f := AutoFormatter{}
	cases := map[float64]string{
		0:    "0",
		40:   "40",
		2.5:  "2.5",
		-0.1: "-0.1",
	}
	for v, want := range cases {
		if got := f.Format(v); got != want {
			t.Fatalf("Format(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestDateFormatter(t *testing.T) {
	v := dates.Num(time.Date(2018, 2, 3, 0, 0, 0, 0, time.UTC))
	if got := (DateFormatter{}).Format(v); got != "2018-02-03" {
		t.Fatalf("Format = %q", got)
	}
	if got := (DateFormatter{Layout: "Jan 02"}).Format(v); got != "Feb 03" {
		t.Fatalf("Format = %q", got)
	}
}
