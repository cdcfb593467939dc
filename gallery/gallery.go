// Package gallery builds the demonstration figures for derived secondary
// axes: unit conversions, data-space axis placement, reciprocal scales,
// empirically fitted scales and date axes.
package gallery

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"quarkplot/dates"
	"quarkplot/figure"
	"quarkplot/ticker"
	"quarkplot/transform"
)

// seed keeps the random figures reproducible between runs.
const seed = 19680801

// Entry names one gallery figure.
type Entry struct {
	Name  string
	Build func(w, h int) *figure.Figure
}

// All lists every gallery figure in presentation order.
func All() []Entry {
	return []Entry{
		{Name: "sine", Build: SineWave},
		{Name: "random", Build: RandomData},
		{Name: "spectrum", Build: RandomSpectrum},
		{Name: "empirical", Build: EmpiricalScale},
		{Name: "temperature", Build: Temperature},
	}
}

// SineWave plots a sine of an angle in degrees with a top axis in radians.
func SineWave(w, h int) *figure.Figure {
	f := figure.New(w, h)
	a := f.AddAxes()

	xs := make([]float64, 360)
	ys := make([]float64, 360)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = math.Sin(2 * xs[i] * math.Pi / 180)
	}
	a.Plot(xs, ys)
	a.SetXLabel("angle [degrees]")
	a.SetYLabel("signal")
	a.SetTitle("Sine wave")

	sec := a.SecondaryXAxis("top", transform.DegreesRadians())
	sec.SetLabel("angle [rad]")
	return f
}

// RandomData plots noise with a secondary axis pinned at data y = 0.
func RandomData(w, h int) *figure.Figure {
	rng := rand.New(rand.NewSource(seed))
	f := figure.New(w, h)
	a := f.AddAxes()

	xs := make([]float64, 10)
	ys := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = rng.NormFloat64()
	}
	a.Plot(xs, ys)
	a.SetXLabel("X")
	a.SetYLabel("Y")
	a.SetTitle("Random data")

	sec := a.SecondaryXAxisAtData(0, transform.Identity())
	sec.SetLabel("Axis at Y = 0")
	return f
}

// RandomSpectrum plots a random power spectrum on log-log scales with a top
// axis showing the period, the reciprocal of the frequency.
func RandomSpectrum(w, h int) *figure.Figure {
	rng := rand.New(rand.NewSource(seed))
	f := figure.New(w, h)
	a := f.AddAxes()
	a.LogLog()

	var xs, ys []float64
	for x := 0.02; x < 1; x += 0.02 {
		n := rng.NormFloat64()
		xs = append(xs, x)
		ys = append(ys, n*n)
	}
	a.Plot(xs, ys)
	a.SetXLabel("f [Hz]")
	a.SetYLabel("PSD")
	a.SetTitle("Random spectrum")

	sec := a.SecondaryXAxis("top", transform.Reciprocal())
	sec.SetLabel("period [s]")
	return f
}

// EmpiricalScale relates two axes through a mapping fitted from data.
//
// The fit grid extends well past the plotted range so the mapping stays
// defined across the data margins.
func EmpiricalScale(w, h int) *figure.Figure {
	rng := rand.New(rand.NewSource(seed))
	f := figure.New(w, h)
	a := f.AddAxes()

	var x1, x2, ydata []float64
	for v := 2.0; v < 11; v += 0.4 {
		x1 = append(x1, v)
		x2 = append(x2, v*v)
		ydata = append(ydata, 50+20*rng.NormFloat64())
	}
	a.Plot(x1, ydata).SetLabel("Plotted data")
	a.Plot(x1, x2).SetLabel("x2 = x1^2")
	a.SetXLabel("x1")
	a.Legend()

	grid := make([]float64, 201)
	floats.Span(grid, 0, 20)
	sq := make([]float64, len(grid))
	for i, v := range grid {
		sq[i] = v * v
	}
	fit, err := transform.Table(grid, sq)
	if err != nil {
		// The grid is strictly increasing by construction.
		panic(err)
	}

	grey := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	a.AxVLine(math.Sqrt(40)).SetColor(grey)
	a.AxVLine(10).SetColor(grey)

	sec := a.SecondaryXAxis("top", fit)
	sec.SetTicks([]float64{10, 20, 40, 60, 80, 100})
	sec.SetLabel("x2")
	return f
}

// Temperature plots two months of six-hourly temperatures against a date
// axis, with a yearday axis on top, Fahrenheit on the right, and the anomaly
// about the sample mean on a third, outward-offset axis.
func Temperature(w, h int) *figure.Figure {
	rng := rand.New(rand.NewSource(seed))
	f := figure.New(w, h)
	a := f.AddAxes()

	epoch := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	xs := dates.Range(epoch, 240, 6*time.Hour)
	temps := make([]float64, len(xs))
	for i := range temps {
		temps[i] = rng.NormFloat64()*4 + 6.7
	}
	a.Plot(xs, temps)
	a.SetYLabel("T [degC]")
	a.SetXFormatter(ticker.DateFormatter{})
	a.SetXLocator(ticker.DayLocator{Step: 10})
	a.SetXTickRotation(70)

	yday := a.SecondaryXAxis("top", dates.Since(epoch))
	yday.SetLabel("yday [2018]")

	fahrenheit := a.SecondaryYAxis("right", transform.CelsiusFahrenheit())
	fahrenheit.SetLabel("T [degF]")

	anomaly := a.SecondaryYAxisAt(1.2, transform.AnomalyAbout(stat.Mean(temps, nil)))
	anomaly.SetLabel("T - mean [degC]")
	return f
}
