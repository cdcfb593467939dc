// Package display shows rendered figures in a desktop window.
package display

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quarkplot/figure"
	"quarkplot/internal/buildinfo"
	"quarkplot/raster"
)

// Show opens a window displaying the figures and blocks until it closes.
//
// Left/right arrows (or space) cycle between figures; Escape or Q quits.
// Figures are rendered once, on first display.
func Show(figs ...*figure.Figure) error {
	if len(figs) == 0 {
		return errors.New("display: no figures")
	}
	v := &viewer{
		figs:     figs,
		rendered: make([]*raster.ImageTarget, len(figs)),
		imgs:     make([]*ebiten.Image, len(figs)),
	}
	ebiten.SetWindowTitle("quarkplot (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(figs[0].W, figs[0].H)
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}

type viewer struct {
	figs     []*figure.Figure
	rendered []*raster.ImageTarget
	imgs     []*ebiten.Image
	idx      int
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.idx = (v.idx + 1) % len(v.figs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.idx = (v.idx + len(v.figs) - 1) % len(v.figs)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	i := v.idx
	if v.rendered[i] == nil {
		v.rendered[i] = v.figs[i].RenderImage()
	}
	if v.imgs[i] == nil {
		v.imgs[i] = ebiten.NewImage(v.figs[i].W, v.figs[i].H)
		v.imgs[i].WritePixels(v.rendered[i].Image().Pix)
	}
	screen.DrawImage(v.imgs[i], nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.figs[v.idx].W, v.figs[v.idx].H
}
