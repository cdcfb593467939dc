package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"quarkplot/display"
	"quarkplot/figure"
	"quarkplot/gallery"
)

func main() {
	var (
		headless bool
		out      string
		w, h     int
	)
	flag.BoolVar(&headless, "headless", false, "Render PNGs and exit instead of opening a window.")
	flag.StringVar(&out, "out", ".", "Output directory in headless mode.")
	flag.IntVar(&w, "w", 640, "Figure width in pixels.")
	flag.IntVar(&h, "h", 480, "Figure height in pixels.")
	flag.Parse()

	if headless {
		if err := renderAll(out, w, h); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	entries := gallery.All()
	figs := make([]*figure.Figure, 0, len(entries))
	for _, e := range entries {
		figs = append(figs, e.Build(w, h))
	}
	if err := display.Show(figs...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderAll(dir string, w, h int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", dir, err)
	}
	for _, e := range gallery.All() {
		if err := e.Build(w, h).SavePNG(filepath.Join(dir, e.Name+".png")); err != nil {
			return err
		}
	}
	return nil
}
