// Command mkgallery renders every gallery figure to PNG files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"quarkplot/gallery"
)

func main() {
	var (
		out  string
		w, h int
		only string
	)
	flag.StringVar(&out, "out", "gallery-out", "Output directory.")
	flag.IntVar(&w, "w", 640, "Figure width in pixels.")
	flag.IntVar(&h, "h", 480, "Figure height in pixels.")
	flag.StringVar(&only, "only", "", "Render a single figure by name.")
	flag.Parse()

	if err := run(out, w, h, only); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out string, w, h int, only string) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", out, err)
	}
	found := false
	for _, e := range gallery.All() {
		if only != "" && e.Name != only {
			continue
		}
		found = true
		path := filepath.Join(out, e.Name+".png")
		if err := e.Build(w, h).SavePNG(path); err != nil {
			return fmt.Errorf("render %s: %w", e.Name, err)
		}
		fmt.Println(path)
	}
	if !found {
		return fmt.Errorf("unknown figure %q", only)
	}
	return nil
}
