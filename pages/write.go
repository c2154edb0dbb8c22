package pages

import (
	"path/filepath"

	"github.com/tsawler/pageslice/imaging"
)

// WriteAll writes the pages to dir as PNG files numbered in slice
// order, 1-based, named by [FileName]. It returns the written paths.
func WriteAll(pgs []Page, dir, prefix string) ([]string, error) {
	out := make([]string, 0, len(pgs))
	for i, p := range pgs {
		path := filepath.Join(dir, FileName(prefix, i+1))
		if err := imaging.SavePNG(p.Image, path); err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, nil
}
