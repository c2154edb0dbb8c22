// Package pageslice provides a fluent API for splitting tall or wide
// stitched screenshots into pages with a chosen aspect ratio, cutting
// only through uniform-color gaps so content is never sliced mid-line.
//
// Basic usage:
//
//	files, warnings, err := pageslice.Open("screenshot.png").WriteFiles("out", "page")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pageslice.FormatWarnings(warnings))
//	}
//
// With options:
//
//	files, _, err := pageslice.Open("manga.png").
//	    RatioWH(9, 16).
//	    Tolerance(10).
//	    Direction(layout.RightToLeft).
//	    WriteFiles("out", "page")
//
// For advanced use cases the lower-level gaps, layout and pages
// packages are also available.
package pageslice

import "image"

// Open prepares the image file at filename for pagination and returns
// a Paginator for fluent configuration. The file is not read until a
// terminal operation runs.
//
// Example:
//
//	pages, warnings, err := pageslice.Open("screenshot.png").Paginate()
func Open(filename string) *Paginator {
	return &Paginator{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromImage creates a Paginator for an already-decoded image. This is
// useful when the image arrives over the network or is built in
// memory.
//
// Example:
//
//	pages, warnings, err := pageslice.FromImage(img).RatioWH(9, 16).Paginate()
func FromImage(img image.Image) *Paginator {
	return &Paginator{
		img:     img,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning
// (T, error) and panics if the error is non-nil. It is intended for
// use in scripts or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustPages is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It
// discards warnings and returns just the value.
//
// Example:
//
//	pages := pageslice.MustPages(pageslice.Open("screenshot.png").Paginate())
func MustPages[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
