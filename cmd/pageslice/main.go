// Command pageslice splits a stitched screenshot into pages at natural
// gaps.
//
// Usage:
//
//	pageslice [flags] input.png
//
// Examples:
//
//	pageslice screenshot.png
//	pageslice screenshot.png -o pages -p chapter1
//	pageslice manga.png -s vertical-rtl -r 9:16 --pdf out.pdf --pdf-size 14.8x21
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/pageslice"
	"github.com/tsawler/pageslice/export"
	"github.com/tsawler/pageslice/layout"
	"github.com/tsawler/pageslice/observability"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pageslice", flag.ContinueOnError)
	var (
		outputDir = fs.String("o", ".", "output directory for pages")
		prefix    = fs.String("p", "page", "prefix for output filenames")
		tolerance = fs.Int("t", 5, "color variance tolerance for gap detection")
		ratio     = fs.String("r", "16:9", "target page aspect ratio as W:H, e.g. 9:16, 4:3, 1:1")
		padding   = fs.Int("padding", pageslice.DefaultPadding, "left and right padding in pixels")
		split     = fs.String("s", "horizontal", "split direction: horizontal, vertical-ltr or vertical-rtl")
		margins   = fs.String("m", "", "page margins in pixels as 'all', 'vertical,horizontal' or 'top,right,bottom,left'; overrides -padding")
		pdfPath   = fs.String("pdf", "", "export as a single PDF file, e.g. output.pdf")
		pdfSize   = fs.String("pdf-size", "", "PDF page size in cm as WxH, e.g. 21x29.7 for A4")
		pdfDPI    = fs.Int("pdf-dpi", export.DefaultDPI, "PDF resolution in DPI")
		verbose   = fs.Bool("v", false, "verbose output")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pageslice [flags] input.png\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	input := fs.Arg(0)

	logger := observability.NewStdLogger(os.Stderr, *verbose)

	targetRatio, err := parseRatio(*ratio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	dir, err := layout.ParseDirection(*split)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	p := pageslice.Open(input).
		Tolerance(*tolerance).
		Ratio(targetRatio).
		Padding(*padding).
		Direction(dir).
		WithLogger(logger)

	if *margins != "" {
		m, err := parseMargins(*margins)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		p = p.Margins(m.Top, m.Right, m.Bottom, m.Left)
	}

	files, warnings, err := p.WriteFiles(*outputDir, *prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w.Message)
	}
	fmt.Printf("Created %d pages in %s\n", len(files), *outputDir)

	if *pdfPath != "" {
		opts := export.Options{DPI: *pdfDPI}
		if *pdfSize != "" {
			w, h, err := parsePDFSize(*pdfSize)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
			opts.PageWidthCM, opts.PageHeightCM = w, h
		}
		if err := export.WritePDF(files, *pdfPath, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("PDF saved: %s (%d pages)\n", *pdfPath, len(files))
	}
	return 0
}

// parseRatio converts a "W:H" ratio string to height/width.
func parseRatio(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid ratio %q, use W:H (e.g. 16:9)", s)
	}
	w, err1 := strconv.Atoi(parts[0])
	h, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, fmt.Errorf("invalid ratio %q, use W:H (e.g. 16:9)", s)
	}
	return float64(h) / float64(w), nil
}

// parseMargins accepts one value for all sides, "vertical,horizontal",
// or "top,right,bottom,left".
func parseMargins(s string) (layout.Margins, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return layout.Margins{}, fmt.Errorf("invalid margins %q, use 'all', 'v,h' or 'top,right,bottom,left'", s)
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 1:
		return layout.Margins{Top: vals[0], Right: vals[0], Bottom: vals[0], Left: vals[0]}, nil
	case 2:
		return layout.Margins{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}, nil
	case 4:
		return layout.Margins{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return layout.Margins{}, fmt.Errorf("invalid margins %q, use 'all', 'v,h' or 'top,right,bottom,left'", s)
	}
}

// parsePDFSize converts a "WxH" centimetre pair.
func parsePDFSize(s string) (float64, float64, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pdf size %q, use WxH in cm (e.g. 21x29.7)", s)
	}
	w, err1 := strconv.ParseFloat(parts[0], 64)
	h, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid pdf size %q, use WxH in cm (e.g. 21x29.7)", s)
	}
	return w, h, nil
}
