// Package export bundles finished page images into a single PDF.
//
// Each page image becomes one PDF page. Without an explicit page size
// the PDF page adopts the image's pixel dimensions at the configured
// DPI; with a size in centimetres the image is scaled to fit and
// centered on the page.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// DefaultDPI is the pixel density used when Options.DPI is zero.
const DefaultDPI = 300

// Options configure PDF output.
type Options struct {
	// PageWidthCM and PageHeightCM fix the physical PDF page size.
	// Both zero means each page adopts its image's dimensions.
	PageWidthCM  float64
	PageHeightCM float64

	// DPI maps image pixels to physical size. Zero means DefaultDPI.
	DPI int
}

func (o Options) dpi() int {
	if o.DPI <= 0 {
		return DefaultDPI
	}
	return o.DPI
}

func (o Options) sized() bool {
	return o.PageWidthCM > 0 && o.PageHeightCM > 0
}

// importDescription builds the pdfcpu import description string for
// the given options. Images are always centered at their natural
// scale; a fixed page size adds the dim directive.
func importDescription(opts Options) string {
	var b strings.Builder
	if opts.sized() {
		fmt.Fprintf(&b, "dim:%g %g, ", opts.PageWidthCM, opts.PageHeightCM)
	}
	fmt.Fprintf(&b, "pos:c, sc:1.0 rel, dpi:%d", opts.dpi())
	return b.String()
}

// WritePDF assembles the page image files, in order, into a single PDF
// at path. The parent directory is created if needed.
func WritePDF(imageFiles []string, path string, opts Options) error {
	if len(imageFiles) == 0 {
		return fmt.Errorf("writing pdf: no page images")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating pdf directory: %w", err)
		}
	}

	imp, err := pdfcpu.ParseImportDetails(importDescription(opts), types.CENTIMETRES)
	if err != nil {
		return fmt.Errorf("configuring pdf import: %w", err)
	}

	if err := api.ImportImagesFile(imageFiles, path, imp, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("writing pdf %s: %w", path, err)
	}
	return nil
}
