package pageslice

import (
	"fmt"
	"image"
	"os"

	"github.com/tsawler/pageslice/export"
	"github.com/tsawler/pageslice/gaps"
	"github.com/tsawler/pageslice/imaging"
	"github.com/tsawler/pageslice/layout"
	"github.com/tsawler/pageslice/observability"
	"github.com/tsawler/pageslice/pages"
)

// DefaultPadding is the symmetric side padding, in pixels, applied
// when no explicit margins are configured.
const DefaultPadding = 20

// Paginator provides a fluent interface for splitting a stitched
// screenshot into pages. Each configuration method returns a new
// Paginator instance, making it safe for concurrent use and allowing
// method chaining.
type Paginator struct {
	// Source
	filename string
	img      image.Image

	// Configuration
	options paginateOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Paginator with a deep copy of
// options. This ensures immutability: each chain method returns a new
// instance.
func (p *Paginator) clone() *Paginator {
	return &Paginator{
		filename: p.filename,
		img:      p.img,
		options:  p.options.clone(),
		err:      p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Paginator instance)
// ============================================================================

// Tolerance sets the maximum per-channel standard deviation, in 8-bit
// pixel units, for a line to count as a gap. Higher values accept
// slightly noisy backgrounds such as JPEG artifacts.
//
// Example:
//
//	files, _, err := pageslice.Open("shot.jpg").Tolerance(10).WriteFiles("out", "page")
func (p *Paginator) Tolerance(tolerance int) *Paginator {
	newPag := p.clone()
	newPag.options.tolerance = tolerance
	return newPag
}

// Ratio sets the target page aspect ratio as height divided by width.
func (p *Paginator) Ratio(heightOverWidth float64) *Paginator {
	newPag := p.clone()
	if heightOverWidth <= 0 {
		newPag.err = fmt.Errorf("ratio must be positive, got %g", heightOverWidth)
		return newPag
	}
	newPag.options.targetRatio = heightOverWidth
	return newPag
}

// RatioWH sets the target page aspect ratio from a width:height pair,
// the form used on screens and in print. RatioWH(9, 16) targets
// portrait phone pages.
func (p *Paginator) RatioWH(width, height int) *Paginator {
	newPag := p.clone()
	if width <= 0 || height <= 0 {
		newPag.err = fmt.Errorf("ratio sides must be positive, got %d:%d", width, height)
		return newPag
	}
	newPag.options.targetRatio = float64(height) / float64(width)
	return newPag
}

// Direction sets the reading order of the output.
//
// Example:
//
//	files, _, err := pageslice.Open("manga.png").
//	    Direction(layout.RightToLeft).
//	    WriteFiles("out", "page")
func (p *Paginator) Direction(dir layout.Direction) *Paginator {
	newPag := p.clone()
	newPag.options.direction = dir
	return newPag
}

// Padding sets the symmetric side padding in pixels. It only applies
// when no margins are configured; Margins replaces it entirely.
func (p *Paginator) Padding(padding int) *Paginator {
	newPag := p.clone()
	if padding < 0 {
		newPag.err = fmt.Errorf("padding must not be negative, got %d", padding)
		return newPag
	}
	newPag.options.padding = padding
	return newPag
}

// Margins sets explicit four-sided page margins in pixels, clockwise
// from the top. Margin mode derives the page size from the image plus
// its margins, and the content area inside the margins becomes the
// ideal page extent.
func (p *Paginator) Margins(top, right, bottom, left int) *Paginator {
	newPag := p.clone()
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		newPag.err = fmt.Errorf("margins must not be negative, got (%d, %d, %d, %d)", top, right, bottom, left)
		return newPag
	}
	newPag.options.margins = &layout.Margins{Top: top, Right: right, Bottom: bottom, Left: left}
	return newPag
}

// WithLogger sets the logger for progress and diagnostic output. The
// default discards everything.
func (p *Paginator) WithLogger(logger observability.Logger) *Paginator {
	newPag := p.clone()
	if logger == nil {
		logger = observability.NopLogger{}
	}
	newPag.options.logger = logger
	return newPag
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Plan describes where a source image will be cut and how the pages
// will be shaped, without composing any page image.
type Plan struct {
	// CutPoints is ascending, starts at 0 and ends at the source
	// extent along the split axis. Adjacent pairs delimit pages.
	CutPoints []int

	// Gaps are the detected uniform-color line groups.
	Gaps []gaps.Group

	// Geometry is the uniform page canvas shared by all pages.
	Geometry layout.Geometry

	// Direction is the reading order the plan was built for.
	Direction layout.Direction
}

// NumPages returns the number of pages the plan produces.
func (pl *Plan) NumPages() int { return len(pl.CutPoints) - 1 }

// Plan analyzes the source and returns the cut plan along with any
// warnings. It is the cheap half of Paginate: no page is composed.
func (p *Paginator) Plan() (*Plan, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	img, err := p.source()
	if err != nil {
		return nil, nil, err
	}
	return p.plan(img)
}

// Paginate composes the output pages in reading order. For
// right-to-left layouts page 0 of the result is the rightmost slice.
func (p *Paginator) Paginate() ([]pages.Page, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	img, err := p.source()
	if err != nil {
		return nil, nil, err
	}

	plan, warnings, err := p.plan(img)
	if err != nil {
		return nil, warnings, err
	}

	out := pages.Compose(img, plan.CutPoints, plan.Direction, plan.Geometry)
	if plan.Direction.Reverse() {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	p.options.logger.Info("pages composed", observability.Int("pages", len(out)))
	return out, warnings, nil
}

// WriteFiles composes the pages and writes them to dir as
// prefix_001.png, prefix_002.png and so on, numbered in reading order.
// The directory is created if needed. It returns the written paths in
// page-number order.
//
// Pages are written in source coordinate order first. Right-to-left
// output then renumbers the files so that page 1 names the rightmost
// slice.
func (p *Paginator) WriteFiles(dir, prefix string) ([]string, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	if prefix == "" {
		prefix = "page"
	}

	img, err := p.source()
	if err != nil {
		return nil, nil, err
	}
	plan, warnings, err := p.plan(img)
	if err != nil {
		return nil, warnings, err
	}

	composed := pages.Compose(img, plan.CutPoints, plan.Direction, plan.Geometry)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, warnings, fmt.Errorf("creating output directory: %w", err)
	}

	files, err := pages.WriteAll(composed, dir, prefix)
	if err != nil {
		return nil, warnings, err
	}

	if plan.Direction.Reverse() && len(files) > 1 {
		files, err = pages.TwoPhaseRenumber(dir, prefix, len(files))
		if err != nil {
			return nil, warnings, err
		}
	}

	p.options.logger.Info("pages written",
		observability.Int("pages", len(files)),
		observability.String("dir", dir))
	return files, warnings, nil
}

// WritePDF composes the pages and bundles them into a single PDF at
// path. Page images are staged in a temporary directory and removed
// afterwards; use WriteFiles first when both outputs are wanted.
func (p *Paginator) WritePDF(path string, opts export.Options) ([]Warning, error) {
	if p.err != nil {
		return nil, p.err
	}

	tmp, err := os.MkdirTemp("", "pageslice-pdf-")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	files, warnings, err := p.WriteFiles(tmp, "page")
	if err != nil {
		return warnings, err
	}

	if err := export.WritePDF(files, path, opts); err != nil {
		return warnings, err
	}
	p.options.logger.Info("pdf written",
		observability.Int("pages", len(files)),
		observability.String("path", path))
	return warnings, nil
}

// ============================================================================
// Internals
// ============================================================================

// source returns the image to paginate, decoding the file on demand.
func (p *Paginator) source() (image.Image, error) {
	if p.img != nil {
		return p.img, nil
	}
	if p.filename == "" {
		return nil, fmt.Errorf("no input image specified")
	}
	img, err := imaging.Load(p.filename)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (p *Paginator) plan(img image.Image) (*Plan, []Warning, error) {
	opts := p.options
	log := opts.logger

	bounds := img.Bounds()
	axis := gaps.Rows
	totalLength, breadth := bounds.Dy(), bounds.Dx()
	if opts.direction.Vertical() {
		axis = gaps.Columns
		totalLength, breadth = bounds.Dx(), bounds.Dy()
	}

	detector := gaps.NewDetector(opts.tolerance)
	groups := detector.FindGroups(img, axis)
	log.Debug("gap scan complete",
		observability.String("axis", axis.String()),
		observability.Int("groups", len(groups)))

	var warnings []Warning
	midlines := gaps.Midlines(groups)
	if len(midlines) == 0 {
		warnings = append(warnings, noGapsWarning())
		log.Warn("no gaps found, creating a single page")
		midlines = []int{totalLength}
	}

	geo, err := layout.ResolveGeometry(opts.direction, opts.targetRatio, breadth, opts.padding, opts.margins)
	if err != nil {
		return nil, warnings, err
	}

	optimizer := layout.NewOptimizer(opts.targetRatio)
	cuts := optimizer.FindOptimalCuts(totalLength, breadth, midlines, geo.IdealOverride(), opts.direction.Reverse())
	if err := validatePlan(cuts, totalLength); err != nil {
		return nil, warnings, err
	}
	log.Info("cut plan built",
		observability.Int("pages", len(cuts)-1),
		observability.Int("canvas_w", geo.CanvasWidth),
		observability.Int("canvas_h", geo.CanvasHeight))

	return &Plan{
		CutPoints: cuts,
		Gaps:      groups,
		Geometry:  geo,
		Direction: opts.direction,
	}, warnings, nil
}
