package pageslice

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/pageslice/layout"
)

// noisyImage builds a w x h image where every pixel alternates black
// and white, so no row or column is uniform.
func noisyImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{0, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// whitenRows paints the inclusive row range pure white, turning it
// into a detectable gap.
func whitenRows(img *image.NRGBA, start, end int) {
	for y := start; y <= end; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
}

// whitenCols paints the inclusive column range pure white.
func whitenCols(img *image.NRGBA, start, end int) {
	for x := start; x <= end; x++ {
		for y := 0; y < img.Bounds().Dy(); y++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
}

func TestPaginator_HorizontalEndToEnd(t *testing.T) {
	// 300x1000 screenshot with one gap band at rows 500-509. The
	// midline is 504 and the ideal page extent int(300 * 16/9) = 533,
	// so the plan cuts at 504 and the remainder closes at 1000.
	img := noisyImage(300, 1000)
	whitenRows(img, 500, 509)

	plan, warnings, err := FromImage(img).Plan()
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	want := []int{0, 504, 1000}
	if len(plan.CutPoints) != len(want) {
		t.Fatalf("cut points = %v, want %v", plan.CutPoints, want)
	}
	for i := range want {
		if plan.CutPoints[i] != want[i] {
			t.Fatalf("cut points = %v, want %v", plan.CutPoints, want)
		}
	}
	if plan.NumPages() != 2 {
		t.Errorf("NumPages = %d, want 2", plan.NumPages())
	}

	// Padding mode: canvas 300+2*20 wide, int(300 * 16/9) tall.
	if plan.Geometry.CanvasWidth != 340 || plan.Geometry.CanvasHeight != 533 {
		t.Errorf("canvas = %dx%d, want 340x533",
			plan.Geometry.CanvasWidth, plan.Geometry.CanvasHeight)
	}

	pgs, _, err := FromImage(img).Paginate()
	if err != nil {
		t.Fatal(err)
	}
	if len(pgs) != 2 {
		t.Fatalf("got %d pages, want 2", len(pgs))
	}
	for i, p := range pgs {
		b := p.Image.Bounds()
		if b.Dx() != 340 || b.Dy() != 533 {
			t.Errorf("page %d canvas = %dx%d, want 340x533", i, b.Dx(), b.Dy())
		}
	}
	if pgs[0].Remainder || !pgs[1].Remainder {
		t.Errorf("remainder flags = [%v %v], want [false true]",
			pgs[0].Remainder, pgs[1].Remainder)
	}
}

func TestPaginator_NoGapsWarning(t *testing.T) {
	img := noisyImage(100, 400)

	pgs, warnings, err := FromImage(img).Paginate()
	if err != nil {
		t.Fatal(err)
	}
	if len(pgs) != 1 {
		t.Errorf("got %d pages, want single page when no gaps exist", len(pgs))
	}
	if len(warnings) != 1 || warnings[0].Code != WarnCodeNoGaps {
		t.Errorf("warnings = %v, want one %s warning", warnings, WarnCodeNoGaps)
	}
	if FormatWarnings(warnings) == "" {
		t.Error("FormatWarnings returned empty string for non-empty warnings")
	}
}

func TestPaginator_Immutability(t *testing.T) {
	base := FromImage(noisyImage(50, 50))
	derived := base.Tolerance(10).RatioWH(9, 16).Margins(5, 5, 5, 5)

	if base.options.tolerance != 5 {
		t.Errorf("base tolerance changed to %d", base.options.tolerance)
	}
	if base.options.margins != nil {
		t.Error("base margins changed")
	}
	if derived.options.tolerance != 10 {
		t.Errorf("derived tolerance = %d, want 10", derived.options.tolerance)
	}
	if derived.options.margins == nil {
		t.Fatal("derived margins not set")
	}
}

func TestPaginator_InvalidConfig(t *testing.T) {
	if _, _, err := FromImage(noisyImage(10, 10)).Ratio(-1).Paginate(); err == nil {
		t.Error("negative ratio: want error")
	}
	if _, _, err := FromImage(noisyImage(10, 10)).Padding(-3).Paginate(); err == nil {
		t.Error("negative padding: want error")
	}
	if _, _, err := FromImage(noisyImage(10, 10)).RatioWH(0, 16).Paginate(); err == nil {
		t.Error("zero ratio side: want error")
	}
	if _, _, err := FromImage(noisyImage(10, 10)).Margins(-1, 0, 0, 0).Paginate(); err == nil {
		t.Error("negative margin: want error")
	}
}

func TestPaginator_ConfigErrorSurvivesChain(t *testing.T) {
	// The first invalid call must win even when later calls are valid.
	p := FromImage(noisyImage(10, 10)).Ratio(-1).Tolerance(8)
	if _, _, err := p.Paginate(); err == nil {
		t.Error("accumulated error lost after further chaining")
	}
}

func TestPaginator_MarginsTooLarge(t *testing.T) {
	img := noisyImage(200, 1000)
	_, _, err := FromImage(img).
		Direction(layout.LeftToRight).
		Margins(0, 600, 0, 600).
		Plan()
	if err == nil {
		t.Fatal("oversized margins: want error")
	}
	var cfgErr *layout.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error %v is not a *layout.ConfigError", err)
	}
}

func TestPaginator_MissingFile(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "nope.png")).Paginate(); err == nil {
		t.Error("missing file: want error")
	}
}

func TestPaginator_NoInput(t *testing.T) {
	p := &Paginator{options: defaultOptions()}
	if _, _, err := p.Paginate(); err == nil {
		t.Error("no input: want error")
	}
}

func TestPaginator_WriteFiles(t *testing.T) {
	img := noisyImage(300, 1000)
	whitenRows(img, 500, 509)

	dir := t.TempDir()
	files, _, err := FromImage(img).WriteFiles(dir, "page")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}

	for i, f := range files {
		want := filepath.Join(dir, filepath.Base(f))
		if f != want {
			t.Errorf("file %d path = %s, want it in %s", i, f, dir)
		}
		if _, err := os.Stat(f); err != nil {
			t.Errorf("file %d missing: %v", i, err)
		}
	}
	if base := filepath.Base(files[0]); base != "page_001.png" {
		t.Errorf("first file = %s, want page_001.png", base)
	}
}

func TestPaginator_WriteFilesRTL(t *testing.T) {
	// 1000 wide, gap at columns 500-509. RTL: the greedy works from
	// the right, and after renumbering page 1 must name the rightmost
	// slice.
	img := noisyImage(1000, 300)
	whitenCols(img, 500, 509)

	dir := t.TempDir()
	files, _, err := FromImage(img).
		Direction(layout.RightToLeft).
		WriteFiles(dir, "page")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if base := filepath.Base(files[0]); base != "page_001.png" {
		t.Errorf("first file = %s, want page_001.png", base)
	}

	// No stray temp files from the renumbering pass.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("output dir holds %d files, want 2", len(entries))
	}
}

func TestPaginator_RTLReadingOrder(t *testing.T) {
	// Vertical RTL: Paginate returns pages in reading order, so the
	// first page holds the rightmost source columns.
	img := noisyImage(1000, 300)
	whitenCols(img, 500, 509)

	pgs, _, err := FromImage(img).Direction(layout.RightToLeft).Paginate()
	if err != nil {
		t.Fatal(err)
	}
	if len(pgs) != 2 {
		t.Fatalf("got %d pages, want 2", len(pgs))
	}
	if pgs[0].Span.Start <= pgs[1].Span.Start {
		t.Errorf("reading order spans = [%+v %+v], want rightmost first",
			pgs[0].Span, pgs[1].Span)
	}
	if !pgs[1].Remainder {
		t.Error("leftmost slice not marked remainder in RTL output")
	}
}

func TestOpen_LazyDecode(t *testing.T) {
	// Open must not touch the file; only terminals do.
	p := Open(filepath.Join(t.TempDir(), "missing.png")).Tolerance(3)
	if p.err != nil {
		t.Errorf("Open of missing file failed eagerly: %v", p.err)
	}
}

func TestMustPages(t *testing.T) {
	img := noisyImage(60, 60)
	pgs := MustPages(FromImage(img).Paginate())
	if len(pgs) != 1 {
		t.Errorf("got %d pages, want 1", len(pgs))
	}

	defer func() {
		if recover() == nil {
			t.Error("MustPages did not panic on error")
		}
	}()
	MustPages(FromImage(img).Ratio(-1).Paginate())
}
