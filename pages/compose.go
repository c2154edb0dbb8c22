package pages

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/tsawler/pageslice/layout"
)

// Span is a half-open coordinate range [Start, End) along the split
// axis of the source image.
type Span struct {
	Start int
	End   int
}

// Len returns End - Start.
func (s Span) Len() int { return s.End - s.Start }

// Page is one finished output page.
type Page struct {
	// Image is the composed page on its uniform canvas.
	Image *image.NRGBA

	// Span is the source coordinate range this page holds.
	Span Span

	// Remainder marks the page carrying the leftover content of the
	// greedy fill. It is aligned to the reading-start edge rather than
	// centered, and only exists on multi-page output.
	Remainder bool
}

// Compose builds one page per adjacent pair of plan coordinates,
// in ascending coordinate order. The plan must be ascending, start at
// 0 and end at the source extent, as produced by the optimizer.
//
// With dir.Reverse() the remainder page sits at index 0, otherwise at
// the last index. Single-page output has no remainder page.
func Compose(src image.Image, plan []int, dir layout.Direction, geo layout.Geometry) []Page {
	numPages := len(plan) - 1
	if numPages < 1 {
		return nil
	}

	remainderIdx := numPages - 1
	if dir.Reverse() {
		remainderIdx = 0
	}

	out := make([]Page, 0, numPages)
	for i := 0; i < numPages; i++ {
		span := Span{Start: plan[i], End: plan[i+1]}
		remainder := numPages > 1 && i == remainderIdx
		out = append(out, composeOne(src, span, dir, geo, remainder))
	}
	return out
}

func composeOne(src image.Image, span Span, dir layout.Direction, geo layout.Geometry, remainder bool) Page {
	bounds := src.Bounds()

	var contentW, contentH int
	var srcPt image.Point
	if dir.Vertical() {
		contentW = span.Len()
		contentH = bounds.Dy()
		srcPt = image.Pt(bounds.Min.X+span.Start, bounds.Min.Y)
	} else {
		contentW = bounds.Dx()
		contentH = span.Len()
		srcPt = image.Pt(bounds.Min.X, bounds.Min.Y+span.Start)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, geo.CanvasWidth, geo.CanvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	pasteX, pasteY := placement(dir, geo, contentW, contentH, remainder)

	dst := image.Rect(pasteX, pasteY, pasteX+contentW, pasteY+contentH)
	draw.Draw(canvas, dst, src, srcPt, draw.Src)

	return Page{Image: canvas, Span: span, Remainder: remainder}
}

// placement computes the paste origin of the content slice on the
// canvas. Normal pages center along the split axis; the remainder page
// aligns to the reading-start edge.
func placement(dir layout.Direction, geo layout.Geometry, contentW, contentH int, remainder bool) (x, y int) {
	m := geo.Margins

	if remainder {
		if dir.Vertical() {
			if dir.Reverse() {
				return geo.CanvasWidth - m.Right - contentW, m.Top
			}
			return m.Left, m.Top
		}
		return m.Left, m.Top
	}

	if dir.Vertical() {
		return (geo.CanvasWidth - contentW) / 2, m.Top
	}

	x = m.Left
	if geo.MarginMode {
		y = m.Top
		if geo.ContentLength > 0 && contentH < geo.ContentLength {
			y = m.Top + (geo.ContentLength-contentH)/2
		}
	} else {
		y = (geo.CanvasHeight - contentH) / 2
	}
	return x, y
}
