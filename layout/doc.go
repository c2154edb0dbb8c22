// Package layout decides where a long screenshot is cut and how the
// resulting pages are shaped.
//
// # Direction
//
// [Direction] captures the three supported reading orders. The split
// axis follows from it: the two vertical modes split along the image
// width, the horizontal mode along the height. Right-to-left mode
// additionally reverses the greedy fill and moves the remainder page
// to the start of the coordinate sequence:
//
//	dir, err := layout.ParseDirection("vertical-rtl")
//	dir.Vertical() // true
//	dir.Reverse()  // true
//
// # Geometry
//
// [ResolveGeometry] fixes the uniform page canvas for a run. In
// padding mode the canvas derives from the image breadth and the
// target ratio plus symmetric side padding. In margin mode the canvas
// is fixed first from the non-split dimension plus its margins, and
// the content area left inside the margins becomes the ideal page
// extent. Margins that leave no content area are a configuration
// error.
//
// # Cut selection
//
// The [Optimizer] chooses cut coordinates with a greedy fill, like a
// printer filling pages: each page takes as much content as fits
// within the ideal extent, and the remainder spills onto the next page
// no matter how small. A page only exceeds the ideal when no candidate
// cut permits otherwise:
//
//	opt := layout.NewOptimizer(16.0 / 9.0)
//	plan := opt.FindOptimalCuts(total, breadth, candidates, 0, dir.Reverse())
//
// Reverse mode runs the same greedy from the far edge, which is what
// places the remainder on the reading-start side in right-to-left
// layouts. Plans always begin at 0, end at the total extent, and are
// strictly ascending.
package layout
