package layout

import "fmt"

// Margins are page margins in pixels, clockwise from the top.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Horizontal returns Left + Right.
func (m Margins) Horizontal() int { return m.Left + m.Right }

// Vertical returns Top + Bottom.
func (m Margins) Vertical() int { return m.Top + m.Bottom }

// ConfigError reports margins that leave no room for content on the
// derived page. It carries the requested and available extents so the
// caller can adjust parameters.
type ConfigError struct {
	// Side names the margin pair at fault ("left+right" or "top+bottom").
	Side string
	// Requested is the combined margin extent.
	Requested int
	// Available is the derived page extent the margins must fit in.
	Available int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("margins too large: %s = %d exceeds derived page extent %d",
		e.Side, e.Requested, e.Available)
}

// Geometry fixes the uniform page canvas for one pagination run.
type Geometry struct {
	// CanvasWidth and CanvasHeight are the uniform page size shared by
	// every output page.
	CanvasWidth  int
	CanvasHeight int

	// Margins are the resolved margins. In padding mode this is
	// (0, padding, 0, padding).
	Margins Margins

	// MarginMode is true when explicit four-sided margins were given.
	// It changes content placement on the fixed axis: margin mode
	// anchors at the top margin, padding mode centers on the canvas.
	MarginMode bool

	// ContentLength is the extent of the content area along the split
	// axis. It is fed to the optimizer as the ideal page extent. Zero
	// means "use the optimizer's ratio-derived default" (horizontal
	// padding mode only).
	ContentLength int
}

// IdealOverride returns the optimizer ideal implied by the geometry.
func (g Geometry) IdealOverride() int { return g.ContentLength }

// ResolveGeometry computes the uniform canvas for a run.
//
// breadth is the image extent along the fixed (non-split) axis. With
// margins == nil, padding mode applies: the canvas derives from the
// breadth and the target ratio with symmetric side padding. Otherwise
// the canvas is fixed from the breadth plus its margins and the target
// ratio, and the content area inside the margins becomes the ideal
// page extent; margins leaving a non-positive content area produce a
// *ConfigError.
func ResolveGeometry(dir Direction, targetRatio float64, breadth, padding int, margins *Margins) (Geometry, error) {
	if targetRatio <= 0 {
		targetRatio = DefaultTargetRatio
	}

	if margins == nil {
		g := Geometry{Margins: Margins{Right: padding, Left: padding}}
		if dir.Vertical() {
			idealContentWidth := int(float64(breadth) / targetRatio)
			g.CanvasWidth = idealContentWidth + g.Margins.Horizontal()
			g.CanvasHeight = breadth
			g.ContentLength = idealContentWidth
		} else {
			g.CanvasWidth = breadth + g.Margins.Horizontal()
			g.CanvasHeight = int(float64(breadth) * targetRatio)
			// ContentLength stays 0: the optimizer derives the ideal
			// from the breadth and ratio itself.
		}
		return g, nil
	}

	g := Geometry{Margins: *margins, MarginMode: true}
	if dir.Vertical() {
		g.CanvasHeight = breadth + margins.Vertical()
		g.CanvasWidth = int(float64(g.CanvasHeight) / targetRatio)
		g.ContentLength = g.CanvasWidth - margins.Horizontal()
		if g.ContentLength <= 0 {
			return Geometry{}, &ConfigError{
				Side:      "left+right",
				Requested: margins.Horizontal(),
				Available: g.CanvasWidth,
			}
		}
	} else {
		g.CanvasWidth = breadth + margins.Horizontal()
		g.CanvasHeight = int(float64(g.CanvasWidth) * targetRatio)
		g.ContentLength = g.CanvasHeight - margins.Vertical()
		if g.ContentLength <= 0 {
			return Geometry{}, &ConfigError{
				Side:      "top+bottom",
				Requested: margins.Vertical(),
				Available: g.CanvasHeight,
			}
		}
	}
	return g, nil
}
