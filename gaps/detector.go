package gaps

import (
	"image"
	"math"
)

// DefaultTolerance is the maximum per-channel standard deviation, in
// 8-bit pixel units, for a line to count as pure color.
const DefaultTolerance = 5

// Axis selects the scan direction.
type Axis int

const (
	// Rows scans horizontal lines (gaps between vertically stacked content).
	Rows Axis = iota
	// Columns scans vertical lines (gaps between side-by-side content).
	Columns
)

// String returns "rows" or "columns".
func (a Axis) String() string {
	if a == Columns {
		return "columns"
	}
	return "rows"
}

// Group is a run of consecutive uniform-color lines along one axis.
// Both bounds are inclusive. Groups returned by a detector are
// ascending and disjoint; adjacent uniform lines always belong to the
// same group.
type Group struct {
	Start int
	End   int
}

// Len returns the number of lines in the group.
func (g Group) Len() int { return g.End - g.Start + 1 }

// Midline returns the integer midpoint of the group, the coordinate
// used as the group's cut candidate.
func (g Group) Midline() int { return (g.Start + g.End) / 2 }

// Detector finds gap groups in an image.
type Detector struct {
	// Tolerance bounds the per-channel standard deviation allowed for
	// a pure-color line. A line at exactly Tolerance is a gap.
	Tolerance int
}

// NewDetector creates a detector with the given tolerance.
// Negative tolerances are clamped to zero.
func NewDetector(tolerance int) *Detector {
	if tolerance < 0 {
		tolerance = 0
	}
	return &Detector{Tolerance: tolerance}
}

// FindGroups scans the image along axis and returns all gap groups in
// ascending order. An entirely uniform image yields a single group
// spanning the full extent; an image with no uniform line yields nil.
func (d *Detector) FindGroups(img image.Image, axis Axis) []Group {
	bounds := img.Bounds()
	length := bounds.Dy()
	if axis == Columns {
		length = bounds.Dx()
	}

	stats := newLineStats(img)

	var groups []Group
	inGap := false
	start := 0

	for i := 0; i < length; i++ {
		if stats.isUniform(i, axis, float64(d.Tolerance)) {
			if !inGap {
				start = i
				inGap = true
			}
		} else if inGap {
			groups = append(groups, Group{Start: start, End: i - 1})
			inGap = false
		}
	}
	if inGap {
		groups = append(groups, Group{Start: start, End: length - 1})
	}

	return groups
}

// Midlines maps gap groups to their midpoints, sorted ascending with
// duplicates removed. Input groups are assumed ascending, as returned
// by FindGroups.
func Midlines(groups []Group) []int {
	mids := make([]int, 0, len(groups))
	for _, g := range groups {
		m := g.Midline()
		if len(mids) > 0 && mids[len(mids)-1] == m {
			continue
		}
		mids = append(mids, m)
	}
	return mids
}

// lineStats computes per-line channel statistics. Common image types
// read their Pix slices directly; anything else goes through At().
type lineStats struct {
	img    image.Image
	bounds image.Rectangle

	// Exactly one of these is set for the fast paths.
	rgba  *image.RGBA
	nrgba *image.NRGBA
	gray  *image.Gray
}

func newLineStats(img image.Image) *lineStats {
	s := &lineStats{img: img, bounds: img.Bounds()}
	switch t := img.(type) {
	case *image.RGBA:
		s.rgba = t
	case *image.NRGBA:
		s.nrgba = t
	case *image.Gray:
		s.gray = t
	}
	return s
}

// accum tracks sum and sum-of-squares per channel for one line.
type accum struct {
	n     int
	sum   [4]float64
	sumSq [4]float64
	ch    int
}

func (a *accum) add(vals ...uint8) {
	for c, v := range vals {
		f := float64(v)
		a.sum[c] += f
		a.sumSq[c] += f * f
	}
	a.n++
}

// withinTolerance reports whether every channel's population standard
// deviation is at most tol.
func (a *accum) withinTolerance(tol float64) bool {
	if a.n == 0 {
		return true
	}
	n := float64(a.n)
	for c := 0; c < a.ch; c++ {
		mean := a.sum[c] / n
		variance := a.sumSq[c]/n - mean*mean
		if variance < 0 {
			variance = 0 // float round-off
		}
		if math.Sqrt(variance) > tol {
			return false
		}
	}
	return true
}

func (s *lineStats) isUniform(i int, axis Axis, tol float64) bool {
	switch {
	case s.gray != nil:
		return s.uniformGray(i, axis, tol)
	case s.rgba != nil:
		return s.uniformPix(s.rgba.Pix, s.rgba.Stride, s.pixOffset(s.rgba.PixOffset, i, axis), axis, tol)
	case s.nrgba != nil:
		return s.uniformPix(s.nrgba.Pix, s.nrgba.Stride, s.pixOffset(s.nrgba.PixOffset, i, axis), axis, tol)
	default:
		return s.uniformGeneric(i, axis, tol)
	}
}

// pixOffset returns the byte offset of the first pixel of line i.
func (s *lineStats) pixOffset(offset func(x, y int) int, i int, axis Axis) int {
	if axis == Rows {
		return offset(s.bounds.Min.X, s.bounds.Min.Y+i)
	}
	return offset(s.bounds.Min.X+i, s.bounds.Min.Y)
}

func (s *lineStats) uniformGray(i int, axis Axis, tol float64) bool {
	a := accum{ch: 1}
	w, h := s.bounds.Dx(), s.bounds.Dy()
	pix := s.gray.Pix
	if axis == Rows {
		off := s.gray.PixOffset(s.bounds.Min.X, s.bounds.Min.Y+i)
		for _, v := range pix[off : off+w] {
			a.add(v)
		}
	} else {
		off := s.gray.PixOffset(s.bounds.Min.X+i, s.bounds.Min.Y)
		for y := 0; y < h; y++ {
			a.add(pix[off+y*s.gray.Stride])
		}
	}
	return a.withinTolerance(tol)
}

func (s *lineStats) uniformPix(pix []uint8, stride, off4 int, axis Axis, tol float64) bool {
	a := accum{ch: 4}
	w, h := s.bounds.Dx(), s.bounds.Dy()
	if axis == Rows {
		row := pix[off4 : off4+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			a.add(p[0], p[1], p[2], p[3])
		}
	} else {
		for y := 0; y < h; y++ {
			p := pix[off4+y*stride : off4+y*stride+4]
			a.add(p[0], p[1], p[2], p[3])
		}
	}
	return a.withinTolerance(tol)
}

func (s *lineStats) uniformGeneric(i int, axis Axis, tol float64) bool {
	a := accum{ch: 4}
	b := s.bounds
	if axis == Rows {
		y := b.Min.Y + i
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, al := s.img.At(x, y).RGBA()
			a.add(uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(al>>8))
		}
	} else {
		x := b.Min.X + i
		for y := b.Min.Y; y < b.Max.Y; y++ {
			r, g, bl, al := s.img.At(x, y).RGBA()
			a.add(uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(al>>8))
		}
	}
	return a.withinTolerance(tol)
}
