package layout

import "sort"

// DefaultTargetRatio is the default page aspect ratio (height/width).
const DefaultTargetRatio = 16.0 / 9.0

// Optimizer selects cut coordinates that partition an extent into
// pages approximating a target aspect ratio.
type Optimizer struct {
	// TargetRatio is the desired page height/width.
	TargetRatio float64
}

// NewOptimizer creates an optimizer for the given height/width ratio.
// Non-positive ratios fall back to DefaultTargetRatio.
func NewOptimizer(targetRatio float64) *Optimizer {
	if targetRatio <= 0 {
		targetRatio = DefaultTargetRatio
	}
	return &Optimizer{TargetRatio: targetRatio}
}

// Score returns how far a page of the given dimensions is from the
// target ratio. Zero is a perfect match.
func (o *Optimizer) Score(height, width int) float64 {
	actual := float64(height) / float64(width)
	diff := actual - o.TargetRatio
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// FindOptimalCuts selects a subset of candidate coordinates that
// partitions [0, totalLength] into pages close to the ideal extent.
//
// The ideal page extent is idealOverride when positive, otherwise
// breadth times the target ratio. Selection is greedy: each page is
// filled as far as possible without exceeding the ideal, and the
// remainder spills onto the following page. A page exceeds the ideal
// only when no candidate allows otherwise. With reverse set, the fill
// starts from totalLength and works backward, which places the
// remainder at coordinate 0.
//
// The returned plan is strictly ascending, starts at 0 and ends at
// totalLength, so it always holds at least two points.
func (o *Optimizer) FindOptimalCuts(totalLength, breadth int, candidates []int, idealOverride int, reverse bool) []int {
	ideal := idealOverride
	if ideal <= 0 {
		ideal = int(float64(breadth) * o.TargetRatio)
	}

	points := mergeCutPoints(totalLength, candidates)
	if reverse {
		// Mirror the coordinate space around totalLength, run the
		// forward greedy once, and mirror back. Picking the smallest
		// candidate at or above (cursor - ideal) in the original space
		// is exactly picking the largest mirrored candidate at or
		// below (cursor' + ideal).
		mirrored := make([]int, len(points))
		for i, p := range points {
			mirrored[len(points)-1-i] = totalLength - p
		}
		plan := greedyForward(totalLength, ideal, mirrored)
		out := make([]int, len(plan))
		for i, p := range plan {
			out[len(plan)-1-i] = totalLength - p
		}
		return out
	}
	return greedyForward(totalLength, ideal, points)
}

// mergeCutPoints builds the sorted, deduplicated candidate set
// {0} ∪ candidates ∪ {totalLength}, dropping out-of-range values.
func mergeCutPoints(totalLength int, candidates []int) []int {
	points := make([]int, 0, len(candidates)+2)
	points = append(points, 0, totalLength)
	for _, c := range candidates {
		if c > 0 && c < totalLength {
			points = append(points, c)
		}
	}
	sort.Ints(points)
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// greedyForward runs the forward fill over an ascending point set that
// includes 0 and totalLength.
func greedyForward(totalLength, ideal int, points []int) []int {
	selected := []int{0}
	cursor := 0

	for cursor < totalLength {
		// Remainder fits on one page: take it all.
		if totalLength-cursor <= ideal {
			selected = append(selected, totalLength)
			break
		}

		target := cursor + ideal

		// Largest candidate at or below target maximizes the page
		// without overflowing the ideal.
		best := -1
		fallback := -1
		for _, p := range points {
			if p <= cursor {
				continue
			}
			if fallback == -1 {
				fallback = p
			}
			if p <= target {
				best = p
			} else {
				break
			}
		}
		if best == -1 {
			// Every remaining candidate overflows; take the one that
			// overflows least.
			best = fallback
		}
		if best == -1 {
			break
		}

		selected = append(selected, best)
		cursor = best
	}

	if selected[len(selected)-1] != totalLength {
		selected = append(selected, totalLength)
	}
	return selected
}
