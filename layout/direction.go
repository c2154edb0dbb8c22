package layout

import "fmt"

// Direction is the reading order of the paginated output. It
// determines the split axis, the greedy fill direction, and which page
// receives the remainder content.
type Direction int

const (
	// TopToBottom splits along the image height; pages read downward.
	TopToBottom Direction = iota
	// LeftToRight splits along the image width; pages read rightward.
	LeftToRight
	// RightToLeft splits along the image width with right-to-left
	// reading order, as used for tategaki text and manga.
	RightToLeft
)

// String returns the canonical name used by the CLI and web API.
func (d Direction) String() string {
	switch d {
	case TopToBottom:
		return "horizontal"
	case LeftToRight:
		return "vertical-ltr"
	case RightToLeft:
		return "vertical-rtl"
	default:
		return "unknown"
	}
}

// Vertical reports whether the split axis is the image width.
func (d Direction) Vertical() bool {
	return d == LeftToRight || d == RightToLeft
}

// Reverse reports whether the greedy fill starts from the far edge.
// True only for right-to-left mode, where the remainder page must land
// at the start of the coordinate sequence.
func (d Direction) Reverse() bool {
	return d == RightToLeft
}

// ParseDirection converts a direction name to a Direction. Accepted
// names are "horizontal", "vertical-ltr" and "vertical-rtl".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "horizontal":
		return TopToBottom, nil
	case "vertical-ltr":
		return LeftToRight, nil
	case "vertical-rtl":
		return RightToLeft, nil
	default:
		return TopToBottom, fmt.Errorf("unknown direction %q (want horizontal, vertical-ltr or vertical-rtl)", s)
	}
}
