package pageslice

import "fmt"

// InvariantError reports a cut plan inconsistent with the source image
// bounds. It indicates a bug in the planner rather than bad input, and
// terminal operations fail loudly with it instead of producing
// misaligned pages.
type InvariantError struct {
	// Plan is the offending cut plan.
	Plan []int
	// TotalLength is the source extent the plan must span.
	TotalLength int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal: cut plan %v does not span [0, %d]", e.Plan, e.TotalLength)
}

// validatePlan checks that cuts is strictly ascending from 0 to
// totalLength.
func validatePlan(cuts []int, totalLength int) error {
	if len(cuts) < 2 || cuts[0] != 0 || cuts[len(cuts)-1] != totalLength {
		return &InvariantError{Plan: cuts, TotalLength: totalLength}
	}
	for i := 1; i < len(cuts); i++ {
		if cuts[i] <= cuts[i-1] {
			return &InvariantError{Plan: cuts, TotalLength: totalLength}
		}
	}
	return nil
}
