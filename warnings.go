package pageslice

import "strings"

// Warning codes reported by terminal operations.
const (
	// WarnCodeNoGaps means no uniform-color line was found, so the
	// whole image became a single page.
	WarnCodeNoGaps = "no-gaps"
)

// Warning describes a non-fatal issue encountered while paginating.
// Warnings never abort the run; they explain why the output may look
// different than expected.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
//
// Example:
//
//	_, warnings, err := pageslice.Open("shot.png").Paginate()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pageslice.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

func noGapsWarning() Warning {
	return Warning{
		Code:    WarnCodeNoGaps,
		Message: "no gaps found, creating a single page",
	}
}
