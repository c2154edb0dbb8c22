package pageslice

import (
	"github.com/tsawler/pageslice/gaps"
	"github.com/tsawler/pageslice/layout"
	"github.com/tsawler/pageslice/observability"
)

// paginateOptions holds configuration for a pagination run.
type paginateOptions struct {
	// Gap detection
	tolerance int

	// Page shape
	targetRatio float64 // height/width
	direction   layout.Direction
	padding     int
	margins     *layout.Margins // nil means padding mode

	logger observability.Logger
}

// defaultOptions returns the default pagination options.
func defaultOptions() paginateOptions {
	return paginateOptions{
		tolerance:   gaps.DefaultTolerance,
		targetRatio: layout.DefaultTargetRatio,
		direction:   layout.TopToBottom,
		padding:     DefaultPadding,
		margins:     nil,
		logger:      observability.NopLogger{},
	}
}

// clone creates a deep copy of paginateOptions.
func (o paginateOptions) clone() paginateOptions {
	newOpts := o
	if o.margins != nil {
		m := *o.margins
		newOpts.margins = &m
	}
	return newOpts
}
