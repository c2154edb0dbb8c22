// Package gaps detects runs of uniform-color lines in raster images.
//
// A "gap" is a contiguous run of rows or columns whose pixels are a
// single pure color within a tolerance. Gaps mark empty space between
// content blocks and are the only places a long screenshot can be cut
// without splitting content mid-line.
//
// # Detection
//
// The [Detector] scans every line along one axis and groups consecutive
// uniform lines into [Group] intervals:
//
//	detector := gaps.NewDetector(gaps.DefaultTolerance)
//	groups := detector.FindGroups(img, gaps.Rows)
//
// A line counts as uniform when the population standard deviation of
// its pixel values, computed per channel, does not exceed the
// tolerance. Grayscale images use a single channel; everything else is
// judged on all four RGBA channels.
//
// # Midlines
//
// [Midlines] reduces each group to its integer midpoint, the
// representative cut coordinate handed to the cut optimizer:
//
//	cuts := gaps.Midlines(groups)
package gaps
