// Package pages turns a cut plan into finished page images.
//
// [Compose] crops the source image at each pair of adjacent cut
// coordinates and pastes the slice onto a uniform white canvas. All
// pages of a run share one canvas size, so the output always stacks
// cleanly in a viewer or a PDF.
//
// Content placement depends on the page's role. Normal pages center
// their content along the split axis. The remainder page, the one
// holding whatever was left after the greedy fill, aligns its content
// to the reading-start edge instead: flush right in right-to-left
// layouts, flush left in left-to-right layouts, flush top in
// horizontal layouts.
//
// [TwoPhaseRenumber] reverses on-disk page numbering for right-to-left
// output, so that page 1 names the rightmost slice.
package pages
