// Package wfc implements a Wave Function Collapse constraint solver over a
// small (<= 8 pattern) bitmask grid with four-directional propagation.
//
// Solve repeatedly picks the lowest-entropy uncollapsed cell, makes a
// weighted random choice among its remaining patterns, and propagates the
// resulting constraint outward along a LIFO stack until the wave either
// fully collapses or a cell's mask is driven to zero, which is reported as
// ErrContradiction rather than a programming error.
package wfc
