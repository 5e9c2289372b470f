// Package gridgraph provides the small bounds/indexing substrate shared by
// the pathfinding, field-of-view, and wave-function-collapse kernels.
//
// Every kernel in this module operates on flat, caller-owned buffers rather
// than a graph of named vertices: a Grid is nothing more than a validated
// (width, height) pair plus the row-major indexing convention and neighbor
// geometry the kernels need to walk those buffers consistently.
//
// Indexing convention: x is the major axis, so the linear index of (x, y)
// is x*height + y. This matches the data model every kernel's contract
// documents and must not be confused with the more common y*width+x
// row-major convention.
package gridgraph
