// Package tilekernel is the root of a small library of grid-based
// algorithmic kernels for a tile-based procedural/roguelike game engine.
//
// It has no code of its own — the library lives in its subpackages, one
// per kernel:
//
//	gridgraph/          — shared grid substrate: bounds checks, row-major
//	                       indexing, the sentinel error taxonomy.
//	astar/              — weighted A* pathfinding with octile movement.
//	fov/                — symmetric shadowcasting field of view.
//	wfc/                — Wave Function Collapse constraint solving.
//	internal/kernelutil/ — popcount table and xoshiro128++/splitmix64 PRNG.
//	internal/hostlog/    — structured logging for host code; no package here imports it.
//
// Each kernel is a leaf: it takes flat numeric buffers, runs to completion
// within a single call, and returns a small structured result or a
// sentinel error. None of the three load files, read the environment, or
// log.
package tilekernel
