// Package astar implements weighted A* pathfinding over a 2D cost grid
// with octile (8-directional) movement.
//
// The search keys the open set by f = g + weight*h, where h is the octile
// distance to the goal inflated by HeuristicWeight (a mild admissibility
// relaxation that bounds suboptimality by the same factor in exchange for
// fewer expansions on dense obstacle maps). Diagonal moves are always
// permitted — there is no corner-cutting check — and cost cost[neighbor]
// times 1.0 (orthogonal) or √2 (diagonal). A cell with cost 0 is
// impassable and can never be entered.
//
// The open set is a binary min-heap with a parallel pos[] index, giving
// O(log n) decrease-key when a better g is found for a cell already open.
// Closed cells are tracked in a bitset and never reopened, which is a
// documented approximation valid because HeuristicWeight's inflation is
// small enough that the heuristic remains effectively consistent for the
// grids this kernel targets.
//
// Astar never mutates its CostGrid and returns a fresh path slice on every
// call; there is no shared state between calls.
package astar
