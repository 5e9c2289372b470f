// Package kernelutil holds the small pieces of state and arithmetic the
// wfc kernel needs but that are conceptually reusable across kernels: a
// process-wide popcount lookup table and a seeded PRNG. Neither the
// pathfinding nor the FOV kernel needs either; both are deterministic and
// carry no randomness or bit-population counting.
package kernelutil

import "sync"

var (
	popcountOnce  sync.Once
	popcountTable [256]uint8
)

// initPopcount fills popcountTable once. Safe to call from multiple
// goroutines concurrently; sync.Once guarantees exactly one initializing
// pass and a happens-before edge for every caller, satisfying spec.md §5's
// "initialized idempotently on first use and read-only thereafter."
func initPopcount() {
	popcountOnce.Do(func() {
		for i := range popcountTable {
			var c uint8
			for v := i; v != 0; v >>= 1 {
				c += uint8(v & 1)
			}
			popcountTable[i] = c
		}
	})
}

// Popcount returns the number of set bits in b, via the shared 256-entry
// lookup table. Initializes the table on first call from any goroutine.
// Complexity: O(1).
func Popcount(b byte) int {
	initPopcount()

	return int(popcountTable[b])
}
