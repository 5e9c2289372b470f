package astar

import "container/heap"

// notInHeap marks a cell as absent from openSet.pos.
const notInHeap = -1

// openSet is a binary min-heap of cell indices keyed by f-score, built on
// container/heap exactly as the teacher dijkstra package and the cruiz24
// A* reference do, plus a parallel pos[] array mapping each cell index to
// its current heap slot (or notInHeap). Tracking pos lets Astar perform
// O(log n) decrease-key via heap.Fix when a strictly better g is found for
// a cell already on the open set — spec.md §4.1 requires true decrease-key
// here, and §9 documents the split from wfc's lazy push-only heap as a
// deliberate per-kernel choice.
type openSet struct {
	heap []int     // heap[i] = cell index stored at heap position i
	pos  []int     // pos[cellIdx] = heap position of cellIdx, or notInHeap
	f    []float64 // f[cellIdx] = current f-score of cellIdx
}

// newOpenSet allocates an openSet for a grid with the given cell count.
func newOpenSet(numCells int) *openSet {
	pos := make([]int, numCells)
	for i := range pos {
		pos[i] = notInHeap
	}

	o := &openSet{
		heap: make([]int, 0, 64),
		pos:  pos,
		f:    make([]float64, numCells),
	}
	heap.Init(o)

	return o
}

func (o *openSet) contains(cellIdx int) bool {
	return o.pos[cellIdx] != notInHeap
}

// push inserts cellIdx with the given f-score. cellIdx must not already be
// present; use decreaseKey to update an existing entry.
func (o *openSet) push(cellIdx int, fScore float64) {
	o.f[cellIdx] = fScore
	heap.Push(o, cellIdx)
}

// decreaseKey lowers the f-score of an already-open cellIdx and restores
// the heap invariant via heap.Fix. Caller must ensure fScore < o.f[cellIdx].
func (o *openSet) decreaseKey(cellIdx int, fScore float64) {
	o.f[cellIdx] = fScore
	heap.Fix(o, o.pos[cellIdx])
}

// popMin removes and returns the cell index with the smallest f-score.
func (o *openSet) popMin() int {
	return heap.Pop(o).(int)
}

// Len, Less, Swap, Push, and Pop implement container/heap.Interface.

func (o *openSet) Len() int { return len(o.heap) }

func (o *openSet) Less(i, j int) bool {
	return o.f[o.heap[i]] < o.f[o.heap[j]]
}

func (o *openSet) Swap(i, j int) {
	o.heap[i], o.heap[j] = o.heap[j], o.heap[i]
	o.pos[o.heap[i]] = i
	o.pos[o.heap[j]] = j
}

func (o *openSet) Push(x any) {
	cellIdx := x.(int)
	o.pos[cellIdx] = len(o.heap)
	o.heap = append(o.heap, cellIdx)
}

func (o *openSet) Pop() any {
	n := len(o.heap)
	cellIdx := o.heap[n-1]
	o.heap = o.heap[:n-1]
	o.pos[cellIdx] = notInHeap

	return cellIdx
}
