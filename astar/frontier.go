package astar

import "github.com/katalvlaran/gridpath/grid"

// frontierItem is one entry of the open set.
type frontierItem struct {
	at  grid.Coordinate
	f   float64
	seq uint64 // insertion order, breaks ties on f
}

// frontier is a min-heap of *frontierItem ordered by f, then by seq.
// It uses the "lazy decrease-key" approach: an improved f pushes a new entry
// and the outdated one is discarded when popped (its cell is closed by then).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; equal f falls back to the earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
