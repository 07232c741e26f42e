package arena

import (
	"container/heap"

	"github.com/xDarkicex/logicform/literal"
)

// CostFunc reads a variable's live elimination cost, per §4.3:
// |occur[v]| + |occur[!v]| + |defs[v]| + |defs[!v]|. It must read current
// state (the queue aliases the same occurrence index the engine mutates),
// not a snapshot.
type CostFunc func(v literal.Var) int

// CostQueue is the min-heap of variables ordered by CostFunc, used by BVE
// to always pop the cheapest pivot. Ground: original_source/src/occur.rs
// BinaryHeapCmp plus the pack's only priority-queue idiom,
// _examples/cespare-saturday's container/heap-based litHeap.
type CostQueue struct {
	items []literal.Var
	index map[literal.Var]int // position within items, for Fix/Remove
	cost  CostFunc
}

// NewCostQueue builds an empty queue reading costs from cost.
func NewCostQueue(cost CostFunc) *CostQueue {
	return &CostQueue{index: make(map[literal.Var]int), cost: cost}
}

// heap.Interface

func (q *CostQueue) Len() int { return len(q.items) }

func (q *CostQueue) Less(i, j int) bool {
	return q.cost(q.items[i]) < q.cost(q.items[j])
}

func (q *CostQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.index[q.items[i]] = i
	q.index[q.items[j]] = j
}

func (q *CostQueue) Push(x any) {
	v := x.(literal.Var)
	q.index[v] = len(q.items)
	q.items = append(q.items, v)
}

func (q *CostQueue) Pop() any {
	n := len(q.items)
	v := q.items[n-1]
	q.items = q.items[:n-1]
	delete(q.index, v)
	return v
}

// Insert pushes v onto the queue, sifting up.
func (q *CostQueue) Insert(v literal.Var) {
	if _, ok := q.index[v]; ok {
		return
	}
	heap.Push(q, v)
}

// PopMin removes and returns the variable with the smallest current cost.
func (q *CostQueue) PopMin() (literal.Var, bool) {
	if q.Len() == 0 {
		return 0, false
	}
	return heap.Pop(q).(literal.Var), true
}

// Remove drops v from the queue entirely, re-sifting the heap, per §4.3
// "handles are re-pushed on insert and re-sifted on removal".
func (q *CostQueue) Remove(v literal.Var) {
	if i, ok := q.index[v]; ok {
		heap.Remove(q, i)
	}
}

// Update notifies the queue that v's live cost may have changed, re-
// sifting its position. Call this whenever a mutation (add_clause /
// remove_clause) touches an occurrence list a variable in the queue
// depends on.
func (q *CostQueue) Update(v literal.Var) {
	if i, ok := q.index[v]; ok {
		heap.Fix(q, i)
	}
}

// Contains reports whether v is currently queued.
func (q *CostQueue) Contains(v literal.Var) bool {
	_, ok := q.index[v]
	return ok
}
