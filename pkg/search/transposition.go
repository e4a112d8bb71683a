package search

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"unsafe"

	"github.com/leafline-go/leafline/pkg/board"
	"github.com/seekerror/logw"
)

// entrySize approximates the bytes retained per transposition entry: the
// Position key (comparable, no pointer indirection) plus a Lodestar whose PV
// slice header dominates the rest. This is a sizing estimate for capacity
// planning, not a guarantee -- the spec asks only that capacity be set so
// expected size does not exceed a configured fraction of a gibibyte.
const entrySize = unsafe.Sizeof(board.Position{}) + 64

// TranspositionTable is a bounded least-recently-used mapping from
// board.Position to Lodestar. Eviction is LRU on access. Must be
// thread-safe: the search core reads and writes it under a shared lock from
// every root worker.
type TranspositionTable interface {
	// Read returns the memoized Lodestar for pos, if present. A hit moves
	// pos to the most-recently-used end.
	Read(pos board.Position) (Lodestar, bool)
	// Write memoizes l for pos, evicting the least-recently-used entry if
	// the table is at capacity.
	Write(pos board.Position, l Lodestar)

	// Size returns the table's entry capacity.
	Size() int
	// Used returns utilization as a fraction in [0;1].
	Used() float64
}

type lruEntry struct {
	pos board.Position
	val Lodestar
}

// lruTable is the sole TranspositionTable implementation: a doubly-linked
// list for recency ordering plus a map for O(1) lookup, under one mutex.
type lruTable struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	index    map[board.Position]*list.Element
}

// NewTranspositionTable allocates a table sized so its expected footprint
// does not exceed gibibyteFraction of a gibibyte (1<<30 bytes).
func NewTranspositionTable(ctx context.Context, gibibyteFraction float64) TranspositionTable {
	budget := gibibyteFraction * float64(1<<30)
	capacity := int(budget / float64(entrySize))
	if capacity < 1 {
		capacity = 1
	}

	logw.Infof(ctx, "Allocating TT for ~%v entries (%.3f GiB)", capacity, gibibyteFraction)

	return &lruTable{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[board.Position]*list.Element, capacity),
	}
}

func (t *lruTable) Read(pos board.Position) (Lodestar, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	elem, ok := t.index[pos]
	if !ok {
		return Lodestar{}, false
	}
	t.order.MoveToFront(elem)
	return elem.Value.(*lruEntry).val, true
}

func (t *lruTable) Write(pos board.Position, l Lodestar) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if elem, ok := t.index[pos]; ok {
		elem.Value.(*lruEntry).val = l
		t.order.MoveToFront(elem)
		return
	}

	elem := t.order.PushFront(&lruEntry{pos: pos, val: l})
	t.index[pos] = elem

	if t.order.Len() > t.capacity {
		oldest := t.order.Back()
		t.order.Remove(oldest)
		delete(t.index, oldest.Value.(*lruEntry).pos)
	}
}

func (t *lruTable) Size() int {
	return t.capacity
}

func (t *lruTable) Used() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return float64(t.order.Len()) / float64(t.capacity)
}

func (t *lruTable) String() string {
	return fmt.Sprintf("TT[%v/%v]", t.order.Len(), t.capacity)
}

// NoTranspositionTable is a Nop implementation, useful for isolating search
// correctness from memoization in tests.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(pos board.Position) (Lodestar, bool) { return Lodestar{}, false }
func (NoTranspositionTable) Write(pos board.Position, l Lodestar)     {}
func (NoTranspositionTable) Size() int                                { return 0 }
func (NoTranspositionTable) Used() float64                            { return 0 }

var _ TranspositionTable = NoTranspositionTable{}
var _ TranspositionTable = (*lruTable)(nil)
