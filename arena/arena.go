// Package arena implements the clause arena and occurrence index (C3): a
// slot allocator returning stable integer handles, per-literal occurrence
// vectors with lazy compaction, and the cost-ordered priority queue the
// simplification engine pops pivots from.
//
// Ground: original_source/src/occur.rs (Occur/Occurs), and
// _examples/xDarkicex-logic/sat/pool.go for the "own your allocations,
// don't shift handles" idiom — adapted away from that file's global
// sync.Pool singleton, since §5/§9 require the arena's working state to be
// owned explicitly per simplification run, and §5 says memory growth is
// monotone within a run (no slot reuse), so pooling allocations back for
// reuse does not apply here; what's kept is the "stable handle into an
// append-only slice" shape.
package arena

import (
	"github.com/xDarkicex/logicform/core"
	"github.com/xDarkicex/logicform/literal"
)

// Handle is a stable integer reference to a clause stored in an Arena.
// Handles are never reused within a run: Dealloc marks a slot removed but
// never shifts or recycles its index.
type Handle uint32

// Arena is the slot allocator. It owns the clauses the simplification
// engine mutates.
type Arena struct {
	slots     []literal.Lemma
	removed   []bool
	liveCount int
}

// New returns an empty Arena.
func New() *Arena { return &Arena{} }

// Alloc stores l and returns its stable handle.
func (a *Arena) Alloc(l literal.Lemma) Handle {
	h := Handle(len(a.slots))
	a.slots = append(a.slots, l)
	a.removed = append(a.removed, false)
	a.liveCount++
	return h
}

// Dealloc marks h's slot removed. The slot itself is retained (for
// occurrence-list compaction to detect) but is no longer readable.
func (a *Arena) Dealloc(h Handle) {
	if !a.removed[h] {
		a.removed[h] = true
		a.liveCount--
	}
}

// IsRemoved reports whether h's slot has been deallocated.
func (a *Arena) IsRemoved(h Handle) bool { return a.removed[h] }

// Get returns the clause at h. Reading a dealloc'd handle is a contract
// violation (spec.md §7's "Arena handle used after dealloc"): the caller
// must use occurrence-list compaction, not direct handle bookkeeping, to
// avoid ever reaching this.
func (a *Arena) Get(h Handle) literal.Lemma {
	core.Assert(!a.removed[h], "arena.Get", "handle used after dealloc")
	return a.slots[h]
}

// Len returns the total number of slots ever allocated (including
// removed ones).
func (a *Arena) Len() int { return len(a.slots) }

// LiveCount returns the number of slots not yet marked removed.
func (a *Arena) LiveCount() int { return a.liveCount }
