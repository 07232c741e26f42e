package arena

import (
	"github.com/xDarkicex/logicform/container"
	"github.com/xDarkicex/logicform/literal"
)

// occurEntry is the per-literal occurrence vector: a list of clause
// handles plus a live-count maintained eagerly on add and lazily on
// remove (decrement a counter, set a dirty flag; the handle list itself
// is only filtered when actually read).
type occurEntry struct {
	handles []Handle
	size    int
	dirty   bool
}

func (e *occurEntry) add(h Handle) {
	e.handles = append(e.handles, h)
	e.size++
}

func (e *occurEntry) lazyRemove() {
	e.size--
	e.dirty = true
}

func (e *occurEntry) clean(a *Arena) {
	if !e.dirty {
		return
	}
	j := 0
	for _, h := range e.handles {
		if !a.IsRemoved(h) {
			e.handles[j] = h
			j++
		}
	}
	e.handles = e.handles[:j]
	e.dirty = false
}

// Occurs is the occurrence index: for each literal l, which clause
// handles contain l. It is also used, with a different LitMap instance,
// for the DAG-CNF's defining-relation index keyed by the last literal
// (defs[l] in §4.3's cost metric) — both are "a list of handles per
// literal with lazy removal", so one type serves both roles.
type Occurs struct {
	arena *Arena
	occur *container.LitMap[*occurEntry]
}

// NewOccurs builds an occurrence index reading liveness from a.
func NewOccurs(a *Arena) *Occurs {
	return &Occurs{arena: a, occur: container.NewLitMap[*occurEntry]()}
}

func (o *Occurs) entry(l literal.Lit) *occurEntry {
	e := o.occur.Get(l)
	if e == nil {
		e = &occurEntry{}
		o.occur.Set(l, e)
	}
	return e
}

// Add records that clause h contains literal l.
func (o *Occurs) Add(l literal.Lit, h Handle) {
	o.entry(l).add(h)
}

// Del lazily removes h from l's occurrence list.
func (o *Occurs) Del(l literal.Lit, h Handle) {
	o.entry(l).lazyRemove()
}

// NumOccur returns the live count of clauses containing l without forcing
// a compaction.
func (o *Occurs) NumOccur(l literal.Lit) int {
	return o.entry(l).size
}

// Get returns the (compacted) list of clause handles containing l.
func (o *Occurs) Get(l literal.Lit) []Handle {
	e := o.entry(l)
	e.clean(o.arena)
	return e.handles
}

// Cost is the §4.3 cost metric contribution for a single literal's
// occurrence list.
func (o *Occurs) Cost(l literal.Lit) int { return o.NumOccur(l) }
