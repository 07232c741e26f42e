// Package bva implements Boolean Variable Addition (C6): factoring
// common sub-clauses out of a flat clause set by introducing fresh
// AND-gate variables into a DAG-CNF. Ground:
// original_source/src/cstdagcnf/bva.rs.
package bva

import (
	"container/heap"
	"sort"

	"github.com/xDarkicex/logicform/arena"
	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/container"
	"github.com/xDarkicex/logicform/literal"
)

// Result pairs the DAG of introduced AND gates with the residual
// (factored) clause set, per §4.6's "output is a pair".
type Result struct {
	Dag      *cnf.DagCnf
	Residual []literal.LitVec
}

// Engine owns the arena, per-literal occurrence lists and adjusted-count
// accounting BVA needs.
type Engine struct {
	arena  *arena.Arena
	occur  *arena.Occurs
	adjust *container.LitMap[int]
	dag    *cnf.DagCnf
}

// Run applies BVA to every clause of c and returns the introduced gates
// plus the residual clause set.
func Run(c *cnf.Cnf) Result {
	e := &Engine{arena: arena.New()}
	e.occur = arena.NewOccurs(e.arena)
	e.adjust = container.NewLitMap[int]()
	e.dag = cnf.NewDagCnf()
	e.dag.NewVarTo(c.MaxVar())
	for _, cls := range c.Clauses() {
		e.addClause(cls)
	}
	e.run()
	return e.emit()
}

func (e *Engine) addClause(cls literal.LitVec) arena.Handle {
	lemma := literal.NewLemma(cls)
	h := e.arena.Alloc(lemma)
	for _, l := range lemma.Cube() {
		e.occur.Add(l, h)
	}
	return h
}

func (e *Engine) delClause(h arena.Handle) {
	l := e.arena.Get(h)
	for _, x := range l.Cube() {
		e.occur.Del(x, h)
	}
	e.arena.Dealloc(h)
}

// litCount is the adjusted occurrence count: live occurrences minus the
// clauses already scheduled for removal that haven't been compacted out
// yet (§4.6's lit_count_adjust).
func (e *Engine) litCount(l literal.Lit) int {
	return e.occur.NumOccur(l) - e.adjust.Get(l)
}

func (e *Engine) leastFrequentNot(h arena.Handle, exclude literal.Lit) (literal.Lit, bool) {
	cube := e.arena.Get(h).Cube()
	var best literal.Lit
	bestCount := 0
	found := false
	for _, l := range cube {
		if l == exclude {
			continue
		}
		if c := e.litCount(l); !found || c < bestCount {
			best, bestCount, found = l, c, true
		}
	}
	return best, found
}

type queueEntry struct {
	lit   literal.Lit
	count int
}

// maxQueue is a max-heap over adjusted occurrence count, breaking ties
// by literal value — the pack's only priority-queue idiom
// (container/heap), inverted from the min-heap arena.CostQueue uses.
type maxQueue []queueEntry

func (q maxQueue) Len() int { return len(q) }
func (q maxQueue) Less(i, j int) bool {
	if q[i].count != q[j].count {
		return q[i].count > q[j].count
	}
	return q[i].lit > q[j].lit
}
func (q maxQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *maxQueue) Push(x any)   { *q = append(*q, x.(queueEntry)) }
func (q *maxQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

type matchCandidate struct {
	ocls arena.Handle
	mIdx int
}

func (e *Engine) run() {
	q := &maxQueue{}
	heap.Init(q)
	for v := literal.Var(0); v <= e.dag.MaxVar(); v++ {
		l := v.Lit()
		heap.Push(q, queueEntry{l, e.litCount(l)})
		heap.Push(q, queueEntry{l.Not(), e.litCount(l.Not())})
	}

	for q.Len() > 0 {
		top := heap.Pop(q).(queueEntry)
		maxLit := top.lit
		if top.count == 0 || top.count != e.litCount(maxLit) {
			continue
		}

		matchedClauses := make([][]arena.Handle, 0, e.occur.NumOccur(maxLit))
		for _, h := range e.occur.Get(maxLit) {
			matchedClauses = append(matchedClauses, []arena.Handle{h})
		}
		matchedLits := []literal.Lit{maxLit}

		for {
			entries := map[literal.Lit][]matchCandidate{}
			for mi, group := range matchedClauses {
				mcls := group[0]
				least, ok := e.leastFrequentNot(mcls, maxLit)
				if !ok {
					continue
				}
				mcube := e.arena.Get(mcls).Cube()
				for _, ocls := range e.occur.Get(least) {
					ocube := e.arena.Get(ocls).Cube()
					if len(mcube) != len(ocube) {
						continue
					}
					inter := mcube.OrderedIntersection(ocube)
					if len(inter)+1 != len(mcube) || inter.Contains(maxLit) {
						continue
					}
					var newLit literal.Lit
					found := false
					for _, l := range ocube {
						if !inter.Contains(l) {
							newLit, found = l, true
							break
						}
					}
					if !found || containsLit(matchedLits, newLit) {
						continue
					}
					entries[newLit] = append(entries[newLit], matchCandidate{ocls, mi})
				}
			}
			if len(entries) == 0 {
				break
			}

			lmaxCount := 0
			for _, v := range entries {
				if len(v) > lmaxCount {
					lmaxCount = len(v)
				}
			}
			var ties []literal.Lit
			for l, v := range entries {
				if len(v) == lmaxCount {
					ties = append(ties, l)
				}
			}
			sort.Slice(ties, func(i, j int) bool { return ties[i] < ties[j] })

			prevClauseCount, newClauseCount := len(matchedClauses), lmaxCount
			prevLitCount := len(matchedLits)
			newLitCount := prevLitCount + 1
			if prevClauseCount*prevLitCount+newClauseCount+newLitCount >=
				newClauseCount*newLitCount+prevClauseCount+prevLitCount {
				break
			}

			chosen := ties[0]
			matchedLits = append(matchedLits, chosen)
			for _, cand := range entries[chosen] {
				matchedClauses[cand.mIdx] = append(matchedClauses[cand.mIdx], cand.ocls)
			}
			kept := matchedClauses[:0]
			for _, g := range matchedClauses {
				if len(g) == len(matchedLits) {
					kept = append(kept, g)
				}
			}
			matchedClauses = kept
		}

		if len(matchedLits) == 1 {
			continue
		}
		if len(matchedLits) <= 2 && len(matchedClauses) <= 2 {
			continue
		}

		nl := e.dag.NewAnd(matchedLits...)
		for _, group := range matchedClauses {
			newCls := literal.LitVec{nl}
			for _, l := range e.arena.Get(group[0]).Cube() {
				if l != maxLit {
					newCls = append(newCls, l)
				}
			}
			e.addClause(newCls)
		}

		touched := map[literal.Lit]bool{}
		for _, group := range matchedClauses {
			for _, h := range group {
				for _, l := range e.arena.Get(h).Cube() {
					touched[l] = true
					e.adjust.Set(l, e.adjust.Get(l)+1)
				}
				e.delClause(h)
			}
		}
		var toUpdate []literal.Lit
		for l := range touched {
			toUpdate = append(toUpdate, l)
		}
		sort.Slice(toUpdate, func(i, j int) bool { return toUpdate[i] < toUpdate[j] })
		for _, l := range toUpdate {
			heap.Push(q, queueEntry{l, e.litCount(l)})
		}
		heap.Push(q, queueEntry{nl, e.litCount(nl)})
		heap.Push(q, queueEntry{nl.Not(), e.litCount(nl.Not())})
		heap.Push(q, queueEntry{maxLit, e.litCount(maxLit)})
	}
}

func containsLit(s []literal.Lit, l literal.Lit) bool {
	for _, x := range s {
		if x == l {
			return true
		}
	}
	return false
}

func (e *Engine) emit() Result {
	residual := cnf.NewCnf()
	residual.NewVarTo(e.dag.MaxVar())
	seen := map[arena.Handle]bool{}
	for v := literal.Var(0); v <= e.dag.MaxVar(); v++ {
		for _, h := range append(append([]arena.Handle(nil), e.occur.Get(v.Lit())...), e.occur.Get(v.Lit().Not())...) {
			if seen[h] {
				continue
			}
			seen[h] = true
			residual.AddClause(e.arena.Get(h).Cube()...)
		}
	}
	return Result{Dag: e.dag, Residual: residual.Clauses()}
}
