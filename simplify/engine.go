// Package simplify implements the simplification engine (C5): unit
// propagation, bounded variable elimination by resolution, and
// subsumption / self-subsuming resolution, driven by priority queues
// keyed on occurrence counts. Ground: original_source/src/dagcnf/
// simplify.rs, cross-checked against
// _examples/xDarkicex-logic/sat/{preprocessor,inprocessor}.go for the
// same family of passes over a different clause representation.
package simplify

import (
	"time"

	"github.com/xDarkicex/logicform/arena"
	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/core"
	"github.com/xDarkicex/logicform/literal"
)

// Engine owns the arena, occurrence indices and cost queue for one
// simplification run (§4.5). It is never reused across runs.
type Engine struct {
	cfg    core.Config
	arena  *arena.Arena
	occur  *arena.Occurs // clauses where a literal appears in a non-last position
	defs   *arena.Occurs // clauses where a literal is the defining (last) literal
	frozen map[literal.Var]bool
	assign map[literal.Var]bool // unit-propagated polarity, keyed by variable
	units  []literal.Lit
	head   int
	queue  *arena.CostQueue
	maxVar literal.Var
	unsat  bool

	eliminated int // variables removed by a committed BVE step
}

// Simplify freezes frozen plus Var::CONST, runs the init → (const_simp ⇌
// bve_simp ⇌ subsume_simp)* → emit pipeline to a fixpoint, and returns a
// fresh DAG-CNF. The second result is true iff an empty clause was
// derived (formula refutation, §7).
func Simplify(dag *cnf.DagCnf, frozen []literal.Var, cfg core.Config) (*cnf.DagCnf, bool) {
	e := newEngine(dag, frozen, cfg)
	start := time.Now()
	clausesBefore := e.arena.LiveCount()
	e.run()

	log := core.Logger("simplify")
	if e.unsat {
		log.Info("simplify", "result", "unsat", "elapsed", time.Since(start))
		return e.emitUnsat(), true
	}
	out := e.emit()
	log.Info("simplify",
		"clauses_before", clausesBefore,
		"clauses_after", e.arena.LiveCount(),
		"vars_eliminated", e.eliminated,
		"elapsed", time.Since(start),
	)
	return out, false
}

func newEngine(dag *cnf.DagCnf, frozen []literal.Var, cfg core.Config) *Engine {
	e := &Engine{
		cfg:    cfg,
		arena:  arena.New(),
		frozen: map[literal.Var]bool{literal.ConstVar: true},
		assign: map[literal.Var]bool{},
		maxVar: dag.MaxVar(),
	}
	e.occur = arena.NewOccurs(e.arena)
	e.defs = arena.NewOccurs(e.arena)
	for _, v := range frozen {
		e.frozen[v] = true
	}
	e.queue = arena.NewCostQueue(e.costOf)
	for v := literal.Var(1); v <= e.maxVar; v++ {
		if !e.frozen[v] {
			e.queue.Insert(v)
		}
	}
	for v := literal.Var(0); v <= e.maxVar; v++ {
		for _, cls := range dag.Group(v) {
			e.addClause(cls)
		}
	}
	for i := 0; i < e.arena.Len(); i++ {
		h := arena.Handle(i)
		if l := e.arena.Get(h); l.Len() == 1 {
			e.units = append(e.units, l.Cube()[0])
		}
	}
	return e
}

func (e *Engine) costOf(v literal.Var) int {
	p := v.Lit()
	n := p.Not()
	return e.occur.NumOccur(p) + e.occur.NumOccur(n) + e.defs.NumOccur(p) + e.defs.NumOccur(n)
}

func (e *Engine) touchQueue(v literal.Var) {
	if e.queue.Contains(v) {
		e.queue.Update(v)
	}
}

// addClause installs cube as a new live clause: every literal but the
// last goes into occur, the last (defining) literal goes into defs.
func (e *Engine) addClause(cube literal.LitVec) arena.Handle {
	lemma := literal.NewLemma(cube)
	h := e.arena.Alloc(lemma)
	cc := lemma.Cube()
	for i, x := range cc {
		if i == len(cc)-1 {
			e.defs.Add(x, h)
		} else {
			e.occur.Add(x, h)
		}
		e.touchQueue(x.Var())
	}
	return h
}

func (e *Engine) removeClause(h arena.Handle) {
	if e.arena.IsRemoved(h) {
		return
	}
	l := e.arena.Get(h)
	cc := l.Cube()
	for i, x := range cc {
		if i == len(cc)-1 {
			e.defs.Del(x, h)
		} else {
			e.occur.Del(x, h)
		}
		e.touchQueue(x.Var())
	}
	e.arena.Dealloc(h)
}

func (e *Engine) shrinkClause(h arena.Handle, remove literal.Lit) {
	old := e.arena.Get(h)
	newCube := stripLiteral(old.Cube(), remove)
	e.removeClause(h)
	if len(newCube) == 0 {
		e.unsat = true
		return
	}
	e.addClause(newCube)
	if len(newCube) == 1 {
		e.units = append(e.units, newCube[0])
	}
}

func stripLiteral(c literal.LitVec, l literal.Lit) literal.LitVec {
	out := make(literal.LitVec, 0, len(c))
	for _, x := range c {
		if x != l {
			out = append(out, x)
		}
	}
	return out
}

func (e *Engine) run() {
	for {
		u1 := e.constSimp()
		if e.unsat {
			return
		}
		u2 := e.bveSimp()
		u3 := e.subsumeSimp()
		if !(u1 || u2 || u3) {
			return
		}
	}
}

// constSimp drains the pending unit queue: every clause containing a
// known unit literal is satisfied (removed); every clause containing its
// complement is shortened, possibly producing a new unit or the empty
// clause.
func (e *Engine) constSimp() bool {
	updated := false
	for e.head < len(e.units) {
		l := e.units[e.head]
		e.head++
		v := l.Var()
		if pol, ok := e.assign[v]; ok {
			if pol != l.Polarity() {
				e.unsat = true
				return true
			}
			continue
		}
		e.assign[v] = l.Polarity()
		e.queue.Remove(v)
		updated = true

		satisfied := append([]arena.Handle(nil), e.occur.Get(l)...)
		satisfied = append(satisfied, e.defs.Get(l)...)
		for _, h := range satisfied {
			e.removeClause(h)
		}

		falsified := append([]arena.Handle(nil), e.occur.Get(l.Not())...)
		falsified = append(falsified, e.defs.Get(l.Not())...)
		for _, h := range falsified {
			if e.arena.IsRemoved(h) {
				continue
			}
			e.shrinkClause(h, l.Not())
			if e.unsat {
				return true
			}
		}
	}
	return updated
}

// bveSimp drains the pivot queue, attempting elimination cheapest-first;
// pivots that are skipped (not frozen, just not profitable this round)
// are reinserted so a later pass — after occurrence counts have moved —
// can reconsider them.
func (e *Engine) bveSimp() bool {
	updated := false
	var skipped []literal.Var
	for {
		v, ok := e.queue.PopMin()
		if !ok {
			break
		}
		if _, assigned := e.assign[v]; assigned {
			continue
		}
		if e.tryEliminate(v) {
			updated = true
		} else {
			skipped = append(skipped, v)
		}
	}
	for _, v := range skipped {
		if _, assigned := e.assign[v]; !assigned {
			e.queue.Insert(v)
		}
	}
	return updated
}

func (e *Engine) tryEliminate(v literal.Var) bool {
	p := v.Lit()
	n := p.Not()
	costOld := e.occur.NumOccur(p) + e.occur.NumOccur(n) + e.defs.NumOccur(p) + e.defs.NumOccur(n)
	if costOld == 0 || costOld > e.cfg.BVECostCutoff {
		return false
	}

	posHandles := append([]arena.Handle(nil), e.occur.Get(p)...)
	posHandles = append(posHandles, e.defs.Get(p)...)
	negHandles := append([]arena.Handle(nil), e.occur.Get(n)...)
	negHandles = append(negHandles, e.defs.Get(n)...)
	if len(posHandles) == 0 || len(negHandles) == 0 {
		return false
	}

	var resolvents []literal.Lemma
	for _, ph := range posHandles {
		pc := e.arena.Get(ph).Cube()
		for _, nh := range negHandles {
			nc := e.arena.Get(nh).Cube()
			res, ok := pc.OrderedResolvent(nc, v)
			if !ok {
				continue
			}
			resolvents = append(resolvents, literal.NewLemma(res))
			if len(resolvents) > costOld {
				return false
			}
		}
	}

	minimized := literal.LemmasSubsumeSimplify(resolvents)
	if len(minimized) > costOld+e.cfg.BVESlack {
		return false
	}

	for _, h := range posHandles {
		e.removeClause(h)
	}
	for _, h := range negHandles {
		e.removeClause(h)
	}
	e.queue.Remove(v)
	e.eliminated++
	for _, lm := range minimized {
		e.addClause(lm.Cube())
		if lm.Len() == 1 {
			e.units = append(e.units, lm.Cube()[0])
		}
	}
	return true
}

// subsumeSimp scans every live clause against the candidates containing
// either polarity of its cheapest variable, dropping subsumed clauses and strengthening
// self-subsumed ones.
func (e *Engine) subsumeSimp() bool {
	updated := false
	handles := e.liveHandles()
outer:
	for _, hi := range handles {
		if e.arena.IsRemoved(hi) {
			continue
		}
		ci := e.arena.Get(hi)
		if ci.IsEmpty() {
			continue
		}
		p, n := e.minOccurVarLits(ci)
		candidates := append([]arena.Handle(nil), e.occur.Get(p)...)
		candidates = append(candidates, e.occur.Get(n)...)
		candidates = append(candidates, e.defs.Get(p)...)
		candidates = append(candidates, e.defs.Get(n)...)
		for _, hj := range candidates {
			if hj == hi || e.arena.IsRemoved(hj) {
				continue
			}
			cj := e.arena.Get(hj)
			subsumes, diff := ci.SubsumeExceptOne(cj)
			switch {
			case subsumes:
				e.removeClause(hj)
				updated = true
			case diff != nil && ci.Len() == cj.Len() && diff.Var() != ci.Last().Var():
				e.shrinkClause(hi, *diff)
				e.removeClause(hj)
				updated = true
				continue outer
			case diff != nil && diff.Var() == cj.Last().Var():
				e.removeClause(hj)
				updated = true
			case diff != nil:
				e.shrinkClause(hj, diff.Not())
				updated = true
			}
		}
	}
	return updated
}

// minOccurVarLits picks the literal in c whose variable has the minimum
// total occurrence+definition cost, per §4.5's subsumption pass, and
// returns both of that variable's polarities so the caller can scan
// candidates regardless of which polarity they carry (self-subsuming
// resolution by construction flips exactly one literal's polarity).
func (e *Engine) minOccurVarLits(c literal.Lemma) (literal.Lit, literal.Lit) {
	cube := c.Cube()
	bestV := cube[0].Var()
	bestCost := e.costOf(bestV)
	for _, l := range cube[1:] {
		if cost := e.costOf(l.Var()); cost < bestCost {
			bestV = l.Var()
			bestCost = cost
		}
	}
	return bestV.Lit(), bestV.Lit().Not()
}

func (e *Engine) liveHandles() []arena.Handle {
	out := make([]arena.Handle, 0, e.arena.LiveCount())
	for i := 0; i < e.arena.Len(); i++ {
		h := arena.Handle(i)
		if !e.arena.IsRemoved(h) {
			out = append(out, h)
		}
	}
	return out
}

// emit reattaches every surviving clause to the variable named by its
// current last literal, and appends unit clauses for frozen variables
// that unit propagation pinned to a value.
func (e *Engine) emit() *cnf.DagCnf {
	out := cnf.NewDagCnf()
	out.NewVarTo(e.maxVar)

	byVar := map[literal.Var]literal.LitVvec{}
	for i := 0; i < e.arena.Len(); i++ {
		h := arena.Handle(i)
		if e.arena.IsRemoved(h) {
			continue
		}
		l := e.arena.Get(h)
		if l.IsEmpty() {
			continue
		}
		v := l.Last().Var()
		byVar[v] = append(byVar[v], l.Cube())
	}
	for v := literal.Var(1); v <= e.maxVar; v++ {
		if group, ok := byVar[v]; ok {
			out.AddRel(v, group)
		}
	}
	for v, polarity := range e.assign {
		if v == literal.ConstVar || out.HasRel(v) {
			continue
		}
		if e.frozen[v] {
			out.AddRel(v, literal.LitVvec{literal.NewLitVec(literal.NewLit(v, polarity))})
		}
	}
	return out
}

// emitUnsat returns a DAG-CNF witnessing the refutation: a fresh
// variable's two polarities both asserted as unit clauses.
func (e *Engine) emitUnsat() *cnf.DagCnf {
	out := cnf.NewDagCnf()
	v := out.NewVar()
	if e.maxVar > v {
		out.NewVarTo(e.maxVar)
	}
	out.AddRel(v, literal.LitVvec{
		literal.NewLitVec(v.Lit()),
		literal.NewLitVec(v.Lit().Not()),
	})
	return out
}
