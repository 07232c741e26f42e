package literal

import "sort"

// LitVec is a clause: a sequence of literals. Once it enters the
// simplifier it is kept sorted by packed literal value with no duplicates
// and no complementary pair; the "ordered" methods below assume that and
// are the ones the simplification engine uses on the hot path. The
// unordered variants (Subsume, SubsumeExceptOne, Resolvent) tolerate
// unsorted input at the cost of being quadratic instead of linear.
type LitVec []Lit

// NewLitVec copies lits into a fresh LitVec.
func NewLitVec(lits ...Lit) LitVec {
	out := make(LitVec, len(lits))
	copy(out, lits)
	return out
}

// Clone returns an independent copy.
func (c LitVec) Clone() LitVec {
	out := make(LitVec, len(c))
	copy(out, c)
	return out
}

// Last returns the final literal; callers on a DAG-CNF clause rely on this
// being the defining literal per the last-literal convention (§3).
func (c LitVec) Last() Lit {
	return c[len(c)-1]
}

// Sort orders the clause by packed literal value.
func (c LitVec) Sort() {
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
}

// IsSorted reports whether c is currently in packed-literal order.
func (c LitVec) IsSorted() bool {
	return sort.SliceIsSorted(c, func(i, j int) bool { return c[i] < c[j] })
}

// ClauseSimplify sorts c, removes duplicate literals, and clears c
// (returning true) if it is tautological — contains both a literal and its
// complement, per §3's invariant that such a clause may be dropped.
func (c *LitVec) ClauseSimplify() (tautological bool) {
	c.Sort()
	c.dedup()
	cv := *c
	for i := 1; i < len(cv); i++ {
		if cv[i] == cv[i-1].Not() {
			*c = cv[:0]
			return true
		}
	}
	return false
}

func (c *LitVec) dedup() {
	cv := *c
	if len(cv) < 2 {
		return
	}
	j := 0
	for i := 1; i < len(cv); i++ {
		if cv[i] != cv[j] {
			j++
			cv[j] = cv[i]
		}
	}
	*c = cv[:j+1]
}

// Subsume reports whether c subsumes o (c's literals are a subset of o's),
// without assuming either is sorted. Ground: original LitVec::subsume.
func (c LitVec) Subsume(o LitVec) bool {
	if len(c) > len(o) {
		return false
	}
outer:
	for _, x := range c {
		for _, y := range o {
			if x == y {
				continue outer
			}
		}
		return false
	}
	return true
}

// SubsumeExceptOne is the unordered self-subsuming-resolution check: if c
// subsumes o entirely it returns (true, nil). If c matches o everywhere
// except one position where the variables agree but polarities differ, it
// returns (false, &diff) where diff is c's literal at that position — its
// complement in o can be safely struck. Otherwise (false, nil).
func (c LitVec) SubsumeExceptOne(o LitVec) (bool, *Lit) {
	if len(c) > len(o) {
		return false, nil
	}
	var diff *Lit
outer:
	for _, x := range c {
		for _, y := range o {
			if x == y {
				continue outer
			}
			if diff == nil && x.Var() == y.Var() {
				xv := x
				diff = &xv
				continue outer
			}
		}
		return false, nil
	}
	return diff == nil, diff
}

// OrderedSubsume is Subsume specialized to sorted inputs: a single linear
// merge instead of a quadratic scan.
func (c LitVec) OrderedSubsume(o LitVec) bool {
	if len(c) > len(o) {
		return false
	}
	j := 0
	for i := 0; i < len(c); i++ {
		for j < len(o) && o[j] < c[i] {
			j++
		}
		if j == len(o) || c[i] != o[j] {
			return false
		}
	}
	return true
}

// OrderedSubsumeExceptOne is SubsumeExceptOne specialized to sorted
// inputs, comparing by variable to find the single mismatched position.
func (c LitVec) OrderedSubsumeExceptOne(o LitVec) (bool, *Lit) {
	if len(c) > len(o) {
		return false, nil
	}
	var diff *Lit
	j := 0
	for i := 0; i < len(c); i++ {
		for j < len(o) && c[i].Var() > o[j].Var() {
			j++
		}
		if j == len(o) {
			return false, nil
		}
		if c[i] != o[j] {
			if diff == nil && c[i].Var() == o[j].Var() {
				xv := c[i]
				diff = &xv
			} else {
				return false, nil
			}
		}
	}
	return diff == nil, diff
}

// Intersection returns the literals common to c and o, unordered input.
func (c LitVec) Intersection(o LitVec) LitVec {
	set := make(map[Lit]struct{}, len(o))
	for _, l := range o {
		set[l] = struct{}{}
	}
	var out LitVec
	seen := make(map[Lit]struct{}, len(c))
	for _, l := range c {
		if _, ok := set[l]; ok {
			if _, dup := seen[l]; !dup {
				seen[l] = struct{}{}
				out = append(out, l)
			}
		}
	}
	return out
}

// OrderedIntersection is Intersection specialized to sorted inputs.
func (c LitVec) OrderedIntersection(o LitVec) LitVec {
	var out LitVec
	i := 0
	for _, l := range c {
		for i < len(o) && o[i] < l {
			i++
		}
		if i == len(o) {
			break
		}
		if l == o[i] {
			out = append(out, l)
		}
	}
	return out
}

// Contains reports whether l appears in c (unordered linear scan).
func (c LitVec) Contains(l Lit) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}
	return false
}

// Resolvent computes the resolvent of c and o on pivot v: the union of
// their literals minus v's occurrences, or (nil, false) if some other
// variable appears with opposite polarity in both (a tautological
// resolvent, which is dropped). Input need not be sorted.
func (c LitVec) Resolvent(o LitVec, v Var) (LitVec, bool) {
	x, y := c, o
	if len(o) < len(c) {
		x, y = o, c
	}
	var out LitVec
outer:
	for _, lx := range x {
		if lx.Var() == v {
			continue
		}
		for _, ly := range y {
			if lx.Var() == ly.Var() {
				if lx == ly.Not() {
					return nil, false
				}
				continue outer
			}
		}
		out = append(out, lx)
	}
	for _, ly := range y {
		if ly.Var() != v {
			out = append(out, ly)
		}
	}
	return out, true
}

// OrderedResolvent is Resolvent specialized to sorted inputs, producing a
// sorted result via a merge instead of a quadratic scan.
func (c LitVec) OrderedResolvent(o LitVec, v Var) (LitVec, bool) {
	x, y := c, o
	if len(o) < len(c) {
		x, y = o, c
	}
	out := make(LitVec, 0, len(c)+len(o))
	i, j := 0, 0
	for i < len(x) {
		if x[i].Var() == v {
			i++
			continue
		}
		for j < len(y) && y[j].Var() < x[i].Var() {
			j++
		}
		if j < len(y) && x[i].Var() == y[j].Var() {
			if x[i] == y[j].Not() {
				return nil, false
			}
		} else {
			out = append(out, x[i])
		}
		i++
	}
	for _, ly := range y {
		if ly.Var() != v {
			out = append(out, ly)
		}
	}
	out.Sort()
	return out, true
}

// Equal reports whether c and o contain the same literals in the same
// order (structural equality, per §3's "Clause equality is structural").
func (c LitVec) Equal(o LitVec) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

func (c LitVec) String() string {
	s := "("
	for i, l := range c {
		if i > 0 {
			s += " "
		}
		s += l.String()
	}
	return s + ")"
}
