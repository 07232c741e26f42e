// Package dimacs implements the bit-exact persisted clause format (§6 of
// the core spec): a "p cnf <vars> <clauses>" problem line followed by one
// signed-decimal clause line per clause, each terminated by a literal 0.
//
// Ground: original_source/src/dimacs.rs (to_dimacs/from_dimacs_str) for
// the wire shape, cespare-saturday/dimacs.go for the reader's leniency
// about comment placement and the "%" trailer.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/literal"
)

// Read parses DIMACS CNF text into a flat clause list. Lines starting
// with 'p' or 'c' are ignored wherever they appear, not just in the
// preamble, and a line containing only "%" ends parsing early — both
// non-standard leniencies documented in cespare-saturday/dimacs.go that
// the original Rust reader also tolerates.
//
// Var(0) (literal.ConstVar) never appears in DIMACS text: every Cnf
// already carries its invariant true-unit clause implicitly, so Read
// never needs to encode it.
func Read(r io.Reader) ([]literal.LitVec, error) {
	var clauses []literal.LitVec
	var cur literal.LitVec
	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") {
			continue
		}
		if line == "%" {
			break
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d: invalid literal %q", lineNo, field)
			}
			if n == 0 {
				clauses = append(clauses, cur)
				cur = nil
				continue
			}
			cur = append(cur, literal.FromInt(n))
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: scanning input")
	}
	if len(cur) > 0 {
		return nil, errors.New("dimacs: trailing clause missing terminating 0")
	}
	return clauses, nil
}

// Write emits c's clauses in DIMACS CNF form. ConstVar's literal is
// dropped from any clause it appears in (per literal.Lit.Int's contract);
// a clause left empty by that drop is omitted entirely, since it carries
// no information DIMACS text can express. Ground:
// original_source/src/dimacs.rs to_dimacs.
func Write(w io.Writer, c *cnf.Cnf) error {
	lines := make([]string, 0, c.Len())
	for _, cls := range c.Clauses() {
		toks := make([]string, 0, len(cls)+1)
		for _, l := range cls {
			if l.Var() == literal.ConstVar {
				continue
			}
			toks = append(toks, strconv.FormatInt(l.Int(), 10))
		}
		if len(toks) == 0 {
			continue
		}
		toks = append(toks, "0")
		lines = append(lines, strings.Join(toks, " "))
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", int(c.MaxVar())+1, len(lines)); err != nil {
		return errors.Wrap(err, "dimacs: writing problem line")
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "dimacs: writing clause line")
		}
	}
	return nil
}

// ReadDagCnf parses DIMACS text and lifts the resulting flat clauses into
// a DagCnf: each clause gets a fresh auxiliary variable appended as its
// defining (last) literal, satisfying the last-literal convention without
// claiming any semantic relationship between the clause and that
// variable beyond "this variable names this clause". Per §6's "the core
// is responsible for lifting it into DAG form only if requested".
func ReadDagCnf(r io.Reader) (*cnf.DagCnf, error) {
	clauses, err := Read(r)
	if err != nil {
		return nil, err
	}
	return liftDagCnf(clauses), nil
}

func liftDagCnf(clauses []literal.LitVec) *cnf.DagCnf {
	d := cnf.NewDagCnf()
	var maxVar literal.Var
	for _, cls := range clauses {
		for _, l := range cls {
			if l.Var() > maxVar {
				maxVar = l.Var()
			}
		}
	}
	d.NewVarTo(maxVar)
	for _, cls := range clauses {
		n := d.NewVar()
		rel := append(cls.Clone(), n.Lit())
		d.AddRel(n, literal.LitVvec{rel})
	}
	return d
}

// WriteDagCnf flattens every variable's defining clause group, in
// ascending variable order, into a flat Cnf and writes it as DIMACS text.
func WriteDagCnf(w io.Writer, d *cnf.DagCnf) error {
	c := cnf.NewCnf()
	c.NewVarTo(d.MaxVar())
	for v := literal.Var(1); v <= d.MaxVar(); v++ {
		c.AddClauses(d.Group(v)...)
	}
	return Write(w, c)
}
