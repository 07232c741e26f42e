package frontend

import (
	"testing"

	"github.com/xDarkicex/logicform/cnf"
	"github.com/xDarkicex/logicform/literal"
)

func TestBasicParsing(t *testing.T) {
	tests := []struct {
		expr     string
		vars     map[string]bool
		expected bool
	}{
		{"A", map[string]bool{"A": true}, true},
		{"A", map[string]bool{"A": false}, false},
		{"!A", map[string]bool{"A": true}, false},
		{"A & B", map[string]bool{"A": true, "B": true}, true},
		{"A & B", map[string]bool{"A": true, "B": false}, false},
		{"A | B", map[string]bool{"A": false, "B": true}, true},
		{"(A & B) | C", map[string]bool{"A": false, "B": true, "C": true}, true},
		{"A -> B", map[string]bool{"A": true, "B": false}, false},
		{"A <-> B", map[string]bool{"A": true, "B": true}, true},
		{"A nand B", map[string]bool{"A": true, "B": true}, false},
		{"A nor B", map[string]bool{"A": false, "B": false}, true},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			ast, err := ParseExpression(test.expr)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			got, err := ast.Evaluate(test.vars)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}
			if got != test.expected {
				t.Errorf("%s: expected %v, got %v", test.expr, test.expected, got)
			}
		})
	}
}

func TestUnicodeOperators(t *testing.T) {
	tests := []struct {
		expr     string
		vars     map[string]bool
		expected bool
	}{
		{"A ∧ B", map[string]bool{"A": true, "B": true}, true},
		{"A ∨ B", map[string]bool{"A": false, "B": true}, true},
		{"A ⊕ B", map[string]bool{"A": true, "B": false}, true},
		{"A → B", map[string]bool{"A": false, "B": true}, true},
		{"A ↔ B", map[string]bool{"A": true, "B": false}, false},
		{"¬A", map[string]bool{"A": true}, false},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			ast, err := ParseExpression(test.expr)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			got, err := ast.Evaluate(test.vars)
			if err != nil {
				t.Fatalf("eval error: %v", err)
			}
			if got != test.expected {
				t.Errorf("%s: expected %v, got %v", test.expr, test.expected, got)
			}
		})
	}
}

func TestParseExpressionRejectsUnbalancedParen(t *testing.T) {
	if _, err := ParseExpression("(A & B"); err == nil {
		t.Fatal("expected an error for an unbalanced paren, got nil")
	}
}

func TestParseExpressionRejectsTrailingTokens(t *testing.T) {
	if _, err := ParseExpression("A B"); err == nil {
		t.Fatal("expected an error for trailing tokens, got nil")
	}
}

// blastAndEvaluate exercises every truth assignment over ast's variables,
// checking that the literal Blast returns under the DagCnf's defining
// clauses agrees with direct AST evaluation.
func blastAndEvaluate(t *testing.T, expr string) {
	t.Helper()
	ast, err := ParseExpression(expr)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	names := ast.Variables()

	dag := cnf.NewDagCnf()
	lit, vars := Blast(ast, dag)

	for mask := 0; mask < 1<<len(names); mask++ {
		ctx := EvaluationContext{}
		for i, name := range names {
			ctx[name] = mask&(1<<i) != 0
		}
		want, err := ast.Evaluate(ctx)
		if err != nil {
			t.Fatalf("eval error: %v", err)
		}

		got := evalLit(dag, lit, ctx, vars)
		if got != want {
			t.Errorf("%s under %v: blast says %v, eval says %v", expr, ctx, got, want)
		}
	}
}

// evalLit computes a blasted literal's truth value purely from the
// DagCnf's stored clauses, independent of Blast's own construction
// logic: for each variable, recursively evaluate its dependencies, then
// pick whichever of true/false satisfies every clause in its defining
// group (Tseitin encodings are functional, so exactly one candidate
// will). This is a structural check, not a restatement of Blast.
func evalLit(dag *cnf.DagCnf, l literal.Lit, ctx map[string]bool, vars map[string]literal.Var) bool {
	assign := map[literal.Var]bool{}
	for name, v := range vars {
		assign[v] = ctx[name]
	}
	memo := map[literal.Var]bool{}
	val := evalVar(dag, l.Var(), assign, memo)
	if !l.Polarity() {
		val = !val
	}
	return val
}

func evalVar(dag *cnf.DagCnf, v literal.Var, assign, memo map[literal.Var]bool) bool {
	if val, ok := memo[v]; ok {
		return val
	}
	if val, ok := assign[v]; ok {
		memo[v] = val
		return val
	}
	if v == literal.ConstVar {
		memo[v] = true
		return true
	}
	for _, dep := range dag.Dep(v) {
		evalVar(dag, dep, assign, memo)
	}
	for _, cand := range []bool{true, false} {
		memo[v] = cand
		if groupSatisfied(dag.Group(v), memo) {
			return cand
		}
	}
	panic("evalVar: no candidate satisfies the defining clause group")
}

func groupSatisfied(group literal.LitVvec, memo map[literal.Var]bool) bool {
	for _, cls := range group {
		satisfied := false
		for _, l := range cls {
			if memo[l.Var()] == l.Polarity() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func TestBlastMatchesDirectEvaluation(t *testing.T) {
	exprs := []string{
		"A & B",
		"A | B",
		"A ^ B",
		"!A",
		"A -> B",
		"A <-> B",
		"A nand B",
		"A nor B",
		"(A & B) | C",
		"!(A & B) | (C ^ D)",
	}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) { blastAndEvaluate(t, expr) })
	}
}

// TestGateForMatchesTruthTable checks GateFor's standalone gate
// evaluators against GenerateTruthTable's enumeration of every row for
// the corresponding two-input AST operator.
func TestGateForMatchesTruthTable(t *testing.T) {
	cases := []struct {
		expr string
		nt   NodeType
	}{
		{"A & B", NodeAnd},
		{"A | B", NodeOr},
		{"A ^ B", NodeXor},
		{"A nand B", NodeNand},
		{"A nor B", NodeNor},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			gate := GateFor(c.nt)
			if gate == nil {
				t.Fatalf("GateFor(%s) returned nil", c.nt)
			}
			table := GenerateTruthTable([]string{"A", "B"}, func(in ...bool) bool {
				return gate.Evaluate(in...)
			})

			ast, err := ParseExpression(c.expr)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			for _, row := range table.Rows {
				want, err := ast.Evaluate(row.Inputs)
				if err != nil {
					t.Fatalf("eval error: %v", err)
				}
				if row.Output != want {
					t.Errorf("%s under %v: gate says %v, AST says %v", c.expr, row.Inputs, row.Output, want)
				}
			}
		})
	}
}

// TestGenerateTruthTableFromAST checks the AST-driven table builder
// against direct evaluation of every row it produces, and against
// GenerateTruthTable's functional form for the same expression.
func TestGenerateTruthTableFromAST(t *testing.T) {
	ast, err := ParseExpression("(A & B) | !C")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	table, err := GenerateTruthTableFromAST(ast)
	if err != nil {
		t.Fatalf("truth table error: %v", err)
	}
	if len(table.Rows) != 8 {
		t.Fatalf("expected 8 rows for 3 variables, got %d", len(table.Rows))
	}

	fnTable := GenerateTruthTable(table.Variables, func(in ...bool) bool {
		return (in[0] && in[1]) || !in[2]
	})
	for i, row := range table.Rows {
		if row.Output != fnTable.Rows[i].Output {
			t.Errorf("row %d: AST table says %v, functional table says %v", i, row.Output, fnTable.Rows[i].Output)
		}
	}

	if s := table.String(); s == "" {
		t.Error("String() returned empty output for a non-empty table")
	}
}
