package frontend

import (
	"fmt"
	"strings"
)

// TruthTableRow is one input assignment and the function's output under
// it.
type TruthTableRow struct {
	Inputs map[string]bool
	Output bool
}

// TruthTable is the full 2^n row table for a boolean function of n named
// variables.
type TruthTable struct {
	Variables []string
	Rows      []TruthTableRow
}

// GenerateTruthTable enumerates every assignment of variables and
// evaluates fn over each, in the order fn expects its positional
// arguments.
func GenerateTruthTable(variables []string, fn func(...bool) bool) *TruthTable {
	n := len(variables)
	numRows := 1 << n
	table := &TruthTable{Variables: append([]string(nil), variables...), Rows: make([]TruthTableRow, numRows)}

	for i := 0; i < numRows; i++ {
		inputs := make(map[string]bool, n)
		args := make([]bool, n)
		for j := 0; j < n; j++ {
			v := (i>>(n-1-j))&1 == 1
			inputs[variables[j]] = v
			args[j] = v
		}
		table.Rows[i] = TruthTableRow{Inputs: inputs, Output: fn(args...)}
	}
	return table
}

// GenerateTruthTableFromAST builds a TruthTable by evaluating ast
// directly — Gate's companion for checking a parsed expression's full
// truth table against a blasted DagCnf.
func GenerateTruthTableFromAST(ast *ASTNode) (*TruthTable, error) {
	variables := ast.Variables()
	table := &TruthTable{Variables: variables}
	n := len(variables)
	for i := 0; i < 1<<n; i++ {
		ctx := EvaluationContext{}
		for j, name := range variables {
			ctx[name] = (i>>(n-1-j))&1 == 1
		}
		out, err := ast.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, TruthTableRow{Inputs: map[string]bool(ctx), Output: out})
	}
	return table, nil
}

// String renders the table with 'T'/'F' columns, one per variable, and
// a final Output column.
func (tt *TruthTable) String() string {
	if len(tt.Rows) == 0 {
		return "Empty truth table\n"
	}
	var b strings.Builder
	for _, v := range tt.Variables {
		fmt.Fprintf(&b, "%-8s", v)
	}
	b.WriteString("Output\n")
	b.WriteString(strings.Repeat("-", len(tt.Variables)*8+6))
	b.WriteString("\n")
	for _, row := range tt.Rows {
		for _, v := range tt.Variables {
			if row.Inputs[v] {
				b.WriteString("T       ")
			} else {
				b.WriteString("F       ")
			}
		}
		if row.Output {
			b.WriteString("T")
		} else {
			b.WriteString("F")
		}
		b.WriteString("\n")
	}
	return b.String()
}
