package frontend

// IsTautology reports whether ast evaluates to true under every
// assignment of its variables.
func IsTautology(ast *ASTNode) (bool, error) {
	vars := ast.Variables()
	n := len(vars)
	for i := 0; i < 1<<n; i++ {
		ctx := EvaluationContext{}
		for j, name := range vars {
			ctx[name] = (i>>j)&1 == 1
		}
		v, err := ast.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

// IsContradiction reports whether ast evaluates to false under every
// assignment of its variables.
func IsContradiction(ast *ASTNode) (bool, error) {
	vars := ast.Variables()
	n := len(vars)
	for i := 0; i < 1<<n; i++ {
		ctx := EvaluationContext{}
		for j, name := range vars {
			ctx[name] = (i>>j)&1 == 1
		}
		v, err := ast.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		if v {
			return false, nil
		}
	}
	return true, nil
}

// IsContingent reports whether ast is neither a tautology nor a
// contradiction — true under some assignment and false under another.
func IsContingent(ast *ASTNode) (bool, error) {
	vars := ast.Variables()
	n := len(vars)
	hasTrue, hasFalse := false, false
	for i := 0; i < 1<<n; i++ {
		ctx := EvaluationContext{}
		for j, name := range vars {
			ctx[name] = (i>>j)&1 == 1
		}
		v, err := ast.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		if v {
			hasTrue = true
		} else {
			hasFalse = true
		}
		if hasTrue && hasFalse {
			return true, nil
		}
	}
	return false, nil
}
