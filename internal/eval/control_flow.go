package eval

import (
	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/object"
)

// evalIfExpr evaluates the condition under Bolt's truthiness rule
// (isTruthy), not a hard Boolean-only check, then evaluates whichever
// arm applies. An "if" with no matching alternative evaluates to Null,
// the same as any other value-producing construct with nothing to
// produce.
func evalIfExpr(expr *ast.IfExpr, env *object.Environment) (object.Value, error) {
	cond, err := Eval(expr.Condition, env)
	if err != nil {
		return nil, err
	}

	if isTruthy(cond) {
		return Eval(expr.Consequence, env)
	} else if expr.Alternative != nil {
		return Eval(expr.Alternative, env)
	}

	return object.NULL, nil
}
