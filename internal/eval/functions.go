package eval

import (
	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/bolterr"
	"github.com/boltlang/bolt/internal/object"
)

// evalCallExpr evaluates the callee and every argument (left to
// right), then applies them all at once. Unlike the teacher
// interpreter's single-parameter curried application, Bolt functions
// bind their entire parameter list positionally in one call.
func evalCallExpr(expr *ast.CallExpr, env *object.Environment) (object.Value, error) {
	fn, err := Eval(expr.Function, env)
	if err != nil {
		return nil, err
	}

	args, err := evalExpressions(expr.Arguments, env)
	if err != nil {
		return nil, err
	}

	return applyFunction(fn, args)
}

func evalExpressions(exprs []ast.Expr, env *object.Environment) ([]object.Value, error) {
	result := make([]object.Value, 0, len(exprs))

	for _, e := range exprs {
		val, err := Eval(e, env)
		if err != nil {
			return nil, err
		}

		result = append(result, val)
	}

	return result, nil
}

// applyFunction binds args positionally into a fresh environment
// enclosed by the function's CAPTURED environment — not the caller's —
// which is what gives Bolt closures lexical rather than dynamic scope.
// The call boundary is also where a ReturnValue sentinel produced by
// the body is unwrapped back into the plain value it carries; nothing
// calling Eval on the body itself ever sees the sentinel escape.
func applyFunction(fn object.Value, args []object.Value) (object.Value, error) {
	function, ok := fn.(*object.Function)
	if !ok {
		return nil, bolterr.Newf(bolterr.Eval, "not a function: %s", fn.Type())
	}

	if len(args) != len(function.Parameters) {
		return nil, bolterr.Newf(bolterr.Eval,
			"wrong number of arguments: want %d, got %d", len(function.Parameters), len(args))
	}

	callEnv := object.NewEnclosedEnvironment(function.Env)
	for i, param := range function.Parameters {
		callEnv.Set(param.Value, args[i])
	}

	evaluated, err := Eval(function.Body, callEnv)
	if err != nil {
		return nil, err
	}

	if rv, ok := evaluated.(*object.ReturnValue); ok {
		return rv.Value, nil
	}

	return evaluated, nil
}
