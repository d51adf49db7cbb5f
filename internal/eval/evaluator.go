// Package eval implements Bolt's tree-walking evaluator: a single Eval
// function that dispatches on the concrete ast.Node type, threading an
// *object.Environment through every recursive call.
package eval

import (
	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/bolterr"
	"github.com/boltlang/bolt/internal/object"
)

// Eval evaluates node in env, returning the resulting Value or an
// *bolterr.Error with Kind Eval.
//
// Eval never unwraps an *object.ReturnValue itself except at the one
// point spec.md requires: a function call unwraps the value its body
// produced. Every other recursive call — block-statement evaluation
// and top-level Program evaluation alike — propagates a ReturnValue
// completely unchanged, which is what lets "return" inside a nested
// if-block escape all the way out to the enclosing function call, and
// what lets a caller of Eval on a whole program see that its last
// effective statement was a return.
func Eval(node ast.Node, env *object.Environment) (object.Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return evalProgram(n, env)

	case *ast.ExprStmt:
		return Eval(n.Expression, env)

	case *ast.BlockStmt:
		return evalBlockStatement(n, env)

	case *ast.LetStmt:
		val, err := Eval(n.Value, env)
		if err != nil {
			return nil, err
		}

		env.Set(n.Name.Value, val)

		return object.NULL, nil

	case *ast.ReturnStmt:
		val, err := Eval(n.ReturnValue, env)
		if err != nil {
			return nil, err
		}

		return &object.ReturnValue{Value: val}, nil

	case *ast.IntLit:
		return &object.Integer{Value: n.Value}, nil

	case *ast.BoolLit:
		return object.NativeBool(n.Value), nil

	case *ast.NullLit:
		return object.NULL, nil

	case *ast.StringLit:
		return nil, bolterr.New(bolterr.Eval, "strings have no runtime value in Bolt")

	case *ast.Ident:
		return evalIdent(n, env)

	case *ast.PrefixExpr:
		right, err := Eval(n.Right, env)
		if err != nil {
			return nil, err
		}

		return evalPrefixExpr(n.Operator, right)

	case *ast.BinaryExpr:
		left, err := Eval(n.Left, env)
		if err != nil {
			return nil, err
		}

		right, err := Eval(n.Right, env)
		if err != nil {
			return nil, err
		}

		return evalBinaryExpr(n.Operator, left, right)

	case *ast.IfExpr:
		return evalIfExpr(n, env)

	case *ast.FnLit:
		return &object.Function{Parameters: n.Parameters, Body: n.Body, Env: env}, nil

	case *ast.CallExpr:
		return evalCallExpr(n, env)

	default:
		return nil, bolterr.Newf(bolterr.Internal, "no evaluation rule for %T", node)
	}
}

// evalProgram evaluates each top-level statement in order. It
// deliberately does NOT unwrap a ReturnValue: a program whose last
// effective statement is a "return" yields that ReturnValue to the
// caller unchanged, exactly like evalBlockStatement below. Only
// evalCallExpr unwraps one, when a function body returns.
func evalProgram(program *ast.Program, env *object.Environment) (object.Value, error) {
	var result object.Value = object.NULL

	for _, stmt := range program.Statements {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}

		result = val

		if result != nil && result.Type() == object.RETURN_OBJ {
			return result, nil
		}
	}

	return result, nil
}

// evalBlockStatement evaluates each statement in a block in order. It
// deliberately does NOT unwrap a ReturnValue: returning it unchanged
// from a nested if-block is what lets the enclosing function call see
// that a return happened, rather than treating the block's last
// expression value as the function's result.
func evalBlockStatement(block *ast.BlockStmt, env *object.Environment) (object.Value, error) {
	var result object.Value = object.NULL

	for _, stmt := range block.Statements {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}

		result = val

		if result != nil && result.Type() == object.RETURN_OBJ {
			return result, nil
		}
	}

	return result, nil
}

func evalIdent(node *ast.Ident, env *object.Environment) (object.Value, error) {
	if val, ok := env.Get(node.Value); ok {
		return val, nil
	}

	return nil, bolterr.Newf(bolterr.Eval, "identifier not found: %s", node.Value)
}
