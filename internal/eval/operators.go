package eval

import (
	"github.com/boltlang/bolt/internal/bolterr"
	"github.com/boltlang/bolt/internal/object"
)

// isTruthy implements Bolt's truthiness rule, which is deliberately not
// symmetric with Go's or a hypothetical statically-typed language's:
// a Boolean is itself, Null is always false, an Integer is false only
// when exactly 0, and a Function is always false (it has no sensible
// truth value, so treating it as false rather than erroring keeps "if"
// total over every runtime value).
func isTruthy(val object.Value) bool {
	switch v := val.(type) {
	case *object.Boolean:
		return v.Value
	case *object.Null:
		return false
	case *object.Integer:
		return v.Value != 0
	case *object.Function:
		return false
	default:
		return true
	}
}

func evalPrefixExpr(operator string, right object.Value) (object.Value, error) {
	switch operator {
	case "!":
		return evalBangOperator(right)
	case "-":
		return evalMinusPrefixOperator(right)
	default:
		return nil, bolterr.Newf(bolterr.Eval, "unknown operator: %s%s", operator, right.Type())
	}
}

// evalBangOperator accepts only Boolean and Null operands, per spec:
// unlike "if"'s truthiness conversion, "!" is not total over every
// value — applying it to an Integer or Function is an Eval error.
func evalBangOperator(right object.Value) (object.Value, error) {
	switch v := right.(type) {
	case *object.Boolean:
		return object.NativeBool(!v.Value), nil
	case *object.Null:
		return object.TRUE, nil
	default:
		return nil, bolterr.Newf(bolterr.Eval, "unknown operator: !%s", right.Type())
	}
}

func evalMinusPrefixOperator(right object.Value) (object.Value, error) {
	intVal, ok := right.(*object.Integer)
	if !ok {
		return nil, bolterr.Newf(bolterr.Eval, "unknown operator: -%s", right.Type())
	}

	return &object.Integer{Value: -intVal.Value}, nil
}

// evalBinaryExpr dispatches on the concrete type of both operands.
// Arithmetic ("+ - * /") is defined only between two Integers.
// Comparison ("< > <= >= == !=") is defined between two Integers or
// between two Booleans; mixing kinds, or using arithmetic on Booleans,
// is always an Eval error.
func evalBinaryExpr(operator string, left, right object.Value) (object.Value, error) {
	leftInt, leftIsInt := left.(*object.Integer)
	rightInt, rightIsInt := right.(*object.Integer)
	if leftIsInt && rightIsInt {
		return evalIntegerBinaryExpr(operator, leftInt, rightInt)
	}

	leftBool, leftIsBool := left.(*object.Boolean)
	rightBool, rightIsBool := right.(*object.Boolean)
	if leftIsBool && rightIsBool {
		return evalBooleanBinaryExpr(operator, leftBool, rightBool)
	}

	return nil, bolterr.Newf(bolterr.Eval, "type mismatch: %s %s %s", left.Type(), operator, right.Type())
}

func evalIntegerBinaryExpr(operator string, left, right *object.Integer) (object.Value, error) {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}, nil
	case "-":
		return &object.Integer{Value: left.Value - right.Value}, nil
	case "*":
		return &object.Integer{Value: left.Value * right.Value}, nil
	case "/":
		return &object.Integer{Value: left.Value / right.Value}, nil
	case "<":
		return object.NativeBool(left.Value < right.Value), nil
	case ">":
		return object.NativeBool(left.Value > right.Value), nil
	case "<=":
		return object.NativeBool(left.Value <= right.Value), nil
	case ">=":
		return object.NativeBool(left.Value >= right.Value), nil
	case "==":
		return object.NativeBool(left.Value == right.Value), nil
	case "!=":
		return object.NativeBool(left.Value != right.Value), nil
	default:
		return nil, bolterr.Newf(bolterr.Eval, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalBooleanBinaryExpr only accepts the six comparison operators —
// arithmetic between two Booleans is always an error, there is no
// sense in which "true + false" means anything in Bolt.
func evalBooleanBinaryExpr(operator string, left, right *object.Boolean) (object.Value, error) {
	switch operator {
	case "==":
		return object.NativeBool(left.Value == right.Value), nil
	case "!=":
		return object.NativeBool(left.Value != right.Value), nil
	case "<":
		return object.NativeBool(!left.Value && right.Value), nil
	case ">":
		return object.NativeBool(left.Value && !right.Value), nil
	case "<=":
		return object.NativeBool(!left.Value || right.Value), nil
	case ">=":
		return object.NativeBool(left.Value || !right.Value), nil
	default:
		return nil, bolterr.Newf(bolterr.Eval, "unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}
