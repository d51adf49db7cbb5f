package eval

import (
	"testing"

	"github.com/boltlang/bolt/internal/lexer"
	"github.com/boltlang/bolt/internal/object"
	"github.com/boltlang/bolt/internal/parser"
)

func testEval(t *testing.T, input string) (object.Value, error) {
	t.Helper()

	l := lexer.New(input)
	p := parser.New(l)

	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	env := object.NewEnvironment()

	return Eval(program, env)
}

func testIntegerValue(t *testing.T, val object.Value, expected float64) {
	t.Helper()

	if rv, ok := val.(*object.ReturnValue); ok {
		val = rv.Value
	}

	result, ok := val.(*object.Integer)
	if !ok {
		t.Fatalf("value is not *object.Integer. got=%T (%+v)", val, val)
	}

	if result.Value != expected {
		t.Fatalf("value.Value not %v. got=%v", expected, result.Value)
	}
}

func testBooleanValue(t *testing.T, val object.Value, expected bool) {
	t.Helper()

	result, ok := val.(*object.Boolean)
	if !ok {
		t.Fatalf("value is not *object.Boolean. got=%T (%+v)", val, val)
	}

	if result.Value != expected {
		t.Fatalf("value.Value not %t. got=%t", expected, result.Value)
	}
}

func testNullValue(t *testing.T, val object.Value) {
	t.Helper()

	if val != object.NULL {
		t.Fatalf("value is not NULL. got=%T (%+v)", val, val)
	}
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"-50 + 100 + -50", 0},
		{"5 * 2 + 10", 20},
		{"5 + 2 * 10", 25},
		{"20 + 2 * -10", 0},
		{"50 / 2 * 2 + 10", 60},
		{"2 * (5 + 10)", 30},
		{"3 * 3 * 3 + 10", 37},
		{"3 * (3 * 3) + 10", 37},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		testIntegerValue(t, val, tt.expected)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 < 1", false},
		{"1 > 1", false},
		{"1 <= 1", true},
		{"1 >= 1", true},
		{"1 == 1", true},
		{"1 != 1", false},
		{"1 == 2", false},
		{"1 != 2", true},
		{"true == true", true},
		{"false == false", true},
		{"true == false", false},
		{"true != false", true},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		testBooleanValue(t, val, tt.expected)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!!true", true},
		{"!!false", false},
		{"!null", true},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		testBooleanValue(t, val, tt.expected)
	}
}

func TestBangOnIntegerIsError(t *testing.T) {
	_, err := testEval(t, "!5")
	if err == nil {
		t.Fatalf("expected an error, got none")
	}
}

// TestTruthinessOfIntegerInIf exercises the asymmetry documented in
// internal/eval/operators.go: "if" uses truthiness (0 is false, any
// other number is true), unlike "!" which flatly rejects Integer.
func TestTruthinessOfIntegerInIf(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"if (0) { 10 } else { 20 }", 20},
		{"if (1) { 10 } else { 20 }", 10},
		{"if (-1) { 10 } else { 20 }", 10},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		testIntegerValue(t, val, tt.expected)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"if (true) { 10 }", 10.0},
		{"if (false) { 10 }", nil},
		{"if (1 < 2) { 10 }", 10.0},
		{"if (1 > 2) { 10 }", nil},
		{"if (1 > 2) { 10 } else { 20 }", 20.0},
		{"if (1 < 2) { 10 } else { 20 }", 10.0},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		if expected, ok := tt.expected.(float64); ok {
			testIntegerValue(t, val, expected)
		} else {
			testNullValue(t, val)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{
			`
if (10 > 1) {
  if (10 > 1) {
    return 10;
  }

  return 1;
}
`,
			10,
		},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		testIntegerValue(t, val, tt.expected)
	}
}

// TestTopLevelReturnStaysWrapped locks in that evaluating a whole
// Program never unwraps a trailing ReturnValue: only a CallExpr
// unwraps one, when a function body returns. A Program behaves exactly
// like a block statement in this respect.
func TestTopLevelReturnStaysWrapped(t *testing.T) {
	input := `
if (true) {
  if (true) {
    if (false) { return 1 } else { return 10 }
    return 20
  }
  return 30
}
`

	val, err := testEval(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rv, ok := val.(*object.ReturnValue)
	if !ok {
		t.Fatalf("top-level result is not *object.ReturnValue, unwrapped early. got=%T (%+v)", val, val)
	}

	testIntegerValue(t, rv.Value, 10)
}

func TestErrorHandling(t *testing.T) {
	tests := []string{
		"true + false;",
		"5 + true;",
		"-true;",
		"if (true) { true + false; }",
		"foobar;",
		`"hello";`,
	}

	for _, input := range tests {
		_, err := testEval(t, input)
		if err == nil {
			t.Fatalf("input %q: expected an error, got none", input)
		}
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		testIntegerValue(t, val, tt.expected)
	}
}

// TestLetRebindVisibleToEarlierClosures exercises environment.go's Set
// semantics together with the fact that a block statement does not
// open its own environment frame — only a function call does — so a
// closure created earlier in the same frame as a later "let" observes
// the rebind, because both share the one underlying map.
func TestLetRebindVisibleToEarlierClosures(t *testing.T) {
	val, err := testEval(t, `
let counter = fn(start) {
  let bump = fn() { return start + 1; };
  let start = 999;
  return bump();
};
counter(5);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testIntegerValue(t, val, 1000)
}

func TestFunctionObject(t *testing.T) {
	val, err := testEval(t, "fn(x) { x + 2; };")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fn, ok := val.(*object.Function)
	if !ok {
		t.Fatalf("value is not *object.Function. got=%T", val)
	}

	if len(fn.Parameters) != 1 {
		t.Fatalf("function has wrong parameters. got=%+v", fn.Parameters)
	}

	if fn.Parameters[0].String() != "x" {
		t.Fatalf("parameter is not 'x'. got=%q", fn.Parameters[0].String())
	}
}

func TestFunctionApplication(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"let identity = fn(x) { x; }; identity(5);", 5},
		{"let identity = fn(x) { return x; }; identity(5);", 5},
		{"let double = fn(x) { x * 2; }; double(5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5, 5);", 10},
		{"let add = fn(x, y) { x + y; }; add(5 + 5, add(5, 5));", 20},
		{"fn(x) { x; }(5)", 5},
	}

	for _, tt := range tests {
		val, err := testEval(t, tt.input)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		testIntegerValue(t, val, tt.expected)
	}
}

func TestClosures(t *testing.T) {
	val, err := testEval(t, `
let newAdder = fn(x) {
  return fn(y) { x + y; };
};

let addTwo = newAdder(2);
addTwo(8);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testIntegerValue(t, val, 10)
}
