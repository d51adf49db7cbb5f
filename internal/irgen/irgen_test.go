package irgen

import (
	"strings"
	"testing"

	"github.com/boltlang/bolt/internal/lexer"
	"github.com/boltlang/bolt/internal/parser"
)

func emitProgram(t *testing.T, input string) string {
	t.Helper()

	p := parser.New(lexer.New(input))

	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	module, err := New().Emit(program)
	if err != nil {
		t.Fatalf("emit error: %v", err)
	}

	return module.String()
}

func TestEmitMainAlwaysReturnsVoid(t *testing.T) {
	out := emitProgram(t, "1 + 2;")

	if !strings.Contains(out, "define void @main()") {
		t.Fatalf("expected main to return void, got:\n%s", out)
	}
}

func TestEmitFunctionDeclaration(t *testing.T) {
	out := emitProgram(t, "let add = fn(x, y) { x + y; };")

	if !strings.Contains(out, "@add") {
		t.Fatalf("expected a function named add, got:\n%s", out)
	}

	if !strings.Contains(out, "fadd") {
		t.Fatalf("expected + to lower to fadd, got:\n%s", out)
	}
}

func TestEmitMultiplyLowersToFMul(t *testing.T) {
	out := emitProgram(t, "let mul = fn(x, y) { x * y; };")

	if !strings.Contains(out, "fmul") {
		t.Fatalf("expected * to lower to fmul, got:\n%s", out)
	}
}

func TestEmitUnsupportedOperatorIsError(t *testing.T) {
	p := parser.New(lexer.New("let sub = fn(x, y) { x - y; };"))

	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if _, err := New().Emit(program); err == nil {
		t.Fatalf("expected an error lowering '-', got none")
	}
}

// TestEmitRebindThroughIdentifierCallsPrintf locks in that the rebind
// diagnostic's trigger is syntactic: "let b = a" rebinds through an
// identifier RHS and must fire the diagnostic print.
func TestEmitRebindThroughIdentifierCallsPrintf(t *testing.T) {
	out := emitProgram(t, "let a = 5; let b = a;")

	if !strings.Contains(out, "call i32 (i8*, ...) @printf") {
		t.Fatalf("expected a printf call for the rebind-through-identifier diagnostic, got:\n%s", out)
	}
}

// TestEmitSameNameRebindWithoutIdentifierRHSSkipsPrintf locks in the
// other half of the trigger condition: rebinding the same name with a
// non-identifier RHS is not itself a rebind-through-identifier, so no
// diagnostic print is emitted even though the name already had a slot.
func TestEmitSameNameRebindWithoutIdentifierRHSSkipsPrintf(t *testing.T) {
	out := emitProgram(t, "let a = 5; let a = 10;")

	if strings.Contains(out, "call i32 (i8*, ...) @printf") {
		t.Fatalf("did not expect a printf call, got:\n%s", out)
	}
}
