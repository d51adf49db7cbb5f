package main

import (
	"fmt"
	"os"

	"github.com/boltlang/bolt/internal/eval"
	"github.com/boltlang/bolt/internal/lexer"
	"github.com/boltlang/bolt/internal/object"
	"github.com/boltlang/bolt/internal/parser"
)

// evalSource runs the full scan -> parse -> evaluate pipeline over src
// in env, printing the evaluation error (if any) to stderr the way the
// teacher's evalExpression does, rather than returning a typed error
// all the way up to cobra's default error printer.
func evalSource(src string, env *object.Environment) (object.Value, bool) {
	p := parser.New(lexer.New(src))

	program, err := p.ParseProgram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)

		return nil, false
	}

	val, err := eval.Eval(program, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluation error: %v\n", err)

		return nil, false
	}

	return val, true
}
