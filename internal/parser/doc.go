// Package parser implements a Pratt parser over internal/lexer's token
// stream, producing an internal/ast.Program.
//
// The precedence-climbing core (parseExpression, the prefix/infix
// function tables) follows the same shape as the teacher interpreter's
// pkg/parser, generalized from Nix's expression-only grammar to Bolt's
// statement-and-expression grammar: "let" and "return" are statements,
// "if" requires a parenthesized condition and brace-delimited arms, and
// function literals take an explicit, comma-separated parameter list
// rather than a single curried parameter.
package parser
