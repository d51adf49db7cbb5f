// Package eval walks an internal/ast.Program and computes
// internal/object values from it, threading a chained
// *object.Environment the way the teacher interpreter's pkg/eval does,
// but over Bolt's statement-and-expression grammar instead of Nix's
// expression-only one: let/return/block statements, truthiness
// conversion in "if", a return sentinel that only unwraps at a call
// boundary, and functions that bind their full parameter list in one
// call rather than currying one argument at a time.
package eval
