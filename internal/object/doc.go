// Package object defines the values Bolt programs compute over —
// Integer, Boolean, Null, Function — and the chained Environment they
// are bound in.
//
// Boolean and Null each have exactly one live instance (TRUE, FALSE,
// NULL); the evaluator returns these singletons rather than allocating,
// the way the teacher interpreter's value package does for its own
// constant values. ReturnValue exists purely as an internal unwind
// marker: nothing outside internal/eval ever inspects one directly.
package object
