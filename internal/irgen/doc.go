// Package irgen is Bolt's second back end: instead of walking the AST
// to compute a value directly (internal/eval), it walks the AST to
// build an ir.Module from github.com/llir/llvm that an external
// assembler/linker toolchain can turn into an object file.
//
// This backend implements a strict subset of what internal/eval
// implements, and several of its behaviors are deliberate, documented
// quirks rather than bugs:
//
//   - Only "+" (fadd) and "*" (fmul) are lowered; every other binary
//     operator internal/eval accepts is an Internal error here.
//   - The module's "main" function always returns void, regardless of
//     what the source program's top-level statements compute.
//   - An "if" expression's consequence branch always terminates the
//     function it appears in with "ret void" — the alternative branch,
//     if present, falls through normally.
//   - A "let" whose right-hand side is itself an identifier ("let b =
//     a") emits a call to an external printf intrinsic that prints the
//     newly bound name. The trigger is the shape of the right-hand side,
//     not whether the name was already bound.
package irgen
