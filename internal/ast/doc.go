// Package ast models Bolt programs as a closed tree of statement and
// expression nodes.
//
// Every node keeps the token.Token it was built from, so TokenLiteral
// always reflects the original source text, and String renders a
// canonical, fully parenthesized form that the parser's precedence
// tests compare against. Statements are concatenated without
// separators, so the rendering of several statements does not always
// parse back to the same tree.
// There is no node for attribute sets, lists, paths, or any other
// compound literal — Bolt's grammar is deliberately small: let and
// return statements, blocks, identifiers, integer/bool/null/string literals,
// prefix and binary expressions, if/else, function literals, and calls.
package ast
