// Package lexer turns Bolt source text into a stream of tokens.
//
// The scanner is a single pass over the input byte string with one
// character of lookahead, enough to disambiguate two-character operators
// (==, !=, <=, >=) from their one-character prefixes. It tracks line
// number only — Bolt diagnostics are line-granular, not column-granular.
package lexer
