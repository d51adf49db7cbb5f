package parser

import "github.com/boltlang/bolt/internal/token"

// Precedence levels, lowest to highest, per the grammar's binding
// rules. PREFIX binds unary "!"/"-"; it is never looked up in
// precedences — parsePrefixExpr always recurses at PREFIX directly.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // fn(x)
)

// precedences maps an infix operator token to its binding power. CALL
// binds the "(" that starts an argument list.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}
