package parser

import (
	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/token"
)

// parseIfExpr parses "if (<cond>) <block> [else <block>]". Unlike the
// teacher's Nix-derived "then"/"else" expression form, Bolt's condition
// is mandatorily parenthesized and both arms are brace-delimited
// statement blocks, never bare expressions.
func (p *Parser) parseIfExpr() ast.Expr {
	expr := &ast.IfExpr{Token: p.cur}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.advance()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expr.Consequence = p.parseBlockStmt()

	if p.peekIs(token.ELSE) {
		p.advance()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expr.Alternative = p.parseBlockStmt()
	}

	return expr
}
