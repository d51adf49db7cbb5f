package parser

import (
	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/token"
)

// parsePrefixExpr handles "!x" and "-x". Both recurse at PREFIX
// precedence, so "-x * y" parses as "(-x) * y", not "-(x * y)".
func (p *Parser) parsePrefixExpr() ast.Expr {
	expr := &ast.PrefixExpr{Token: p.cur, Operator: p.cur.Literal}

	p.advance()

	expr.Right = p.parseExpression(PREFIX)

	return expr
}

// parseBinaryExpr handles every infix operator (+, -, *, /, ==, !=, <,
// >, <=, >=). It captures the operator's own precedence before
// advancing, so left-associative chains like "1 + 2 + 3" nest as
// "(1 + 2) + 3" rather than right-associating.
func (p *Parser) parseBinaryExpr(left ast.Expr) ast.Expr {
	expr := &ast.BinaryExpr{Token: p.cur, Operator: p.cur.Literal, Left: left}

	precedence := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)

	return expr
}

// parseCallExpr is the "(" infix handler: it treats its left operand as
// the callee and parses a comma-separated argument list up to the
// matching ")".
func (p *Parser) parseCallExpr(fn ast.Expr) ast.Expr {
	expr := &ast.CallExpr{Token: p.cur, Function: fn}
	expr.Arguments = p.parseExpressionList(token.RPAREN)

	return expr
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expr {
	list := []ast.Expr{}

	if p.peekIs(end) {
		p.advance()

		return list
	}

	p.advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseFnLit parses "fn(<params>) <body>": a parenthesized,
// comma-separated parameter list followed by a brace-delimited block.
func (p *Parser) parseFnLit() ast.Expr {
	lit := &ast.FnLit{Token: p.cur}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFnParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStmt()

	return lit
}

func (p *Parser) parseFnParameters() []*ast.Ident {
	idents := []*ast.Ident{}

	if p.peekIs(token.RPAREN) {
		p.advance()

		return idents
	}

	p.advance()
	idents = append(idents, &ast.Ident{Token: p.cur, Value: p.cur.Literal})

	for p.peekIs(token.COMMA) {
		p.advance()
		p.advance()
		idents = append(idents, &ast.Ident{Token: p.cur, Value: p.cur.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return idents
}
