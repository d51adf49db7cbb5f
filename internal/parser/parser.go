// Package parser implements Bolt's Pratt (precedence-climbing) parser:
// cur/peek token pair, a prefix-parse-function table keyed by token
// type for literals and unary forms, and an infix-parse-function table
// keyed by token type for binary operators and calls.
package parser

import (
	"strconv"

	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/bolterr"
	"github.com/boltlang/bolt/internal/lexer"
	"github.com/boltlang/bolt/internal/token"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parser turns a token stream into a *ast.Program. A syntax error
// recorded in errs aborts ParseProgram's statement loop immediately.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errs bolterr.List

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over l, priming cur/peek with two advances and
// registering every prefix/infix parse function.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdent)
	p.registerPrefix(token.INT, p.parseIntLit)
	p.registerPrefix(token.TRUE, p.parseBoolLit)
	p.registerPrefix(token.FALSE, p.parseBoolLit)
	p.registerPrefix(token.NULL, p.parseNullLit)
	p.registerPrefix(token.STRING, p.parseStringLit)
	p.registerPrefix(token.BANG, p.parsePrefixExpr)
	p.registerPrefix(token.MINUS, p.parsePrefixExpr)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpr)
	p.registerPrefix(token.IF, p.parseIfExpr)
	p.registerPrefix(token.FUNCTION, p.parseFnLit)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	p.registerInfix(token.PLUS, p.parseBinaryExpr)
	p.registerInfix(token.MINUS, p.parseBinaryExpr)
	p.registerInfix(token.SLASH, p.parseBinaryExpr)
	p.registerInfix(token.ASTERISK, p.parseBinaryExpr)
	p.registerInfix(token.EQ, p.parseBinaryExpr)
	p.registerInfix(token.NOT_EQ, p.parseBinaryExpr)
	p.registerInfix(token.LT, p.parseBinaryExpr)
	p.registerInfix(token.GT, p.parseBinaryExpr)
	p.registerInfix(token.LTE, p.parseBinaryExpr)
	p.registerInfix(token.GTE, p.parseBinaryExpr)
	p.registerInfix(token.LPAREN, p.parseCallExpr)

	p.advance()
	p.advance()

	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expectPeek advances past peek if it matches t, otherwise records a
// Parse error and leaves the cursor unmoved.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekIs(t) {
		p.advance()

		return true
	}

	p.errs.Addf(p.peek.Line, "expected next token to be %s, got %s instead", t, p.peek.Type)

	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		return prec
	}

	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}

	return LOWEST
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*bolterr.Error { return p.errs.Errors() }

// ParseProgram parses the full token stream into a *ast.Program,
// looping until a clean end of input. A syntax error from any
// statement aborts the program immediately — the loop does not
// resynchronize and keep parsing past it, it returns the first error
// it sees.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Statements: []ast.Stmt{}}

	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if p.errs.HasErrors() {
			return program, p.errs.Err()
		}

		program.Statements = append(program.Statements, stmt)
		p.advance()
	}

	return program, nil
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Type {
	case token.LET:
		return p.parseLetStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	stmt := &ast.LetStmt{Token: p.cur}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Ident{Token: p.cur, Value: p.cur.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.advance()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}

	return stmt
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	stmt := &ast.ReturnStmt{Token: p.cur}

	p.advance()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}

	return stmt
}

func (p *Parser) parseExprStmt() ast.Stmt {
	stmt := &ast.ExprStmt{Token: p.cur}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekIs(token.SEMICOLON) {
		p.advance()
	}

	return stmt
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	block := &ast.BlockStmt{Token: p.cur, Statements: []ast.Stmt{}}

	p.advance()

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if p.errs.HasErrors() {
			return block
		}

		block.Statements = append(block.Statements, stmt)
		p.advance()
	}

	return block
}

// parseExpression is the Pratt loop: dispatch to the registered prefix
// function for cur (the "nud"), then repeatedly dispatch to the
// registered infix function for peek (the "led") as long as peek binds
// tighter than precedence.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.errs.Addf(p.cur.Line, "no prefix parse function for %s found", p.cur.Type)

		return nil
	}

	left := prefix()

	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			return left
		}

		p.advance()

		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdent() ast.Expr {
	return &ast.Ident{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseIntLit() ast.Expr {
	lit := &ast.IntLit{Token: p.cur}

	value, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.errs.Addf(p.cur.Line, "could not parse %q as a number", p.cur.Literal)

		return nil
	}

	lit.Value = value

	return lit
}

func (p *Parser) parseBoolLit() ast.Expr {
	return &ast.BoolLit{Token: p.cur, Value: p.curIs(token.TRUE)}
}

func (p *Parser) parseNullLit() ast.Expr {
	return &ast.NullLit{Token: p.cur}
}

func (p *Parser) parseStringLit() ast.Expr {
	return &ast.StringLit{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.advance()

	exp := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}
