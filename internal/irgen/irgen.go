// Package irgen lowers a Bolt internal/ast.Program to an LLVM-style
// module using github.com/llir/llvm, the alternative back end spec.md
// describes alongside the tree-walking evaluator. It is deliberately a
// much smaller subset of Bolt than internal/eval covers: only the
// arithmetic and control-flow shapes spec.md's IR section names are
// implemented, and several of its behaviors are documented quirks
// carried over verbatim rather than bugs to fix (see the package-level
// doc comment).
package irgen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/bolterr"
)

// Emitter walks a Program once and builds a single *ir.Module. It is
// not reentrant: create a new Emitter per Program.
type Emitter struct {
	module *ir.Module

	main       *ir.Func
	mainBlock  *ir.Block
	mainClosed bool // true once main's entry block has a terminator

	printf    *ir.Func
	rebindFmt *ir.Global

	funcs map[string]*ir.Func

	strCount int
}

// New creates an Emitter with an empty module, a void-returning "main"
// function (per the documented quirk that main always returns void,
// regardless of whether the source program's last statement produces
// a value), and the external printf declaration the rebind diagnostic
// hook calls into.
func New() *Emitter {
	m := ir.NewModule()

	main := m.NewFunc("main", types.Void)
	block := main.NewBlock("entry")

	e := &Emitter{
		module:    m,
		main:      main,
		mainBlock: block,
		funcs:     make(map[string]*ir.Func),
	}

	e.declarePrintf()

	return e
}

func (e *Emitter) declarePrintf() {
	param := ir.NewParam("", types.NewPointer(types.I8))
	e.printf = e.module.NewFunc("printf", types.I32, param)
	e.printf.Sig.Variadic = true

	data := constant.NewCharArrayFromString("bolt: rebind %s\n\x00")
	e.rebindFmt = e.module.NewGlobalDef(".rebind.fmt", data)
}

// Emit lowers program into the Emitter's module, returning the
// completed module or the first *bolterr.Error encountered.
func (e *Emitter) Emit(program *ast.Program) (*ir.Module, error) {
	scope := newScope(nil)

	for _, stmt := range program.Statements {
		if err := e.emitTopLevelStmt(stmt, scope); err != nil {
			return nil, err
		}
	}

	if !e.mainClosed {
		e.mainBlock.NewRet(nil)
		e.mainClosed = true
	}

	return e.module, nil
}

// emitTopLevelStmt handles the one case internal/eval doesn't need to
// special-case at this level: "let name = fn(...) {...}" becomes a
// named LLVM function rather than a value computed inside main. Every
// other statement is emitted into main's body.
func (e *Emitter) emitTopLevelStmt(stmt ast.Stmt, scope *scope) error {
	if let, ok := stmt.(*ast.LetStmt); ok {
		if fn, ok := let.Value.(*ast.FnLit); ok {
			return e.emitFunctionDecl(let.Name.Value, fn)
		}
	}

	return e.emitStmt(stmt, e.main, e.mainBlock, scope)
}

// emitFunctionDecl compiles a function literal bound at the top level
// into a standalone LLVM function taking and returning doubles — the
// only numeric type Bolt has.
func (e *Emitter) emitFunctionDecl(name string, fn *ast.FnLit) error {
	params := make([]*ir.Param, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		params = append(params, ir.NewParam(p.Value, types.Double))
	}

	irFn := e.module.NewFunc(name, types.Double, params...)
	e.funcs[name] = irFn

	block := irFn.NewBlock("entry")

	fnScope := newScope(nil)
	for _, p := range fn.Parameters {
		fnScope.set(p.Value, irFn.Params[len(fnScope.vars)])
	}

	result, _, err := e.emitBlock(fn.Body, irFn, block, fnScope)
	if err != nil {
		return err
	}

	if block.Term == nil {
		if result == nil {
			result = constant.NewFloat(types.Double, 0)
		}
		block.NewRet(result)
	}

	return nil
}

// scope is a flat map of local SSA values, one per LLVM function body.
// Bolt has no block-scoping distinct from function-scoping (spec.md
// §4.5), so the backend keeps a single flat scope per function. Unlike
// internal/eval's environment chain, a function's scope has no parent:
// top-level bindings are not visible inside a function body.
type scope struct {
	vars map[string]value.Value
}

func newScope(_ *scope) *scope { return &scope{vars: make(map[string]value.Value)} }

func (s *scope) get(name string) (value.Value, bool) { v, ok := s.vars[name]; return v, ok }

func (s *scope) set(name string, v value.Value) { s.vars[name] = v }

// emitStmt emits one statement into block and returns only an error;
// it does not report the value the statement computed or a new current
// block.
func (e *Emitter) emitStmt(stmt ast.Stmt, fn *ir.Func, block *ir.Block, sc *scope) error {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		val, err := e.emitExpr(s.Value, fn, block, sc)
		if err != nil {
			return err
		}

		sc.set(s.Name.Value, val)

		// A rebind-through-identifier ("let b = a") is a documented
		// quirk: besides binding the value as above, the emitter calls
		// the diagnostic print intrinsic with the bound name. The value
		// itself is not printed. The trigger is syntactic — whether the
		// RHS is itself an identifier — not whether s.Name.Value was
		// already bound.
		if _, rebind := s.Value.(*ast.Ident); rebind {
			e.emitRebindDiagnostic(block, s.Name.Value)
		}

		return nil

	case *ast.ReturnStmt:
		val, err := e.emitExpr(s.ReturnValue, fn, block, sc)
		if err != nil {
			return err
		}

		block.NewRet(val)

		return nil

	case *ast.ExprStmt:
		_, err := e.emitExpr(s.Expression, fn, block, sc)

		return err

	default:
		return bolterr.Newf(bolterr.Internal, "irgen: no lowering for statement %T", stmt)
	}
}

// emitBlock emits every statement of a block in order, stopping early
// if a statement terminates the block (a return, or an if whose
// consequence ran). It returns the value of the block's final
// expression statement, if any, for use as an implicit function result.
func (e *Emitter) emitBlock(block *ast.BlockStmt, fn *ir.Func, irBlock *ir.Block, sc *scope) (value.Value, *ir.Block, error) {
	var last value.Value

	for _, stmt := range block.Statements {
		if irBlock.Term != nil {
			break
		}

		if es, ok := stmt.(*ast.ExprStmt); ok {
			val, err := e.emitExpr(es.Expression, fn, irBlock, sc)
			if err != nil {
				return nil, irBlock, err
			}

			last = val

			continue
		}

		if err := e.emitStmt(stmt, fn, irBlock, sc); err != nil {
			return nil, irBlock, err
		}
	}

	return last, irBlock, nil
}

func (e *Emitter) emitRebindDiagnostic(block *ir.Block, name string) {
	e.strCount++
	data := constant.NewCharArrayFromString(name + "\x00")
	g := e.module.NewGlobalDef(fmt.Sprintf(".rebind.name.%d", e.strCount), data)

	zero := constant.NewInt(types.I32, 0)
	fmtPtr := block.NewGetElementPtr(e.rebindFmt.ContentType, e.rebindFmt, zero, zero)
	namePtr := block.NewGetElementPtr(g.ContentType, g, zero, zero)

	block.NewCall(e.printf, fmtPtr, namePtr)
}

// emitExpr lowers an expression to an SSA value. Only two binary
// operators are implemented: fadd for "+" and fmul for "*" (unary "-"
// lowers to fsub in emitPrefixExpr). Every other BinaryExpr operator is a documented gap in this
// backend, not something the tree-walking evaluator also lacks — it
// fails with an Internal error here rather than silently producing a
// wrong result.
func (e *Emitter) emitExpr(expr ast.Expr, fn *ir.Func, block *ir.Block, sc *scope) (value.Value, error) {
	switch x := expr.(type) {
	case *ast.IntLit:
		return constant.NewFloat(types.Double, x.Value), nil

	case *ast.BoolLit:
		if x.Value {
			return constant.NewFloat(types.Double, 1), nil
		}

		return constant.NewFloat(types.Double, 0), nil

	case *ast.NullLit:
		return constant.NewFloat(types.Double, 0), nil

	case *ast.Ident:
		v, ok := sc.get(x.Value)
		if !ok {
			return nil, bolterr.NewAtf(bolterr.Eval, x.Token.Line, "irgen: undefined variable %q", x.Value)
		}

		return v, nil

	case *ast.PrefixExpr:
		return e.emitPrefixExpr(x, fn, block, sc)

	case *ast.BinaryExpr:
		return e.emitBinaryExpr(x, fn, block, sc)

	case *ast.IfExpr:
		return e.emitIfExpr(x, fn, block, sc)

	case *ast.CallExpr:
		return e.emitCallExpr(x, fn, block, sc)

	default:
		return nil, bolterr.Newf(bolterr.Internal, "irgen: no lowering for expression %T", expr)
	}
}

func (e *Emitter) emitPrefixExpr(expr *ast.PrefixExpr, fn *ir.Func, block *ir.Block, sc *scope) (value.Value, error) {
	right, err := e.emitExpr(expr.Right, fn, block, sc)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "-":
		return block.NewFSub(constant.NewFloat(types.Double, 0), right), nil
	default:
		return nil, bolterr.NewAtf(bolterr.Internal, expr.Token.Line,
			"irgen: operator %q not implemented by the IR backend", expr.Operator)
	}
}

// emitBinaryExpr implements exactly the two operators spec.md's IR
// section names: "+" lowers to fadd, "*" lowers to fmul. Comparison
// and the remaining arithmetic operators are accepted by
// internal/eval but not by this backend — that gap is intentional and
// documented, not an oversight.
func (e *Emitter) emitBinaryExpr(expr *ast.BinaryExpr, fn *ir.Func, block *ir.Block, sc *scope) (value.Value, error) {
	left, err := e.emitExpr(expr.Left, fn, block, sc)
	if err != nil {
		return nil, err
	}

	right, err := e.emitExpr(expr.Right, fn, block, sc)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "+":
		return block.NewFAdd(left, right), nil
	case "*":
		return block.NewFMul(left, right), nil
	default:
		return nil, bolterr.NewAtf(bolterr.Internal, expr.Token.Line,
			"irgen: operator %q not implemented by the IR backend", expr.Operator)
	}
}

// emitIfExpr lowers "if". Its consequence branch always terminates the
// enclosing function with "ret void", no matter what the function
// actually returns elsewhere — a deliberate, documented quirk of this
// backend, not a bug: spec.md's IR section describes the then-branch
// as unconditionally ending the function it's in. The else branch, if
// present, falls through to a continuation block normally.
func (e *Emitter) emitIfExpr(expr *ast.IfExpr, fn *ir.Func, block *ir.Block, sc *scope) (value.Value, error) {
	cond, err := e.emitExpr(expr.Condition, fn, block, sc)
	if err != nil {
		return nil, err
	}

	zero := constant.NewFloat(types.Double, 0)
	truthy := block.NewFCmp(enum.FPredONE, cond, zero)

	thenBlock := fn.NewBlock("")
	contBlock := fn.NewBlock("")

	var elseBlock *ir.Block
	if expr.Alternative != nil {
		elseBlock = fn.NewBlock("")
		block.NewCondBr(truthy, thenBlock, elseBlock)
	} else {
		block.NewCondBr(truthy, thenBlock, contBlock)
	}

	if _, _, err := e.emitBlock(expr.Consequence, fn, thenBlock, sc); err != nil {
		return nil, err
	}
	if thenBlock.Term == nil {
		thenBlock.NewRet(nil)
	}

	if elseBlock != nil {
		if _, _, err := e.emitBlock(expr.Alternative, fn, elseBlock, sc); err != nil {
			return nil, err
		}
		if elseBlock.Term == nil {
			elseBlock.NewBr(contBlock)
		}
	}

	e.repointCurrent(block, contBlock)

	return constant.NewFloat(types.Double, 0), nil
}

// repointCurrent keeps the Emitter's notion of "the current block for
// main" in sync when emitIfExpr opens a continuation block at the
// top level. Function bodies thread their current block explicitly
// through emitBlock's return value instead.
func (e *Emitter) repointCurrent(old, next *ir.Block) {
	if old == e.mainBlock {
		e.mainBlock = next
	}
}

func (e *Emitter) emitCallExpr(expr *ast.CallExpr, fn *ir.Func, block *ir.Block, sc *scope) (value.Value, error) {
	ident, ok := expr.Function.(*ast.Ident)
	if !ok {
		return nil, bolterr.NewAtf(bolterr.Internal, expr.Token.Line,
			"irgen: only direct calls to named functions are supported")
	}

	callee, ok := e.funcs[ident.Value]
	if !ok {
		return nil, bolterr.NewAtf(bolterr.Eval, expr.Token.Line, "irgen: undefined function %q", ident.Value)
	}

	args := make([]value.Value, 0, len(expr.Arguments))
	for _, a := range expr.Arguments {
		v, err := e.emitExpr(a, fn, block, sc)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	return block.NewCall(callee, args...), nil
}
