package codegen

import (
	"fmt"

	"monicelli/internal/ast"
	"monicelli/internal/errors"
)

// emitStatements writes the statements of b one level deeper, inside a
// fresh scope.
func (g *Generator) emitStatements(b *ast.Block) error {
	g.indent++
	g.scope = newScope(g.scope)
	defer func() {
		g.indent--
		g.scope = g.scope.parent
	}()

	for _, s := range b.Stmts {
		if err := g.emitStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) emitStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		decl, err := g.declaration(s.Name, s.Type, s.Init)
		if err != nil {
			return err
		}
		g.writeLine("%s", decl)

	case *ast.AssignStmt:
		if err := g.checkAssignable(s.Target, s.Pos); err != nil {
			return err
		}
		value, err := g.expr(s.Value)
		if err != nil {
			return err
		}
		g.writeLine("%s = %s;", mangleVar(s.Target), value)

	case *ast.PrintStmt:
		text, prec, err := g.exprPrec(s.Value)
		if err != nil {
			return err
		}
		if prec <= precShift {
			text = "(" + text + ")"
		}
		g.writeLine("std::cout << %s << std::endl;", text)

	case *ast.InputStmt:
		if err := g.checkAssignable(s.Target, s.Pos); err != nil {
			return err
		}
		g.writeLine("std::cin >> %s;", mangleVar(s.Target))

	case *ast.IfStmt:
		return g.emitIf(s)

	case *ast.LoopStmt:
		g.writeLine("do {")
		if err := g.emitStatements(s.Body); err != nil {
			return err
		}
		cond, err := g.expr(s.Cond)
		if err != nil {
			return err
		}
		g.writeLine("} while (%s);", cond)

	case *ast.ReturnStmt:
		return g.emitReturn(s)

	case *ast.AssertStmt:
		cond, err := g.expr(s.Cond)
		if err != nil {
			return err
		}
		g.writeLine("assert(%s);", cond)

	case *ast.AbortStmt:
		g.writeLine("std::exit(1);")

	case *ast.ExprStmt:
		value, err := g.expr(s.Expr)
		if err != nil {
			return err
		}
		g.writeLine("%s;", value)

	default:
		return fmt.Errorf("codegen: unexpected statement %T", stmt)
	}
	return nil
}

// emitIf writes a conditional; an else-block holding a single conditional
// continues the chain as "else if".
func (g *Generator) emitIf(s *ast.IfStmt) error {
	cond, err := g.expr(s.Cond)
	if err != nil {
		return err
	}
	g.writeLine("if (%s) {", cond)

	for {
		if err := g.emitStatements(s.Then); err != nil {
			return err
		}

		if nested, ok := s.ElseIf(); ok {
			cond, err := g.expr(nested.Cond)
			if err != nil {
				return err
			}
			g.writeLine("} else if (%s) {", cond)
			s = nested
			continue
		}

		if s.Else != nil {
			g.writeLine("} else {")
			if err := g.emitStatements(s.Else); err != nil {
				return err
			}
		}
		break
	}

	g.writeLine("}")
	return nil
}

func (g *Generator) emitReturn(s *ast.ReturnStmt) error {
	fn := g.current

	if s.Value == nil {
		switch {
		case fn.Main:
			g.writeLine("return 0;")
		case fn.Return != nil:
			return errors.MissingReturnValue(fn.Name, *fn.Return, s.Pos)
		default:
			g.writeLine("return;")
		}
		return nil
	}

	if !fn.Main && fn.Return == nil {
		return errors.UnexpectedReturnValue(fn.Name, s.Pos)
	}
	value, err := g.expr(s.Value)
	if err != nil {
		return err
	}
	if fn.Main {
		if t, ok := g.staticType(s.Value); ok && t == ast.String {
			return errors.InvalidExitStatus(t, s.Value.NodePos())
		}
	}
	g.writeLine("return %s;", value)
	return nil
}

// checkAssignable requires name to be a visible variable.
func (g *Generator) checkAssignable(name string, pos ast.Position) error {
	if _, ok := g.scope.lookup(name); ok {
		return nil
	}
	if _, ok := g.funcs[name]; ok {
		return errors.NotAssignable(name, pos)
	}
	return errors.UndefinedVariable(name, pos, g.scope.visible())
}
