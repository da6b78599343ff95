package parser

import (
	"monicelli/internal/ast"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.peek()

	switch tok.Type {
	case VAR_DECL:
		start, name, typ, init, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		return ast.NewVarDecl(p.makePos(start), name, typ, init), nil
	case INPUT:
		return p.parseInputStmt()
	case IF:
		return p.parseIfStmt()
	case LOOP:
		return p.parseLoopStmt()
	case RETURN:
		return p.parseReturnStmt()
	case ASSERT:
		return p.parseAssertStmt()
	case ABORT:
		p.advance()
		if _, err := p.consume(BANG); err != nil {
			return nil, err
		}
		return ast.NewAbort(p.makePos(tok)), nil
	case IDENTIFIER:
		if p.peekAt(1).Type == ASSIGN {
			return p.parseAssignStmt()
		}
	}

	return p.parseExprOrPrintStmt()
}

// x come se fosse <expr>!
func (p *Parser) parseAssignStmt() (*ast.AssignStmt, error) {
	target := p.advance()
	p.advance() // come se fosse

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(BANG); err != nil {
		return nil, err
	}
	return ast.NewAssign(p.makePos(target), target.Lexeme, value), nil
}

// <expr> a posterdati!  or  <expr>!
func (p *Parser) parseExprOrPrintStmt() (ast.Stmt, error) {
	start := p.peek()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.match(PRINT) {
		if _, err := p.consume(BANG); err != nil {
			return nil, err
		}
		return ast.NewPrint(p.makePos(start), expr), nil
	}

	if !p.match(BANG) {
		return nil, p.errorExpected("'a posterdati' or '!' after expression")
	}
	return ast.NewExprStmt(p.makePos(start), expr), nil
}

// mi porga x!
func (p *Parser) parseInputStmt() (*ast.InputStmt, error) {
	start := p.advance()
	target, err := p.consumeIdent("variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(BANG); err != nil {
		return nil, err
	}
	return ast.NewInput(p.makePos(start), target.Lexeme), nil
}

type elseIfBranch struct {
	pos  ast.Position
	cond ast.Expr
	body *ast.Block
}

// parseIfStmt parses
//
//	che cos'è <expr>?
//	    <block>
//	{o magari <expr>: <block>}
//	[o tarapia tapioco: <block>]
//	e velocità di esecuzione
//
// Each "o magari" branch becomes an IfStmt nested as the only statement of
// the previous branch's else-block.
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	start := p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(QUESTION); err != nil {
		return nil, err
	}
	then, err := p.parseBlock(start, ELSE_IF, ELSE, BLOCK_END)
	if err != nil {
		return nil, err
	}

	var branches []elseIfBranch
	for p.check(ELSE_IF) {
		branchTok := p.advance()
		branchCond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(COLON); err != nil {
			return nil, err
		}
		body, err := p.parseBlock(start, ELSE_IF, ELSE, BLOCK_END)
		if err != nil {
			return nil, err
		}
		branches = append(branches, elseIfBranch{pos: p.makePos(branchTok), cond: branchCond, body: body})
	}

	var els *ast.Block
	if p.match(ELSE) {
		if _, err := p.consume(COLON); err != nil {
			return nil, err
		}
		if els, err = p.parseBlock(start, BLOCK_END); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(BLOCK_END); err != nil {
		return nil, err
	}

	for i := len(branches) - 1; i >= 0; i-- {
		b := branches[i]
		nested := ast.NewIf(b.pos, b.cond, b.body, els)
		els = ast.NewBlock(b.pos, []ast.Stmt{nested})
	}

	return ast.NewIf(p.makePos(start), cond, then, els), nil
}

// stuzzica <block> e brematura anche, se <expr>!
func (p *Parser) parseLoopStmt() (*ast.LoopStmt, error) {
	start := p.advance()

	body, err := p.parseBlock(start, LOOP_COND)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LOOP_COND); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(BANG); err != nil {
		return nil, err
	}
	return ast.NewLoop(p.makePos(start), body, cond), nil
}

// vaffanzum [<expr>]!
func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	start := p.advance()

	var value ast.Expr
	if !p.check(BANG) {
		var err error
		if value, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(BANG); err != nil {
		return nil, err
	}
	return ast.NewReturn(p.makePos(start), value), nil
}

// ho visto la <expr>!
func (p *Parser) parseAssertStmt() (*ast.AssertStmt, error) {
	start := p.advance()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(BANG); err != nil {
		return nil, err
	}
	return ast.NewAssert(p.makePos(start), cond), nil
}
