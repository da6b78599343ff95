package parser

import (
	"monicelli/internal/ast"
	"monicelli/internal/errors"
)

// parseMain parses the entry point:
//
//	Lei ha clacsonato <block> e velocità di esecuzione
func (p *Parser) parseMain() (*ast.Function, error) {
	start := p.advance()
	body, err := p.parseBlock(start, BLOCK_END)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(BLOCK_END); err != nil {
		return nil, err
	}
	return ast.NewMain(p.makePos(start), body), nil
}

// parseFunction parses a function declaration:
//
//	blinda la supercazzola [Type] name [con p1 T1, p2 T2] o scherziamo?
//	    <block>
//	e velocità di esecuzione
func (p *Parser) parseFunction() (*ast.Function, error) {
	start := p.advance()

	var ret *ast.Type
	if t, ok := p.peek().Type.VarType(); ok {
		p.advance()
		ret = ast.TypeRef(t)
	}

	name, err := p.consumeIdent("function name")
	if err != nil {
		return nil, err
	}

	var params []*ast.Param
	if p.match(PARAMS) {
		params, err = p.parseParams()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(FUN_END); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(start, BLOCK_END)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(BLOCK_END); err != nil {
		return nil, err
	}

	log.Debugf("parsed function %s with %d parameters", name.Lexeme, len(params))
	return ast.NewFunction(p.makePos(start), name.Lexeme, params, ret, body), nil
}

func (p *Parser) parseParams() ([]*ast.Param, error) {
	var params []*ast.Param
	for {
		name, err := p.consumeIdent("parameter name")
		if err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.NewParam(p.makePos(name), name.Lexeme, typ))

		if !p.match(COMMA) {
			return params, nil
		}
	}
}

func (p *Parser) parseType() (ast.Type, error) {
	if t, ok := p.peek().Type.VarType(); ok {
		p.advance()
		return t, nil
	}
	return 0, p.errorExpected("type ('Necchi', 'Perozzi', 'Mascetti', 'Melandri' or 'Sassaroli')")
}

func (p *Parser) parseGlobalVar() (*ast.GlobalVar, error) {
	start, name, typ, init, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}
	return ast.NewGlobalVar(p.makePos(start), name, typ, init), nil
}

// parseDeclaration parses "voglio name, Type [come se fosse expr]!", shared
// by globals and locals.
func (p *Parser) parseDeclaration() (start Token, name string, typ ast.Type, init ast.Expr, err error) {
	start = p.advance()

	ident, err := p.consumeIdent("variable name")
	if err != nil {
		return
	}
	if _, err = p.consume(COMMA); err != nil {
		return
	}
	if typ, err = p.parseType(); err != nil {
		return
	}
	if p.match(ASSIGN) {
		if init, err = p.parseExpr(); err != nil {
			return
		}
	}
	if _, err = p.consume(BANG); err != nil {
		return
	}
	return start, ident.Lexeme, typ, init, nil
}

// parseBlock parses statements until one of closers is the current token,
// leaving it unconsumed. open is the token that started the construct.
func (p *Parser) parseBlock(open Token, closers ...TokenType) (*ast.Block, error) {
	first := p.peek()
	var stmts []ast.Stmt

	for !p.checkAny(closers...) {
		tok := p.peek()
		switch {
		case tok.Type == EOF:
			return nil, errors.UnterminatedBlock(tok.Position, closers[len(closers)-1].Spelling(), open.Position)
		case isBlockCloser(tok.Type):
			return nil, p.errorExpected(quote(closers[len(closers)-1]))
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return ast.NewBlock(p.makePos(first), stmts), nil
}
