package parser

import (
	"strconv"

	"monicelli/internal/ast"
)

var binaryOperators = map[TokenType]ast.Operator{
	OR:            ast.OR,
	AND:           ast.AND,
	EQUAL_EQUAL:   ast.EQ,
	BANG_EQUAL:    ast.NE,
	LESS:          ast.LT,
	GREATER:       ast.GT,
	LESS_EQUAL:    ast.LE,
	GREATER_EQUAL: ast.GE,
	PLUS:          ast.ADD,
	MINUS:         ast.SUB,
	STAR:          ast.MUL,
	SLASH:         ast.DIV,
	PERCENT:       ast.MOD,
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parsePrattExpr(1)
}

// parsePrattExpr parses binary operators binding at least as tightly as
// minPrec. All binary operators are left-associative.
func (p *Parser) parsePrattExpr(minPrec int) (ast.Expr, error) {
	expr, err := p.parsePrefixExpr()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := binaryOperators[p.peek().Type]
		if !ok || op.Precedence() < minPrec {
			break
		}

		p.advance()
		right, err := p.parsePrattExpr(op.Precedence() + 1)
		if err != nil {
			return nil, err
		}

		expr = ast.NewBinary(expr.NodePos(), op, expr, right)
	}

	return expr, nil
}

func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	if p.match(MINUS, NOT) {
		opTok := p.previous()
		op := ast.NEG
		if opTok.Type == NOT {
			op = ast.NOT
		}

		operand, err := p.parsePrefixExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(p.makePos(opTok), op, operand), nil
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	tok := p.peek()
	pos := p.makePos(tok)

	switch tok.Type {
	case INTEGER:
		p.advance()
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, err
		}
		return ast.NewIntLit(pos, v), nil

	case FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, err
		}
		return ast.NewFloatLit(pos, v, tok.Lexeme), nil

	case STRING:
		p.advance()
		return ast.NewStringLit(pos, tok.Literal), nil

	case TRUE, FALSE:
		p.advance()
		return ast.NewBoolLit(pos, tok.Type == TRUE), nil

	case IDENTIFIER:
		p.advance()
		return ast.NewIdent(pos, tok.Lexeme), nil

	case FUN_CALL:
		return p.parseCallExpr()

	case LEFT_PAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, p.errorExpected("expression")
}

// brematurata la supercazzola name [con a, b] o scherziamo?
func (p *Parser) parseCallExpr() (*ast.CallExpr, error) {
	start := p.advance()

	callee, err := p.consumeIdent("function name")
	if err != nil {
		return nil, err
	}

	var args []ast.Expr
	if p.match(PARAMS) {
		if args, err = p.parseExprList(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(FUN_END); err != nil {
		return nil, err
	}
	return ast.NewCall(p.makePos(start), callee.Lexeme, args), nil
}

func (p *Parser) parseExprList() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.match(COMMA) {
			return exprs, nil
		}
	}
}
