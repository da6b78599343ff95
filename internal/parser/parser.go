package parser

import (
	"github.com/tliron/commonlog"

	"monicelli/internal/ast"
)

var log = commonlog.GetLogger("monicelli.parser")

// Parser is a recursive-descent parser pulling tokens from a Scanner on
// demand. It stops at the first error.
type Parser struct {
	scanner *Scanner
	buf     []Token // lookahead, buf[0] is the current token
	prev    Token
	lexErr  error
}

func NewParser(scanner *Scanner) *Parser {
	return &Parser{scanner: scanner}
}

// ParseProgram consumes the whole token stream.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	start := p.peek()
	var decls []ast.Decl

	for !p.check(EOF) {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}

	log.Debugf("parsed %d top-level declarations", len(decls))
	return ast.NewProgram(p.makePos(start), decls), nil
}

func (p *Parser) parseDecl() (ast.Decl, error) {
	switch p.peek().Type {
	case MAIN:
		return p.parseMain()
	case FUN_DECL:
		return p.parseFunction()
	case VAR_DECL:
		return p.parseGlobalVar()
	}
	return nil, p.errorExpected("'Lei ha clacsonato', 'blinda la supercazzola' or 'voglio'")
}
