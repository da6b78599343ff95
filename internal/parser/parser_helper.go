package parser

import (
	"unicode/utf8"

	"monicelli/internal/ast"
	"monicelli/internal/errors"
)

// fill makes sure at least n tokens are buffered. A lexical error turns
// into an ILLEGAL token; the error itself is reported by errorExpected.
func (p *Parser) fill(n int) {
	for len(p.buf) < n {
		if p.lexErr != nil {
			p.buf = append(p.buf, Token{Type: ILLEGAL, Position: p.illegalPos()})
			continue
		}
		tok, err := p.scanner.Next()
		if err != nil {
			p.lexErr = err
			continue
		}
		p.buf = append(p.buf, tok)
	}
}

func (p *Parser) illegalPos() ast.Position {
	if diag, ok := errors.AsDiagnostic(p.lexErr); ok {
		return diag.Diagnostic().Position
	}
	return p.prev.Position
}

func (p *Parser) advance() Token {
	p.fill(1)
	tok := p.buf[0]
	if tok.Type != EOF && tok.Type != ILLEGAL {
		p.buf = p.buf[1:]
	}
	p.prev = tok
	return tok
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) checkAny(types ...TokenType) bool {
	current := p.peek().Type
	for _, tt := range types {
		if current == tt {
			return true
		}
	}
	return false
}

func (p *Parser) match(types ...TokenType) bool {
	if p.checkAny(types...) {
		p.advance()
		return true
	}
	return false
}

// consume advances over a token of type tt or fails with a syntax error
// naming the token's spelling.
func (p *Parser) consume(tt TokenType) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorExpected(quote(tt))
}

func (p *Parser) consumeIdent(what string) (Token, error) {
	if p.check(IDENTIFIER) {
		return p.advance(), nil
	}
	return Token{}, p.errorExpected(what)
}

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(k int) Token {
	p.fill(k + 1)
	return p.buf[k]
}

func (p *Parser) previous() Token {
	return p.prev
}

// errorExpected builds the error for the current token. A pending lexical
// error takes precedence since it explains why the token is ILLEGAL.
func (p *Parser) errorExpected(expected string) error {
	tok := p.peek()
	if tok.Type == ILLEGAL && p.lexErr != nil {
		return p.lexErr
	}
	return errors.UnexpectedToken(tok.Position, expected, describe(tok), max(1, utf8.RuneCountInString(tok.Lexeme)))
}

func (p *Parser) makePos(tok Token) ast.Position {
	return tok.Position
}

// isBlockCloser reports tokens that can only end a block
func isBlockCloser(tt TokenType) bool {
	switch tt {
	case BLOCK_END, LOOP_COND, ELSE_IF, ELSE:
		return true
	}
	return false
}
