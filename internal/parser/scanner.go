package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"monicelli/internal/ast"
	"monicelli/internal/errors"
)

// Scanner turns source text into Monicelli tokens on demand. Whitespace and
// comments never reach the caller. The first lexical error is sticky: every
// later call returns it again.
type Scanner struct {
	lex     lexer.Lexer
	pending []Token
	eof     *Token
	err     error
}

func NewScanner(filename string, r io.Reader) (*Scanner, error) {
	lex, err := MonicelliLexer.Lex(filename, r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return &Scanner{lex: lex}, nil
}

// NewStringScanner scans an in-memory source.
func NewStringScanner(filename, source string) *Scanner {
	s, err := NewScanner(filename, strings.NewReader(source))
	if err != nil {
		// reading a strings.Reader cannot fail
		panic(err)
	}
	return s
}

// Next returns the next token. After the end of input it keeps returning
// the EOF token.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if len(s.pending) > 0 {
		tok := s.pending[0]
		s.pending = s.pending[1:]
		return tok, nil
	}
	if s.eof != nil {
		return *s.eof, nil
	}

	for {
		raw, err := s.lex.Next()
		if err != nil {
			s.err = fmt.Errorf("lexical error: %w", err)
			return Token{}, s.err
		}

		if symbolNames[raw.Type] == "GluedPhrase" {
			s.pending, err = splitWords(raw)
			if err != nil {
				s.err = err
				return Token{}, err
			}
			if len(s.pending) == 0 {
				continue
			}
			tok := s.pending[0]
			s.pending = s.pending[1:]
			return tok, nil
		}

		tok, skip, err := convert(raw, symbolNames[raw.Type])
		if err != nil {
			s.err = err
			return Token{}, err
		}
		if skip {
			continue
		}
		if tok.Type == EOF {
			s.eof = &tok
		}
		return tok, nil
	}
}

// ScanTokens drains the scanner. The returned slice ends with EOF.
func (s *Scanner) ScanTokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// splitWords lexes the text of a phrase that runs into the following word
// without recognizing phrases, so its words come out as identifiers and
// keywords at their original positions.
func splitWords(glued lexer.Token) ([]Token, error) {
	lex, err := wordLexer.Lex(glued.Pos.Filename, strings.NewReader(glued.Value))
	if err != nil {
		return nil, fmt.Errorf("lexical error: %w", err)
	}

	var tokens []Token
	for {
		raw, err := lex.Next()
		if err != nil {
			return nil, fmt.Errorf("lexical error: %w", err)
		}
		if raw.EOF() {
			return tokens, nil
		}
		raw.Pos = shiftPosition(raw.Pos, glued.Pos)

		tok, skip, err := convert(raw, wordSymbols[raw.Type])
		if err != nil {
			return nil, err
		}
		if !skip {
			tokens = append(tokens, tok)
		}
	}
}

// shiftPosition moves p, relative to the start of a fragment, to the
// fragment's place in the whole source.
func shiftPosition(p, base lexer.Position) lexer.Position {
	if p.Line == 1 {
		p.Column += base.Column - 1
	}
	p.Line += base.Line - 1
	p.Offset += base.Offset
	p.Filename = base.Filename
	return p
}

func convert(raw lexer.Token, symbol string) (tok Token, skip bool, err error) {
	pos := makePosition(raw.Pos)
	if raw.EOF() {
		return Token{Type: EOF, Position: pos}, false, nil
	}

	text := raw.Value
	switch symbol {
	case "Comment", "Whitespace":
		return Token{}, true, nil

	case "Phrase":
		tt, ok := PHRASES[normalizePhrase(text)]
		if !ok {
			return Token{}, false, errors.UnexpectedCharacter(pos, text)
		}
		return Token{Type: tt, Lexeme: text, Position: pos}, false, nil

	case "Float":
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return Token{}, false, errors.NumberOutOfRange(pos, text)
		}
		return Token{Type: FLOAT, Lexeme: text, Position: pos}, false, nil

	case "Integer":
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			return Token{}, false, errors.NumberOutOfRange(pos, text)
		}
		return Token{Type: INTEGER, Lexeme: text, Position: pos}, false, nil

	case "String":
		literal, err := unescape(pos, text)
		if err != nil {
			return Token{}, false, err
		}
		return Token{Type: STRING, Lexeme: text, Literal: literal, Position: pos}, false, nil

	case "OpenString":
		return Token{}, false, errors.UnterminatedString(pos, text)

	case "Ident", "Word":
		if tt, ok := KEYWORDS[text]; ok {
			return Token{Type: tt, Lexeme: text, Position: pos}, false, nil
		}
		return Token{Type: IDENTIFIER, Lexeme: text, Position: pos}, false, nil

	case "Punctuation":
		return Token{Type: PUNCTUATION[text], Lexeme: text, Position: pos}, false, nil
	}

	return Token{}, false, errors.UnexpectedCharacter(pos, text)
}

// unescape decodes a quoted string literal.
func unescape(pos ast.Position, quoted string) (string, error) {
	body := quoted[1 : len(quoted)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	escaped := false
	for _, r := range body {
		if !escaped {
			if r == '\\' {
				escaped = true
			} else {
				b.WriteRune(r)
			}
			continue
		}
		escaped = false
		switch r {
		case '"', '\\':
			b.WriteRune(r)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			return "", errors.InvalidEscape(pos, quoted, `\`+string(r))
		}
	}
	return b.String(), nil
}

func makePosition(p lexer.Position) ast.Position {
	return ast.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}
