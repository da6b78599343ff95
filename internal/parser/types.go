package parser

import (
	"fmt"

	"monicelli/internal/ast"
)

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INTEGER
	FLOAT
	STRING

	// Keywords
	MAIN      // Lei ha clacsonato
	FUN_DECL  // blinda la supercazzola
	FUN_CALL  // brematurata la supercazzola
	PARAMS    // con
	FUN_END   // o scherziamo?
	BLOCK_END // e velocità di esecuzione
	VAR_DECL  // voglio
	ASSIGN    // come se fosse
	PRINT     // a posterdati
	INPUT     // mi porga
	IF        // che cos'è
	ELSE_IF   // o magari
	ELSE      // o tarapia tapioco
	LOOP      // stuzzica
	LOOP_COND // e brematura anche, se
	RETURN    // vaffanzum
	ASSERT    // ho visto la
	ABORT     // avvertite don ulrico
	TRUE      // vero
	FALSE     // falso

	// Type keywords
	TYPE_INTEGER // Necchi
	TYPE_FLOAT   // Perozzi
	TYPE_CHAR    // Mascetti
	TYPE_BOOLEAN // Melandri
	TYPE_STRING  // Sassaroli

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	LESS
	GREATER
	LESS_EQUAL
	GREATER_EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	AND
	OR
	NOT

	// Punctuation
	BANG
	QUESTION
	COMMA
	COLON
	LEFT_PAREN
	RIGHT_PAREN
)

// Kind groups token types into the broad classes tooling cares about.
type Kind int

const (
	KindIllegal Kind = iota
	KindEOF
	KindIdentifier
	KindInteger
	KindFloat
	KindString
	KindKeyword
	KindType
	KindOperator
	KindPunctuation
)

var tokenNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	IDENTIFIER:    "IDENTIFIER",
	INTEGER:       "INTEGER",
	FLOAT:         "FLOAT",
	STRING:        "STRING",
	MAIN:          "MAIN",
	FUN_DECL:      "FUN_DECL",
	FUN_CALL:      "FUN_CALL",
	PARAMS:        "PARAMS",
	FUN_END:       "FUN_END",
	BLOCK_END:     "BLOCK_END",
	VAR_DECL:      "VAR_DECL",
	ASSIGN:        "ASSIGN",
	PRINT:         "PRINT",
	INPUT:         "INPUT",
	IF:            "IF",
	ELSE_IF:       "ELSE_IF",
	ELSE:          "ELSE",
	LOOP:          "LOOP",
	LOOP_COND:     "LOOP_COND",
	RETURN:        "RETURN",
	ASSERT:        "ASSERT",
	ABORT:         "ABORT",
	TRUE:          "TRUE",
	FALSE:         "FALSE",
	TYPE_INTEGER:  "TYPE_INTEGER",
	TYPE_FLOAT:    "TYPE_FLOAT",
	TYPE_CHAR:     "TYPE_CHAR",
	TYPE_BOOLEAN:  "TYPE_BOOLEAN",
	TYPE_STRING:   "TYPE_STRING",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	STAR:          "STAR",
	SLASH:         "SLASH",
	PERCENT:       "PERCENT",
	LESS:          "LESS",
	GREATER:       "GREATER",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER_EQUAL: "GREATER_EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	BANG_EQUAL:    "BANG_EQUAL",
	AND:           "AND",
	OR:            "OR",
	NOT:           "NOT",
	BANG:          "BANG",
	QUESTION:      "QUESTION",
	COMMA:         "COMMA",
	COLON:         "COLON",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return tokenNames[tt]
}

func (tt TokenType) Kind() Kind {
	switch {
	case tt == EOF:
		return KindEOF
	case tt == IDENTIFIER:
		return KindIdentifier
	case tt == INTEGER:
		return KindInteger
	case tt == FLOAT:
		return KindFloat
	case tt == STRING:
		return KindString
	case tt >= MAIN && tt <= FALSE:
		return KindKeyword
	case tt >= TYPE_INTEGER && tt <= TYPE_STRING:
		return KindType
	case tt >= PLUS && tt <= NOT:
		return KindOperator
	case tt >= BANG && tt <= RIGHT_PAREN:
		return KindPunctuation
	default:
		return KindIllegal
	}
}

// Spelling returns the canonical source text of a fixed token, or "" for
// identifiers, literals and the special tokens.
func (tt TokenType) Spelling() string {
	return spellings[tt]
}

// VarType maps a type keyword token to the declared type.
func (tt TokenType) VarType() (ast.Type, bool) {
	switch tt {
	case TYPE_INTEGER:
		return ast.Integer, true
	case TYPE_FLOAT:
		return ast.Float, true
	case TYPE_CHAR:
		return ast.Char, true
	case TYPE_BOOLEAN:
		return ast.Boolean, true
	case TYPE_STRING:
		return ast.String, true
	}
	return 0, false
}

type Token struct {
	Type     TokenType
	Lexeme   string // raw source text, phrases included verbatim
	Literal  string // decoded contents of a STRING token
	Position ast.Position
}

// describe renders a token for "found ..." in syntax errors
func describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case ILLEGAL:
		return fmt.Sprintf("invalid input %q", tok.Lexeme)
	case IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", tok.Lexeme)
	case INTEGER, FLOAT:
		return fmt.Sprintf("number %s", tok.Lexeme)
	case STRING:
		return fmt.Sprintf("string %s", tok.Lexeme)
	}
	return quote(tok.Type)
}

func quote(tt TokenType) string {
	return "'" + tt.Spelling() + "'"
}
