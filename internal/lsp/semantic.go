package lsp

import (
	"strings"
	"unicode/utf16"

	"monicelli/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the SemanticTokenTypes array
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the tokens of a document. Scanning stops at
// the first lexical error; everything before it is still highlighted.
func collectSemanticTokens(path, text string) []SemanticToken {
	toks, err := parser.NewStringScanner(path, text).ScanTokens()
	if err != nil {
		log.Debugf("%s: highlighting stopped early: %s", path, err)
	}

	var tokens []SemanticToken
	inHeader := false

	for i, tok := range toks {
		var prev, prev2 parser.TokenType = parser.ILLEGAL, parser.ILLEGAL
		if i > 0 {
			prev = toks[i-1].Type
		}
		if i > 1 {
			prev2 = toks[i-2].Type
		}

		switch tok.Type {
		case parser.FUN_DECL:
			inHeader = true
		case parser.FUN_END:
			inHeader = false
		}

		switch tok.Type.Kind() {
		case parser.KindKeyword:
			tokens = append(tokens, makeToken(tok, "keyword", 0)...)
		case parser.KindType:
			tokens = append(tokens, makeToken(tok, "type", 0)...)
		case parser.KindInteger, parser.KindFloat:
			tokens = append(tokens, makeToken(tok, "number", 0)...)
		case parser.KindString:
			tokens = append(tokens, makeToken(tok, "string", 0)...)
		case parser.KindOperator:
			tokens = append(tokens, makeToken(tok, "operator", 0)...)
		case parser.KindIdentifier:
			tokens = append(tokens, classifyIdentifier(tok, prev, prev2, inHeader)...)
		}
	}

	return tokens
}

func classifyIdentifier(tok parser.Token, prev, prev2 parser.TokenType, inHeader bool) []SemanticToken {
	switch {
	case prev == parser.FUN_DECL,
		prev2 == parser.FUN_DECL && prev.Kind() == parser.KindType:
		return makeToken(tok, "function", 1)
	case prev == parser.FUN_CALL:
		return makeToken(tok, "function", 0)
	case prev == parser.VAR_DECL:
		return makeToken(tok, "variable", 1)
	case inHeader && (prev == parser.PARAMS || prev == parser.COMMA):
		return makeToken(tok, "parameter", 1)
	default:
		return makeToken(tok, "variable", 0)
	}
}

// makeToken creates a semantic token covering tok. Tokens spanning several
// lines, such as phrases broken across a line, are not reported.
func makeToken(tok parser.Token, tokenType string, declModifier int) []SemanticToken {
	if tok.Lexeme == "" || strings.ContainsRune(tok.Lexeme, '\n') {
		return nil
	}

	return []SemanticToken{{
		Line:           uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(len(utf16.Encode([]rune(tok.Lexeme)))),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
