package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// MonicelliLexer splits source text into raw participle tokens. Rule order
// matters: comments and phrases are tried before plain identifiers so that
// multi-word keywords win over their first word.
var MonicelliLexer = lexer.MustStateful(rules(true))

// wordLexer re-splits a phrase glued to the word after it, where the phrase
// must not be recognized.
var wordLexer = lexer.MustStateful(rules(false))

func rules(phrases bool) lexer.Rules {
	root := []lexer.Rule{
		// an identifier that merely starts with the comment keyword
		{Name: "Word", Pattern: `bituma[\p{L}\p{N}_]+`, Action: nil},
		{Name: "Comment", Pattern: `(?:bituma|#)[^\n]*`, Action: nil},
		{Name: "Whitespace", Pattern: `\s+`, Action: nil},
	}

	if phrases {
		glued, plain := phrasePatterns()
		root = append(root, []lexer.Rule{
			// A phrase ending in a word character runs into the next word
			{Name: "GluedPhrase", Pattern: glued + `[\p{L}\p{N}_]+`, Action: nil},
			// Multi-word keywords, longest first
			{Name: "Phrase", Pattern: plain, Action: nil},
		}...)
	}

	root = append(root, []lexer.Rule{
		// Literals
		{Name: "Float", Pattern: `[0-9]+\.[0-9]+(?:[eE][+-]?[0-9]+)?`, Action: nil},
		{Name: "Integer", Pattern: `[0-9]+`, Action: nil},
		{Name: "String", Pattern: `"(?:\\.|[^"\\\n])*"`, Action: nil},
		{Name: "OpenString", Pattern: `"(?:\\.|[^"\\\n])*`, Action: nil},

		// Keywords and identifiers
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`, Action: nil},

		{Name: "Punctuation", Pattern: `[!?,:()]`, Action: nil},

		// Anything else is reported by the scanner
		{Name: "Invalid", Pattern: `.`, Action: nil},
	}...)
	return lexer.Rules{"Root": root}
}

// phrasePatterns returns an alternation of every phrase and one of the
// phrases that end in a word character.
func phrasePatterns() (glued, plain string) {
	phrases := make([]string, 0, len(PHRASES))
	for phrase := range PHRASES {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})

	var all, words []string
	for _, phrase := range phrases {
		parts := strings.Fields(phrase)
		for j, w := range parts {
			parts[j] = regexp.QuoteMeta(w)
		}
		pattern := strings.Join(parts, `\s+`)
		all = append(all, pattern)
		if last, _ := utf8.DecodeLastRuneInString(phrase); isWordRune(last) {
			words = append(words, pattern)
		}
	}
	return `(?:` + strings.Join(words, `|`) + `)`, `(?:` + strings.Join(all, `|`) + `)`
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

var (
	symbolNames = reverseSymbols(MonicelliLexer)
	wordSymbols = reverseSymbols(wordLexer)
)

func reverseSymbols(def lexer.Definition) map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, tt := range def.Symbols() {
		names[tt] = name
	}
	return names
}
