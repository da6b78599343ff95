package parser

import "strings"

// KEYWORDS maps single-word keywords to their token types. Anything else
// matching the identifier rule is an IDENTIFIER.
var KEYWORDS = map[string]TokenType{
	"voglio":    VAR_DECL,
	"con":       PARAMS,
	"stuzzica":  LOOP,
	"vaffanzum": RETURN,
	"vero":      TRUE,
	"falso":     FALSE,
	"più":       PLUS,
	"meno":      MINUS,
	"per":       STAR,
	"diviso":    SLASH,
	"resto":     PERCENT,
	"non":       NOT,
	"nonché":    AND,
	"oppure":    OR,
	"Necchi":    TYPE_INTEGER,
	"Perozzi":   TYPE_FLOAT,
	"Mascetti":  TYPE_CHAR,
	"Melandri":  TYPE_BOOLEAN,
	"Sassaroli": TYPE_STRING,
}

// PHRASES maps multi-word keywords, with single spaces between words, to
// their token types. In source the words may be separated by any run of
// whitespace, line breaks included.
var PHRASES = map[string]TokenType{
	"Lei ha clacsonato":           MAIN,
	"blinda la supercazzola":      FUN_DECL,
	"brematurata la supercazzola": FUN_CALL,
	"o scherziamo?":               FUN_END,
	"e velocità di esecuzione":    BLOCK_END,
	"come se fosse":               ASSIGN,
	"a posterdati":                PRINT,
	"mi porga":                    INPUT,
	"che cos'è":                   IF,
	"o magari":                    ELSE_IF,
	"o tarapia tapioco":           ELSE,
	"e brematura anche, se":       LOOP_COND,
	"ho visto la":                 ASSERT,
	"avvertite don ulrico":        ABORT,
	"minore o uguale a":           LESS_EQUAL,
	"maggiore o uguale a":         GREATER_EQUAL,
	"minore di":                   LESS,
	"maggiore di":                 GREATER,
	"uguale a":                    EQUAL_EQUAL,
	"diverso da":                  BANG_EQUAL,
}

var PUNCTUATION = map[string]TokenType{
	"!": BANG,
	"?": QUESTION,
	",": COMMA,
	":": COLON,
	"(": LEFT_PAREN,
	")": RIGHT_PAREN,
}

var spellings = buildSpellings()

func buildSpellings() map[TokenType]string {
	s := make(map[TokenType]string, len(KEYWORDS)+len(PHRASES)+len(PUNCTUATION))
	for _, table := range []map[string]TokenType{KEYWORDS, PHRASES, PUNCTUATION} {
		for text, tt := range table {
			s[tt] = text
		}
	}
	return s
}

// normalizePhrase collapses the whitespace inside a matched phrase so it can
// be looked up in PHRASES.
func normalizePhrase(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
