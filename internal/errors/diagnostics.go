package errors

import (
	"fmt"
	"sort"
	"strings"

	"monicelli/internal/ast"
)

// DiagnosticBuilder provides a fluent interface for diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

func NewDiagnostic(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message, Replacement: replacement})
	return b
}

func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// Lexical errors

func UnexpectedCharacter(pos ast.Position, text string) *LexicalError {
	diag := NewDiagnostic(ErrorUnexpectedCharacter, fmt.Sprintf("unexpected character %q", text), pos).
		WithLength(spanLength(text)).
		WithNote("punctuation is limited to ! ? , : ( ) and operators are spelled out in words").
		Build()
	return &LexicalError{Diag: diag, Text: text}
}

func UnterminatedString(pos ast.Position, text string) *LexicalError {
	diag := NewDiagnostic(ErrorUnterminatedString, "unterminated string literal", pos).
		WithLength(spanLength(text)).
		WithSuggestion("close the string with '\"' before the end of the line").
		Build()
	return &LexicalError{Diag: diag, Text: text}
}

func InvalidEscape(pos ast.Position, text, sequence string) *LexicalError {
	diag := NewDiagnostic(ErrorInvalidEscape, fmt.Sprintf("invalid escape sequence '%s' in string literal", sequence), pos).
		WithLength(spanLength(text)).
		WithHelp(`supported escapes are \" \\ \n and \t`).
		Build()
	return &LexicalError{Diag: diag, Text: text}
}

func NumberOutOfRange(pos ast.Position, text string) *LexicalError {
	diag := NewDiagnostic(ErrorNumberOutOfRange, fmt.Sprintf("numeric literal %s is out of range", text), pos).
		WithLength(spanLength(text)).
		WithNote("integers must fit in 64 signed bits and floats in a 64-bit double").
		Build()
	return &LexicalError{Diag: diag, Text: text}
}

// Syntax errors

// UnexpectedToken reports that expected was wanted where found appeared.
// Both are human readable descriptions, e.g. "'!'" and "end of input".
func UnexpectedToken(pos ast.Position, expected, found string, length int) *SyntaxError {
	diag := NewDiagnostic(ErrorUnexpectedToken, fmt.Sprintf("expected %s, found %s", expected, found), pos).
		WithLength(length).
		Build()
	return &SyntaxError{Diag: diag, Expected: expected, Found: found}
}

// UnterminatedBlock reports input ending inside a block opened at open.
// closing is the keyword that would have closed it.
func UnterminatedBlock(pos ast.Position, closing string, open ast.Position) *SyntaxError {
	expected := fmt.Sprintf("'%s'", closing)
	diag := NewDiagnostic(ErrorUnterminatedBlock, fmt.Sprintf("unterminated block: expected %s before end of input", expected), pos).
		WithNote(fmt.Sprintf("the block starts at %s", open)).
		WithSuggestion(fmt.Sprintf("close the block with '%s'", closing)).
		Build()
	return &SyntaxError{Diag: diag, Expected: expected, Found: "end of input"}
}

// Code generation errors

func UndefinedVariable(name string, pos ast.Position, visible []string) *CodeGenerationError {
	builder := NewDiagnostic(ErrorUndefinedVariable, fmt.Sprintf("undefined variable '%s'", name), pos).
		WithLength(spanLength(name))
	if similar := findSimilarNames(name, visible); len(similar) > 0 {
		builder = builder.WithSuggestion(didYouMean(similar))
	} else {
		builder = builder.WithSuggestion("make sure the variable is declared before use").
			WithNote("variables are declared with 'voglio name, Type!'")
	}
	return &CodeGenerationError{Diag: builder.Build(), Construct: name}
}

func UndefinedFunction(name string, pos ast.Position, declared []string) *CodeGenerationError {
	builder := NewDiagnostic(ErrorUndefinedFunction, fmt.Sprintf("undefined function '%s'", name), pos).
		WithLength(spanLength(name))
	if similar := findSimilarNames(name, declared); len(similar) > 0 {
		builder = builder.WithSuggestion(didYouMean(similar))
	}
	builder = builder.WithHelp("functions are declared with 'blinda la supercazzola'")
	return &CodeGenerationError{Diag: builder.Build(), Construct: name}
}

func NotAssignable(name string, pos ast.Position) *CodeGenerationError {
	diag := NewDiagnostic(ErrorNotAssignable, fmt.Sprintf("cannot assign to '%s': it is a function, not a variable", name), pos).
		WithLength(spanLength(name)).
		Build()
	return &CodeGenerationError{Diag: diag, Construct: name}
}

// MissingReturn reports a typed function without any return statement.
func MissingReturn(function string, returnType ast.Type, pos ast.Position) *CodeGenerationError {
	diag := NewDiagnostic(ErrorMissingReturn, fmt.Sprintf("missing return in non-void function %s", function), pos).
		WithLength(spanLength(function)).
		WithSuggestion(fmt.Sprintf("add 'vaffanzum <value>!' returning a %s", returnType.Keyword())).
		WithNote(fmt.Sprintf("'%s' declares return type %s", function, returnType.Keyword())).
		Build()
	return &CodeGenerationError{Diag: diag, Construct: function}
}

func UnexpectedReturnValue(function string, pos ast.Position) *CodeGenerationError {
	diag := NewDiagnostic(ErrorUnexpectedReturnValue, fmt.Sprintf("function %s has no return type but returns a value", function), pos).
		WithSuggestion("use a bare 'vaffanzum!'").
		WithSuggestion("or declare a return type after 'blinda la supercazzola'").
		Build()
	return &CodeGenerationError{Diag: diag, Construct: function}
}

func MissingReturnValue(function string, returnType ast.Type, pos ast.Position) *CodeGenerationError {
	diag := NewDiagnostic(ErrorMissingReturnValue, fmt.Sprintf("function %s must return a %s value", function, returnType.Keyword()), pos).
		WithSuggestion(fmt.Sprintf("return a value: 'vaffanzum <%s>!'", returnType.Keyword())).
		Build()
	return &CodeGenerationError{Diag: diag, Construct: function}
}

func DuplicateEntryPoint(pos, first ast.Position) *CodeGenerationError {
	diag := NewDiagnostic(ErrorDuplicateEntryPoint, "the entry point is already declared", pos).
		WithLength(spanLength("Lei ha clacsonato")).
		WithNote(fmt.Sprintf("first declared at %s", first)).
		WithHelp("a program has a single 'Lei ha clacsonato' block").
		Build()
	return &CodeGenerationError{Diag: diag, Construct: ast.MainName}
}

// InvalidExitStatus reports a return from the entry point whose value has a
// type the exit status cannot hold.
func InvalidExitStatus(valueType ast.Type, pos ast.Position) *CodeGenerationError {
	diag := NewDiagnostic(ErrorInvalidExitStatus, fmt.Sprintf("the entry point cannot return a %s value", valueType.Keyword()), pos).
		WithSuggestion("return a number: 'vaffanzum 0!'").
		WithNote("the value returned by 'Lei ha clacsonato' becomes the exit status").
		Build()
	return &CodeGenerationError{Diag: diag, Construct: ast.MainName}
}

func didYouMean(similar []string) string {
	if len(similar) == 1 {
		return fmt.Sprintf("did you mean '%s'?", similar[0])
	}
	return fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '"))
}

// findSimilarNames returns the candidates within edit distance 2 of target,
// closest first.
func findSimilarNames(target string, candidates []string) []string {
	type match struct {
		name     string
		distance int
	}
	var matches []match
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		if seen[candidate] || candidate == target || len([]rune(candidate)) <= 2 {
			continue
		}
		seen[candidate] = true
		if d := levenshteinDistance(target, candidate); d <= 2 {
			matches = append(matches, match{candidate, d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].name < matches[j].name
	})

	similar := make([]string, len(matches))
	for i, m := range matches {
		similar[i] = m.name
	}
	return similar
}

// levenshteinDistance counts single-character edits between a and b.
func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
