package errors

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"monicelli/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError is the structured form of every failure the translator reports
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0301
	Message     string       // Primary message
	Position    ast.Position // Location in source
	Length      int          // Width of the offending region, in characters
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context
	HelpText    string
}

// Suggestion is a suggested fix
type Suggestion struct {
	Message     string
	Replacement string // optional
}

// ErrorReporter renders diagnostics against the source they refer to
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Report formats any error. Errors carrying a diagnostic get the full
// source excerpt; anything else is printed as a bare error line.
func (er *ErrorReporter) Report(w io.Writer, err error) {
	if diag, ok := AsDiagnostic(err); ok {
		fmt.Fprint(w, er.FormatError(diag.Diagnostic()))
		return
	}
	fmt.Fprintf(w, "%s: %v\n", er.levelColor(Error)(string(Error)), err)
}

// FormatError formats a diagnostic with a header, the offending line and a marker
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// error[E0301]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(err.Level)), err.Message))
	}

	width := lineNumberWidth(err.Position.Line)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, err.Position.Line, err.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if err.Position.Line > 1 && err.Position.Line-1 <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, err.Position.Line-1)), dim("│"), er.lines[err.Position.Line-2]))
	}

	if err.Position.Line > 0 && err.Position.Line <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, err.Position.Line)), dim("│"), er.lines[err.Position.Line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), er.createMarker(err.Position.Column, err.Length, err.Level)))
	}

	if err.Position.Line > 0 && err.Position.Line < len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, err.Position.Line+1)), dim("│"), er.lines[err.Position.Line]))
	}

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		for i, s := range err.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s: %s\n", indent, cyan("help"), s.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s       %s\n", indent, s.Message))
			}
			if s.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s %s\n", indent, cyan("│"), cyan(s.Replacement)))
			}
		}
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), blue("note:"), note))
	}

	if err.HelpText != "" {
		green := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), green("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

func (er *ErrorReporter) levelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker builds the caret underline for a diagnostic
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + er.levelColor(level)(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line)))
}

// spanLength measures a lexeme in characters, the unit of Position.Column.
func spanLength(text string) int {
	return max(1, utf8.RuneCountInString(text))
}
