package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"monicelli/internal/errors"
	"monicelli/internal/translator"
)

const diagnosticSource = "monicelli"

// Check runs the whole translation pipeline over text. Translation stops at
// the first error, so at most one diagnostic is returned; an empty, non-nil
// slice clears the client's markers.
func Check(path, text string) []protocol.Diagnostic {
	if _, err := translator.TranslateString(path, text); err != nil {
		return ConvertError(err)
	}
	return []protocol.Diagnostic{}
}

// ConvertError transforms a translation error into LSP diagnostics for IDE display.
func ConvertError(err error) []protocol.Diagnostic {
	diag, ok := errors.AsDiagnostic(err)
	if !ok {
		return []protocol.Diagnostic{{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(diagnosticSource),
			Message:  err.Error(),
		}}
	}
	return []protocol.Diagnostic{convertCompilerError(diag.Diagnostic())}
}

func convertCompilerError(ce errors.CompilerError) protocol.Diagnostic {
	line := uint32(max(ce.Position.Line-1, 0))    // Convert to 0-based indexing
	start := uint32(max(ce.Position.Column-1, 0)) // Convert to 0-based indexing

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + uint32(max(ce.Length, 1))},
		},
		Severity: ptrSeverity(severity(ce.Level)),
		Code:     &protocol.IntegerOrString{Value: ce.Code},
		Source:   ptrString(diagnosticSource),
		Message:  message(ce),
	}
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

// message folds suggestions and help into the single text editors show.
func message(ce errors.CompilerError) string {
	var b strings.Builder
	b.WriteString(ce.Message)
	for _, s := range ce.Suggestions {
		b.WriteString("\nhelp: ")
		b.WriteString(s.Message)
	}
	if ce.HelpText != "" {
		b.WriteString("\nhelp: ")
		b.WriteString(ce.HelpText)
	}
	return b.String()
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
