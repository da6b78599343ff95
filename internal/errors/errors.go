package errors

import (
	stderrors "errors"
	"fmt"
)

// Diagnostic is implemented by every error the translator produces for a
// problem in the input program.
type Diagnostic interface {
	error
	Diagnostic() CompilerError
}

// AsDiagnostic finds the first Diagnostic in err's chain.
func AsDiagnostic(err error) (Diagnostic, bool) {
	var d Diagnostic
	if stderrors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// LexicalError reports source text that cannot be split into tokens
type LexicalError struct {
	Diag CompilerError
	Text string // offending source text
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: lexical error: %s", e.Diag.Position, e.Diag.Message)
}

func (e *LexicalError) Diagnostic() CompilerError { return e.Diag }

// SyntaxError reports a token sequence that does not fit the grammar
type SyntaxError struct {
	Diag     CompilerError
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Diag.Position, e.Diag.Message)
}

func (e *SyntaxError) Diagnostic() CompilerError { return e.Diag }

// CodeGenerationError reports a well-formed program that cannot be
// translated, such as one referencing an undeclared name.
type CodeGenerationError struct {
	Diag      CompilerError
	Construct string // the offending name
}

func (e *CodeGenerationError) Error() string {
	return fmt.Sprintf("%s: code generation error: %s", e.Diag.Position, e.Diag.Message)
}

func (e *CodeGenerationError) Diagnostic() CompilerError { return e.Diag }

// ToolchainError wraps a failure of the output stage: writing the C++ file
// or running the external compiler.
type ToolchainError struct {
	Op  string
	Err error
}

func (e *ToolchainError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *ToolchainError) Unwrap() error { return e.Err }

func (e *ToolchainError) Diagnostic() CompilerError {
	return CompilerError{Level: Error, Code: ErrorToolchain, Message: e.Error()}
}
