package errors

// Error codes for the Monicelli translator.
// Codes appear in the header of every reported diagnostic.
//
// Error code ranges:
// E0100-E0199: Lexical errors
// E0200-E0299: Syntax errors
// E0300-E0399: Code generation errors
// E0900-E0999: Tooling errors

const (
	// E0101: A character that starts no token
	ErrorUnexpectedCharacter = "E0101"

	// E0102: String literal not closed before end of line
	ErrorUnterminatedString = "E0102"

	// E0103: Unknown escape sequence inside a string literal
	ErrorInvalidEscape = "E0103"

	// E0104: Numeric literal does not fit its 64-bit representation
	ErrorNumberOutOfRange = "E0104"

	// E0201: Token does not fit the grammar at this point
	ErrorUnexpectedToken = "E0201"

	// E0202: Input ended before a block was closed
	ErrorUnterminatedBlock = "E0202"

	// E0301: Identifier not declared in any visible scope
	ErrorUndefinedVariable = "E0301"

	// E0302: Call to a function that is never declared
	ErrorUndefinedFunction = "E0302"

	// E0303: Typed function with no return statement
	ErrorMissingReturn = "E0303"

	// E0304: Assignment or input whose target is not a variable
	ErrorNotAssignable = "E0304"

	// E0305: Return with a value from a function without a return type
	ErrorUnexpectedReturnValue = "E0305"

	// E0306: Bare return from a function with a return type
	ErrorMissingReturnValue = "E0306"

	// E0307: More than one entry point
	ErrorDuplicateEntryPoint = "E0307"

	// E0308: Entry point returning a value that is not a number
	ErrorInvalidExitStatus = "E0308"

	// E0901: Output could not be written or compiled
	ErrorToolchain = "E0901"
)

// errorDescriptions backs Describe and the "--explain" style help of the CLI.
var errorDescriptions = map[string]string{
	ErrorUnexpectedCharacter:   "a character that cannot start any token",
	ErrorUnterminatedString:    "a string literal that is not closed on the same line",
	ErrorInvalidEscape:         "an escape sequence other than \\\" \\\\ \\n \\t",
	ErrorNumberOutOfRange:      "a numeric literal outside the range of a 64-bit integer or float",
	ErrorUnexpectedToken:       "a token that does not fit the grammar at this point",
	ErrorUnterminatedBlock:     "a block that is still open when the input ends",
	ErrorUndefinedVariable:     "an identifier that is not declared in any visible scope",
	ErrorUndefinedFunction:     "a call to a function that is never declared",
	ErrorMissingReturn:         "a typed function with no return statement",
	ErrorNotAssignable:         "an assignment or input whose target is not a variable",
	ErrorUnexpectedReturnValue: "a return with a value inside a function without a return type",
	ErrorMissingReturnValue:    "a return without a value inside a function with a return type",
	ErrorDuplicateEntryPoint:   "a second 'Lei ha clacsonato' block",
	ErrorInvalidExitStatus:     "a return from the entry point whose value is not a number",
	ErrorToolchain:             "a failure writing or compiling the generated program",
}

// Describe returns a one-line description of an error code.
func Describe(code string) (string, bool) {
	d, ok := errorDescriptions[code]
	return d, ok
}
