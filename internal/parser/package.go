package parser

import (
	"io"

	"monicelli/internal/ast"
)

// Parse reads a whole program from r. The first lexical or syntax error
// aborts parsing.
func Parse(filename string, r io.Reader) (*ast.Program, error) {
	scanner, err := NewScanner(filename, r)
	if err != nil {
		return nil, err
	}
	return NewParser(scanner).ParseProgram()
}

func ParseSource(filename, source string) (*ast.Program, error) {
	return NewParser(NewStringScanner(filename, source)).ParseProgram()
}
