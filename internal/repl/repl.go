// Package repl is an interactive front end: source typed at the prompt is
// translated and the C++ (or the diagnostic) printed back.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"monicelli/internal/errors"
	"monicelli/internal/parser"
	"monicelli/internal/translator"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "

	// A line holding only the terminator ends the current program.
	Terminator = "."
)

const sourceName = "<repl>"

// Start reads programs from in until it is exhausted. Each program is the
// text typed before a terminator line. When showAST is set the parsed tree
// is printed instead of the generated code.
func Start(in io.Reader, out io.Writer, showAST bool) {
	scanner := bufio.NewScanner(in)
	var source strings.Builder

	fmt.Fprint(out, PROMPT)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) != Terminator {
			source.WriteString(line)
			source.WriteByte('\n')
			fmt.Fprint(out, CONTINUATION)
			continue
		}

		evaluate(out, source.String(), showAST)
		source.Reset()
		fmt.Fprint(out, PROMPT)
	}

	if source.Len() > 0 {
		evaluate(out, source.String(), showAST)
	}
	fmt.Fprintln(out)
}

func evaluate(out io.Writer, source string, showAST bool) {
	reporter := errors.NewErrorReporter(sourceName, source)

	if showAST {
		program, err := parser.ParseSource(sourceName, source)
		if err != nil {
			reporter.Report(out, err)
			return
		}
		fmt.Fprint(out, program.String())
		return
	}

	cpp, err := translator.TranslateString(sourceName, source)
	if err != nil {
		reporter.Report(out, err)
		return
	}
	fmt.Fprint(out, cpp)
}
