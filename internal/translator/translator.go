package translator

import (
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"monicelli/internal/ast"
	"monicelli/internal/codegen"
	"monicelli/internal/parser"
)

var log = commonlog.GetLogger("monicelli.translator")

// Translate reads a Monicelli program from r and writes the equivalent C++
// to w. Output is all-or-nothing: on any lexical, syntax or generation
// error nothing reaches w.
func Translate(name string, r io.Reader, w io.Writer) error {
	prog, err := parser.Parse(name, r)
	if err != nil {
		log.Debugf("%s: parse failed: %s", name, err)
		return err
	}
	return emit(name, prog, w)
}

// TranslateString translates an in-memory source.
func TranslateString(name, source string) (string, error) {
	var out strings.Builder
	if err := Translate(name, strings.NewReader(source), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

func emit(name string, prog *ast.Program, w io.Writer) error {
	out, err := codegen.Generate(prog)
	if err != nil {
		log.Debugf("%s: generation failed: %s", name, err)
		return err
	}
	log.Infof("%s: translated %d declarations", name, len(prog.Decls))
	_, err = io.WriteString(w, out)
	return err
}
