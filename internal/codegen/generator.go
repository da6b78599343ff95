package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"monicelli/internal/ast"
	"monicelli/internal/errors"
)

var log = commonlog.GetLogger("monicelli.codegen")

const indentUnit = "    "

var includes = []string{"cassert", "cstdlib", "iostream", "string"}

// Generator emits C++11 source for a parsed program. Scope and definedness
// checks run during emission; the first failure aborts with a
// *errors.CodeGenerationError. A Generator holds no state between calls.
type Generator struct {
	indent  int
	output  strings.Builder
	globals *scope
	scope   *scope
	funcs   map[string]*ast.Function
	names   []string // function names in declaration order, for suggestions
	current *ast.Function
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate translates prog into a complete C++ translation unit.
func Generate(prog *ast.Program) (string, error) {
	return NewGenerator().Generate(prog)
}

// GenerateTo writes the translation of prog to w. Nothing is written when
// generation fails.
func GenerateTo(w io.Writer, prog *ast.Program) error {
	out, err := Generate(prog)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (g *Generator) Generate(prog *ast.Program) (string, error) {
	g.reset()

	var entry *ast.Function
	for _, fn := range prog.Functions() {
		if fn.Main {
			if entry != nil {
				return "", errors.DuplicateEntryPoint(fn.Pos, entry.Pos)
			}
			entry = fn
			continue
		}
		if _, ok := g.funcs[fn.Name]; !ok {
			g.funcs[fn.Name] = fn
			g.names = append(g.names, fn.Name)
		}
	}

	g.writePrelude(prog)

	for _, decl := range prog.Decls {
		g.writeLine("")
		var err error
		switch d := decl.(type) {
		case *ast.GlobalVar:
			err = g.emitGlobal(d)
		case *ast.Function:
			err = g.emitFunction(d)
		default:
			err = fmt.Errorf("codegen: unexpected declaration %T", decl)
		}
		if err != nil {
			return "", err
		}
	}

	log.Debugf("generated %d declarations, %d bytes", len(prog.Decls), g.output.Len())
	return g.output.String(), nil
}

func (g *Generator) reset() {
	g.indent = 0
	g.output.Reset()
	g.globals = newScope(nil)
	g.scope = g.globals
	g.funcs = make(map[string]*ast.Function)
	g.names = nil
	g.current = nil
}

func (g *Generator) writePrelude(prog *ast.Program) {
	for _, inc := range includes {
		g.writeLine("#include <%s>", inc)
	}

	var prototypes []*ast.Function
	for _, fn := range prog.Functions() {
		if !fn.Main {
			prototypes = append(prototypes, fn)
		}
	}
	if len(prototypes) == 0 {
		return
	}

	g.writeLine("")
	for _, fn := range prototypes {
		g.writeLine("%s;", signature(fn))
	}
}

func (g *Generator) emitGlobal(v *ast.GlobalVar) error {
	decl, err := g.declaration(v.Name, v.Type, v.Init)
	if err != nil {
		return err
	}
	g.writeLine("%s", decl)
	return nil
}

func (g *Generator) emitFunction(fn *ast.Function) error {
	if err := checkReturnPresent(fn); err != nil {
		return err
	}

	g.current = fn
	g.scope = newScope(g.globals)
	defer func() {
		g.current = nil
		g.scope = g.globals
	}()

	for _, p := range fn.Params {
		g.scope.declare(p.Name, p.Type)
	}

	g.writeLine("%s {", signature(fn))
	if err := g.emitStatements(fn.Body); err != nil {
		return err
	}
	g.writeLine("}")
	return nil
}

// checkReturnPresent rejects a typed function whose body holds no return
// statement at all. The check is syntactic: a return nested anywhere, even in
// a branch that may not run, satisfies it.
func checkReturnPresent(fn *ast.Function) error {
	if fn.Main || fn.Return == nil {
		return nil
	}

	found := false
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if _, ok := n.(*ast.ReturnStmt); ok {
			found = true
		}
		return !found
	})
	if !found {
		return errors.MissingReturn(fn.Name, *fn.Return, fn.Pos)
	}
	return nil
}

func signature(fn *ast.Function) string {
	if fn.Main {
		return "int main()"
	}
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = cppType(p.Type) + " " + mangleVar(p.Name)
	}
	return fmt.Sprintf("%s %s(%s)", returnType(fn), mangleFunc(fn.Name), strings.Join(params, ", "))
}

// declaration renders "T name = init;" and declares name in the current
// scope once the initializer has been checked against the previous one.
func (g *Generator) declaration(name string, t ast.Type, init ast.Expr) (string, error) {
	var value string
	if init != nil {
		v, err := g.expr(init)
		if err != nil {
			return "", err
		}
		value = v
	} else if zero, ok := zeroValue(t); ok {
		value = zero
	}

	g.scope.declare(name, t)

	if value == "" {
		return fmt.Sprintf("%s %s;", cppType(t), mangleVar(name)), nil
	}
	return fmt.Sprintf("%s %s = %s;", cppType(t), mangleVar(name), value), nil
}

func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.output.WriteString(indentUnit)
	}
}

func (g *Generator) writeLine(format string, args ...interface{}) {
	if format != "" {
		g.writeIndent()
		fmt.Fprintf(&g.output, format, args...)
	}
	g.output.WriteString("\n")
}
