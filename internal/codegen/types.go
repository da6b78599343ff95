package codegen

import "monicelli/internal/ast"

// cppType maps a declared type to its C++ spelling.
func cppType(t ast.Type) string {
	switch t {
	case ast.Integer:
		return "int"
	case ast.Float:
		return "double"
	case ast.Char:
		return "char"
	case ast.Boolean:
		return "bool"
	case ast.String:
		return "std::string"
	}
	panic("codegen: unknown type " + t.String())
}

// zeroValue is the initializer used for declarations without one. Strings
// rely on the default constructor and get none.
func zeroValue(t ast.Type) (string, bool) {
	switch t {
	case ast.Integer:
		return "0", true
	case ast.Float:
		return "0.0", true
	case ast.Char:
		return `'\0'`, true
	case ast.Boolean:
		return "false", true
	}
	return "", false
}

func returnType(fn *ast.Function) string {
	if fn.Main {
		return "int"
	}
	if fn.Return == nil {
		return "void"
	}
	return cppType(*fn.Return)
}

// staticType works out the type of e from literals, declared variables and
// function return types. It reports false when e has no value or mixes
// operands in a way the rules below do not cover.
func (g *Generator) staticType(e ast.Expr) (ast.Type, bool) {
	switch n := e.(type) {
	case *ast.IntLit:
		return ast.Integer, true
	case *ast.FloatLit:
		return ast.Float, true
	case *ast.StringLit:
		return ast.String, true
	case *ast.BoolLit:
		return ast.Boolean, true
	case *ast.IdentExpr:
		return g.scope.lookup(n.Name)
	case *ast.CallExpr:
		if fn, ok := g.funcs[n.Callee]; ok && fn.Return != nil {
			return *fn.Return, true
		}
		return 0, false
	case *ast.UnaryExpr:
		if n.Op == ast.NOT {
			return ast.Boolean, true
		}
		return g.staticType(n.Operand)
	case *ast.BinaryExpr:
		switch n.Op {
		case ast.EQ, ast.NE, ast.LT, ast.GT, ast.LE, ast.GE, ast.AND, ast.OR:
			return ast.Boolean, true
		}
		left, lok := g.staticType(n.Left)
		right, rok := g.staticType(n.Right)
		switch {
		case !lok || !rok:
			return 0, false
		case left == ast.String || right == ast.String:
			return ast.String, true
		case left == ast.Float || right == ast.Float:
			return ast.Float, true
		}
		return ast.Integer, true
	}
	return 0, false
}
