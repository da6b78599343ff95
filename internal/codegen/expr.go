package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"monicelli/internal/ast"
	"monicelli/internal/errors"
)

// C++ binding strengths of the operators the generator emits; higher binds
// tighter.
const (
	precOr      = 4
	precAnd     = 5
	precEqual   = 9
	precCompare = 10
	precShift   = 11
	precAdd     = 12
	precMul     = 13
	precUnary   = 15
	precPrimary = 16
)

func cppPrecedence(op ast.Operator) int {
	switch op {
	case ast.OR:
		return precOr
	case ast.AND:
		return precAnd
	case ast.EQ, ast.NE:
		return precEqual
	case ast.LT, ast.GT, ast.LE, ast.GE:
		return precCompare
	case ast.ADD, ast.SUB:
		return precAdd
	case ast.MUL, ast.DIV, ast.MOD:
		return precMul
	case ast.NEG, ast.NOT:
		return precUnary
	}
	panic("codegen: unknown operator " + op.String())
}

func (g *Generator) expr(e ast.Expr) (string, error) {
	text, _, err := g.exprPrec(e)
	return text, err
}

// exprPrec renders e and reports the precedence of its outermost operator
// so the caller can decide whether to parenthesize it.
func (g *Generator) exprPrec(e ast.Expr) (string, int, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		if n.Value < 0 {
			return "(" + strconv.FormatInt(n.Value, 10) + ")", precPrimary, nil
		}
		return strconv.FormatInt(n.Value, 10), precPrimary, nil

	case *ast.FloatLit:
		return floatLiteral(n), precPrimary, nil

	case *ast.StringLit:
		return "std::string(" + quoteString(n.Value) + ")", precPrimary, nil

	case *ast.BoolLit:
		return strconv.FormatBool(n.Value), precPrimary, nil

	case *ast.IdentExpr:
		if _, ok := g.scope.lookup(n.Name); !ok {
			return "", 0, errors.UndefinedVariable(n.Name, n.Pos, g.scope.visible())
		}
		return mangleVar(n.Name), precPrimary, nil

	case *ast.UnaryExpr:
		operand, prec, err := g.exprPrec(n.Operand)
		if err != nil {
			return "", 0, err
		}
		// nested unary operands are grouped so "- -x" never turns into "--x"
		if _, nested := n.Operand.(*ast.UnaryExpr); nested || prec < precUnary {
			operand = "(" + operand + ")"
		}
		return n.Op.Symbol() + operand, precUnary, nil

	case *ast.BinaryExpr:
		prec := cppPrecedence(n.Op)

		left, leftPrec, err := g.exprPrec(n.Left)
		if err != nil {
			return "", 0, err
		}
		if leftPrec < prec {
			left = "(" + left + ")"
		}

		right, rightPrec, err := g.exprPrec(n.Right)
		if err != nil {
			return "", 0, err
		}
		if rightPrec <= prec {
			right = "(" + right + ")"
		}

		return left + " " + n.Op.Symbol() + " " + right, prec, nil

	case *ast.CallExpr:
		return g.call(n)
	}

	return "", 0, fmt.Errorf("codegen: unexpected expression %T", e)
}

func (g *Generator) call(c *ast.CallExpr) (string, int, error) {
	if _, ok := g.funcs[c.Callee]; !ok {
		return "", 0, errors.UndefinedFunction(c.Callee, c.Pos, g.names)
	}

	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		text, err := g.expr(a)
		if err != nil {
			return "", 0, err
		}
		args[i] = text
	}
	return mangleFunc(c.Callee) + "(" + strings.Join(args, ", ") + ")", precPrimary, nil
}

// floatLiteral keeps the source spelling when there is one; otherwise the
// shortest representation, forced to read as a floating point literal.
func floatLiteral(f *ast.FloatLit) string {
	text := f.Raw
	if text == "" {
		text = strconv.FormatFloat(f.Value, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
	}
	if strings.HasPrefix(text, "-") {
		return "(" + text + ")"
	}
	return text
}

// quoteString renders s as a C++ string literal. Bytes outside printable
// ASCII other than UTF-8 sequences are written as octal escapes.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b.WriteString(`\"`)
		case c == '\\':
			b.WriteString(`\\`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '?' && i > 0 && s[i-1] == '?':
			// breaks up trigraphs
			b.WriteString(`\?`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
