package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String methods render nodes back into Monicelli source. Printing a parsed
// program and parsing the result again yields an equivalent tree.

const indentUnit = "    "

func (p *Program) String() string {
	var b strings.Builder
	for i, d := range p.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder

	if f.Main {
		b.WriteString("Lei ha clacsonato\n")
	} else {
		b.WriteString("blinda la supercazzola ")
		if f.Return != nil {
			b.WriteString(f.Return.Keyword())
			b.WriteString(" ")
		}
		b.WriteString(f.Name)
		for i, param := range f.Params {
			if i == 0 {
				b.WriteString(" con ")
			} else {
				b.WriteString(", ")
			}
			b.WriteString(param.String())
		}
		b.WriteString(" o scherziamo?\n")
	}

	b.WriteString(f.Body.StringIndented(indentUnit))
	b.WriteString("e velocità di esecuzione")
	return b.String()
}

func (p *Param) String() string {
	return fmt.Sprintf("%s %s", p.Name, p.Type.Keyword())
}

func (g *GlobalVar) String() string {
	return declString(g.Name, g.Type, g.Init)
}

func (b *Block) String() string {
	return b.StringIndented(indentUnit)
}

// StringIndented renders every statement on its own line with the given
// indentation; nested blocks indent one further level.
func (b *Block) StringIndented(indent string) string {
	var out strings.Builder
	for _, s := range b.Stmts {
		text := s.String()
		out.WriteString(indent)
		out.WriteString(strings.ReplaceAll(text, "\n", "\n"+indent))
		out.WriteByte('\n')
	}
	return out.String()
}

func (v *VarDeclStmt) String() string {
	return declString(v.Name, v.Type, v.Init)
}

func declString(name string, typ Type, init Expr) string {
	if init == nil {
		return fmt.Sprintf("voglio %s, %s!", name, typ.Keyword())
	}
	return fmt.Sprintf("voglio %s, %s come se fosse %s!", name, typ.Keyword(), init.String())
}

func (a *AssignStmt) String() string {
	return fmt.Sprintf("%s come se fosse %s!", a.Target, a.Value.String())
}

func (p *PrintStmt) String() string {
	return p.Value.String() + " a posterdati!"
}

func (i *InputStmt) String() string {
	return "mi porga " + i.Target + "!"
}

func (i *IfStmt) String() string {
	var b strings.Builder
	b.WriteString("che cos'è ")
	b.WriteString(i.Cond.String())
	b.WriteString("?\n")
	b.WriteString(i.Then.StringIndented(indentUnit))

	els := i.Else
	for els != nil {
		if nested, ok := elseIf(els); ok {
			b.WriteString("o magari ")
			b.WriteString(nested.Cond.String())
			b.WriteString(":\n")
			b.WriteString(nested.Then.StringIndented(indentUnit))
			els = nested.Else
			continue
		}
		b.WriteString("o tarapia tapioco:\n")
		b.WriteString(els.StringIndented(indentUnit))
		break
	}

	b.WriteString("e velocità di esecuzione")
	return b.String()
}

// elseIf reports whether an else-block is exactly one nested conditional,
// the shape an "o magari" branch parses into.
func elseIf(els *Block) (*IfStmt, bool) {
	if len(els.Stmts) != 1 {
		return nil, false
	}
	nested, ok := els.Stmts[0].(*IfStmt)
	return nested, ok
}

// ElseIf exposes the else-if shape check to other packages.
func (i *IfStmt) ElseIf() (*IfStmt, bool) {
	if i.Else == nil {
		return nil, false
	}
	return elseIf(i.Else)
}

func (l *LoopStmt) String() string {
	var b strings.Builder
	b.WriteString("stuzzica\n")
	b.WriteString(l.Body.StringIndented(indentUnit))
	b.WriteString("e brematura anche, se ")
	b.WriteString(l.Cond.String())
	b.WriteString("!")
	return b.String()
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "vaffanzum!"
	}
	return "vaffanzum " + r.Value.String() + "!"
}

func (a *AssertStmt) String() string {
	return "ho visto la " + a.Cond.String() + "!"
}

func (*AbortStmt) String() string {
	return "avvertite don ulrico!"
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + "!"
}

func (l *IntLit) String() string {
	return strconv.FormatInt(l.Value, 10)
}

func (l *FloatLit) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	s := strconv.FormatFloat(l.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

func (l *StringLit) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range l.Value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (l *BoolLit) String() string {
	if l.Value {
		return "vero"
	}
	return "falso"
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (u *UnaryExpr) String() string {
	operand := u.Operand.String()
	if _, ok := u.Operand.(*BinaryExpr); ok {
		operand = "(" + operand + ")"
	}
	return u.Op.Keyword() + " " + operand
}

func (b *BinaryExpr) String() string {
	left := b.Left.String()
	if child, ok := b.Left.(*BinaryExpr); ok && child.Op.Precedence() < b.Op.Precedence() {
		left = "(" + left + ")"
	}
	right := b.Right.String()
	if child, ok := b.Right.(*BinaryExpr); ok && child.Op.Precedence() <= b.Op.Precedence() {
		right = "(" + right + ")"
	}
	return left + " " + b.Op.Keyword() + " " + right
}

func (c *CallExpr) String() string {
	var b strings.Builder
	b.WriteString("brematurata la supercazzola ")
	b.WriteString(c.Callee)
	for i, arg := range c.Args {
		if i == 0 {
			b.WriteString(" con ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(" o scherziamo?")
	return b.String()
}
