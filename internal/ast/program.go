package ast

import "fmt"

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Program is the root of a translation unit. Declarations keep source order,
// which is also the emission order.
type Program struct {
	Pos   Position
	Decls []Decl
}

// Decl is a top-level declaration: *Function or *GlobalVar.
type Decl interface {
	Node
	isDecl()
}

func (*Function) isDecl()  {}
func (*GlobalVar) isDecl() {}

// Function represents a function declaration or the entry point block
// Example: "blinda la supercazzola Necchi doppio con x Necchi o scherziamo? ... e velocità di esecuzione"
type Function struct {
	Pos    Position
	Name   string
	Params []*Param
	Return *Type // nil for functions that return no value
	Body   *Block
	Main   bool // declared with "Lei ha clacsonato"
}

// Param is a single function parameter
// Example: "x Necchi"
type Param struct {
	Pos  Position
	Name string
	Type Type
}

// GlobalVar is a variable declared outside any function
// Example: "voglio contatore, Necchi come se fosse 0!"
type GlobalVar struct {
	Pos  Position
	Name string
	Type Type
	Init Expr // optional
}

// MainName is the name the entry point is registered under.
const MainName = "main"

func NewProgram(pos Position, decls []Decl) *Program {
	for i, d := range decls {
		if d == nil {
			panic(fmt.Sprintf("ast: nil declaration at index %d", i))
		}
	}
	return &Program{Pos: pos, Decls: decls}
}

func NewFunction(pos Position, name string, params []*Param, ret *Type, body *Block) *Function {
	if name == "" {
		panic("ast: function without a name")
	}
	if body == nil {
		panic("ast: function " + name + " without a body")
	}
	return &Function{Pos: pos, Name: name, Params: params, Return: ret, Body: body}
}

// NewMain builds the entry point function. It always returns an int in the
// generated code, so Return stays nil and the missing-return check skips it.
func NewMain(pos Position, body *Block) *Function {
	fn := NewFunction(pos, MainName, nil, nil, body)
	fn.Main = true
	return fn
}

func NewParam(pos Position, name string, typ Type) *Param {
	if name == "" {
		panic("ast: parameter without a name")
	}
	return &Param{Pos: pos, Name: name, Type: typ}
}

func NewGlobalVar(pos Position, name string, typ Type, init Expr) *GlobalVar {
	if name == "" {
		panic("ast: global variable without a name")
	}
	return &GlobalVar{Pos: pos, Name: name, Type: typ, Init: init}
}

// Functions returns the function declarations in source order.
func (p *Program) Functions() []*Function {
	var fns []*Function
	for _, d := range p.Decls {
		if fn, ok := d.(*Function); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
