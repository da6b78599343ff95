package ast

import "fmt"

type Stmt interface {
	Node
	isStmt()
}

func (*VarDeclStmt) isStmt() {}
func (*AssignStmt) isStmt()  {}
func (*PrintStmt) isStmt()   {}
func (*InputStmt) isStmt()   {}
func (*IfStmt) isStmt()      {}
func (*LoopStmt) isStmt()    {}
func (*ReturnStmt) isStmt()  {}
func (*AssertStmt) isStmt()  {}
func (*AbortStmt) isStmt()   {}
func (*ExprStmt) isStmt()    {}

// Block is an ordered statement sequence: a function body, a branch or a loop body
type Block struct {
	Pos   Position
	Stmts []Stmt
}

// VarDeclStmt declares a local variable
// Example: "voglio x, Necchi come se fosse 3!"
type VarDeclStmt struct {
	Pos  Position
	Name string
	Type Type
	Init Expr // optional
}

// AssignStmt stores a value into a declared variable
// Example: "x come se fosse x più 1!"
type AssignStmt struct {
	Pos    Position
	Target string
	Value  Expr
}

// PrintStmt writes a value followed by a newline
// Example: "x a posterdati!"
type PrintStmt struct {
	Pos   Position
	Value Expr
}

// InputStmt reads a value into a declared variable
// Example: "mi porga x!"
type InputStmt struct {
	Pos    Position
	Target string
}

// IfStmt is a two-way branch; "o magari" chains nest another IfStmt as the
// only statement of Else.
// Example: "che cos'è x maggiore di 0? ... o tarapia tapioco: ... e velocità di esecuzione"
type IfStmt struct {
	Pos  Position
	Cond Expr
	Then *Block
	Else *Block // optional
}

// LoopStmt runs Body, then tests Cond, and repeats while Cond holds
// Example: "stuzzica ... e brematura anche, se x minore di 10!"
type LoopStmt struct {
	Pos  Position
	Body *Block
	Cond Expr
}

// ReturnStmt leaves the enclosing function
// Example: "vaffanzum x!"
type ReturnStmt struct {
	Pos   Position
	Value Expr // optional
}

// AssertStmt aborts the program when Cond is false
// Example: "ho visto la x maggiore di 0!"
type AssertStmt struct {
	Pos  Position
	Cond Expr
}

// AbortStmt terminates the program with a failure status
// Example: "avvertite don ulrico!"
type AbortStmt struct {
	Pos Position
}

// ExprStmt evaluates an expression for its side effects
// Example: "brematurata la supercazzola saluta o scherziamo?!"
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func NewBlock(pos Position, stmts []Stmt) *Block {
	for i, s := range stmts {
		if s == nil {
			panic(fmt.Sprintf("ast: nil statement at index %d", i))
		}
	}
	return &Block{Pos: pos, Stmts: stmts}
}

func NewVarDecl(pos Position, name string, typ Type, init Expr) *VarDeclStmt {
	if name == "" {
		panic("ast: variable declaration without a name")
	}
	return &VarDeclStmt{Pos: pos, Name: name, Type: typ, Init: init}
}

func NewAssign(pos Position, target string, value Expr) *AssignStmt {
	if target == "" || value == nil {
		panic("ast: assignment needs a target and a value")
	}
	return &AssignStmt{Pos: pos, Target: target, Value: value}
}

func NewPrint(pos Position, value Expr) *PrintStmt {
	if value == nil {
		panic("ast: print without a value")
	}
	return &PrintStmt{Pos: pos, Value: value}
}

func NewInput(pos Position, target string) *InputStmt {
	if target == "" {
		panic("ast: input without a target")
	}
	return &InputStmt{Pos: pos, Target: target}
}

func NewIf(pos Position, cond Expr, then, els *Block) *IfStmt {
	if cond == nil {
		panic("ast: conditional without a condition")
	}
	if then == nil {
		panic("ast: conditional without a then-block")
	}
	return &IfStmt{Pos: pos, Cond: cond, Then: then, Else: els}
}

func NewLoop(pos Position, body *Block, cond Expr) *LoopStmt {
	if body == nil || cond == nil {
		panic("ast: loop needs a body and a condition")
	}
	return &LoopStmt{Pos: pos, Body: body, Cond: cond}
}

func NewReturn(pos Position, value Expr) *ReturnStmt {
	return &ReturnStmt{Pos: pos, Value: value}
}

func NewAssert(pos Position, cond Expr) *AssertStmt {
	if cond == nil {
		panic("ast: assertion without a condition")
	}
	return &AssertStmt{Pos: pos, Cond: cond}
}

func NewAbort(pos Position) *AbortStmt {
	return &AbortStmt{Pos: pos}
}

func NewExprStmt(pos Position, expr Expr) *ExprStmt {
	if expr == nil {
		panic("ast: expression statement without an expression")
	}
	return &ExprStmt{Pos: pos, Expr: expr}
}
