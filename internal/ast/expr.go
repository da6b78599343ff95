package ast

import "fmt"

type Expr interface {
	Node
	isExpr()
}

func (*IntLit) isExpr()     {}
func (*FloatLit) isExpr()   {}
func (*StringLit) isExpr()  {}
func (*BoolLit) isExpr()    {}
func (*IdentExpr) isExpr()  {}
func (*UnaryExpr) isExpr()  {}
func (*BinaryExpr) isExpr() {}
func (*CallExpr) isExpr()   {}

// Operator tags unary and binary operations.
type Operator int

const (
	ILLEGAL_OP Operator = iota

	// Unary
	NEG
	NOT

	// Binary
	ADD
	SUB
	MUL
	DIV
	MOD
	LT
	GT
	LE
	GE
	EQ
	NE
	AND
	OR
)

var operatorKeywords = [...]string{
	ILLEGAL_OP: "?",
	NEG:        "meno",
	NOT:        "non",
	ADD:        "più",
	SUB:        "meno",
	MUL:        "per",
	DIV:        "diviso",
	MOD:        "resto",
	LT:         "minore di",
	GT:         "maggiore di",
	LE:         "minore o uguale a",
	GE:         "maggiore o uguale a",
	EQ:         "uguale a",
	NE:         "diverso da",
	AND:        "nonché",
	OR:         "oppure",
}

var operatorSymbols = [...]string{
	ILLEGAL_OP: "?",
	NEG:        "-",
	NOT:        "!",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	MOD:        "%",
	LT:         "<",
	GT:         ">",
	LE:         "<=",
	GE:         ">=",
	EQ:         "==",
	NE:         "!=",
	AND:        "&&",
	OR:         "||",
}

// Keyword returns the source spelling of the operator.
func (op Operator) Keyword() string {
	if op < 0 || int(op) >= len(operatorKeywords) {
		return "?"
	}
	return operatorKeywords[op]
}

// Symbol returns the conventional symbolic spelling of the operator.
func (op Operator) Symbol() string {
	if op < 0 || int(op) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[op]
}

func (op Operator) IsUnary() bool { return op == NEG || op == NOT }

func (op Operator) IsBinary() bool { return op >= ADD && op <= OR }

func (op Operator) String() string { return op.Symbol() }

// IntLit is an integer literal
// Example: "42"
type IntLit struct {
	Pos   Position
	Value int64
}

// FloatLit is a floating point literal; Raw keeps the source spelling
// Example: "3.14"
type FloatLit struct {
	Pos   Position
	Value float64
	Raw   string
}

// StringLit holds the decoded contents of a string literal
// Example: "\"ciao\""
type StringLit struct {
	Pos   Position
	Value string
}

// BoolLit is "vero" or "falso"
type BoolLit struct {
	Pos   Position
	Value bool
}

// IdentExpr references a variable or parameter by name
// Example: "contatore"
type IdentExpr struct {
	Pos  Position
	Name string
}

// UnaryExpr applies a prefix operator
// Example: "meno x", "non finito"
type UnaryExpr struct {
	Pos     Position
	Op      Operator
	Operand Expr
}

// BinaryExpr applies an infix operator
// Example: "a più b per c"
type BinaryExpr struct {
	Pos   Position
	Op    Operator
	Left  Expr
	Right Expr
}

// CallExpr invokes a function
// Example: "brematurata la supercazzola somma con 1, 2 o scherziamo?"
type CallExpr struct {
	Pos    Position
	Callee string
	Args   []Expr
}

func NewIntLit(pos Position, v int64) *IntLit { return &IntLit{Pos: pos, Value: v} }

func NewFloatLit(pos Position, v float64, raw string) *FloatLit {
	return &FloatLit{Pos: pos, Value: v, Raw: raw}
}

func NewStringLit(pos Position, v string) *StringLit { return &StringLit{Pos: pos, Value: v} }

func NewBoolLit(pos Position, v bool) *BoolLit { return &BoolLit{Pos: pos, Value: v} }

func NewIdent(pos Position, name string) *IdentExpr {
	if name == "" {
		panic("ast: empty identifier")
	}
	return &IdentExpr{Pos: pos, Name: name}
}

func NewUnary(pos Position, op Operator, operand Expr) *UnaryExpr {
	if !op.IsUnary() {
		panic(fmt.Sprintf("ast: %s is not a unary operator", op))
	}
	if operand == nil {
		panic("ast: unary operator without an operand")
	}
	return &UnaryExpr{Pos: pos, Op: op, Operand: operand}
}

func NewBinary(pos Position, op Operator, left, right Expr) *BinaryExpr {
	if !op.IsBinary() {
		panic(fmt.Sprintf("ast: %s is not a binary operator", op))
	}
	if left == nil || right == nil {
		panic("ast: binary operator needs two operands")
	}
	return &BinaryExpr{Pos: pos, Op: op, Left: left, Right: right}
}

func NewCall(pos Position, callee string, args []Expr) *CallExpr {
	if callee == "" {
		panic("ast: call without a callee")
	}
	for i, a := range args {
		if a == nil {
			panic(fmt.Sprintf("ast: nil argument %d in call to %s", i, callee))
		}
	}
	return &CallExpr{Pos: pos, Callee: callee, Args: args}
}

// Precedence returns the binding strength of a binary operator in the source
// grammar; higher binds tighter. Unary operators bind tighter than any binary one.
func (op Operator) Precedence() int {
	switch op {
	case OR:
		return 1
	case AND:
		return 2
	case EQ, NE:
		return 3
	case LT, GT, LE, GE:
		return 4
	case ADD, SUB:
		return 5
	case MUL, DIV, MOD:
		return 6
	case NEG, NOT:
		return 7
	default:
		return 0
	}
}
