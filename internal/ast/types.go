package ast

// NodeType tags every concrete node so callers can switch on kinds without
// a type assertion.
type NodeType int

const (
	ILLEGAL NodeType = iota

	// Top level
	PROGRAM
	FUNCTION
	PARAM
	GLOBAL_VAR

	// Statements
	BLOCK
	VAR_DECL_STMT
	ASSIGN_STMT
	PRINT_STMT
	INPUT_STMT
	IF_STMT
	LOOP_STMT
	RETURN_STMT
	ASSERT_STMT
	ABORT_STMT
	EXPR_STMT

	// Expressions
	INT_LIT
	FLOAT_LIT
	STRING_LIT
	BOOL_LIT
	IDENT_EXPR
	UNARY_EXPR
	BINARY_EXPR
	CALL_EXPR
)
