package ast

// Inspect traverses the tree rooted at node in depth-first source order. It
// calls f(node) first; when f returns false the children of node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
	case *Function:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		Inspect(n.Body, f)
	case *GlobalVar:
		inspectExpr(n.Init, f)
	case *Block:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *VarDeclStmt:
		inspectExpr(n.Init, f)
	case *AssignStmt:
		Inspect(n.Value, f)
	case *PrintStmt:
		Inspect(n.Value, f)
	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		if n.Else != nil {
			Inspect(n.Else, f)
		}
	case *LoopStmt:
		Inspect(n.Body, f)
		Inspect(n.Cond, f)
	case *ReturnStmt:
		inspectExpr(n.Value, f)
	case *AssertStmt:
		Inspect(n.Cond, f)
	case *ExprStmt:
		Inspect(n.Expr, f)
	case *UnaryExpr:
		Inspect(n.Operand, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *CallExpr:
		for _, a := range n.Args {
			Inspect(a, f)
		}
	}
}

// inspectExpr guards optional expressions: a nil Expr stored in an interface
// field must not reach f.
func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}
