package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position { return p.Pos }
func (*Program) NodeType() NodeType  { return PROGRAM }

func (f *Function) NodePos() Position { return f.Pos }
func (*Function) NodeType() NodeType  { return FUNCTION }

func (p *Param) NodePos() Position { return p.Pos }
func (*Param) NodeType() NodeType  { return PARAM }

func (g *GlobalVar) NodePos() Position { return g.Pos }
func (*GlobalVar) NodeType() NodeType  { return GLOBAL_VAR }

func (b *Block) NodePos() Position { return b.Pos }
func (*Block) NodeType() NodeType  { return BLOCK }

func (v *VarDeclStmt) NodePos() Position { return v.Pos }
func (*VarDeclStmt) NodeType() NodeType  { return VAR_DECL_STMT }

func (a *AssignStmt) NodePos() Position { return a.Pos }
func (*AssignStmt) NodeType() NodeType  { return ASSIGN_STMT }

func (p *PrintStmt) NodePos() Position { return p.Pos }
func (*PrintStmt) NodeType() NodeType  { return PRINT_STMT }

func (i *InputStmt) NodePos() Position { return i.Pos }
func (*InputStmt) NodeType() NodeType  { return INPUT_STMT }

func (i *IfStmt) NodePos() Position { return i.Pos }
func (*IfStmt) NodeType() NodeType  { return IF_STMT }

func (l *LoopStmt) NodePos() Position { return l.Pos }
func (*LoopStmt) NodeType() NodeType  { return LOOP_STMT }

func (r *ReturnStmt) NodePos() Position { return r.Pos }
func (*ReturnStmt) NodeType() NodeType  { return RETURN_STMT }

func (a *AssertStmt) NodePos() Position { return a.Pos }
func (*AssertStmt) NodeType() NodeType  { return ASSERT_STMT }

func (a *AbortStmt) NodePos() Position { return a.Pos }
func (*AbortStmt) NodeType() NodeType  { return ABORT_STMT }

func (e *ExprStmt) NodePos() Position { return e.Pos }
func (*ExprStmt) NodeType() NodeType  { return EXPR_STMT }

func (l *IntLit) NodePos() Position { return l.Pos }
func (*IntLit) NodeType() NodeType  { return INT_LIT }

func (l *FloatLit) NodePos() Position { return l.Pos }
func (*FloatLit) NodeType() NodeType  { return FLOAT_LIT }

func (l *StringLit) NodePos() Position { return l.Pos }
func (*StringLit) NodeType() NodeType  { return STRING_LIT }

func (l *BoolLit) NodePos() Position { return l.Pos }
func (*BoolLit) NodeType() NodeType  { return BOOL_LIT }

func (i *IdentExpr) NodePos() Position { return i.Pos }
func (*IdentExpr) NodeType() NodeType  { return IDENT_EXPR }

func (u *UnaryExpr) NodePos() Position { return u.Pos }
func (*UnaryExpr) NodeType() NodeType  { return UNARY_EXPR }

func (b *BinaryExpr) NodePos() Position { return b.Pos }
func (*BinaryExpr) NodeType() NodeType  { return BINARY_EXPR }

func (c *CallExpr) NodePos() Position { return c.Pos }
func (*CallExpr) NodeType() NodeType  { return CALL_EXPR }
