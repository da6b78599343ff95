package parser

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monicelli/internal/ast"
	"monicelli/internal/errors"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, err := ParseSource("test.mc", source)
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

// parseExpr parses a single expression through a print statement.
func parseExpr(t *testing.T, expr string) ast.Expr {
	t.Helper()
	prog := parse(t, "Lei ha clacsonato\n"+expr+" a posterdati!\ne velocità di esecuzione")
	main := prog.Decls[0].(*ast.Function)
	return main.Body.Stmts[0].(*ast.PrintStmt).Value
}

func syntaxError(t *testing.T, source string) *errors.SyntaxError {
	t.Helper()
	_, err := ParseSource("test.mc", source)
	require.Error(t, err)

	var synErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &synErr), "expected a syntax error, got %T: %v", err, err)
	return synErr
}

func TestParseEmptyProgram(t *testing.T) {
	prog := parse(t, "")
	assert.Empty(t, prog.Decls)

	prog = parse(t, "bituma niente da vedere\n")
	assert.Empty(t, prog.Decls)
}

func TestParseMain(t *testing.T) {
	prog := parse(t, `Lei ha clacsonato
    voglio x, Necchi come se fosse 5!
    voglio nome, Sassaroli!
    x a posterdati!
e velocità di esecuzione`)

	require.Len(t, prog.Decls, 1)
	main, ok := prog.Decls[0].(*ast.Function)
	require.True(t, ok)
	assert.True(t, main.Main)
	assert.Equal(t, 1, main.Pos.Line)
	require.Len(t, main.Body.Stmts, 3)

	decl := main.Body.Stmts[0].(*ast.VarDeclStmt)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, ast.Integer, decl.Type)
	assert.Equal(t, int64(5), decl.Init.(*ast.IntLit).Value)

	decl = main.Body.Stmts[1].(*ast.VarDeclStmt)
	assert.Equal(t, ast.String, decl.Type)
	assert.Nil(t, decl.Init)

	print := main.Body.Stmts[2].(*ast.PrintStmt)
	assert.Equal(t, "x", print.Value.(*ast.IdentExpr).Name)
	assert.Equal(t, 4, print.Pos.Line)
}

func TestParseFunction(t *testing.T) {
	prog := parse(t, `blinda la supercazzola Perozzi media con a Perozzi, b Perozzi o scherziamo?
    vaffanzum (a più b) diviso 2.0!
e velocità di esecuzione

blinda la supercazzola saluta o scherziamo?
    "ciao" a posterdati!
e velocità di esecuzione`)

	fns := prog.Functions()
	require.Len(t, fns, 2)

	media := fns[0]
	assert.Equal(t, "media", media.Name)
	assert.False(t, media.Main)
	require.NotNil(t, media.Return)
	assert.Equal(t, ast.Float, *media.Return)
	require.Len(t, media.Params, 2)
	assert.Equal(t, "b", media.Params[1].Name)
	assert.Equal(t, ast.Float, media.Params[1].Type)

	ret := media.Body.Stmts[0].(*ast.ReturnStmt)
	div := ret.Value.(*ast.BinaryExpr)
	assert.Equal(t, ast.DIV, div.Op)
	assert.Equal(t, ast.ADD, div.Left.(*ast.BinaryExpr).Op)
	assert.Equal(t, "2.0", div.Right.(*ast.FloatLit).Raw)

	saluta := fns[1]
	assert.Nil(t, saluta.Return)
	assert.Empty(t, saluta.Params)
}

func TestParseGlobals(t *testing.T) {
	prog := parse(t, `voglio contatore, Necchi come se fosse 0!
voglio attivo, Melandri!
Lei ha clacsonato
e velocità di esecuzione`)

	require.Len(t, prog.Decls, 3)
	g := prog.Decls[0].(*ast.GlobalVar)
	assert.Equal(t, "contatore", g.Name)
	assert.NotNil(t, g.Init)
	assert.Nil(t, prog.Decls[1].(*ast.GlobalVar).Init)
}

func TestOperatorPrecedence(t *testing.T) {
	expr := parseExpr(t, "2 più 3 per 4").(*ast.BinaryExpr)
	assert.Equal(t, ast.ADD, expr.Op)
	assert.Equal(t, int64(2), expr.Left.(*ast.IntLit).Value)
	assert.Equal(t, ast.MUL, expr.Right.(*ast.BinaryExpr).Op)

	expr = parseExpr(t, "a minore di b nonché c oppure d").(*ast.BinaryExpr)
	assert.Equal(t, ast.OR, expr.Op)
	and := expr.Left.(*ast.BinaryExpr)
	assert.Equal(t, ast.AND, and.Op)
	assert.Equal(t, ast.LT, and.Left.(*ast.BinaryExpr).Op)

	expr = parseExpr(t, "a più 1 uguale a b meno 1").(*ast.BinaryExpr)
	assert.Equal(t, ast.EQ, expr.Op)
}

func TestLeftAssociativity(t *testing.T) {
	expr := parseExpr(t, "10 meno 3 meno 2").(*ast.BinaryExpr)
	assert.Equal(t, ast.SUB, expr.Op)
	assert.Equal(t, int64(2), expr.Right.(*ast.IntLit).Value)
	inner := expr.Left.(*ast.BinaryExpr)
	assert.Equal(t, int64(10), inner.Left.(*ast.IntLit).Value)
	assert.Equal(t, int64(3), inner.Right.(*ast.IntLit).Value)
}

func TestUnaryBindsTightest(t *testing.T) {
	expr := parseExpr(t, "meno x per 2").(*ast.BinaryExpr)
	assert.Equal(t, ast.MUL, expr.Op)
	assert.Equal(t, ast.NEG, expr.Left.(*ast.UnaryExpr).Op)

	not := parseExpr(t, "non non vero").(*ast.UnaryExpr)
	assert.Equal(t, ast.NOT, not.Op)
	assert.Equal(t, ast.NOT, not.Operand.(*ast.UnaryExpr).Op)
}

func TestParentheses(t *testing.T) {
	expr := parseExpr(t, "(2 più 3) per 4").(*ast.BinaryExpr)
	assert.Equal(t, ast.MUL, expr.Op)
	assert.Equal(t, ast.ADD, expr.Left.(*ast.BinaryExpr).Op)
}

func TestParseCall(t *testing.T) {
	call := parseExpr(t, "brematurata la supercazzola somma con 1, x per 2 o scherziamo?").(*ast.CallExpr)
	assert.Equal(t, "somma", call.Callee)
	require.Len(t, call.Args, 2)
	assert.Equal(t, ast.MUL, call.Args[1].(*ast.BinaryExpr).Op)

	call = parseExpr(t, "brematurata la supercazzola ora o scherziamo?").(*ast.CallExpr)
	assert.Empty(t, call.Args)
}

func TestParseStatements(t *testing.T) {
	prog := parse(t, `Lei ha clacsonato
    voglio x, Necchi!
    mi porga x!
    x come se fosse x più 1!
    brematurata la supercazzola saluta o scherziamo?!
    ho visto la x maggiore di 0!
    avvertite don ulrico!
    vaffanzum!
e velocità di esecuzione`)

	stmts := prog.Decls[0].(*ast.Function).Body.Stmts
	require.Len(t, stmts, 7)

	assert.IsType(t, &ast.VarDeclStmt{}, stmts[0])
	assert.Equal(t, "x", stmts[1].(*ast.InputStmt).Target)
	assign := stmts[2].(*ast.AssignStmt)
	assert.Equal(t, "x", assign.Target)
	assert.Equal(t, ast.ADD, assign.Value.(*ast.BinaryExpr).Op)
	assert.IsType(t, &ast.CallExpr{}, stmts[3].(*ast.ExprStmt).Expr)
	assert.Equal(t, ast.GT, stmts[4].(*ast.AssertStmt).Cond.(*ast.BinaryExpr).Op)
	assert.IsType(t, &ast.AbortStmt{}, stmts[5])
	assert.Nil(t, stmts[6].(*ast.ReturnStmt).Value)
}

func TestParseIfElseChain(t *testing.T) {
	prog := parse(t, `Lei ha clacsonato
    che cos'è x minore di 0?
        "negativo" a posterdati!
    o magari x uguale a 0:
        "zero" a posterdati!
    o magari x minore di 10:
        "piccolo" a posterdati!
    o tarapia tapioco:
        "grande" a posterdati!
    e velocità di esecuzione
e velocità di esecuzione`)

	stmt := prog.Decls[0].(*ast.Function).Body.Stmts[0].(*ast.IfStmt)
	assert.Equal(t, ast.LT, stmt.Cond.(*ast.BinaryExpr).Op)

	second, ok := stmt.ElseIf()
	require.True(t, ok)
	assert.Equal(t, ast.EQ, second.Cond.(*ast.BinaryExpr).Op)
	assert.Equal(t, 4, second.Pos.Line)

	third, ok := second.ElseIf()
	require.True(t, ok)
	require.NotNil(t, third.Else)
	assert.Equal(t, "grande", third.Else.Stmts[0].(*ast.PrintStmt).Value.(*ast.StringLit).Value)
}

func TestParseIfWithoutElse(t *testing.T) {
	prog := parse(t, `Lei ha clacsonato
    che cos'è vero?
    e velocità di esecuzione
e velocità di esecuzione`)

	stmt := prog.Decls[0].(*ast.Function).Body.Stmts[0].(*ast.IfStmt)
	assert.Empty(t, stmt.Then.Stmts)
	assert.Nil(t, stmt.Else)
}

func TestParseLoop(t *testing.T) {
	prog := parse(t, `Lei ha clacsonato
    voglio i, Necchi come se fosse 0!
    stuzzica
        i a posterdati!
        i come se fosse i più 1!
    e brematura anche, se i minore di 3!
e velocità di esecuzione`)

	loop := prog.Decls[0].(*ast.Function).Body.Stmts[1].(*ast.LoopStmt)
	assert.Len(t, loop.Body.Stmts, 2)
	assert.Equal(t, ast.LT, loop.Cond.(*ast.BinaryExpr).Op)
}

func TestUnterminatedBlock(t *testing.T) {
	err := syntaxError(t, "Lei ha clacsonato\n    1 a posterdati!\n")
	assert.Equal(t, errors.ErrorUnterminatedBlock, err.Diagnostic().Code)
	assert.Equal(t, "'e velocità di esecuzione'", err.Expected)

	err = syntaxError(t, "Lei ha clacsonato\nstuzzica\n    1 a posterdati!\n")
	assert.Equal(t, "'e brematura anche, se'", err.Expected)
}

func TestMismatchedBlockCloser(t *testing.T) {
	err := syntaxError(t, `Lei ha clacsonato
    stuzzica
        1 a posterdati!
    e velocità di esecuzione
e velocità di esecuzione`)

	assert.Equal(t, errors.ErrorUnexpectedToken, err.Diagnostic().Code)
	assert.Equal(t, "'e brematura anche, se'", err.Expected)
	assert.Equal(t, "'e velocità di esecuzione'", err.Found)
	assert.Equal(t, 4, err.Diagnostic().Position.Line)
}

func TestMissingBang(t *testing.T) {
	err := syntaxError(t, "Lei ha clacsonato\n    voglio x, Necchi\ne velocità di esecuzione")
	assert.Equal(t, "'!'", err.Expected)
	assert.Equal(t, "'e velocità di esecuzione'", err.Found)
}

func TestMissingType(t *testing.T) {
	err := syntaxError(t, "voglio x, Antani!")
	assert.Contains(t, err.Expected, "type")
	assert.Equal(t, "identifier 'Antani'", err.Found)
}

func TestUnexpectedTopLevel(t *testing.T) {
	err := syntaxError(t, "x a posterdati!")
	assert.Contains(t, err.Error(), "test.mc:1:1")
	assert.Contains(t, err.Expected, "Lei ha clacsonato")
}

func TestLexicalErrorSurfacesFromParser(t *testing.T) {
	_, err := ParseSource("test.mc", "Lei ha clacsonato\n    x come se fosse 3 & 4!\ne velocità di esecuzione")
	require.Error(t, err)

	var lexErr *errors.LexicalError
	require.True(t, stderrors.As(err, &lexErr))
	assert.Equal(t, 2, lexErr.Diagnostic().Position.Line)
	assert.Equal(t, 23, lexErr.Diagnostic().Position.Column)
}

func TestPrintedProgramReparses(t *testing.T) {
	source := `voglio limite, Necchi come se fosse 3!

blinda la supercazzola Necchi doppio con n Necchi o scherziamo?
    vaffanzum n per 2!
e velocità di esecuzione

Lei ha clacsonato
    voglio i, Necchi come se fosse 0!
    stuzzica
        che cos'è i resto 2 uguale a 0?
            brematurata la supercazzola doppio con i o scherziamo? a posterdati!
        o tarapia tapioco:
            "dispari" a posterdati!
        e velocità di esecuzione
        i come se fosse i più 1!
    e brematura anche, se i minore di limite!
e velocità di esecuzione`

	first := parse(t, source)
	second := parse(t, first.String())
	assert.Equal(t, first.String(), second.String())
}
