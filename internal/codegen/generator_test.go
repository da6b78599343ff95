package codegen

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monicelli/internal/ast"
	"monicelli/internal/errors"
	"monicelli/internal/parser"
)

const prelude = `#include <cassert>
#include <cstdlib>
#include <iostream>
#include <string>
`

func generate(t *testing.T, source string) string {
	t.Helper()
	prog, err := parser.ParseSource("test.mc", source)
	require.NoError(t, err)
	out, err := Generate(prog)
	require.NoError(t, err)
	return out
}

// generateMain wraps body in the entry point, after the given top-level
// declarations.
func generateMain(t *testing.T, body string, decls ...string) string {
	t.Helper()
	source := ""
	for _, d := range decls {
		source += d + "\n"
	}
	return generate(t, source+"Lei ha clacsonato\n"+body+"\ne velocità di esecuzione\n")
}

func generateError(t *testing.T, source string) *errors.CodeGenerationError {
	t.Helper()
	prog, err := parser.ParseSource("test.mc", source)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = GenerateTo(&buf, prog)
	require.Error(t, err)
	assert.Empty(t, buf.String(), "no output may be written on failure")

	var genErr *errors.CodeGenerationError
	require.True(t, stderrors.As(err, &genErr), "expected a code generation error, got %T: %v", err, err)
	return genErr
}

func TestGenerateEmptyProgram(t *testing.T) {
	assert.Equal(t, prelude, generate(t, ""))
}

func TestGenerateMain(t *testing.T) {
	out := generate(t, `Lei ha clacsonato
    voglio x, Necchi come se fosse 2 più 3 per 4!
    x a posterdati!
e velocità di esecuzione`)

	expected := prelude + `
int main() {
    int v_x = 2 + 3 * 4;
    std::cout << v_x << std::endl;
}
`
	assert.Equal(t, expected, out)
}

func TestGenerateFunctions(t *testing.T) {
	out := generate(t, `voglio limite, Necchi come se fosse 5!

blinda la supercazzola Necchi fattoriale con n Necchi o scherziamo?
    che cos'è n minore o uguale a 1?
        vaffanzum 1!
    e velocità di esecuzione
    vaffanzum n per brematurata la supercazzola fattoriale con n meno 1 o scherziamo?!
e velocità di esecuzione

blinda la supercazzola saluta con chi Sassaroli, volte Necchi o scherziamo?
    chi a posterdati!
e velocità di esecuzione

Lei ha clacsonato
    brematurata la supercazzola saluta con "Mascetti", 1 o scherziamo?!
    brematurata la supercazzola fattoriale con limite o scherziamo? a posterdati!
e velocità di esecuzione`)

	expected := prelude + `
int f_fattoriale(int v_n);
void f_saluta(std::string v_chi, int v_volte);

int v_limite = 5;

int f_fattoriale(int v_n) {
    if (v_n <= 1) {
        return 1;
    }
    return v_n * f_fattoriale(v_n - 1);
}

void f_saluta(std::string v_chi, int v_volte) {
    std::cout << v_chi << std::endl;
}

int main() {
    f_saluta(std::string("Mascetti"), 1);
    std::cout << f_fattoriale(v_limite) << std::endl;
}
`
	assert.Equal(t, expected, out)
}

func TestEmissionPerStatement(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"integer declaration", "voglio a, Necchi!", "int v_a = 0;"},
		{"float declaration", "voglio a, Perozzi!", "double v_a = 0.0;"},
		{"char declaration", "voglio a, Mascetti!", `char v_a = '\0';`},
		{"boolean declaration", "voglio a, Melandri!", "bool v_a = false;"},
		{"string declaration", "voglio a, Sassaroli!", "std::string v_a;"},
		{"initialized declaration", "voglio a, Perozzi come se fosse 1.5!", "double v_a = 1.5;"},
		{"assignment", "voglio a, Necchi!\na come se fosse 7!", "v_a = 7;"},
		{"print", `"ciao" a posterdati!`, `std::cout << std::string("ciao") << std::endl;`},
		{"input", "voglio a, Necchi!\nmi porga a!", "std::cin >> v_a;"},
		{"assert", "ho visto la 1 minore di 2!", "assert(1 < 2);"},
		{"abort", "avvertite don ulrico!", "std::exit(1);"},
		{"bare return in main", "vaffanzum!", "return 0;"},
		{"return value from main", "vaffanzum 3!", "return 3;"},
		{"expression statement", "brematurata la supercazzola f o scherziamo?!", "f_f();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generateMain(t, tt.body, "blinda la supercazzola f o scherziamo?\ne velocità di esecuzione")
			assert.Contains(t, out, "    "+tt.expected+"\n")
		})
	}
}

func TestEmitConditionalChain(t *testing.T) {
	out := generateMain(t, `voglio x, Necchi!
che cos'è x minore di 0?
    "negativo" a posterdati!
o magari x uguale a 0:
    "zero" a posterdati!
o tarapia tapioco:
    "positivo" a posterdati!
e velocità di esecuzione`)

	assert.Contains(t, out, `    if (v_x < 0) {
        std::cout << std::string("negativo") << std::endl;
    } else if (v_x == 0) {
        std::cout << std::string("zero") << std::endl;
    } else {
        std::cout << std::string("positivo") << std::endl;
    }
`)
}

func TestEmitNestedConditionalInElse(t *testing.T) {
	// an else block with more than the nested conditional stays a block
	out := generateMain(t, `che cos'è vero?
o tarapia tapioco:
    che cos'è falso?
    e velocità di esecuzione
    1 a posterdati!
e velocità di esecuzione`)

	assert.Contains(t, out, "    } else {\n        if (false) {\n        }\n")
}

func TestLoopIsPostTest(t *testing.T) {
	out := generateMain(t, `voglio i, Necchi come se fosse 0!
stuzzica
    i come se fosse i più 1!
e brematura anche, se falso!`)

	assert.Contains(t, out, `    do {
        v_i = v_i + 1;
    } while (false);
`)
	assert.NotContains(t, out, "while (false) {")
}

func TestLoopConditionCannotSeeBody(t *testing.T) {
	err := generateError(t, `Lei ha clacsonato
    stuzzica
        voglio y, Necchi!
    e brematura anche, se y minore di 3!
e velocità di esecuzione`)

	assert.Equal(t, errors.ErrorUndefinedVariable, err.Diagnostic().Code)
	assert.Equal(t, "y", err.Construct)
}

func TestExpressionEmission(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"2 più 3 per 4", "2 + 3 * 4"},
		{"(2 più 3) per 4", "(2 + 3) * 4"},
		{"10 meno 3 meno 2", "10 - 3 - 2"},
		{"10 meno (3 meno 2)", "10 - (3 - 2)"},
		{"7 diviso 2 resto 3", "7 / 2 % 3"},
		{"meno 4 più 1", "-4 + 1"},
		{"meno (4 più 1)", "-(4 + 1)"},
		{"meno meno 4", "-(-4)"},
		{"non vero nonché falso", "!true && false"},
		{"non (vero oppure falso)", "!(true || false)"},
		{"1 minore di 2 uguale a vero", "1 < 2 == true"},
		{"1 diverso da 2 oppure 3 maggiore o uguale a 4 nonché vero", "1 != 2 || 3 >= 4 && true"},
		{"(vero oppure falso) nonché vero", "(true || false) && true"},
		{"2.5 per 1.0e3", "2.5 * 1.0e3"},
	}

	for _, tt := range tests {
		out := generateMain(t, "voglio r, Perozzi come se fosse "+tt.source+"!")
		assert.Contains(t, out, "double v_r = "+tt.expected+";", tt.source)
	}
}

func TestPrintParenthesizesBelowShift(t *testing.T) {
	out := generateMain(t, "1 minore di 2 a posterdati!\n1 più 2 a posterdati!\nvero oppure falso a posterdati!")
	assert.Contains(t, out, "std::cout << (1 < 2) << std::endl;")
	assert.Contains(t, out, "std::cout << 1 + 2 << std::endl;")
	assert.Contains(t, out, "std::cout << (true || false) << std::endl;")
}

func TestStringEscapes(t *testing.T) {
	out := generateMain(t, `"a\"b\\c\n\td??=" a posterdati!`)
	assert.Contains(t, out, `std::string("a\"b\\c\n\td?\?=")`)

	assert.Equal(t, `"\001x\177"`, quoteString("\x01x\x7f"))
	assert.Equal(t, `"così"`, quoteString("così"))
}

func TestFloatLiteralWithoutSpelling(t *testing.T) {
	pos := ast.Position{}
	assert.Equal(t, "2.0", floatLiteral(ast.NewFloatLit(pos, 2, "")))
	assert.Equal(t, "0.25", floatLiteral(ast.NewFloatLit(pos, 0.25, "")))
	assert.Equal(t, "1e+100", floatLiteral(ast.NewFloatLit(pos, 1e100, "")))
	assert.Equal(t, "(-1.5)", floatLiteral(ast.NewFloatLit(pos, -1.5, "")))
}

func TestIdentifierMangling(t *testing.T) {
	out := generate(t, `blinda la supercazzola Necchi main con int Necchi o scherziamo?
    vaffanzum int!
e velocità di esecuzione

Lei ha clacsonato
    voglio così, Necchi come se fosse brematurata la supercazzola main con 1 o scherziamo?!
    così a posterdati!
e velocità di esecuzione`)

	assert.Contains(t, out, "int f_main(int v_int);\n")
	assert.Contains(t, out, "    return v_int;\n")
	assert.Contains(t, out, "    int v_cos_u00EC = f_main(1);\n")
	assert.Contains(t, out, "    std::cout << v_cos_u00EC << std::endl;\n")
	assert.Contains(t, out, "\nint main() {\n")
}

func TestShadowingKeepsDistinctNames(t *testing.T) {
	out := generateMain(t, `voglio int, Necchi come se fosse 1!
voglio int_, Necchi come se fosse 2!
che cos'è vero?
    voglio int, Necchi come se fosse 3!
    int_ a posterdati!
e velocità di esecuzione`)

	assert.Contains(t, out, "    int v_int = 1;\n")
	assert.Contains(t, out, "    int v_int_u005F = 2;\n")
	assert.Contains(t, out, "        int v_int = 3;\n")
	assert.Contains(t, out, "        std::cout << v_int_u005F << std::endl;\n")
}

func TestNamesNeverClashWithLibrary(t *testing.T) {
	out := generate(t, `blinda la supercazzola Necchi div con exit Necchi o scherziamo?
    vaffanzum exit!
e velocità di esecuzione

voglio exit, Necchi come se fosse 1!

Lei ha clacsonato
    voglio div, Necchi come se fosse brematurata la supercazzola div con exit o scherziamo?!
e velocità di esecuzione`)

	assert.Contains(t, out, "int f_div(int v_exit);\n")
	assert.Contains(t, out, "int v_exit = 1;\n")
	assert.Contains(t, out, "    int v_div = f_div(v_exit);\n")
	assert.NotContains(t, out, " div(")
	assert.NotContains(t, out, " exit ")
}

func TestVariableMayShadowFunction(t *testing.T) {
	out := generate(t, `blinda la supercazzola Necchi f o scherziamo?
    vaffanzum 1!
e velocità di esecuzione

Lei ha clacsonato
    voglio f, Necchi come se fosse brematurata la supercazzola f o scherziamo?!
    f come se fosse f più brematurata la supercazzola f o scherziamo?!
e velocità di esecuzione`)

	assert.Contains(t, out, "    int v_f = f_f();\n")
	assert.Contains(t, out, "    v_f = v_f + f_f();\n")
}

func TestGenerationIsDeterministic(t *testing.T) {
	source := `voglio a, Necchi!
blinda la supercazzola uno o scherziamo?
e velocità di esecuzione
blinda la supercazzola due o scherziamo?
    brematurata la supercazzola uno o scherziamo?!
e velocità di esecuzione
Lei ha clacsonato
    brematurata la supercazzola due o scherziamo?!
e velocità di esecuzione`

	prog, err := parser.ParseSource("test.mc", source)
	require.NoError(t, err)

	g := NewGenerator()
	first, err := g.Generate(prog)
	require.NoError(t, err)
	second, err := g.Generate(prog)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first, generate(t, source))
}

func TestMissingReturn(t *testing.T) {
	err := generateError(t, `blinda la supercazzola Necchi somma con a Necchi, b Necchi o scherziamo?
    a più b a posterdati!
e velocità di esecuzione`)

	assert.Equal(t, errors.ErrorMissingReturn, err.Diagnostic().Code)
	assert.Equal(t, "missing return in non-void function somma", err.Diagnostic().Message)
	assert.Equal(t, "somma", err.Construct)
}

func TestReturnInBranchSatisfiesCheck(t *testing.T) {
	out := generate(t, `blinda la supercazzola Necchi segno con x Necchi o scherziamo?
    che cos'è x minore di 0?
        vaffanzum meno 1!
    e velocità di esecuzione
e velocità di esecuzione`)

	assert.Contains(t, out, "        return -1;\n")
}

func TestVoidFunctionWithoutReturn(t *testing.T) {
	out := generate(t, "blinda la supercazzola niente o scherziamo?\ne velocità di esecuzione")
	assert.Contains(t, out, "void f_niente() {\n}\n")
}

func TestReturnMismatches(t *testing.T) {
	err := generateError(t, `blinda la supercazzola saluta o scherziamo?
    vaffanzum 1!
e velocità di esecuzione`)
	assert.Equal(t, errors.ErrorUnexpectedReturnValue, err.Diagnostic().Code)

	err = generateError(t, `blinda la supercazzola Necchi uno o scherziamo?
    vaffanzum!
e velocità di esecuzione`)
	assert.Equal(t, errors.ErrorMissingReturnValue, err.Diagnostic().Code)
}

func TestUndefinedVariable(t *testing.T) {
	err := generateError(t, `Lei ha clacsonato
    voglio contatore, Necchi!
    contatre a posterdati!
e velocità di esecuzione`)

	diag := err.Diagnostic()
	assert.Equal(t, errors.ErrorUndefinedVariable, diag.Code)
	assert.Equal(t, 3, diag.Position.Line)
	assert.Equal(t, 5, diag.Position.Column)
	require.NotEmpty(t, diag.Suggestions)
	assert.Contains(t, diag.Suggestions[0].Message, "'contatore'")
}

func TestGlobalsVisibleOnlyAfterDeclaration(t *testing.T) {
	err := generateError(t, `blinda la supercazzola mostra o scherziamo?
    tardi a posterdati!
e velocità di esecuzione
voglio tardi, Necchi!`)
	assert.Equal(t, "tardi", err.Construct)

	err = generateError(t, "voglio x, Necchi come se fosse x più 1!")
	assert.Equal(t, "x", err.Construct)
}

func TestFunctionsVisibleEverywhere(t *testing.T) {
	out := generate(t, `Lei ha clacsonato
    brematurata la supercazzola dopo o scherziamo?!
e velocità di esecuzione
blinda la supercazzola dopo o scherziamo?
e velocità di esecuzione`)

	assert.Contains(t, out, "void f_dopo();\n")
	assert.Contains(t, out, "    f_dopo();\n")
}

func TestLocalsEndWithTheirBlock(t *testing.T) {
	err := generateError(t, `Lei ha clacsonato
    che cos'è vero?
        voglio dentro, Necchi!
    e velocità di esecuzione
    dentro a posterdati!
e velocità di esecuzione`)
	assert.Equal(t, "dentro", err.Construct)
}

func TestUndefinedFunction(t *testing.T) {
	err := generateError(t, `blinda la supercazzola fattoriale o scherziamo?
e velocità di esecuzione
Lei ha clacsonato
    brematurata la supercazzola fattorial o scherziamo?!
e velocità di esecuzione`)

	diag := err.Diagnostic()
	assert.Equal(t, errors.ErrorUndefinedFunction, diag.Code)
	require.NotEmpty(t, diag.Suggestions)
	assert.Contains(t, diag.Suggestions[0].Message, "'fattoriale'")
}

func TestEntryPointIsNotCallable(t *testing.T) {
	err := generateError(t, `Lei ha clacsonato
    brematurata la supercazzola main o scherziamo?!
e velocità di esecuzione`)
	assert.Equal(t, errors.ErrorUndefinedFunction, err.Diagnostic().Code)
}

func TestAssignToFunction(t *testing.T) {
	err := generateError(t, `blinda la supercazzola f o scherziamo?
e velocità di esecuzione
Lei ha clacsonato
    f come se fosse 1!
e velocità di esecuzione`)
	assert.Equal(t, errors.ErrorNotAssignable, err.Diagnostic().Code)

	err = generateError(t, `blinda la supercazzola f o scherziamo?
e velocità di esecuzione
Lei ha clacsonato
    mi porga f!
e velocità di esecuzione`)
	assert.Equal(t, errors.ErrorNotAssignable, err.Diagnostic().Code)
}

// One program touching every statement and expression kind.
func TestEveryNodeKindIsEmitted(t *testing.T) {
	out := generate(t, `blinda la supercazzola Perozzi f con p Necchi o scherziamo?
    voglio s, Sassaroli come se fosse "x"!
    s come se fosse "y"!
    s a posterdati!
    mi porga s!
    che cos'è non vero?
        vaffanzum meno 1.5!
    e velocità di esecuzione
    stuzzica
        ho visto la p maggiore di 0!
    e brematura anche, se falso!
    avvertite don ulrico!
    brematurata la supercazzola f con 1 o scherziamo?!
    vaffanzum 2.0!
e velocità di esecuzione`)

	for _, fragment := range []string{
		`std::string v_s = std::string("x");`, `v_s = std::string("y");`, "std::cout << v_s", "std::cin >> v_s;",
		"if (!true) {", "return -1.5;", "do {", "assert(v_p > 0);", "} while (false);",
		"std::exit(1);", "f_f(1);", "return 2.0;",
	} {
		assert.Contains(t, out, fragment)
	}
}

func TestSecondEntryPoint(t *testing.T) {
	err := generateError(t, `Lei ha clacsonato
e velocità di esecuzione
Lei ha clacsonato
e velocità di esecuzione`)

	diag := err.Diagnostic()
	assert.Equal(t, errors.ErrorDuplicateEntryPoint, diag.Code)
	assert.Equal(t, 3, diag.Position.Line)
	assert.Equal(t, ast.MainName, err.Construct)
}

func TestEntryPointReturnsNumber(t *testing.T) {
	invalid := []string{
		`vaffanzum "x"!`,
		"voglio s, Sassaroli!\nvaffanzum s!",
		`vaffanzum "a" più "b"!`,
		`vaffanzum brematurata la supercazzola nome o scherziamo?!`,
	}
	nome := `blinda la supercazzola Sassaroli nome o scherziamo?
    vaffanzum "Mascetti"!
e velocità di esecuzione
`
	for _, body := range invalid {
		err := generateError(t, nome+"Lei ha clacsonato\n"+body+"\ne velocità di esecuzione")
		assert.Equal(t, errors.ErrorInvalidExitStatus, err.Diagnostic().Code, body)
	}

	out := generateMain(t, `voglio p, Perozzi come se fosse 2.5!
che cos'è vero?
    vaffanzum p!
e velocità di esecuzione
vaffanzum 1 minore di 2!`)
	assert.Contains(t, out, "        return v_p;\n")
	assert.Contains(t, out, "    return 1 < 2;\n")
}
