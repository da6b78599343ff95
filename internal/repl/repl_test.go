package repl

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func run(input string, showAST bool) string {
	var out strings.Builder
	Start(strings.NewReader(input), &out, showAST)
	return out.String()
}

func TestTranslatesEachProgram(t *testing.T) {
	out := run(`Lei ha clacsonato
    1 a posterdati!
e velocità di esecuzione
.
Lei ha clacsonato
    2 a posterdati!
e velocità di esecuzione
.
`, false)

	assert.Contains(t, out, "std::cout << 1 << std::endl;")
	assert.Contains(t, out, "std::cout << 2 << std::endl;")
	assert.Equal(t, 2, strings.Count(out, "int main() {"))
	assert.True(t, strings.HasPrefix(out, PROMPT))
}

func TestReportsErrorsAndContinues(t *testing.T) {
	out := run(`Lei ha clacsonato
    y a posterdati!
e velocità di esecuzione
.
Lei ha clacsonato
e velocità di esecuzione
.
`, false)

	assert.Contains(t, out, "error[E0301]: undefined variable 'y'")
	assert.Contains(t, out, "--> <repl>:2:5")
	assert.Contains(t, out, "int main() {")
}

func TestTranslatesPendingSourceAtEOF(t *testing.T) {
	out := run("Lei ha clacsonato\ne velocità di esecuzione\n", false)
	assert.Contains(t, out, "int main() {")
}

func TestShowAST(t *testing.T) {
	out := run("Lei ha clacsonato\n    voglio x, Necchi come se fosse 1 più 2!\ne velocità di esecuzione\n.\n", true)
	assert.Contains(t, out, "voglio x, Necchi come se fosse 1 più 2!")
	assert.NotContains(t, out, "int main()")
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, PROMPT+"\n", run("", false))
}
