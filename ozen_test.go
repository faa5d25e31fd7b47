package ozen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozen-lang/ozen/source"
)

// runScript executes text through the full lex/parse/eval pipeline with
// empty stdin, returning whatever the built-ins printed.
func runScript(t *testing.T, text string) (string, *source.Error) {
	t.Helper()
	var out bytes.Buffer
	_, err := Run("<test>", text, &out, strings.NewReader(""))
	return out.String(), err
}

func TestRunArithmeticPrecedence(t *testing.T) {
	out, err := runScript(t, "print(2 + 3 * 4)\n")
	require.Nil(t, err)
	assert.Equal(t, "14\n", out)
}

func TestRunListAppendThroughSharedHandle(t *testing.T) {
	out, err := runScript(t, "let x = [1, 2, 3]\nappend(x, 4)\nprint(length(x))\n")
	require.Nil(t, err)
	assert.Equal(t, "4\n", out)
}

func TestRunRecursiveFibonacci(t *testing.T) {
	out, err := runScript(t, "func fib(n) -> if n < 2 do n last fib(n-1) + fib(n-2)\nprint(fib(10))\n")
	require.Nil(t, err)
	assert.Equal(t, "55\n", out)
}

func TestRunInlineForCollectsIterationValues(t *testing.T) {
	out, err := runScript(t, "let xs = for i = 0 to 5 do i\nprint(xs)\n")
	require.Nil(t, err)
	assert.Equal(t, "0, 1, 2, 3, 4\n", out)
}

func TestRunWhileWithContinueSkipsIteration(t *testing.T) {
	out, err := runScript(t, "let i = 0\nwhile i < 3 do\nlet i = i + 1\nif i == 2 do continue\nprint(i)\nend\n")
	require.Nil(t, err)
	assert.Equal(t, "1\n3\n", out)
}

func TestRunClosureCapturesArgument(t *testing.T) {
	out, err := runScript(t, "func mk(n) -> func() -> n\nlet f = mk(7)\nprint(f())\n")
	require.Nil(t, err)
	assert.Equal(t, "7\n", out)
}

func TestRunDivisionByZeroRendersCaret(t *testing.T) {
	_, err := runScript(t, "print(1/0)\n")
	require.NotNil(t, err)

	rendered := err.Error()
	assert.Contains(t, rendered, "Runtime Error: Division by zero")
	assert.Contains(t, rendered, "Traceback (most recent call last):")
	assert.Contains(t, rendered, "print(1/0)")
	assert.Contains(t, rendered, "^")
}

// TestRunAndEvaluatesBothOperands pins down that `and`/`or` do not
// short-circuit: the right operand's side effect is always observable.
func TestRunAndEvaluatesBothOperands(t *testing.T) {
	out, err := runScript(t, "func side(v)\nprint(v)\nreturn v\nend\nside(0) and side(1)\n")
	require.Nil(t, err)
	assert.Equal(t, "0\n1\n", out)
}

func TestRunForLoopWithNegativeStep(t *testing.T) {
	out, err := runScript(t, "for i = 3 to 0 change -1 do print(i)\n")
	require.Nil(t, err)
	assert.Equal(t, "3\n2\n1\n", out)
}

func TestRunGlobalConstants(t *testing.T) {
	out, err := runScript(t, "print(true)\nprint(null)\nprint(math_pi > 3)\n")
	require.Nil(t, err)
	assert.Equal(t, "1\n0\n1\n", out)
}

func TestRunReturnExitsOnlyEnclosingFunction(t *testing.T) {
	out, err := runScript(t, "func find(xs, want)\nfor i = 0 to length(xs) do\nif xs / i == want do return i\nend\nreturn -1\nend\nprint(find([5, 6, 7], 6))\nprint(find([5, 6, 7], 9))\n")
	require.Nil(t, err)
	assert.Equal(t, "1\n-1\n", out)
}

func TestRunUndefinedNameReportsAccessSpan(t *testing.T) {
	_, err := runScript(t, "let x = 1\nmissing\n")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "'missing' is not defined")
	assert.Equal(t, 1, err.Span.Start.Line)
}

func TestSessionKeepsBindingsAcrossEvals(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out, strings.NewReader(""))

	_, err := session.Eval("<stdin>", "let x = 5\n")
	require.Nil(t, err)

	_, err = session.Eval("<stdin>", "print(x * x)\n")
	require.Nil(t, err)
	assert.Equal(t, "25\n", out.String())
}

func TestRunBuiltinExecutesIncludedScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "included.oz")
	require.NoError(t, os.WriteFile(path, []byte("print(\"from sub-script\")\n"), 0o644))

	out, err := runScript(t, "run(\""+path+"\")\n")
	require.Nil(t, err)
	assert.Equal(t, "from sub-script\n", out)
}

func TestRunBuiltinWrapsSubScriptFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.oz")
	require.NoError(t, os.WriteFile(path, []byte("1/0\n"), 0o644))

	_, err := runScript(t, "run(\""+path+"\")\n")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Failed to finish executing script")
	assert.Contains(t, err.Error(), "Division by zero")
}

func TestRunBuiltinMissingFileFailsToLoad(t *testing.T) {
	_, err := runScript(t, "run(\"no-such-file.oz\")\n")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Failed to load script")
}
