package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozen-lang/ozen/lexer"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/parser"
	"github.com/ozen-lang/ozen/scope"
)

// run lexes, parses, and evaluates text against a fresh context, for
// tests that only need evaluator semantics and not the root package's
// global-builtin wiring.
func run(t *testing.T, text string) (*Outcome, *Evaluator) {
	t.Helper()
	tokens, lexErr := lexer.New("<test>", text).Tokenize()
	require.Nil(t, lexErr)

	program, parseErr := parser.Parse(tokens)
	require.Nil(t, parseErr)

	ev := NewEvaluator(&bytes.Buffer{}, strings.NewReader(""))
	ctx := scope.NewContext("<test>")
	return ev.Eval(program, ctx), ev
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	outcome, _ := run(t, "3 + 4 * 2\n")
	require.Nil(t, outcome.Error)

	list, ok := outcome.Value.(*object.List)
	require.True(t, ok)
	n, ok := list.Elements()[0].(*object.Number)
	require.True(t, ok)
	assert.Equal(t, int64(11), n.Int64())
}

func TestEvalVariableAssignmentAndAccess(t *testing.T) {
	outcome, _ := run(t, "let x = 5\nlet y = x * x\ny\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(25), last.Int64())
}

func TestEvalIfConsiderLast(t *testing.T) {
	outcome, _ := run(t, "let x = 2\nif x == 1 do 10 consider x == 2 do 20 last 30\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(20), last.Int64())
}

func TestEvalForLoopAccumulates(t *testing.T) {
	outcome, _ := run(t, "let total = 0\nfor i = 1 to 5 do let total = total + i\ntotal\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(10), last.Int64())
}

func TestEvalWhileLoopWithBreak(t *testing.T) {
	outcome, _ := run(t, "let i = 0\nwhile 1 do\nlet i = i + 1\nif i == 3 do break\nend\ni\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(3), last.Int64())
}

func TestEvalFunctionAutoReturn(t *testing.T) {
	outcome, _ := run(t, "func square(n) -> n * n\nsquare(6)\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(36), last.Int64())
}

func TestEvalFunctionExplicitReturn(t *testing.T) {
	outcome, _ := run(t, "func pick(a, b)\nif a > b do return a\nreturn b\nend\npick(3, 9)\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(9), last.Int64())
}

func TestEvalFunctionReturnsNullWhenBodyFallsThrough(t *testing.T) {
	outcome, _ := run(t, "func noop()\nlet x = 1\nend\nnoop()\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(0), last.Int64())
}

func TestEvalArityMismatchIsRuntimeError(t *testing.T) {
	outcome, _ := run(t, "func add(a, b) -> a + b\nadd(1)\n")
	require.NotNil(t, outcome.Error)
	assert.Contains(t, outcome.Error.Error(), "too few args")
}

func TestEvalClosureCapturesDefiningScope(t *testing.T) {
	outcome, _ := run(t, "let x = 10\nfunc addX(n) -> n + x\nlet x = 999\naddX(5)\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(999+5), last.Int64())
}

func TestEvalUndefinedVariableIsRuntimeError(t *testing.T) {
	outcome, _ := run(t, "missing\n")
	require.NotNil(t, outcome.Error)
}

// A break or continue that escapes a function body without ever being
// absorbed by a loop must surface as a clean RuntimeError, not a crash.
func TestEvalStrayBreakEscapingFunctionIsRuntimeError(t *testing.T) {
	outcome, _ := run(t, "func f() -> if 1 do break\nf()\n")
	require.NotNil(t, outcome.Error)
	assert.Contains(t, outcome.Error.Error(), "inside a loop")
}

func TestEvalStrayContinueEscapingFunctionIsRuntimeError(t *testing.T) {
	outcome, _ := run(t, "func g()\ncontinue\nend\ng()\n")
	require.NotNil(t, outcome.Error)
	assert.Contains(t, outcome.Error.Error(), "inside a loop")
}

func TestEvalNegativeIndexReadsFromEnd(t *testing.T) {
	outcome, _ := run(t, "let xs = [10, 20, 30]\nxs / -1\n")
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	last := elems[len(elems)-1].(*object.Number)
	assert.Equal(t, int64(30), last.Int64())
}

// TestEvalListAppendReferenceSemantics checks the full post-append
// element sequence with cmp.Diff rather than element-by-element
// assertions, so a shifted or duplicated entry shows up as a precise
// diff instead of a single failing index.
func TestEvalListAppendReferenceSemantics(t *testing.T) {
	tokens, lexErr := lexer.New("<test>", "let xs = [1, 2, 3]\nappend(xs, 4)\nxs\n").Tokenize()
	require.Nil(t, lexErr)
	program, parseErr := parser.Parse(tokens)
	require.Nil(t, parseErr)

	// run binds no built-ins, so this test binds append itself.
	ctx := scope.NewContext("<test>")
	ctx.Table.Set("append", object.NewBuiltinFunction("append"))
	outcome := NewEvaluator(&bytes.Buffer{}, strings.NewReader("")).Eval(program, ctx)
	require.Nil(t, outcome.Error)

	list := outcome.Value.(*object.List)
	elems := list.Elements()
	xs := elems[len(elems)-1].(*object.List)

	got := make([]int64, len(xs.Elements()))
	for i, e := range xs.Elements() {
		got[i] = e.(*object.Number).Int64()
	}

	want := []int64{1, 2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list contents mismatch (-want +got):\n%s", diff)
	}
}
