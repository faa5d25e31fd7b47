package parser

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/lexer"
	"github.com/ozen-lang/ozen/token"
)

func parse(t *testing.T, text string) *ast.ListNode {
	t.Helper()
	tokens, lexErr := lexer.New("<test>", text).Tokenize()
	require.Nil(t, lexErr)

	program, err := Parse(tokens)
	require.Nil(t, err)
	return program
}

func TestParseLetBindingProducesVarAssignNode(t *testing.T) {
	program := parse(t, "let x = 1 + 2\n")
	require.Len(t, program.Elements, 1)

	assign, ok := program.Elements[0].(*ast.VarAssignNode)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Payload.(string))

	bin, ok := assign.Value.(*ast.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, bin.Op.Kind)
}

func TestParseIfExpressionChain(t *testing.T) {
	program := parse(t, "if x do 1 consider y do 2 last 3\n")
	require.Len(t, program.Elements, 1)

	ifNode, ok := program.Elements[0].(*ast.IfNode)
	require.True(t, ok)
	assert.Len(t, ifNode.Cases, 2)
	require.NotNil(t, ifNode.Else)
}

func TestParseForLoopWithStep(t *testing.T) {
	program := parse(t, "for i = 0 to 10 change 2 do i\n")
	require.Len(t, program.Elements, 1)

	forNode, ok := program.Elements[0].(*ast.ForNode)
	require.True(t, ok)
	require.NotNil(t, forNode.Step)
	assert.False(t, forNode.IsBlock)
}

func TestParseBlockWhileLoop(t *testing.T) {
	program := parse(t, "while x do\nlet x = x - 1\nend\n")
	require.Len(t, program.Elements, 1)

	whileNode, ok := program.Elements[0].(*ast.WhileNode)
	require.True(t, ok)
	assert.True(t, whileNode.IsBlock)
}

func TestParseFuncDefAndCall(t *testing.T) {
	program := parse(t, "func add(a, b) -> a + b\nadd(1, 2)\n")
	require.Len(t, program.Elements, 2)

	fn, ok := program.Elements[0].(*ast.FuncDefNode)
	require.True(t, ok)
	assert.True(t, fn.AutoReturn)
	assert.Len(t, fn.Params, 2)

	call, ok := program.Elements[1].(*ast.CallNode)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParseListLiteral(t *testing.T) {
	program := parse(t, "[1, 2, 3]\n")
	require.Len(t, program.Elements, 1)

	list, ok := program.Elements[0].(*ast.ListNode)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

// ifShape is a plain-field projection of an IfNode's case/else shape,
// compared with pretty.Compare so a mismatch reports which field
// diverged instead of a single bool assertion per field.
type ifShape struct {
	CaseCount int
	HasElse   bool
}

func TestParseIfExpressionChainShape(t *testing.T) {
	program := parse(t, "if x do 1 consider y do 2 last 3\n")
	ifNode := program.Elements[0].(*ast.IfNode)

	got := ifShape{CaseCount: len(ifNode.Cases), HasElse: ifNode.Else != nil}
	want := ifShape{CaseCount: 2, HasElse: true}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("if-chain shape mismatch (-got +want):\n%s", diff)
	}
}

func TestParseInvalidSyntaxReportsError(t *testing.T) {
	tokens, lexErr := lexer.New("<test>", "let = 1\n").Tokenize()
	require.Nil(t, lexErr)

	_, err := Parse(tokens)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Expected identifier")
}
