package builtin

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

type fakeRuntime struct {
	out    bytes.Buffer
	lines  []string
	runErr *source.Error
}

func (f *fakeRuntime) Print(s string) { f.out.WriteString(s) }

func (f *fakeRuntime) ReadLine() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeRuntime) Run(filename, text string, callSpan source.Span) (object.Value, *source.Error) {
	return nil, f.runErr
}

func testSpan() source.Span {
	pos := source.NewPosition("<test>", "x").Advance('x')
	return source.NewSpan(pos)
}

func execWithArgs(t *testing.T, name string, rt Runtime, args map[string]object.Value) (object.Value, *source.Error) {
	t.Helper()
	b, ok := Registry[name]
	require.True(t, ok, "builtin %q not registered", name)

	ctx := scope.NewContext("<test>")
	for _, param := range b.Params {
		ctx.Table.Set(param, args[param])
	}
	return b.Exec(rt, ctx, testSpan())
}

func TestPrintWritesStringFormPlusNewline(t *testing.T) {
	rt := &fakeRuntime{}
	_, err := execWithArgs(t, "print", rt, map[string]object.Value{"value": object.NewInt(42)})
	require.Nil(t, err)
	assert.Equal(t, "42\n", rt.out.String())
}

func TestReturnPrintYieldsStringWithoutWriting(t *testing.T) {
	rt := &fakeRuntime{}
	value, err := execWithArgs(t, "return_print", rt, map[string]object.Value{"value": object.NewInt(7)})
	require.Nil(t, err)
	assert.Equal(t, "", rt.out.String())
	assert.Equal(t, "7", value.String())
}

func TestIsTypePredicates(t *testing.T) {
	rt := &fakeRuntime{}

	value, err := execWithArgs(t, "is_num", rt, map[string]object.Value{"value": object.NewInt(1)})
	require.Nil(t, err)
	assert.True(t, value.IsTrue())

	value, err = execWithArgs(t, "is_list", rt, map[string]object.Value{"value": object.NewString("x")})
	require.Nil(t, err)
	assert.False(t, value.IsTrue())
}

func TestAppendMutatesListInPlace(t *testing.T) {
	rt := &fakeRuntime{}
	list := object.NewList([]object.Value{object.NewInt(1)})

	_, err := execWithArgs(t, "append", rt, map[string]object.Value{
		"list": list, "value": object.NewInt(2),
	})
	require.Nil(t, err)
	assert.Len(t, list.Elements(), 2)
}

func TestPopNegativeIndexRemovesFromEnd(t *testing.T) {
	rt := &fakeRuntime{}
	list := object.NewList([]object.Value{object.NewInt(1), object.NewInt(2), object.NewInt(3)})

	value, err := execWithArgs(t, "pop", rt, map[string]object.Value{
		"list": list, "index": object.NewInt(-1),
	})
	require.Nil(t, err)
	assert.Equal(t, int64(3), value.(*object.Number).Int64())
	assert.Len(t, list.Elements(), 2)
}

func TestPopOutOfBoundsReportsRuntimeError(t *testing.T) {
	rt := &fakeRuntime{}
	list := object.NewList([]object.Value{object.NewInt(1)})

	_, err := execWithArgs(t, "pop", rt, map[string]object.Value{
		"list": list, "index": object.NewInt(5),
	})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestToIntFromStringSucceeds(t *testing.T) {
	rt := &fakeRuntime{}
	value, err := execWithArgs(t, "to_int", rt, map[string]object.Value{"value": object.NewString("42")})
	require.Nil(t, err)
	n := value.(*object.Number)
	assert.Equal(t, int64(42), n.Int64())
}

func TestToIntFromBadStringReportsRuntimeError(t *testing.T) {
	rt := &fakeRuntime{}
	_, err := execWithArgs(t, "to_int", rt, map[string]object.Value{"value": object.NewString("not-a-number")})
	require.NotNil(t, err)
}

func TestIncrAndDecr(t *testing.T) {
	rt := &fakeRuntime{}

	value, err := execWithArgs(t, "incr", rt, map[string]object.Value{"value": object.NewInt(5)})
	require.Nil(t, err)
	assert.Equal(t, int64(6), value.(*object.Number).Int64())

	value, err = execWithArgs(t, "decr", rt, map[string]object.Value{"value": object.NewInt(5)})
	require.Nil(t, err)
	assert.Equal(t, int64(4), value.(*object.Number).Int64())
}

func TestNumUserInReprompts(t *testing.T) {
	rt := &fakeRuntime{lines: []string{"abc", "9"}}
	value, err := execWithArgs(t, "num_user_in", rt, map[string]object.Value{})
	require.Nil(t, err)
	assert.Equal(t, int64(9), value.(*object.Number).Int64())
	assert.Contains(t, rt.out.String(), "must be an integer")
}
