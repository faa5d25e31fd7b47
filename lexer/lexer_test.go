package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozen-lang/ozen/token"
)

func kinds(t *testing.T, tokens []token.Token) []token.Kind {
	t.Helper()
	ks := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		ks[i] = tok.Kind
	}
	return ks
}

func TestTokenizeArithmeticExpression(t *testing.T) {
	toks, err := New("<stdin>", "3 + 4 * 2\n").Tokenize()
	require.Nil(t, err)

	assert.Equal(t, []token.Kind{
		token.INT, token.PLUS, token.INT, token.MUL, token.INT, token.NEWLINE, token.EOF,
	}, kinds(t, toks))
	assert.Equal(t, int64(3), toks[0].Payload)
	assert.Equal(t, int64(4), toks[2].Payload)
	assert.Equal(t, int64(2), toks[4].Payload)
}

func TestTokenizeFloatStopsAtSecondDot(t *testing.T) {
	toks, err := New("<stdin>", "1.2.3").Tokenize()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Illegal Character")
	_ = toks
}

func TestTokenizeKeywordVsIdentifier(t *testing.T) {
	toks, err := New("<stdin>", "let x = func\n").Tokenize()
	require.Nil(t, err)

	assert.Equal(t, token.KEYWORD, toks[0].Kind)
	assert.Equal(t, "let", toks[0].Payload)
	assert.Equal(t, token.IDENT, toks[1].Kind)
	assert.Equal(t, "x", toks[1].Payload)
	assert.Equal(t, token.KEYWORD, toks[3].Kind)
	assert.Equal(t, "func", toks[3].Payload)
}

func TestTokenizeLeadingUnderscoreIdentifier(t *testing.T) {
	toks, err := New("<stdin>", "_foo\n").Tokenize()
	require.Nil(t, err)

	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, "_foo", toks[0].Payload)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := New("<stdin>", `"a\nb\tc\"d\\e"`).Tokenize()
	require.Nil(t, err)
	require.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\"d\\e", toks[0].Payload)
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	toks, err := New("<stdin>", "== != <= >= >> < >").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []token.Kind{
		token.EE, token.NE, token.LTE, token.GTE, token.ARROW, token.LT, token.GT, token.EOF,
	}, kinds(t, toks))
}

func TestTokenizeBangWithoutEqualsIsExpectedChar(t *testing.T) {
	_, err := New("<stdin>", "!x").Tokenize()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Expected Character")
	assert.Contains(t, err.Error(), "after '!'")
}

func TestTokenizeSkipsCommentsAndWhitespace(t *testing.T) {
	toks, err := New("<stdin>", "  # a comment\nlet").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, []token.Kind{token.NEWLINE, token.KEYWORD, token.EOF}, kinds(t, toks))
}

func TestTokenizeUnterminatedCommentAtEOF(t *testing.T) {
	toks, err := New("<stdin>", "let x = 1 # trailing, no newline").Tokenize()
	require.Nil(t, err)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := New("<stdin>", "@").Tokenize()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Illegal Character")
	assert.Contains(t, err.Error(), "'@'")
}
