/*
File    : prose/internal/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proselang/prosec/internal/token"
)

// kindsAndText strips Line and Number so test tables stay short; numeric
// literals are checked separately.
func kindsAndText(t *testing.T, toks []token.Token) []token.Token {
	t.Helper()
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = token.Token{Kind: tok.Kind, Text: tok.Text}
	}
	return out
}

func TestTokensRecognizesOperatorsAndLiterals(t *testing.T) {
	toks, err := Tokens(`5 + 2 * "hi" .`)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		{Kind: token.NumberLit, Text: "5"},
		{Kind: token.Operator, Text: "+"},
		{Kind: token.NumberLit, Text: "2"},
		{Kind: token.Operator, Text: "*"},
		{Kind: token.StringLit, Text: "hi"},
		{Kind: token.Dot, Text: "."},
		{Kind: token.EOF, Text: ""},
	}, kindsAndText(t, toks))
}

func TestTrailingDotDoesNotJoinNumber(t *testing.T) {
	toks, err := Tokens(`5.`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.NumberLit, toks[0].Kind)
	assert.Equal(t, 5.0, toks[0].Number)
	assert.Equal(t, token.Dot, toks[1].Kind)
}

func TestCommaLexesAsLogicalAmpersand(t *testing.T) {
	toks, err := Tokens(`r, three`)
	require.NoError(t, err)
	assert.Equal(t, token.Operator, toks[1].Kind)
	assert.Equal(t, "&", toks[1].Text)
}

func TestAndOrLexAsLogicalOperators(t *testing.T) {
	toks, err := Tokens(`a and b or c`)
	require.NoError(t, err)
	assert.Equal(t, []string{"&", "|"}, []string{toks[1].Text, toks[3].Text})
}

func TestValueOfRequiresOf(t *testing.T) {
	_, err := Tokens(`value from x`)
	assert.Error(t, err)

	toks, err := Tokens(`value of x`)
	require.NoError(t, err)
	assert.Equal(t, token.ValueOf, toks[0].Kind)
}

func TestDiffersFromLexesAsNotEquals(t *testing.T) {
	toks, err := Tokens(`x differs from y`)
	require.NoError(t, err)
	assert.Equal(t, token.Operator, toks[1].Kind)
	assert.Equal(t, "!", toks[1].Text)
}

func TestIsComparisonSynonyms(t *testing.T) {
	cases := map[string]string{
		"is larger than":  ">",
		"is greater than": ">",
		"is smaller than": "<",
		"is less than":    "<",
		"is lower than":   "<",
	}
	for phrase, want := range cases {
		toks, err := Tokens(phrase)
		require.NoError(t, err, phrase)
		require.Len(t, toks, 2, phrase)
		assert.Equal(t, want, toks[0].Text, phrase)
	}

	_, err := Tokens(`is purple than`)
	assert.Error(t, err)

	_, err = Tokens(`is larger then`)
	assert.Error(t, err)
}

func TestThatsAllAndThatsIt(t *testing.T) {
	toks, err := Tokens(`That's all`)
	require.NoError(t, err)
	assert.Equal(t, token.BlockEnd, toks[0].Kind)

	toks, err = Tokens(`That's it`)
	require.NoError(t, err)
	assert.Equal(t, token.BlockEnd, toks[0].Kind)

	_, err = Tokens(`That's nothing`)
	assert.Error(t, err)
}

func TestCallWithQuotedFunctionNameLexesAsFuncName(t *testing.T) {
	toks, err := Tokens(`Call the function "add"`)
	require.NoError(t, err)
	require.Equal(t, token.FuncName, toks[0].Kind)
	assert.Equal(t, "add", toks[0].Text)
}

func TestBareCallFallsBackToIdentifier(t *testing.T) {
	toks, err := Tokens(`Call add on r and three.`)
	require.NoError(t, err)
	require.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "add", toks[0].Text)
	assert.Equal(t, token.On, toks[1].Kind)
}

func TestExecuteAndEvaluateAreFuncNameSynonyms(t *testing.T) {
	toks, err := Tokens(`Execute a routine "greet"`)
	require.NoError(t, err)
	assert.Equal(t, token.FuncName, toks[0].Kind)
	assert.Equal(t, "greet", toks[0].Text)
}

func TestCallWithoutQuotedNameRaisesLexError(t *testing.T) {
	_, err := Tokens(`Call the function add`)
	assert.Error(t, err)
}

func TestNoteSkipsToNextDot(t *testing.T) {
	toks, err := Tokens("Note this is ignored. five")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "five", toks[0].Text)
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokens(`"never closed`)
	assert.Error(t, err)
}

func TestMultiDotNumberLexesAsTwoSentences(t *testing.T) {
	// "1.2.3" is not a malformed literal: it is the number 1.2, a Dot
	// (sentence terminator), and the number 3 — readNumber only ever
	// consumes a '.' when a digit follows it.
	toks, err := Tokens(`1.2.3`)
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.NumberLit, toks[0].Kind)
	assert.Equal(t, 1.2, toks[0].Number)
	assert.Equal(t, token.Dot, toks[1].Kind)
	assert.Equal(t, token.NumberLit, toks[2].Kind)
	assert.Equal(t, 3.0, toks[2].Number)
}

func TestOutOfRangeNumberIsLexError(t *testing.T) {
	// A 400-digit run is syntactically a valid number but overflows
	// strconv.ParseFloat's range, which is readNumber's real error trigger.
	_, err := Tokens(strings.Repeat("9", 400))
	assert.Error(t, err)
}

func TestLineNumbersAdvanceAcrossNewlines(t *testing.T) {
	toks, err := Tokens("Declare a variable named x.\nSet x to 5.")
	require.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	var setLine int
	for _, tok := range toks {
		if tok.Kind == token.SetVar {
			setLine = tok.Line
		}
	}
	assert.Equal(t, 2, setLine)
}
