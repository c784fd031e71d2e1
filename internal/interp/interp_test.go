/*
File    : prose/internal/interp/interp_test.go
Package : interp
*/

package interp

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, src string) (string, error) {
	t.Helper()
	var out strings.Builder
	err := Run(src, &out)
	return out.String(), err
}

func TestPrintsAssignedNumber(t *testing.T) {
	out, err := runCapture(t, `Declare a variable called x. Set x to five. Print x.`)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

func TestPrintsStringAndNewlineConstant(t *testing.T) {
	out, err := runCapture(t, `Declare a variable called s. Set s to "hi". Print s and newline.`)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestWhileLoopCountsUp(t *testing.T) {
	out, err := runCapture(t, `Declare a variable called n. Set n to zero. While n is smaller than three do: Print n. Set n to n plus one. That's all.`)
	require.NoError(t, err)
	assert.Equal(t, "012", out)
}

func TestFunctionCallMutatesArgumentByReference(t *testing.T) {
	src := `Declare a function called add on argument a and b. When calling add then: Set a to a plus b. That's all. Declare a variable called r. Set r to five. Call add on r and three. Print r.`
	out, err := runCapture(t, src)
	require.NoError(t, err)
	assert.Equal(t, "8", out)
}

func TestIfWithElse(t *testing.T) {
	out, err := runCapture(t, `If one equals one then: Print "yes". That's all. Otherwise then: Print "no". That's all.`)
	require.NoError(t, err)
	assert.Equal(t, "yes", out)
}

func TestTypeMismatchIsRuntimeError(t *testing.T) {
	_, err := runCapture(t, `Set x to one plus "hi".`)
	require.Error(t, err)
}

func TestRightAssociativeSubtraction(t *testing.T) {
	// a - b - c must evaluate as a - (b - c): 9 - (4 - 1) = 6, not (9-4)-1 = 4.
	out, err := runCapture(t, `Declare a variable called a. Set a to nine. Declare a variable called b. Set b to four. Declare a variable called c. Set c to one. Declare a variable called r. Set r to a minus b minus c. Print r.`)
	require.NoError(t, err)
	assert.Equal(t, "6", out)
}

func TestSynonymousDeclarationKeywordsAreEquivalent(t *testing.T) {
	out1, err := runCapture(t, `Declare a variable called x. Set x to one. Print x.`)
	require.NoError(t, err)
	out2, err := runCapture(t, `Create a variable named x. Set x to one. Print x.`)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}
