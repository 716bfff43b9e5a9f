package shell

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosh-shell/gosh/internal/completion"
)

func TestSplitLastTokenPlain(t *testing.T) {
	start, token := splitLastToken("cd some")
	assert.Equal(t, 3, start)
	assert.Equal(t, "some", token)
}

func TestSplitLastTokenKeepsQuotedSpaces(t *testing.T) {
	start, token := splitLastToken(`cd "Program Files`)
	assert.Equal(t, 3, start)
	assert.Equal(t, `"Program Files`, token)
}

func TestIsCommandStart(t *testing.T) {
	assert.True(t, isCommandStart(""))
	assert.True(t, isCommandStart("dir && "))
	assert.True(t, isCommandStart("echo hi | "))
	assert.False(t, isCommandStart("cd "))
}

func TestQuoteCompletionNoSpecialChars(t *testing.T) {
	r := completion.Result{Matches: []string{"readme.txt"}, CommonPrefix: "readme.txt"}
	assert.Equal(t, "readme.txt", quoteCompletion(r, false))
}

func TestQuoteCompletionQuotesOnSpaceAndClosesWhenUnique(t *testing.T) {
	r := completion.Result{Matches: []string{"Program Files"}, CommonPrefix: "Program Files"}
	assert.Equal(t, `"Program Files"`, quoteCompletion(r, false))
}

func TestQuoteCompletionLeavesQuoteOpenWhenAmbiguous(t *testing.T) {
	r := completion.Result{
		Matches:      []string{"Program Files", "Program Files (x86)"},
		CommonPrefix: "Program Files",
	}
	assert.Equal(t, `"Program Files`, quoteCompletion(r, false))
}

func TestQuoteCompletionPlacesSeparatorAfterClosingQuoteForDirs(t *testing.T) {
	sep := string(filepath.Separator)
	r := completion.Result{Matches: []string{"Program Files" + sep}, CommonPrefix: "Program Files" + sep}
	assert.Equal(t, `"Program Files"`+sep, quoteCompletion(r, true))
}

func TestHasWildcardChars(t *testing.T) {
	assert.True(t, hasWildcardChars("*.go"))
	assert.True(t, hasWildcardChars("file?.txt"))
	assert.False(t, hasWildcardChars("plain.txt"))
}
