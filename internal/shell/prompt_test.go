package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosh-shell/gosh/internal/config"
)

func TestAbbrevStringKeepsUppercaseAndSeparators(t *testing.T) {
	assert.Equal(t, "PF", abbrevString("Program Files"))
	assert.Equal(t, "go-shell", abbrevString("go-shell"))
	assert.Equal(t, "ABC", abbrevString("ABC"))
}

func TestAbbrevPathRoot(t *testing.T) {
	assert.Equal(t, "/", AbbrevPath("/"))
}

func TestAbbrevPathAbbreviatesAncestorsNotLeaf(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Program Files", "SubDir"), 0o755))

	got := AbbrevPath(filepath.Join(root, "Program Files", "SubDir"))
	assert.Equal(t, "PF/SubDir", got[len(got)-len("PF/SubDir"):])
}

func TestAbbrevPathUsesFullNameOnSiblingCollision(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Program Files"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Personal Folder", "x"), 0o755))

	got := AbbrevPath(filepath.Join(root, "Personal Folder", "x"))
	assert.Equal(t, "Personal Folder/x", got[len(got)-len("Personal Folder/x"):])
}

func TestBuildPromptAbbrevPathMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.Appearance.Prompt = "abbrev_path"
	cfg.Appearance.Colors.Prompt = "bright"

	got := BuildPrompt(cfg, nil, "/tmp")
	assert.Contains(t, got, "/tmp> ")
	assert.NotContains(t, got, "[")
}
