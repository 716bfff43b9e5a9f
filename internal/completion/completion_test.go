package completion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteFilePrefix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme2.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "readonly"), 0755))

	res, err := CompleteFile(dir, "read")
	require.NoError(t, err)
	assert.Len(t, res.Matches, 3)
	assert.Equal(t, "read", res.CommonPrefix)
}

func TestCompleteWildcard(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("x"), 0644))

	res, err := CompleteWildcard(dir, "*.go")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.go", "b.go"}, res.Matches)
}

func TestCompleteEnvVar(t *testing.T) {
	t.Setenv("GOSH_TEST_VAR", "1")
	res := CompleteEnvVar("$GOSH_TEST_")
	assert.Contains(t, res.Matches, "$GOSH_TEST_VAR")
}

func TestQuoting(t *testing.T) {
	assert.Equal(t, "plainfile", Quote("plainfile"))
	assert.Equal(t, `"has space"`, Quote("has space"))
}
