package shell

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExitCommand(t *testing.T) {
	exit, code := isExitCommand("exit")
	assert.True(t, exit)
	assert.Equal(t, 0, code)

	exit, code = isExitCommand("exit 2")
	assert.True(t, exit)
	assert.Equal(t, 2, code)

	exit, _ = isExitCommand("echo exit")
	assert.False(t, exit)
}

func TestAppendHistoryLineDeduplicatesByMovingToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	appendHistoryLine(path, "dir", 0)
	appendHistoryLine(path, "cd ..", 0)
	appendHistoryLine(path, "dir", 0)

	assert.Equal(t, []string{"cd ..", "dir"}, readHistoryFile(path))
}

func TestAppendHistoryLineTruncatesToLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	appendHistoryLine(path, "one", 2)
	appendHistoryLine(path, "two", 2)
	appendHistoryLine(path, "three", 2)

	assert.Equal(t, []string{"two", "three"}, readHistoryFile(path))
}

func TestReadHistoryFileMissingIsEmpty(t *testing.T) {
	assert.Nil(t, readHistoryFile(filepath.Join(t.TempDir(), "nope")))
}

func TestExitCode(t *testing.T) {
	code, ok := ExitCode(exitError(3))
	assert.True(t, ok)
	assert.Equal(t, 3, code)

	_, ok = ExitCode(nil)
	assert.False(t, ok)
}
