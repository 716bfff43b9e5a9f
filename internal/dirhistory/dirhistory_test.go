package dirhistory

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitAndNavigate(t *testing.T) {
	start, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(start) }()

	h := New(0)
	h.VisitCWD(os.TempDir(), false)
	h.VisitCWD(start, false)

	dir, err := h.GoLeft()
	require.NoError(t, err)
	assert.Equal(t, os.TempDir(), dir)

	dir, err = h.GoRight()
	require.NoError(t, err)
	assert.Equal(t, start, dir)
}

func TestCapacityKeepsFlaggedEntries(t *testing.T) {
	h := New(2)
	h.VisitCWD("/a", true)
	h.VisitCWD("/b", false)
	h.VisitCWD("/c", false)

	paths, _ := h.Display()
	assert.Contains(t, paths, "/a")
	assert.Len(t, paths, 2)
}
