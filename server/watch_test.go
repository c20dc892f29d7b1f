package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherReloads(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, s.Load())

	w, err := s.Watch()
	require.NoError(t, err)

	path := filepath.Join(dir, "maze.map")
	require.NoError(t, os.WriteFile(path, []byte(mazeText), 0o644))
	require.Eventually(t, func() bool {
		_, err := s.Map("maze")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.md"), []byte("junk"), 0o644))

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool {
		return len(s.Names()) == 0
	}, 5*time.Second, 20*time.Millisecond)

	assert.NoError(t, w.Close())
}
