package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textreport/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: x\n"), 0644))

		got, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "title: x\n", string(got))
		assert.True(t, fsutil.FileExists(path))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.md")
		_, err := fsutil.ReadFile(context.Background(), path)
		require.ErrorIs(t, err, fsutil.ErrNotFound)
		assert.False(t, fsutil.FileExists(path))
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := fsutil.ReadFile(context.Background(), dir)
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
		assert.False(t, fsutil.FileExists(dir))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "whatever")
		require.ErrorIs(t, err, context.Canceled)
	})
}
