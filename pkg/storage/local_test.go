package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return s
}

func TestLocalStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	body := "patient intake form contents"
	err := s.Put(ctx, "abc123.pdf", "application/pdf", strings.NewReader(body), int64(len(body)))
	require.NoError(t, err)

	rc, err := s.Open(ctx, "abc123.pdf")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestLocalStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStoreOpenMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Open(context.Background(), "never-uploaded.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "doom.txt", "text/plain", strings.NewReader("x"), 1))
	require.NoError(t, s.Delete(ctx, "doom.txt"))

	_, err := s.Open(ctx, "doom.txt")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is fine
	assert.NoError(t, s.Delete(ctx, "doom.txt"))
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"../escape.txt", "/etc/passwd", "a/../../b"} {
		err := s.Put(ctx, key, "text/plain", strings.NewReader("x"), 1)
		assert.Error(t, err, "key %q should be rejected", key)
	}
}

func TestLocalStoreOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", "text/plain", strings.NewReader("old"), 3))
	require.NoError(t, s.Put(ctx, "k", "text/plain", strings.NewReader("new"), 3))

	rc, err := s.Open(ctx, "k")
	require.NoError(t, err)
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	assert.Equal(t, "new", string(got))
}
