package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps objects as files under a root directory. The root is
// created on first use.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		root = "uploads"
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("storage: create root %q: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

// path maps a key to a file path, refusing keys that would escape the
// root directory.
func (s *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *LocalStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p); dir != s.root {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("storage: create dir for %q: %w", key, err)
		}
	}

	// Write to a temp file first so a failed upload never leaves a
	// truncated object behind.
	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return fmt.Errorf("storage: temp file for %q: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close %q: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("storage: finalize %q: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: open %q: %w", key, err)
	}
	return f, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete %q: %w", key, err)
	}
	return nil
}
