// Package storage abstracts where uploaded patient documents live.
// Two backends exist: a directory on local disk and S3-compatible
// object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alfassih/praxis_backend/config"
)

var ErrNotFound = errors.New("storage: object not found")

// Store is the backend-agnostic interface the document service works
// against. Keys are opaque strings chosen by the caller.
type Store interface {
	// Put writes the object under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error

	// Open returns a reader for the object. The caller must close it.
	// Returns ErrNotFound if no object exists under key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Presigner is implemented by backends that can hand out direct
// download URLs instead of streaming through the API.
type Presigner interface {
	PresignDownload(ctx context.Context, key string) (string, error)
}

// New builds the store selected by the central config.
func New(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.Local.Root)
	case "s3":
		return NewS3Store(cfg.S3)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
