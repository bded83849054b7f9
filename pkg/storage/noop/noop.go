// Package noop implements a disabled storage backend. Deployments that turn
// media storage off still get explicit failures instead of silent no-ops.
package noop

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotImplemented is returned for operations the backend never supports.
var ErrNotImplemented = errors.New("storage: operation not implemented")

// Storage rejects writes and fails reads with ErrNotImplemented.
type Storage struct{}

// New creates a noop storage adapter.
func New() *Storage {
	return &Storage{}
}

func (*Storage) PutObject(ctx context.Context, name string, data io.Reader, contentType string, size int64) (string, error) {
	return "", fmt.Errorf("noop: put %q: %w", name, ErrNotImplemented)
}

func (*Storage) ObjectExists(ctx context.Context, identifier string) (bool, error) {
	return false, nil
}

func (*Storage) DeleteObject(ctx context.Context, identifier string) error {
	return nil
}

func (*Storage) ReadObject(ctx context.Context, identifier string) ([]byte, error) {
	return nil, fmt.Errorf("noop: read %q: %w", identifier, ErrNotImplemented)
}

func (*Storage) OpenObject(ctx context.Context, identifier string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("noop: open %q: %w", identifier, ErrNotImplemented)
}

func (*Storage) ResolveURL(identifier string) string {
	return identifier
}

// Type returns "noop" as the storage type identifier.
func (*Storage) Type() string {
	return "noop"
}
