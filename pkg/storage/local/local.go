// Package local implements the local filesystem storage adapter.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage implements the storage.Storage interface using local filesystem.
// Identifiers are relative object paths of the form {fileID}/{fileName};
// ResolveURL maps them onto the media file API route.
type Storage struct {
	basePath string
}

// New creates a new local storage adapter.
// basePath is the root directory for storing files (e.g., "data/uploads").
func New(basePath string) (*Storage, error) {
	if basePath == "" {
		basePath = "data/uploads"
	}

	// Ensure base directory exists
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	return &Storage{basePath: basePath}, nil
}

// PutObject writes a file to the local filesystem and returns its relative
// object path as the identifier.
func (s *Storage) PutObject(ctx context.Context, name string, data io.Reader, contentType string, size int64) (string, error) {
	fileName := filepath.Base(name)
	if fileName == "" || fileName == "." {
		fileName = "file"
	}
	identifier := uuid.NewString() + "/" + fileName
	fullPath := s.identifierToPath(identifier)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return identifier, nil
}

// ObjectExists checks if a file exists in the local filesystem.
func (s *Storage) ObjectExists(ctx context.Context, identifier string) (bool, error) {
	_, err := os.Stat(s.identifierToPath(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat file: %w", err)
	}
	return true, nil
}

// DeleteObject removes a file from the local filesystem.
func (s *Storage) DeleteObject(ctx context.Context, identifier string) error {
	fullPath := s.identifierToPath(identifier)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted
		}
		return fmt.Errorf("delete file: %w", err)
	}

	// Try to remove parent directory if empty
	os.Remove(filepath.Dir(fullPath)) // Ignore error if directory is not empty

	return nil
}

// ReadObject reads the full file content.
func (s *Storage) ReadObject(ctx context.Context, identifier string) ([]byte, error) {
	data, err := os.ReadFile(s.identifierToPath(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object not found: %s", identifier)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// OpenObject opens the file for streaming.
func (s *Storage) OpenObject(ctx context.Context, identifier string) (io.ReadCloser, error) {
	f, err := os.Open(s.identifierToPath(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object not found: %s", identifier)
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

// ResolveURL returns the API path for accessing the file.
func (s *Storage) ResolveURL(identifier string) string {
	return "/api/v1/media/object/" + identifier
}

// Type returns "local" as the storage type identifier.
func (s *Storage) Type() string {
	return "local"
}

// BasePath returns the base path of the storage.
func (s *Storage) BasePath() string {
	return s.basePath
}

// identifierToPath converts an object identifier to a full filesystem path.
func (s *Storage) identifierToPath(identifier string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(identifier))
}
