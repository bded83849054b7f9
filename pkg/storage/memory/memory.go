// Package memory implements an in-memory storage backend. It is immediately
// consistent and safe for concurrent use, which makes it the substitution
// fake for service and handler tests.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
)

// Storage keeps objects in a map keyed by the identifier returned from
// PutObject.
type Storage struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

// New creates a memory storage adapter. Identifiers take the form
// {baseURL}/{base name without extension}.
func New() *Storage {
	return &Storage{
		objects: make(map[string][]byte),
		baseURL: "memory://objects",
	}
}

func (s *Storage) PutObject(ctx context.Context, name string, data io.Reader, contentType string, size int64) (string, error) {
	content, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("memory: put %q: %w", name, err)
	}

	base := path.Base(name)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	identifier := s.baseURL + "/" + base

	s.mu.Lock()
	s.objects[identifier] = content
	s.mu.Unlock()
	return identifier, nil
}

func (s *Storage) ObjectExists(ctx context.Context, identifier string) (bool, error) {
	s.mu.RLock()
	_, ok := s.objects[identifier]
	s.mu.RUnlock()
	return ok, nil
}

func (s *Storage) DeleteObject(ctx context.Context, identifier string) error {
	s.mu.Lock()
	delete(s.objects, identifier)
	s.mu.Unlock()
	return nil
}

func (s *Storage) ReadObject(ctx context.Context, identifier string) ([]byte, error) {
	s.mu.RLock()
	content, ok := s.objects[identifier]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("memory: read %q: object not found", identifier)
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (s *Storage) OpenObject(ctx context.Context, identifier string) (io.ReadCloser, error) {
	content, err := s.ReadObject(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *Storage) ResolveURL(identifier string) string {
	return identifier
}

// Type returns "memory" as the storage type identifier.
func (s *Storage) Type() string {
	return "memory"
}

// Len reports how many objects are stored. Test helper.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
