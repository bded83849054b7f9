// Package storage defines the storage abstraction layer for media assets.
// It provides a unified interface for different storage backends including
// local filesystem, S3-compatible object storage and the Cloudinary media
// service.
package storage

import (
	"context"
	"io"

	"github.com/northmart/media_bridge/pkg/storage/noop"
)

// Storage defines the interface for object storage operations.
// All backends (local, s3, cloudinary, memory, noop) must implement it.
//
// PutObject returns a canonical identifier for the stored object. The
// identifier alone is sufficient to address the object in every later
// operation; no side table is kept by any backend.
type Storage interface {
	// PutObject uploads content under a filename hint and returns the
	// canonical identifier (typically an absolute URL) for the object.
	// Uploading under a name whose derived key already exists overwrites
	// the previous object (last write wins).
	PutObject(ctx context.Context, name string, data io.Reader, contentType string, size int64) (string, error)

	// ObjectExists reports whether the identified object is present.
	// A backend-side "not found" maps to (false, nil); any other failure
	// is returned as an error, never silently converted to false.
	ObjectExists(ctx context.Context, identifier string) (bool, error)

	// DeleteObject removes the identified object. Deleting an object that
	// is already absent is not guaranteed to fail.
	DeleteObject(ctx context.Context, identifier string) error

	// ReadObject fetches the full object content into memory. Intended
	// for preview-sized assets only.
	ReadObject(ctx context.Context, identifier string) ([]byte, error)

	// OpenObject returns a stream of the object content. The caller must
	// close the returned ReadCloser.
	OpenObject(ctx context.Context, identifier string) (io.ReadCloser, error)

	// ResolveURL maps an identifier to a fetchable URL. Backends whose
	// identifiers are already absolute URLs return the input unchanged.
	ResolveURL(identifier string) string

	// Type returns the backend identifier ("local", "s3", "cloudinary",
	// "memory" or "noop").
	Type() string
}

// ErrNotImplemented is returned by backends that never support an
// operation, e.g. read-back on the noop backend.
var ErrNotImplemented = noop.ErrNotImplemented
