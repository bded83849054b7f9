package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalStorageLifecycle(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	content := []byte("file content")
	identifier, err := store.PutObject(ctx, "docs/report.pdf", bytes.NewReader(content), "application/pdf", int64(len(content)))
	if err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}
	if !strings.HasSuffix(identifier, "/report.pdf") {
		t.Errorf("identifier %q should end with the file name", identifier)
	}

	exists, err := store.ObjectExists(ctx, identifier)
	if err != nil {
		t.Fatalf("ObjectExists failed: %v", err)
	}
	if !exists {
		t.Error("object should exist after put")
	}

	data, err := store.ReadObject(ctx, identifier)
	if err != nil {
		t.Fatalf("ReadObject failed: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("ReadObject returned %q, want %q", data, content)
	}

	reader, err := store.OpenObject(ctx, identifier)
	if err != nil {
		t.Fatalf("OpenObject failed: %v", err)
	}
	streamed, err := io.ReadAll(reader)
	reader.Close()
	if err != nil {
		t.Fatalf("reading stream failed: %v", err)
	}
	if !bytes.Equal(streamed, content) {
		t.Errorf("streamed %q, want %q", streamed, content)
	}

	if got := store.ResolveURL(identifier); got != "/api/v1/media/object/"+identifier {
		t.Errorf("ResolveURL = %q", got)
	}

	if err := store.DeleteObject(ctx, identifier); err != nil {
		t.Fatalf("DeleteObject failed: %v", err)
	}
	exists, err = store.ObjectExists(ctx, identifier)
	if err != nil {
		t.Fatalf("ObjectExists after delete failed: %v", err)
	}
	if exists {
		t.Error("object still exists after delete")
	}

	// Deleting a missing object is not an error.
	if err := store.DeleteObject(ctx, identifier); err != nil {
		t.Errorf("repeated DeleteObject failed: %v", err)
	}
}

func TestLocalStorageMissingObject(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	if _, err := store.ReadObject(ctx, "nope/file.txt"); err == nil {
		t.Error("expected error reading missing object")
	}
	if _, err := store.OpenObject(ctx, "nope/file.txt"); err == nil {
		t.Error("expected error opening missing object")
	}
}

func TestLocalStorageDistinctIdentifiers(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	first, err := store.PutObject(ctx, "a.txt", strings.NewReader("one"), "text/plain", 3)
	if err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}
	second, err := store.PutObject(ctx, "a.txt", strings.NewReader("two"), "text/plain", 3)
	if err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}
	if first == second {
		t.Errorf("identical names produced the same identifier %q", first)
	}
}
