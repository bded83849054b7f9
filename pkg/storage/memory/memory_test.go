package memory

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestMemoryStorage(t *testing.T) {
	store := New()
	ctx := context.Background()

	identifier, err := store.PutObject(ctx, "pic.png", strings.NewReader("png"), "image/png", 3)
	if err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}
	if identifier != "memory://objects/pic" {
		t.Errorf("identifier = %q", identifier)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}

	exists, err := store.ObjectExists(ctx, identifier)
	if err != nil || !exists {
		t.Errorf("ObjectExists = (%v, %v), want (true, nil)", exists, err)
	}

	data, err := store.ReadObject(ctx, identifier)
	if err != nil {
		t.Fatalf("ReadObject failed: %v", err)
	}
	if !bytes.Equal(data, []byte("png")) {
		t.Errorf("ReadObject returned %q", data)
	}

	// ReadObject hands out a copy, not the stored slice.
	data[0] = 'x'
	again, _ := store.ReadObject(ctx, identifier)
	if !bytes.Equal(again, []byte("png")) {
		t.Error("stored content was mutated through a read")
	}

	if err := store.DeleteObject(ctx, identifier); err != nil {
		t.Fatalf("DeleteObject failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len after delete = %d, want 0", store.Len())
	}
	if _, err := store.ReadObject(ctx, identifier); err == nil {
		t.Error("expected error reading deleted object")
	}
}
