package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/northmart/media_bridge/biz/dal/model"
)

func TestMediaDAO_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewMediaDAO()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		media := &model.Media{
			FileName:    "photo.jpg",
			ContentType: "image/jpeg",
			FileSize:    1024,
			StorageKey:  "https://cdn.example.com/media_bridge/photo.jpg",
			StorageType: "cloudinary",
		}

		if err := dao.Create(ctx, db, media); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if media.FileID == "" {
			t.Error("Expected FileID to be assigned on create")
		}

		found, err := dao.GetByFileID(ctx, db, media.FileID)
		if err != nil {
			t.Fatalf("GetByFileID failed: %v", err)
		}
		if found.FileName != "photo.jpg" {
			t.Errorf("Expected file name 'photo.jpg', got '%s'", found.FileName)
		}
	})

	t.Run("NilEntity", func(t *testing.T) {
		if err := dao.Create(ctx, db, nil); err == nil {
			t.Error("Expected error for nil entity")
		}
	})

	t.Run("DuplicateFileID", func(t *testing.T) {
		first := &model.Media{FileID: "dup-id", FileName: "a.png"}
		second := &model.Media{FileID: "dup-id", FileName: "b.png"}

		if err := dao.Create(ctx, db, first); err != nil {
			t.Fatalf("First create failed: %v", err)
		}
		if err := dao.Create(ctx, db, second); err == nil {
			t.Error("Expected error for duplicate file_id")
		}
	})
}

func TestMediaDAO_UpdateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewMediaDAO()
	ctx := context.Background()

	media := &model.Media{FileName: "clip.mp4", ContentType: "video/mp4"}
	if err := dao.Create(ctx, db, media); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	t.Run("Update", func(t *testing.T) {
		media.Remark = "hero banner"
		if err := dao.Update(ctx, db, media); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := dao.GetByFileID(ctx, db, media.FileID)
		if err != nil {
			t.Fatalf("GetByFileID failed: %v", err)
		}
		if found.Remark != "hero banner" {
			t.Errorf("Expected remark 'hero banner', got '%s'", found.Remark)
		}
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		missing := &model.Media{FileID: "no-such-id", Remark: "x"}
		if err := dao.Update(ctx, db, missing); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := dao.DeleteByFileID(ctx, db, media.FileID); err != nil {
			t.Fatalf("DeleteByFileID failed: %v", err)
		}
		if _, err := dao.GetByFileID(ctx, db, media.FileID); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound after delete, got %v", err)
		}
	})
}

func TestMediaDAO_List(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewMediaDAO()
	ctx := context.Background()

	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		if err := dao.Create(ctx, db, &model.Media{FileName: name}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	list, err := dao.List(ctx, db)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 media records, got %d", len(list))
	}
}
