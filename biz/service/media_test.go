package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/northmart/media_bridge/biz/dal/model"
	"github.com/northmart/media_bridge/biz/service"
	"github.com/northmart/media_bridge/pkg/storage/memory"
	"github.com/northmart/media_bridge/pkg/validator"
)

func newTestService(t *testing.T) (*service.Service, *memory.Storage) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Media{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	store := memory.New()
	uploads := validator.NewUploadConfig(1024*1024, []string{"image/jpeg", "text/plain"})
	return service.NewService(db, store, uploads), store
}

func TestMediaLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	data := []byte("hello media")
	asset, err := svc.UploadMedia(ctx, &service.MediaUploadInput{
		FileName:    "hello.txt",
		ContentType: "text/plain",
		Data:        data,
	})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}
	if asset.FileId == "" {
		t.Fatalf("expected file id assigned")
	}
	if asset.StorageType != "memory" {
		t.Fatalf("unexpected storage type %s", asset.StorageType)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored object, got %d", store.Len())
	}

	entity, reader, err := svc.GetMediaFile(ctx, asset.FileId)
	if err != nil {
		t.Fatalf("GetMediaFile: %v", err)
	}
	defer reader.Close()
	if entity.FileName != "hello.txt" {
		t.Fatalf("unexpected file name %s", entity.FileName)
	}
	stored, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if !bytes.Equal(stored, data) {
		t.Fatalf("stored data mismatch")
	}

	existsResp, err := svc.MediaExists(ctx, asset.FileId)
	if err != nil {
		t.Fatalf("MediaExists: %v", err)
	}
	if !existsResp.Exists {
		t.Fatalf("expected object to exist after upload")
	}

	list, err := svc.ListMedia(ctx)
	if err != nil {
		t.Fatalf("ListMedia: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(list))
	}

	if err := svc.DeleteMedia(ctx, asset.FileId); err != nil {
		t.Fatalf("DeleteMedia: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected object removed from storage, got %d", store.Len())
	}
	if _, err := svc.MediaExists(ctx, asset.FileId); !errors.Is(err, service.ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound after delete, got %v", err)
	}
}

func TestUploadMediaValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	t.Run("EmptyData", func(t *testing.T) {
		_, err := svc.UploadMedia(ctx, &service.MediaUploadInput{FileName: "empty.txt"})
		if err == nil {
			t.Fatalf("expected error for empty payload")
		}
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := svc.UploadMedia(ctx, &service.MediaUploadInput{Data: []byte("x")})
		if err == nil {
			t.Fatalf("expected error for missing file name")
		}
	})

	t.Run("DisallowedType", func(t *testing.T) {
		_, err := svc.UploadMedia(ctx, &service.MediaUploadInput{
			FileName:    "app.wasm",
			ContentType: "application/wasm",
			Data:        []byte{0x00, 0x61, 0x73, 0x6d},
		})
		if err == nil {
			t.Fatalf("expected error for disallowed content type")
		}
	})

	t.Run("TooLarge", func(t *testing.T) {
		_, err := svc.UploadMedia(ctx, &service.MediaUploadInput{
			FileName:    "big.txt",
			ContentType: "text/plain",
			Data:        []byte(strings.Repeat("a", 2*1024*1024)),
		})
		if err == nil {
			t.Fatalf("expected error for oversized payload")
		}
	})

	if store.Len() != 0 {
		t.Fatalf("expected no objects stored after failed uploads, got %d", store.Len())
	}
}

func TestGetMediaFileNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, _, err := svc.GetMediaFile(ctx, "missing-id")
	if !errors.Is(err, service.ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
}
