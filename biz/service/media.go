package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/northmart/media_bridge/biz/dal/model"
	"github.com/northmart/media_bridge/biz/model/api"
)

// UploadMedia validates the payload, stores it through the configured
// backend and records its metadata. The object is rolled back if the record
// cannot be created, so storage and database stay consistent.
func (s *Service) UploadMedia(ctx context.Context, input *MediaUploadInput) (*api.MediaAsset, error) {
	if input == nil {
		return nil, errors.New("input required")
	}
	if len(input.Data) == 0 {
		return nil, errors.New("file data is empty")
	}

	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, errors.New("file_name is required")
	}

	contentType := detectContentType(input.ContentType, input.Data)
	if err := s.uploads.Validate(int64(len(input.Data)), contentType, input.Data); err != nil {
		return nil, err
	}

	identifier, err := s.storage.PutObject(ctx, fileName, bytes.NewReader(input.Data), contentType, int64(len(input.Data)))
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	media := &model.Media{
		FileName:    fileName,
		ContentType: contentType,
		FileSize:    int64(len(input.Data)),
		StorageKey:  identifier,
		StorageType: s.storage.Type(),
		URL:         s.storage.ResolveURL(identifier),
		Remark:      input.Remark,
	}

	if err := s.dao.Create(ctx, s.db, media); err != nil {
		// Rollback: delete uploaded object
		_ = s.storage.DeleteObject(ctx, identifier)
		return nil, err
	}

	return mediaModelToAPI(media), nil
}

// ListMedia returns metadata for every stored asset, newest first.
func (s *Service) ListMedia(ctx context.Context) ([]*api.MediaAsset, error) {
	media, err := s.dao.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return mediaSliceToAPI(media), nil
}

// GetMediaFile returns the asset record and a stream of its content. The
// caller must close the returned reader.
func (s *Service) GetMediaFile(ctx context.Context, fileID string) (*model.Media, io.ReadCloser, error) {
	media, err := s.getMedia(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storage.OpenObject(ctx, media.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open media object: %w", err)
	}
	return media, reader, nil
}

// MediaExists checks the storage backend for the object behind a record.
// Backend failures propagate; they are never reported as absence.
func (s *Service) MediaExists(ctx context.Context, fileID string) (*api.MediaExistsResponse, error) {
	media, err := s.getMedia(ctx, fileID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, media.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("check media object: %w", err)
	}
	return &api.MediaExistsResponse{FileId: media.FileID, Exists: exists}, nil
}

// DeleteMedia removes the stored object and then its metadata record.
func (s *Service) DeleteMedia(ctx context.Context, fileID string) error {
	media, err := s.getMedia(ctx, fileID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteObject(ctx, media.StorageKey); err != nil {
		return fmt.Errorf("delete media object: %w", err)
	}
	return s.dao.DeleteByFileID(ctx, s.db, fileID)
}

// GetMediaByStorageKey resolves a storage-relative object key back to its
// record and content stream. Used by the object route that backend URLs for
// local and s3 storage point at.
func (s *Service) GetMediaByStorageKey(ctx context.Context, key string) (*model.Media, io.ReadCloser, error) {
	if strings.TrimSpace(key) == "" {
		return nil, nil, ErrMediaNotFound
	}
	media, err := s.dao.GetByStorageKey(ctx, s.db, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMediaNotFound
		}
		return nil, nil, err
	}

	reader, err := s.storage.OpenObject(ctx, media.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open media object: %w", err)
	}
	return media, reader, nil
}

func (s *Service) getMedia(ctx context.Context, fileID string) (*model.Media, error) {
	if strings.TrimSpace(fileID) == "" {
		return nil, ErrMediaNotFound
	}
	media, err := s.dao.GetByFileID(ctx, s.db, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return media, nil
}

func detectContentType(provided string, data []byte) string {
	if provided != "" {
		return provided
	}
	return http.DetectContentType(data)
}
