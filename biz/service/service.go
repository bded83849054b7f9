package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/northmart/media_bridge/biz/dal/db"
	"github.com/northmart/media_bridge/biz/dal/model"
	"github.com/northmart/media_bridge/biz/model/api"
	"github.com/northmart/media_bridge/pkg/storage"
	"github.com/northmart/media_bridge/pkg/validator"
)

// ErrMediaNotFound is returned when a media record does not exist.
var ErrMediaNotFound = errors.New("media not found")

// MediaUploadInput captures metadata and payload for media uploads.
type MediaUploadInput struct {
	FileName    string
	ContentType string
	Remark      string
	Data        []byte
}

// Service orchestrates media operations across the storage backend and the
// metadata store.
type Service struct {
	db      *gorm.DB
	dao     *db.MediaDAO
	storage storage.Storage
	uploads *validator.UploadConfig
}

func NewService(database *gorm.DB, store storage.Storage, uploads *validator.UploadConfig) *Service {
	if uploads == nil {
		uploads = validator.NewUploadConfig(validator.DefaultMaxUploadSize, nil)
	}
	return &Service{
		db:      database,
		dao:     db.NewMediaDAO(),
		storage: store,
		uploads: uploads,
	}
}

// Storage exposes the configured backend, mainly for bootstrap logging.
func (s *Service) Storage() storage.Storage {
	return s.storage
}

// --------------------- Model conversion helpers ---------------------

func mediaModelToAPI(media *model.Media) *api.MediaAsset {
	if media == nil {
		return nil
	}
	return &api.MediaAsset{
		FileId:      media.FileID,
		FileName:    media.FileName,
		ContentType: media.ContentType,
		FileSize:    media.FileSize,
		Url:         media.URL,
		Remark:      media.Remark,
		StorageType: media.StorageType,
	}
}

func mediaSliceToAPI(media []model.Media) []*api.MediaAsset {
	list := make([]*api.MediaAsset, 0, len(media))
	for i := range media {
		list = append(list, mediaModelToAPI(&media[i]))
	}
	return list
}
