package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northmart/media_bridge/biz/dal/model"
)

// MediaDAO handles CRUD operations for media assets.
type MediaDAO struct{}

func NewMediaDAO() *MediaDAO { return &MediaDAO{} }

func (dao *MediaDAO) Create(ctx context.Context, db *gorm.DB, media *model.Media) error {
	if media == nil {
		return errors.New("media must not be nil")
	}
	if media.FileID == "" {
		media.FileID = uuid.NewString()
	}
	return db.WithContext(ctx).Create(media).Error
}

func (dao *MediaDAO) Update(ctx context.Context, db *gorm.DB, media *model.Media) error {
	if media == nil {
		return errors.New("media must not be nil")
	}
	result := db.WithContext(ctx).
		Model(&model.Media{}).
		Where("file_id = ?", media.FileID).
		Updates(media)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (dao *MediaDAO) DeleteByFileID(ctx context.Context, db *gorm.DB, fileID string) error {
	return db.WithContext(ctx).Unscoped().Where("file_id = ?", fileID).Delete(&model.Media{}).Error
}

func (dao *MediaDAO) GetByFileID(ctx context.Context, db *gorm.DB, fileID string) (*model.Media, error) {
	var media model.Media
	if err := db.WithContext(ctx).Where("file_id = ?", fileID).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (dao *MediaDAO) GetByStorageKey(ctx context.Context, db *gorm.DB, key string) (*model.Media, error) {
	var media model.Media
	if err := db.WithContext(ctx).Where("storage_key = ?", key).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (dao *MediaDAO) List(ctx context.Context, db *gorm.DB) ([]model.Media, error) {
	var media []model.Media
	if err := db.WithContext(ctx).
		Order("created_at DESC").
		Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}
