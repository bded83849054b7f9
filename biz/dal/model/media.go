package model

import (
	"time"

	"gorm.io/gorm"
)

// Media stores metadata for uploaded media assets. StorageKey is the
// identifier the storage backend returned from PutObject; it is the only
// handle needed to address the object later.
type Media struct {
	ID          uint           `gorm:"primaryKey" json:"id,omitempty"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at,omitempty"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	FileID      string         `gorm:"column:file_id;uniqueIndex:idx_media_file" json:"file_id,omitempty"`
	FileName    string         `gorm:"column:file_name" json:"file_name,omitempty"`
	ContentType string         `gorm:"column:content_type" json:"content_type,omitempty"`
	FileSize    int64          `gorm:"column:file_size" json:"file_size,omitempty"`
	StorageKey  string         `gorm:"column:storage_key;type:text" json:"storage_key,omitempty"`
	StorageType string         `gorm:"column:storage_type" json:"storage_type,omitempty"`
	URL         string         `gorm:"column:url;type:text" json:"url,omitempty"`
	Remark      string         `gorm:"column:remark;type:varchar(512)" json:"remark,omitempty"`
}

// TableName overrides gorm to use the media table.
func (Media) TableName() string {
	return "media"
}
