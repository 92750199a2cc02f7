// file: internals/features/hr/checkin/model/file_asset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: file_assets
   ========================= */

type FileAsset struct {
	FileAssetID   uuid.UUID `json:"file_asset_id" gorm:"column:file_asset_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FileAssetName string    `json:"file_asset_name" gorm:"column:file_asset_name;type:varchar(255);not null;index"`
	FileAssetURL  string    `json:"file_asset_url" gorm:"column:file_asset_url;type:text;not null"`

	// object key di storage (OSS / disk lokal); dipakai saat hapus
	FileAssetObjectKey *string `json:"file_asset_object_key,omitempty" gorm:"column:file_asset_object_key;type:text"`

	FileAssetSizeBytes   int64  `json:"file_asset_size_bytes" gorm:"column:file_asset_size_bytes;not null;default:0"`
	FileAssetContentType string `json:"file_asset_content_type" gorm:"column:file_asset_content_type;type:varchar(100);not null;default:'application/octet-stream'"`

	// tautan ke checkin; NULL selama belum di-attach
	FileAssetCheckinID *uuid.UUID `json:"file_asset_checkin_id,omitempty" gorm:"column:file_asset_checkin_id;type:uuid;index"`

	FileAssetCreatedAt time.Time `json:"file_asset_created_at" gorm:"column:file_asset_created_at;type:timestamptz;not null;default:now()"`
	FileAssetUpdatedAt time.Time `json:"file_asset_updated_at" gorm:"column:file_asset_updated_at;type:timestamptz;not null;default:now()"`
}

func (FileAsset) TableName() string { return "file_assets" }

func (f *FileAsset) BeforeUpdate(tx *gorm.DB) error {
	f.FileAssetUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAttachedTo(checkinID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("file_asset_checkin_id = ?", checkinID)
	}
}

func ScopeNameLike(pattern string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("file_asset_name ILIKE ?", pattern)
	}
}
