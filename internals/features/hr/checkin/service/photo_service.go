// file: internals/features/hr/checkin/service/photo_service.go
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "absenku_backend/internals/features/hr/checkin/model"
	helperOSS "absenku_backend/internals/helpers/oss"
)

const checkinPhotoDir = "checkin_photos"

/* =========================================================
   PHOTO REQUIRED (kuirk kontrak mobile: 200 + {"exception"})
   ========================================================= */

// PhotoRequiredError menandai foto wajib yang tidak dikirim.
// Klien lama menerima kasus ini sebagai HTTP 200 dengan body {"exception": ...},
// BUKAN error 401 seperti kegagalan validasi lain.
type PhotoRequiredError struct{ Message string }

func (e *PhotoRequiredError) Error() string { return e.Message }

/* =========================================================
   DECODE PAYLOAD
   ========================================================= */

// DecodePhotoPayload menerima string base64 (dengan/tanpa prefix data-URI)
// dan mengembalikan bytes mentah.
func DecodePhotoPayload(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "data:") {
		// buang prefix "data:image/jpeg;base64,"
		if idx := strings.Index(s, ","); idx >= 0 {
			s = s[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Invalid image format. Please ensure the photo is properly encoded and try again.")
	}
	if len(data) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Invalid image data. The photo appears to be empty. Please capture the photo again.")
	}
	return data, nil
}

/* =========================================================
   FILE ASSET lookup & link
   ========================================================= */

func FindFileAsset(db *gorm.DB, id uuid.UUID) (*checkinModel.FileAsset, error) {
	var fa checkinModel.FileAsset
	if err := db.First(&fa, "file_asset_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &fa, nil
}

func FileAssetExists(db *gorm.DB, rawID string) bool {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return false
	}
	var n int64
	if err := db.Model(&checkinModel.FileAsset{}).Where("file_asset_id = ?", id).Count(&n).Error; err != nil {
		return false
	}
	return n > 0
}

// LinkPhotoToCheckin menautkan file_asset yang sudah terupload ke checkin.
func LinkPhotoToCheckin(db *gorm.DB, fileID, checkinID uuid.UUID) (*checkinModel.FileAsset, error) {
	fa, err := FindFileAsset(db, fileID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(fa).Update("file_asset_checkin_id", checkinID).Error; err != nil {
		return nil, err
	}
	fa.FileAssetCheckinID = &checkinID
	return fa, nil
}

/* =========================================================
   UPLOAD
   ========================================================= */

// checkinPhotoFilename: nama file deterministik per jenis foto + waktu UTC:
// {photo_type}_photo_{employee_code}_{YYYYMMDD_HHMMSS}.jpg
func checkinPhotoFilename(photoType, employeeCode string, at time.Time) string {
	return fmt.Sprintf("%s_photo_%s_%s.jpg",
		photoType, employeeCode, at.UTC().Format("20060102_150405"))
}

// UploadCheckinPhoto menyimpan bytes foto ke blob storage lalu mencatat
// file_assets row yang tertaut ke checkin.
func UploadCheckinPhoto(
	ctx context.Context,
	db *gorm.DB,
	blob helperOSS.BlobService,
	employeeCode string,
	checkinID uuid.UUID,
	photoType string,
	data []byte,
) (*checkinModel.FileAsset, error) {
	if len(data) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Photo file is empty. Please capture the photo again and try uploading.")
	}
	if int64(len(data)) > helperOSS.MaxUploadSize {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Photo file size exceeds the maximum limit of 5MB. Please compress the image and try again.")
	}

	filename := checkinPhotoFilename(photoType, employeeCode, time.Now())

	publicURL, objectKey, contentType, err := blob.UploadBytes(ctx, checkinPhotoDir, filename, data)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return nil, err
		}
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Error uploading photo. Please try again. If the problem persists, contact support.")
	}

	fa := &checkinModel.FileAsset{
		FileAssetName:        filename,
		FileAssetURL:         publicURL,
		FileAssetObjectKey:   &objectKey,
		FileAssetSizeBytes:   int64(len(data)),
		FileAssetContentType: contentType,
		FileAssetCheckinID:   &checkinID,
	}
	if err := db.Create(fa).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Error uploading photo. Please try again. If the problem persists, contact support.")
	}
	return fa, nil
}

/* =========================================================
   RESOLVE FOTO UNTUK LISTING
   ========================================================= */

// ResolveRecordPhoto mencari foto terbaru yang menempel ke checkin berdasarkan
// pola nama; fallback ke kolom backfill di row checkin.
func ResolveRecordPhoto(
	db *gorm.DB,
	checkinID uuid.UUID,
	namePattern string,
	backfillID *uuid.UUID,
) (*uuid.UUID, *string) {
	var fa checkinModel.FileAsset
	err := db.
		Scopes(checkinModel.ScopeAttachedTo(checkinID), checkinModel.ScopeNameLike(namePattern)).
		Order("file_asset_created_at DESC").
		First(&fa).Error
	if err == nil {
		return &fa.FileAssetID, &fa.FileAssetURL
	}

	if backfillID != nil {
		if found, ferr := FindFileAsset(db, *backfillID); ferr == nil {
			return &found.FileAssetID, &found.FileAssetURL
		}
	}
	return nil, nil
}
