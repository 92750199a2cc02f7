// file: internals/helpers/oss/blob_service.go
package helper

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade penyimpanan foto yang seragam untuk service/controller.

Dua implementasi:
- OSSBlobService  → Aliyun OSS (produksi), opsional re-encode WebP.
- LocalBlobService → disk lokal (dev/test), URL dilayani via static route.

Foto masuk sebagai []byte (hasil decode base64 atau pembacaan multipart),
bukan *multipart.FileHeader, supaya kedua jalur intake memakai jalur yang sama.
*/

// batas ukuran upload foto (5 MB)
const MaxUploadSize = int64(5 * 1024 * 1024)

type BlobService interface {
	UploadBytes(ctx context.Context, dir, filename string, data []byte) (publicURL, objectKey, contentType string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// NewBlobServiceFromEnv memilih driver dari UPLOAD_DRIVER ("oss" | "local").
// Kosong → pakai OSS bila env ALI_OSS_* lengkap, selain itu disk lokal.
func NewBlobServiceFromEnv(prefix string) (BlobService, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("UPLOAD_DRIVER")))
	switch driver {
	case "oss":
		return NewOSSBlobServiceFromEnv(prefix)
	case "local":
		return NewLocalBlobService(prefix)
	case "":
		if getEnv("ALI_OSS_ENDPOINT") != "" {
			return NewOSSBlobServiceFromEnv(prefix)
		}
		return NewLocalBlobService(prefix)
	default:
		return nil, fmt.Errorf("UPLOAD_DRIVER tidak dikenal: %s", driver)
	}
}

/* =======================================================================
   Implementasi Aliyun OSS
======================================================================= */

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadBytes(ctx context.Context, dir, filename string, data []byte) (string, string, string, error) {
	if len(data) == 0 {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest, "File kosong")
	}
	if int64(len(data)) > MaxUploadSize {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Ukuran file melebihi batas %d bytes", MaxUploadSize))
	}

	data, filename, ct := maybeReencodeWebP(data, filename)

	key := b.svc.BuildObjectKey(dir, filename)
	if err := b.svc.UploadBytes(ctx, key, data, ct); err != nil {
		return "", "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), key, ct, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "URL tidak dikenali")
	}
	if err := b.svc.DeleteObject(ctx, key); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Gagal hapus object: %v", err))
	}
	return nil
}

/* =======================================================================
   Re-encode WebP opsional (IMAGE_WEBP_ENABLED=true)
======================================================================= */

// maybeReencodeWebP meng-compress foto ke WebP bila diaktifkan via ENV.
// Format yang tidak didukung dilewatkan apa adanya (foto tetap tersimpan).
func maybeReencodeWebP(data []byte, filename string) ([]byte, string, string) {
	ct := detectBytesContentType(data, filename)

	enabled := strings.EqualFold(strings.TrimSpace(os.Getenv("IMAGE_WEBP_ENABLED")), "true")
	if !enabled {
		return data, filename, ct
	}

	webpData, err := ConvertBytesToWebP(data, filename, defaultWebPOptionsFromEnv())
	if err != nil {
		return data, filename, ct
	}
	base := filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return webpData, base + ".webp", "image/webp"
}
