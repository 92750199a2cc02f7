// file: internals/helpers/oss/local_client.go
package helper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* =======================================================================
   LocalBlobService: simpan foto di disk lokal (dev/test)
   URL publik: {LOCAL_PUBLIC_BASE|/uploads}/{key}, dilayani via static route.
======================================================================= */

type LocalBlobService struct {
	RootDir    string // direktori fisik, default "./uploads"
	PublicBase string // prefix URL, default "/uploads"
	Prefix     string // subdir opsional, mis. "checkin"
}

func NewLocalBlobService(prefix string) (*LocalBlobService, error) {
	root := strings.TrimSpace(os.Getenv("LOCAL_UPLOAD_DIR"))
	if root == "" {
		root = "./uploads"
	}
	base := strings.TrimSpace(os.Getenv("LOCAL_PUBLIC_BASE"))
	if base == "" {
		base = "/uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", root, err)
	}
	return &LocalBlobService{
		RootDir:    root,
		PublicBase: strings.TrimRight(base, "/"),
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (l *LocalBlobService) buildKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, ext)
	if base == "" {
		base = "file"
	}
	rand6 := randHex(3)

	parts := make([]string, 0, 3)
	if l.Prefix != "" {
		parts = append(parts, l.Prefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, safePart(d))
	}
	parts = append(parts, fmt.Sprintf("%s_%s%s", slugify(base), rand6, ext))
	return strings.Join(parts, "/")
}

func (l *LocalBlobService) UploadBytes(ctx context.Context, dir, filename string, data []byte) (string, string, string, error) {
	if len(data) == 0 {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest, "File kosong")
	}
	if int64(len(data)) > MaxUploadSize {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Ukuran file melebihi batas %d bytes", MaxUploadSize))
	}

	data, filename, ct := maybeReencodeWebP(data, filename)

	key := l.buildKey(dir, filename)
	fullPath := filepath.Join(l.RootDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", "", "", fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", "", "", fmt.Errorf("write file: %w", err)
	}
	return l.PublicBase + "/" + key, key, ct, nil
}

func (l *LocalBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "URL kosong")
	}
	key := strings.TrimPrefix(publicURL, l.PublicBase+"/")
	if key == publicURL || strings.Contains(key, "..") {
		return fiber.NewError(fiber.StatusBadRequest, "URL tidak dikenali")
	}
	fullPath := filepath.Join(l.RootDir, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
