// file: internals/helpers/oss/local_client_test.go
package helper

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestLocalBlob(t *testing.T) *LocalBlobService {
	t.Helper()
	t.Setenv("IMAGE_WEBP_ENABLED", "")
	return &LocalBlobService{
		RootDir:    t.TempDir(),
		PublicBase: "/uploads",
		Prefix:     "checkin",
	}
}

func TestLocalBlobServiceUploadBytes(t *testing.T) {
	blob := newTestLocalBlob(t)
	data := []byte("isi-foto-demo")

	publicURL, key, ct, err := blob.UploadBytes(context.Background(),
		"checkin_photos", "location_photo_HR-EMP-00001_20250127_091530.jpg", data)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if !strings.HasPrefix(publicURL, "/uploads/checkin/checkin_photos/") {
		t.Fatalf("publicURL = %q", publicURL)
	}
	if !strings.HasSuffix(publicURL, ".jpg") {
		t.Fatalf("ekstensi hilang: %q", publicURL)
	}
	if publicURL != blob.PublicBase+"/"+key {
		t.Fatalf("URL %q tidak konsisten dengan key %q", publicURL, key)
	}
	// ekstensi .jpg selalu dilaporkan image/jpeg
	if ct != "image/jpeg" {
		t.Fatalf("contentType = %q", ct)
	}

	fullPath := filepath.Join(blob.RootDir, filepath.FromSlash(key))
	onDisk, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("file tidak tertulis: %v", err)
	}
	if string(onDisk) != string(data) {
		t.Fatal("isi file beda dengan payload")
	}
}

func TestLocalBlobServiceUploadGuards(t *testing.T) {
	blob := newTestLocalBlob(t)

	t.Run("data kosong", func(t *testing.T) {
		_, _, _, err := blob.UploadBytes(context.Background(), "d", "f.jpg", nil)
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("melebihi batas", func(t *testing.T) {
		big := make([]byte, MaxUploadSize+1)
		_, _, _, err := blob.UploadBytes(context.Background(), "d", "f.jpg", big)
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestLocalBlobServiceDeleteByPublicURL(t *testing.T) {
	blob := newTestLocalBlob(t)

	publicURL, key, _, err := blob.UploadBytes(context.Background(), "checkin_photos", "hapus_saya.jpg", []byte("x"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := blob.DeleteByPublicURL(context.Background(), publicURL); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(blob.RootDir, filepath.FromSlash(key))); !os.IsNotExist(err) {
		t.Fatal("file masih ada setelah delete")
	}

	// idempoten: file sudah hilang bukan error
	if err := blob.DeleteByPublicURL(context.Background(), publicURL); err != nil {
		t.Fatalf("delete kedua: %v", err)
	}

	t.Run("URL di luar base ditolak", func(t *testing.T) {
		err := blob.DeleteByPublicURL(context.Background(), "https://cdn.lain.example/foto.jpg")
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("path traversal ditolak", func(t *testing.T) {
		err := blob.DeleteByPublicURL(context.Background(), blob.PublicBase+"/../rahasia.txt")
		var fe *fiber.Error
		if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestPickUploadFile(t *testing.T) {
	fh := func(name string) *multipart.FileHeader { return &multipart.FileHeader{Filename: name} }

	t.Run("form nil", func(t *testing.T) {
		if got := PickUploadFile(nil, LocationPhotoFieldCandidates); got != nil {
			t.Fatal("mau nil")
		}
	})

	t.Run("nama field utama", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"location_photo": {fh("a.jpg")},
		}}
		got := PickUploadFile(form, LocationPhotoFieldCandidates)
		if got == nil || got.Filename != "a.jpg" {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("alias dipakai bila utama kosong", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"locationPhoto": {fh("b.jpg")},
		}}
		got := PickUploadFile(form, LocationPhotoFieldCandidates)
		if got == nil || got.Filename != "b.jpg" {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("urutan kandidat menang", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"location_photo": {fh("utama.jpg")},
			"locationPhoto":  {fh("alias.jpg")},
		}}
		got := PickUploadFile(form, LocationPhotoFieldCandidates)
		if got == nil || got.Filename != "utama.jpg" {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("filename kosong dilewati", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"client_biometric_photo": {fh(""), fh("wajah.jpg")},
		}}
		got := PickUploadFile(form, BiometricPhotoFieldCandidates)
		if got == nil || got.Filename != "wajah.jpg" {
			t.Fatalf("got %v", got)
		}
	})
}
