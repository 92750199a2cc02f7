// file: internals/helpers/oss/multipartx.go
package helper

import (
	"io"
	"mime/multipart"
)

// ==============================
// File collector (foto checkin)
// ==============================

// Nama field multipart untuk masing-masing jenis foto.
// FE lama memakai nama field persis ini; alias disediakan untuk jaga-jaga.
var (
	LocationPhotoFieldCandidates  = []string{"location_photo", "location_photo_file", "locationPhoto"}
	BiometricPhotoFieldCandidates = []string{"client_biometric_photo", "biometric_photo", "clientBiometricPhoto"}
)

// PickUploadFile mengambil *FileHeader pertama yang cocok dari kandidat nama field.
func PickUploadFile(form *multipart.Form, candidates []string) *multipart.FileHeader {
	if form == nil || form.File == nil {
		return nil
	}
	for _, key := range candidates {
		if fhs, ok := form.File[key]; ok {
			for _, fh := range fhs {
				if fh != nil && fh.Filename != "" {
					return fh
				}
			}
		}
	}
	return nil
}

// ReadUploadFile membaca seluruh isi file multipart.
// Dibatasi MaxUploadSize+1 byte supaya guard ukuran di layer atas
// tetap bisa membedakan "pas di batas" vs "kelebihan".
func ReadUploadFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
}
