// file: internals/features/hr/checkin/controller/checkin_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/hr/checkin/dto"
	checkinService "absenku_backend/internals/features/hr/checkin/service"
	helper "absenku_backend/internals/helpers"
	helperOSS "absenku_backend/internals/helpers/oss"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

type CheckinController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewCheckinController(db *gorm.DB, blob helperOSS.BlobService) *CheckinController {
	return &CheckinController{DB: db, Blob: blob}
}

/* =========================================================
   POST /api/mobile/checkin

   Kontrak error endpoint ini BEDA dari endpoint lain (warisan klien lama):
   - foto wajib tidak ada      → 200 {"exception": ...}
   - error validasi (4xx)      → 401 {"exception": ...}
   - error tak terduga         → 500 {"exception": pesan generik} + log
   Tidak pernah melempar error ke error handler global.
   ========================================================= */

func (ctl *CheckinController) CreateCheckin(c *fiber.Ctx) error {
	var req dto.CreateCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonException(c, fiber.StatusUnauthorized, "Invalid request payload.")
	}

	in := &checkinService.CreateCheckinInput{
		EmployeeID: req.EmployeeID,
		LogType:    req.LogType,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		DeviceID:   req.DeviceID,
		Notes:      req.Notes,
		Timestamp:  req.Timestamp,

		LocationPhotoInline:  req.LocationPhoto,
		BiometricPhotoInline: req.ClientBiometricPhoto,
		LocationPhotoID:      req.LocationPhotoID,
		BiometricPhotoID:     req.ClientBiometricPhotoID,

		CallerEmail: authMiddleware.GetUserEmail(c),
		CallerName:  authMiddleware.GetFullName(c),
	}

	// multipart: file part menang atas field string bernama sama
	if strings.Contains(strings.ToLower(c.Get(fiber.HeaderContentType)), "multipart/form-data") {
		if form, err := c.MultipartForm(); err == nil && form != nil {
			if fh := helperOSS.PickUploadFile(form, helperOSS.LocationPhotoFieldCandidates); fh != nil {
				data, rerr := helperOSS.ReadUploadFile(fh)
				if rerr != nil {
					return helper.JsonException(c, fiber.StatusUnauthorized,
						"Error uploading photo. Please try again. If the problem persists, contact support.")
				}
				in.LocationPhotoBytes = data
				in.LocationPhotoInline = ""
			}
			if fh := helperOSS.PickUploadFile(form, helperOSS.BiometricPhotoFieldCandidates); fh != nil {
				data, rerr := helperOSS.ReadUploadFile(fh)
				if rerr != nil {
					return helper.JsonException(c, fiber.StatusUnauthorized,
						"Error uploading photo. Please try again. If the problem persists, contact support.")
				}
				in.BiometricPhotoBytes = data
				in.BiometricPhotoInline = ""
			}
		}
	}

	resp, err := checkinService.CreateCheckin(c.UserContext(), ctl.DB, ctl.Blob, in)
	if err != nil {
		var pre *checkinService.PhotoRequiredError
		if errors.As(err, &pre) {
			return helper.JsonException(c, fiber.StatusOK, pre.Message)
		}
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return helper.JsonException(c, fiber.StatusUnauthorized, fe.Message)
		}
		log.Printf("[ERROR] create checkin gagal: %v", err)
		return helper.JsonException(c, fiber.StatusInternalServerError,
			"Something went wrong while creating your check-in. Please try again or contact support.")
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

/* =========================================================
   GET /api/mobile/checkin-records
   Error dilempar ke error handler global (amplop ErrorResponse).
   ========================================================= */

func (ctl *CheckinController) GetCheckinRecords(c *fiber.Ctx) error {
	var q dto.ListCheckinQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters.")
	}

	limit, offset := helper.ResolveLimitOffset(c, 100)

	resp, err := checkinService.ListCheckinRecords(ctl.DB, &checkinService.ListCheckinInput{
		EmployeeID: q.EmployeeID,
		LogType:    q.LogType,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Limit:      limit,
		Offset:     offset,

		CallerEmail: authMiddleware.GetUserEmail(c),
		CallerName:  authMiddleware.GetFullName(c),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
