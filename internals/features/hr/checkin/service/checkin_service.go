// file: internals/features/hr/checkin/service/checkin_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"absenku_backend/internals/features/hr/checkin/dto"
	checkinModel "absenku_backend/internals/features/hr/checkin/model"
	employeeService "absenku_backend/internals/features/hr/employee/service"
	helperOSS "absenku_backend/internals/helpers/oss"
)

/* =========================================================
   CREATE CHECK-IN
   ========================================================= */

// CreateCheckinInput: payload absensi yang sudah dinormalisasi controller
// (multipart bytes vs field body string dipisah di sini, bukan di service).
type CreateCheckinInput struct {
	EmployeeID string
	LogType    string

	Latitude  *float64
	Longitude *float64

	DeviceID  *string
	Notes     *string
	Timestamp string

	// foto: bytes dari multipart menang atas string inline (base64 / file id)
	LocationPhotoBytes   []byte
	BiometricPhotoBytes  []byte
	LocationPhotoInline  string
	BiometricPhotoInline string
	LocationPhotoID      string
	BiometricPhotoID     string

	CallerEmail string
	CallerName  string
}

// CreateCheckin menjalankan seluruh alur absensi: resolve karyawan, aturan
// lokasi & foto, aturan harian (1x IN + 1x OUT), insert row, lalu upload foto.
// Catatan: foto diproses SETELAH insert — kegagalan upload tidak membatalkan
// row absensi yang sudah tersimpan.
func CreateCheckin(ctx context.Context, db *gorm.DB, blob helperOSS.BlobService, in *CreateCheckinInput) (*dto.CheckinCreatedResponse, error) {
	logType := strings.ToUpper(strings.TrimSpace(in.LogType))
	if logType != checkinModel.LogTypeIn && logType != checkinModel.LogTypeOut {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Invalid log_type. Must be 'IN' for check-in or 'OUT' for check-out.")
	}
	action := "check-in"
	if logType == checkinModel.LogTypeOut {
		action = "check-out"
	}

	emp, err := employeeService.ResolveEmployee(db, in.EmployeeID, in.CallerEmail, in.CallerName)
	if err != nil {
		return nil, err
	}
	if err := employeeService.ValidateActiveEmployee(emp); err != nil {
		return nil, err
	}

	agg, err := employeeService.LoadEmployeeAggregate(db, emp)
	if err != nil {
		return nil, err
	}
	settings, err := ResolveCheckinSettings(agg)
	if err != nil {
		return nil, err
	}

	// validasi lokasi: IN selalu wajib; OUT mengikuti setting
	var distance *float64
	needLocation := logType == checkinModel.LogTypeIn ||
		(logType == checkinModel.LogTypeOut && settings.RequireCheckoutLocation)
	if needLocation {
		if in.Latitude == nil || in.Longitude == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Location is required for %s. Please provide latitude and longitude.", action))
		}
		d, err := ValidateGeofence(*in.Latitude, *in.Longitude, settings, logType)
		if err != nil {
			return nil, err
		}
		rounded := math.Round(d*100) / 100
		distance = &rounded
	}

	// foto wajib dicek sebelum insert; pelanggarannya BUKAN throw biasa —
	// klien lama mengharapkan body {"exception": ...} dengan status 200
	hasLocationPhoto := len(in.LocationPhotoBytes) > 0 ||
		strings.TrimSpace(in.LocationPhotoInline) != "" ||
		strings.TrimSpace(in.LocationPhotoID) != ""
	if settings.RequireLocationPhoto && !hasLocationPhoto {
		return nil, &PhotoRequiredError{
			Message: fmt.Sprintf("Location photo is required for %s.", action),
		}
	}
	hasBiometricPhoto := len(in.BiometricPhotoBytes) > 0 ||
		strings.TrimSpace(in.BiometricPhotoInline) != "" ||
		strings.TrimSpace(in.BiometricPhotoID) != ""
	if settings.RequireBiometricPhoto && !hasBiometricPhoto {
		return nil, &PhotoRequiredError{
			Message: fmt.Sprintf("Client biometric photo is required for %s.", action),
		}
	}

	// id foto eksplisit harus menunjuk file yang benar-benar ada
	if id := strings.TrimSpace(in.LocationPhotoID); id != "" && !FileAssetExists(db, id) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Location photo file not found. Please upload the photo again.")
	}
	if id := strings.TrimSpace(in.BiometricPhotoID); id != "" && !FileAssetExists(db, id) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Client biometric photo file not found. Please upload the photo again.")
	}

	checkinTime, err := NormalizeCheckinTimestamp(in.Timestamp, time.Now())
	if err != nil {
		return nil, err
	}

	if err := validateDailyRules(db, emp.EmployeeID, logType, action, checkinTime); err != nil {
		return nil, err
	}

	row := &checkinModel.EmployeeCheckin{
		CheckinEmployeeID:   emp.EmployeeID,
		CheckinEmployeeCode: emp.EmployeeCode,
		CheckinEmployeeName: emp.EmployeeName,
		CheckinLogType:      logType,
		CheckinTime:         checkinTime,
		CheckinLatitude:     in.Latitude,
		CheckinLongitude:    in.Longitude,
		CheckinDeviceID:     in.DeviceID,
		CheckinNotes:        in.Notes,
	}
	if sw := ResolveShiftWindow(agg.ShiftType, checkinTime); sw != nil {
		row.CheckinShift = &sw.Name
		start, end := sw.Start, sw.End
		row.CheckinShiftStart = &start
		row.CheckinShiftEnd = &end
	}
	if err := row.SetGeolocation(); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Error creating check-in record: %v", err))
	}

	if err := db.Create(row).Error; err != nil {
		return nil, translateInsertError(err)
	}

	// ===== setelah titik ini row sudah permanen =====

	locAsset, err := attachCheckinPhoto(ctx, db, blob, emp.EmployeeCode, row.CheckinID, "location",
		in.LocationPhotoBytes, in.LocationPhotoInline, in.LocationPhotoID,
		"Location photo file not found. Please upload the photo again.")
	if err != nil {
		return nil, err
	}
	bioAsset, err := attachCheckinPhoto(ctx, db, blob, emp.EmployeeCode, row.CheckinID, "biometric",
		in.BiometricPhotoBytes, in.BiometricPhotoInline, in.BiometricPhotoID,
		"Client biometric photo file not found. Please upload the photo again.")
	if err != nil {
		return nil, err
	}

	backfill := map[string]interface{}{}
	if locAsset != nil {
		row.CheckinLocationPhotoID = &locAsset.FileAssetID
		row.CheckinLocationPhotoURL = &locAsset.FileAssetURL
		backfill["checkin_location_photo_id"] = locAsset.FileAssetID
		backfill["checkin_location_photo_url"] = locAsset.FileAssetURL
	}
	if bioAsset != nil {
		row.CheckinBiometricPhotoID = &bioAsset.FileAssetID
		row.CheckinBiometricPhotoURL = &bioAsset.FileAssetURL
		backfill["checkin_biometric_photo_id"] = bioAsset.FileAssetID
		backfill["checkin_biometric_photo_url"] = bioAsset.FileAssetURL
	}
	if len(backfill) > 0 {
		// map-based Updates: checkin_updated_at sengaja tidak disentuh
		if err := db.Model(&checkinModel.EmployeeCheckin{}).
			Where("checkin_id = ?", row.CheckinID).
			Updates(backfill).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Error uploading photo. Please try again. If the problem persists, contact support.")
		}
	}

	resp := dto.NewCheckinCreatedResponse(row)
	resp.DistanceFromBranchMeters = distance
	resp.LocationPhotoID = row.CheckinLocationPhotoID
	resp.LocationPhotoURL = row.CheckinLocationPhotoURL
	resp.ClientBiometricPhotoID = row.CheckinBiometricPhotoID
	resp.ClientBiometricPhotoURL = row.CheckinBiometricPhotoURL
	return resp, nil
}

// validateDailyRules: jendela satu hari kalender [00:00, +24h) dari checkin_time.
// Query hanya menghitung; keputusan transisinya murni (dailyTransitionError).
func validateDailyRules(db *gorm.DB, employeeID uuid.UUID, logType, action string, checkinTime time.Time) error {
	dayStart := StartOfCheckinDay(checkinTime)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var inCount int64
	if logType == checkinModel.LogTypeOut {
		if err := db.Model(&checkinModel.EmployeeCheckin{}).
			Scopes(
				checkinModel.ScopeEmployee(employeeID),
				checkinModel.ScopeLogType(checkinModel.LogTypeIn),
				checkinModel.ScopeTimeWindow(dayStart, dayEnd),
			).
			Count(&inCount).Error; err != nil {
			return err
		}
	}

	var sameCount int64
	if err := db.Model(&checkinModel.EmployeeCheckin{}).
		Scopes(
			checkinModel.ScopeEmployee(employeeID),
			checkinModel.ScopeLogType(logType),
			checkinModel.ScopeTimeWindow(dayStart, dayEnd),
		).
		Count(&sameCount).Error; err != nil {
		return err
	}

	return dailyTransitionError(logType, action, dayStart.Format("January 02, 2006"), inCount, sameCount)
}

// dailyTransitionError: aturan transisi harian — OUT butuh IN lebih dulu,
// dan tiap tipe log hanya boleh sekali per hari.
func dailyTransitionError(logType, action, dayLabel string, inCount, sameCount int64) error {
	if logType == checkinModel.LogTypeOut && inCount == 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("You must check-in before you can check-out. No check-in record found for %s.", dayLabel))
	}
	if sameCount > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("You have already completed your %s for %s. Only one check-in and one check-out are allowed per day.", action, dayLabel))
	}
	return nil
}

func translateInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fiber.NewError(fiber.StatusBadRequest,
			"A check-in record already exists for this timestamp. Please wait a moment and try again, or use a different timestamp.")
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
		return fiber.NewError(fiber.StatusBadRequest,
			"A check-in record already exists for this timestamp. Please wait a moment and try again.")
	}
	return fiber.NewError(fiber.StatusBadRequest,
		fmt.Sprintf("Error creating check-in record: %v", err))
}

// attachCheckinPhoto memilih sumber foto lalu mengupload / menautkannya.
// Prioritas: bytes multipart > string inline (file id lama ATAU base64) > id eksplisit.
func attachCheckinPhoto(
	ctx context.Context,
	db *gorm.DB,
	blob helperOSS.BlobService,
	employeeCode string,
	checkinID uuid.UUID,
	photoType string,
	fileBytes []byte,
	inline string,
	explicitID string,
	notFoundMsg string,
) (*checkinModel.FileAsset, error) {
	if len(fileBytes) > 0 {
		return UploadCheckinPhoto(ctx, db, blob, employeeCode, checkinID, photoType, fileBytes)
	}

	if s := strings.TrimSpace(inline); s != "" {
		// string pendek tanpa prefix data: bisa jadi id file hasil upload terpisah
		if id, perr := uuid.Parse(s); perr == nil && FileAssetExists(db, s) {
			fa, lerr := LinkPhotoToCheckin(db, id, checkinID)
			if lerr != nil {
				return nil, fiber.NewError(fiber.StatusBadRequest,
					"Error uploading photo. Please try again. If the problem persists, contact support.")
			}
			return fa, nil
		}
		data, derr := DecodePhotoPayload(s)
		if derr != nil {
			return nil, derr
		}
		return UploadCheckinPhoto(ctx, db, blob, employeeCode, checkinID, photoType, data)
	}

	if s := strings.TrimSpace(explicitID); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, notFoundMsg)
		}
		fa, lerr := LinkPhotoToCheckin(db, id, checkinID)
		if lerr != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, notFoundMsg)
		}
		return fa, nil
	}

	return nil, nil
}

/* =========================================================
   LIST CHECK-IN RECORDS
   ========================================================= */

// ListCheckinInput: limit/offset sudah dinormalisasi controller
// (helper.ResolveLimitOffset).
type ListCheckinInput struct {
	EmployeeID string
	LogType    string
	StartDate  string
	EndDate    string
	Limit      int
	Offset     int

	CallerEmail string
	CallerName  string
}

// ListCheckinRecords: riwayat absensi karyawan, terbaru dulu, dengan pagination.
func ListCheckinRecords(db *gorm.DB, in *ListCheckinInput) (*dto.CheckinRecordsResponse, error) {
	emp, err := employeeService.ResolveEmployee(db, in.EmployeeID, in.CallerEmail, in.CallerName)
	if err != nil {
		return nil, err
	}

	logType := strings.TrimSpace(in.LogType)
	if logType != "" && logType != checkinModel.LogTypeIn && logType != checkinModel.LogTypeOut {
		return nil, fiber.NewError(fiber.StatusBadRequest, "log_type must be 'IN' or 'OUT'.")
	}

	startRaw := strings.TrimSpace(in.StartDate)
	endRaw := strings.TrimSpace(in.EndDate)
	var start, endExclusive time.Time
	switch {
	case startRaw != "" && endRaw != "":
		s, serr := ParseFlexibleDatetime(startRaw)
		e, eerr := ParseFlexibleDatetime(endRaw)
		if serr != nil || eerr != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Invalid date format. Use ISO 8601 format or YYYY-MM-DD.")
		}
		start, endExclusive = s, listRangeEnd(e, endRaw)
	case startRaw != "":
		s, serr := ParseFlexibleDatetime(startRaw)
		if serr != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Invalid start_date format. Use ISO 8601 format or YYYY-MM-DD.")
		}
		start = s
	case endRaw != "":
		e, eerr := ParseFlexibleDatetime(endRaw)
		if eerr != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Invalid end_date format. Use ISO 8601 format or YYYY-MM-DD.")
		}
		endExclusive = listRangeEnd(e, endRaw)
	}

	q := db.Model(&checkinModel.EmployeeCheckin{}).
		Scopes(checkinModel.ScopeEmployee(emp.EmployeeID))
	if logType != "" {
		q = q.Scopes(checkinModel.ScopeLogType(logType))
	}
	if !start.IsZero() {
		q = q.Where("checkin_time >= ?", start)
	}
	if !endExclusive.IsZero() {
		q = q.Where("checkin_time < ?", endExclusive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []checkinModel.EmployeeCheckin
	if err := q.
		Order("checkin_time DESC").
		Limit(in.Limit).
		Offset(in.Offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]dto.CheckinRecordItem, 0, len(rows))
	for i := range rows {
		item := dto.NewCheckinRecordItem(&rows[i])
		item.EmployeeID = emp.EmployeeCode

		item.LocationPhotoID, item.LocationPhotoURL = ResolveRecordPhoto(
			db, rows[i].CheckinID, "%location_photo%", rows[i].CheckinLocationPhotoID)
		item.ClientBiometricPhotoID, item.ClientBiometricPhotoURL = ResolveRecordPhoto(
			db, rows[i].CheckinID, "%biometric%", rows[i].CheckinBiometricPhotoID)

		records = append(records, item)
	}

	return &dto.CheckinRecordsResponse{
		Records:    records,
		TotalCount: total,
		Limit:      in.Limit,
		Offset:     in.Offset,
		HasMore:    hasMoreRecords(in.Offset, in.Limit, total),
	}, nil
}

func hasMoreRecords(offset, limit int, total int64) bool {
	return int64(offset+limit) < total
}

// listRangeEnd: end date-only (YYYY-MM-DD) mencakup seluruh harinya;
// timestamp penuh bersifat inklusif pada presisi detik.
func listRangeEnd(end time.Time, raw string) time.Time {
	if len(strings.TrimSpace(raw)) <= 10 {
		return end.AddDate(0, 0, 1)
	}
	return end.Add(time.Second)
}
