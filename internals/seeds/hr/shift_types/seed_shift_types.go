package shifttype

import (
	"encoding/json"
	"log"
	"os"

	"absenku_backend/internals/features/hr/masters/model"
	"absenku_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

type ShiftTypeSeed struct {
	ShiftTypeName      string `json:"shift_type_name"`
	ShiftTypeStartTime string `json:"shift_type_start_time"`
	ShiftTypeEndTime   string `json:"shift_type_end_time"`
}

func SeedShiftTypesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var shifts []ShiftTypeSeed
	if err := json.Unmarshal(file, &shifts); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range shifts {
		var existing model.ShiftType
		if err := db.Where("shift_type_name = ?", s.ShiftTypeName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Shift type '%s' sudah ada, lewati...", s.ShiftTypeName)
			continue
		}

		start, err := dbtime.Parse(s.ShiftTypeStartTime)
		if err != nil {
			log.Printf("❌ Jam mulai '%s' tidak valid untuk shift '%s': %v", s.ShiftTypeStartTime, s.ShiftTypeName, err)
			continue
		}
		end, err := dbtime.Parse(s.ShiftTypeEndTime)
		if err != nil {
			log.Printf("❌ Jam selesai '%s' tidak valid untuk shift '%s': %v", s.ShiftTypeEndTime, s.ShiftTypeName, err)
			continue
		}

		newShift := model.ShiftType{
			ShiftTypeName:      s.ShiftTypeName,
			ShiftTypeStartTime: start,
			ShiftTypeEndTime:   end,
		}

		if err := db.Create(&newShift).Error; err != nil {
			log.Printf("❌ Gagal insert shift type '%s': %v", s.ShiftTypeName, err)
		} else {
			log.Printf("✅ Berhasil insert shift type '%s'", s.ShiftTypeName)
		}
	}
}
