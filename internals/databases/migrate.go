package database

import (
	"log"

	CheckinModel "absenku_backend/internals/features/hr/checkin/model"
	EmployeeModel "absenku_backend/internals/features/hr/employee/model"
	MasterModel "absenku_backend/internals/features/hr/masters/model"
	SalesModel "absenku_backend/internals/features/sales/reference/model"
	AuthModel "absenku_backend/internals/features/users/auth/model"
	UserModel "absenku_backend/internals/features/users/user/model"
)

// MigrateAll menjalankan auto-migrate seluruh model.
// Unique index uq_employee_checkins_daily menegakkan aturan 1x IN + 1x OUT per hari.
func MigrateAll() {
	log.Println("🗄️ AutoMigrate dimulai...")

	// gen_random_uuid() butuh pgcrypto di Postgres < 13
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		log.Printf("[WARN] pgcrypto extension: %v", err)
	}

	err := DB.AutoMigrate(
		&UserModel.UserModel{},
		&AuthModel.RefreshToken{},

		&MasterModel.Company{},
		&MasterModel.Branch{},
		&MasterModel.Department{},
		&MasterModel.Project{},
		&MasterModel.ShiftType{},

		&EmployeeModel.Employee{},

		&CheckinModel.EmployeeCheckin{},
		&CheckinModel.FileAsset{},

		&SalesModel.Item{},
		&SalesModel.Warehouse{},
		&SalesModel.Bin{},
		&SalesModel.ItemPrice{},
		&SalesModel.Customer{},
		&SalesModel.LoyaltyPointEntry{},
		&SalesModel.SalesOrder{},
		&SalesModel.SalesOrderItem{},
		&SalesModel.SalesOrderTax{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	log.Println("✅ AutoMigrate selesai.")
}
