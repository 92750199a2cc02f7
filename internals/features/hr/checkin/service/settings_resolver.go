// file: internals/features/hr/checkin/service/settings_resolver.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	employeeService "absenku_backend/internals/features/hr/employee/service"
)

/* =========================================================
   CHECKIN SETTINGS (hasil resolve, siap pakai)
   ========================================================= */

// CheckinSettings: aturan absensi final untuk satu karyawan.
// Sumber aturan (department/project) ditentukan oleh flag di Company.
type CheckinSettings struct {
	RequireLocationPhoto    bool
	RequireBiometricPhoto   bool
	RequireCheckoutLocation bool

	SettingsSource string // "department" | "project"

	DepartmentID   *uuid.UUID
	DepartmentName *string
	ProjectID      *uuid.UUID
	ProjectName    *string

	BranchID        uuid.UUID
	BranchName      string
	BranchAddress   *string
	BranchLatitude  float64
	BranchLongitude float64
	BranchRadius    float64 // meter
}

/* =========================================================
   RESOLVER (murni — tidak menyentuh DB)
   ========================================================= */

// ResolveCheckinSettings menurunkan aturan absensi dari aggregate karyawan.
// Semua kegagalan di sini adalah kesalahan konfigurasi → error validasi.
func ResolveCheckinSettings(agg *employeeService.EmployeeAggregate) (*CheckinSettings, error) {
	if agg.Company == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Employee has no company assigned.")
	}

	out := &CheckinSettings{}
	if agg.Department != nil {
		out.DepartmentID = &agg.Department.DepartmentID
		out.DepartmentName = &agg.Department.DepartmentName
	}

	if agg.Company.CompanyUseDepartmentSettings {
		// aturan dari Department
		if agg.Department == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Company setting requires Department settings, but Employee has no Department assigned.")
		}
		if !agg.Department.HasCheckinRules() {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Company setting requires Department settings, but Department has no validation settings configured. Please configure settings in Department.")
		}
		out.RequireLocationPhoto = boolOrFalse(agg.Department.DepartmentRequireLocationPhoto)
		out.RequireBiometricPhoto = boolOrFalse(agg.Department.DepartmentRequireBiometricPhoto)
		out.RequireCheckoutLocation = boolOrFalse(agg.Department.DepartmentRequireCheckoutLocation)
		out.SettingsSource = "department"
	} else {
		// aturan dari Project yang tertaut di Department
		if agg.Department == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Company setting requires Project settings, but Employee has no Department assigned.")
		}
		if agg.Project == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Company setting requires Project settings, but Department has no linked Project. Please link a Project to the Department.")
		}
		if !agg.Project.HasCheckinRules() {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Company setting requires Project settings, but linked Project has no validation settings configured. Please configure settings in Project.")
		}
		out.RequireLocationPhoto = boolOrFalse(agg.Project.ProjectRequireLocationPhoto)
		out.RequireBiometricPhoto = boolOrFalse(agg.Project.ProjectRequireBiometricPhoto)
		out.RequireCheckoutLocation = boolOrFalse(agg.Project.ProjectRequireCheckoutLocation)
		out.SettingsSource = "project"
		out.ProjectID = &agg.Project.ProjectID
		out.ProjectName = &agg.Project.ProjectName
	}

	// geofence cabang wajib lengkap
	if agg.Branch == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Employee has no branch assigned. Please assign a branch to the employee.")
	}
	if !agg.Branch.HasGeofence() {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Branch %s does not have location information (latitude, longitude, or radius) configured.", agg.Branch.BranchName))
	}

	out.BranchID = agg.Branch.BranchID
	out.BranchName = agg.Branch.BranchName
	out.BranchAddress = agg.Branch.BranchAddress
	out.BranchLatitude = *agg.Branch.BranchLatitude
	out.BranchLongitude = *agg.Branch.BranchLongitude
	out.BranchRadius = *agg.Branch.BranchRadiusMeters

	return out, nil
}

func boolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
