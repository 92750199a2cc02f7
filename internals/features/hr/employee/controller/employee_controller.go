// file: internals/features/hr/employee/controller/employee_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinService "absenku_backend/internals/features/hr/checkin/service"
	"absenku_backend/internals/features/hr/employee/dto"
	employeeService "absenku_backend/internals/features/hr/employee/service"
	authMiddleware "absenku_backend/internals/middlewares/auth"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

/* =========================================================
   GET /api/mobile/employee-configuration

   Identitas karyawan + geofence cabang + aturan foto/lokasi hasil resolusi.
   Error dilempar ke error handler global (amplop ErrorResponse) — endpoint
   ini TIDAK memakai kontrak {"exception": ...} milik endpoint checkin.
   ========================================================= */

func (ctl *EmployeeController) GetEmployeeConfiguration(c *fiber.Ctx) error {
	emp, err := employeeService.ResolveEmployee(
		ctl.DB,
		strings.TrimSpace(c.Query("employee_id")),
		authMiddleware.GetUserEmail(c),
		authMiddleware.GetFullName(c),
	)
	if err != nil {
		return err
	}

	if emp.EmployeeCompanyEmail == nil || strings.TrimSpace(*emp.EmployeeCompanyEmail) == "" {
		return fiber.NewError(fiber.StatusBadRequest,
			"Employee has no company email assigned. Please assign a company email to the employee.")
	}

	agg, err := employeeService.LoadEmployeeAggregate(ctl.DB, emp)
	if err != nil {
		return err
	}
	settings, err := checkinService.ResolveCheckinSettings(agg)
	if err != nil {
		return err
	}

	designation := ""
	if emp.EmployeeDesignation != nil {
		designation = *emp.EmployeeDesignation
	}
	department, departmentName := "", ""
	if settings.DepartmentID != nil {
		department = settings.DepartmentID.String()
	}
	if settings.DepartmentName != nil {
		departmentName = *settings.DepartmentName
	}
	company := ""
	if agg.Company != nil {
		company = agg.Company.CompanyName
	}

	resp := dto.EmployeeConfigurationResponse{
		EmployeeID:     emp.EmployeeCode,
		EmployeeName:   emp.EmployeeName,
		EmployeeCode:   emp.EmployeeCode,
		Designation:    designation,
		Department:     department,
		DepartmentName: departmentName,
		Company:        company,
		Branch: dto.ConfigurationBranchBlock{
			BranchID:            settings.BranchID,
			BranchName:          settings.BranchName,
			Latitude:            settings.BranchLatitude,
			Longitude:           settings.BranchLongitude,
			CheckinRadiusMeters: settings.BranchRadius,
			Address:             settings.BranchAddress,
		},
		Settings: dto.ConfigurationSettingsBlock{
			RequiredToUploadLocationPhoto:        settings.RequireLocationPhoto,
			RequiredToUploadClientBioMetricPhoto: settings.RequireBiometricPhoto,
			RequireLocationCheckOnCheckOut:       settings.RequireCheckoutLocation,
			SettingsSource:                       settings.SettingsSource,
			DepartmentID:                         settings.DepartmentID,
			DepartmentName:                       settings.DepartmentName,
			ProjectID:                            settings.ProjectID,
			ProjectName:                          settings.ProjectName,
		},
	}

	// jejak audit konfigurasi yang dikirim ke klien
	if raw, merr := sonic.Marshal(resp); merr == nil {
		log.Printf("[INFO] employee configuration %s: %s", emp.EmployeeCode, raw)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
