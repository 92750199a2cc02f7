// file: internals/features/hr/employee/dto/configuration_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ===================== RESPONSES ===================== */

// Bentuk respons mengikuti kontrak klien mobile lama: blok identitas karyawan,
// blok lokasi cabang, dan blok aturan absensi hasil resolusi.

type ConfigurationBranchBlock struct {
	BranchID            uuid.UUID `json:"branch_id"`
	BranchName          string    `json:"branch_name"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	CheckinRadiusMeters float64   `json:"checkin_radius_meters"`
	Address             *string   `json:"address"`
}

type ConfigurationSettingsBlock struct {
	RequiredToUploadLocationPhoto        bool   `json:"required_to_upload_location_photo"`
	RequiredToUploadClientBioMetricPhoto bool   `json:"required_to_upload_client_bio_metric_photo"`
	RequireLocationCheckOnCheckOut       bool   `json:"require_location_check_on_check_out"`
	SettingsSource                       string `json:"settings_source"`

	DepartmentID   *uuid.UUID `json:"department_id"`
	DepartmentName *string    `json:"department_name"`
	ProjectID      *uuid.UUID `json:"project_id"`
	ProjectName    *string    `json:"project_name"`
}

type EmployeeConfigurationResponse struct {
	EmployeeID     string `json:"employee_id"` // kode publik karyawan
	EmployeeName   string `json:"employee_name"`
	EmployeeCode   string `json:"employee_code"`
	Designation    string `json:"designation"`
	Department     string `json:"department"`
	DepartmentName string `json:"department_name"`
	Company        string `json:"company"`

	Branch   ConfigurationBranchBlock   `json:"branch"`
	Settings ConfigurationSettingsBlock `json:"settings"`
}
