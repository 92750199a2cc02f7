// file: internals/features/hr/checkin/service/settings_resolver_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	employeeService "absenku_backend/internals/features/hr/employee/service"
	masterModel "absenku_backend/internals/features/hr/masters/model"
)

func boolPtr(b bool) *bool      { return &b }
func f64Ptr(f float64) *float64 { return &f }
func strPtr(s string) *string   { return &s }

func demoBranch() *masterModel.Branch {
	return &masterModel.Branch{
		BranchID:           uuid.New(),
		BranchName:         "Kantor Pusat",
		BranchAddress:      strPtr("Jl. Sudirman 1"),
		BranchLatitude:     f64Ptr(-6.2),
		BranchLongitude:    f64Ptr(106.8),
		BranchRadiusMeters: f64Ptr(150),
	}
}

func TestResolveCheckinSettings_DepartmentMode(t *testing.T) {
	company := &masterModel.Company{CompanyID: uuid.New(), CompanyName: "PT Demo", CompanyUseDepartmentSettings: true}
	dept := &masterModel.Department{
		DepartmentID:                      uuid.New(),
		DepartmentName:                    "Operasional",
		DepartmentCompanyID:               company.CompanyID,
		DepartmentRequireLocationPhoto:    boolPtr(true),
		DepartmentRequireBiometricPhoto:   boolPtr(false),
		DepartmentRequireCheckoutLocation: boolPtr(true),
	}

	agg := &employeeService.EmployeeAggregate{
		Company:    company,
		Department: dept,
		Branch:     demoBranch(),
	}

	got, err := ResolveCheckinSettings(agg)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.SettingsSource != "department" {
		t.Fatalf("source = %q, mau department", got.SettingsSource)
	}
	if !got.RequireLocationPhoto || got.RequireBiometricPhoto || !got.RequireCheckoutLocation {
		t.Fatalf("flag tidak sesuai department: %+v", got)
	}
	if got.ProjectID != nil {
		t.Fatal("mode department tidak boleh membawa project")
	}
	if got.BranchRadius != 150 {
		t.Fatalf("radius = %v, mau 150", got.BranchRadius)
	}
}

func TestResolveCheckinSettings_ProjectMode(t *testing.T) {
	company := &masterModel.Company{CompanyID: uuid.New(), CompanyName: "PT Demo", CompanyUseDepartmentSettings: false}
	project := &masterModel.Project{
		ProjectID:                      uuid.New(),
		ProjectName:                    "Proyek A",
		ProjectRequireLocationPhoto:    boolPtr(false),
		ProjectRequireBiometricPhoto:   boolPtr(true),
		ProjectRequireCheckoutLocation: boolPtr(false),
	}
	dept := &masterModel.Department{
		DepartmentID:        uuid.New(),
		DepartmentName:      "Operasional",
		DepartmentCompanyID: company.CompanyID,
		DepartmentProjectID: &project.ProjectID,
	}

	agg := &employeeService.EmployeeAggregate{
		Company:    company,
		Department: dept,
		Project:    project,
		Branch:     demoBranch(),
	}

	got, err := ResolveCheckinSettings(agg)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got.SettingsSource != "project" {
		t.Fatalf("source = %q, mau project", got.SettingsSource)
	}
	if got.RequireLocationPhoto || !got.RequireBiometricPhoto || got.RequireCheckoutLocation {
		t.Fatalf("flag tidak sesuai project: %+v", got)
	}
	if got.ProjectID == nil || *got.ProjectID != project.ProjectID {
		t.Fatal("project id harus ikut di hasil resolve")
	}
}

func TestResolveCheckinSettings_ConfigurationErrors(t *testing.T) {
	company := func(useDept bool) *masterModel.Company {
		return &masterModel.Company{CompanyID: uuid.New(), CompanyName: "PT Demo", CompanyUseDepartmentSettings: useDept}
	}
	deptWithRules := func() *masterModel.Department {
		return &masterModel.Department{
			DepartmentID:                   uuid.New(),
			DepartmentName:                 "Ops",
			DepartmentRequireLocationPhoto: boolPtr(true),
		}
	}

	cases := []struct {
		name       string
		agg        *employeeService.EmployeeAggregate
		wantSubstr string
	}{
		{
			"tanpa company",
			&employeeService.EmployeeAggregate{},
			"Employee has no company assigned.",
		},
		{
			"mode department tanpa department",
			&employeeService.EmployeeAggregate{Company: company(true)},
			"Employee has no Department assigned",
		},
		{
			"mode department tanpa aturan",
			&employeeService.EmployeeAggregate{
				Company:    company(true),
				Department: &masterModel.Department{DepartmentID: uuid.New(), DepartmentName: "Ops"},
			},
			"Please configure settings in Department.",
		},
		{
			"mode project tanpa department",
			&employeeService.EmployeeAggregate{Company: company(false)},
			"Company setting requires Project settings, but Employee has no Department assigned.",
		},
		{
			"mode project tanpa project tertaut",
			&employeeService.EmployeeAggregate{
				Company:    company(false),
				Department: &masterModel.Department{DepartmentID: uuid.New(), DepartmentName: "Ops"},
			},
			"Please link a Project to the Department.",
		},
		{
			"mode project tanpa aturan di project",
			&employeeService.EmployeeAggregate{
				Company:    company(false),
				Department: &masterModel.Department{DepartmentID: uuid.New(), DepartmentName: "Ops"},
				Project:    &masterModel.Project{ProjectID: uuid.New(), ProjectName: "Proyek A"},
			},
			"Please configure settings in Project.",
		},
		{
			"tanpa branch",
			&employeeService.EmployeeAggregate{
				Company:    company(true),
				Department: deptWithRules(),
			},
			"Employee has no branch assigned.",
		},
		{
			"branch tanpa geofence",
			&employeeService.EmployeeAggregate{
				Company:    company(true),
				Department: deptWithRules(),
				Branch:     &masterModel.Branch{BranchID: uuid.New(), BranchName: "Gudang Transit"},
			},
			"Branch Gudang Transit does not have location information",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveCheckinSettings(tc.agg)
			assertFiberError(t, err, fiber.StatusBadRequest, tc.wantSubstr)
		})
	}
}
