package seeds

import (
	branches "absenku_backend/internals/seeds/hr/branches"
	companies "absenku_backend/internals/seeds/hr/companies"
	departments "absenku_backend/internals/seeds/hr/departments"
	employees "absenku_backend/internals/seeds/hr/employees"
	projects "absenku_backend/internals/seeds/hr/projects"
	shift_types "absenku_backend/internals/seeds/hr/shift_types"

	bins "absenku_backend/internals/seeds/sales/bins"
	customers "absenku_backend/internals/seeds/sales/customers"
	item_prices "absenku_backend/internals/seeds/sales/item_prices"
	items "absenku_backend/internals/seeds/sales/items"
	loyalty_point_entries "absenku_backend/internals/seeds/sales/loyalty_point_entries"
	sales_orders "absenku_backend/internals/seeds/sales/sales_orders"
	warehouses "absenku_backend/internals/seeds/sales/warehouses"

	users "absenku_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data demo. Urutan penting:
// master organisasi dulu (company → project → department → branch → shift),
// baru employee & user yang merujuk ke sana; sales masters terakhir.
func RunAllSeeds(db *gorm.DB) {

	//* HR masters
	companies.SeedCompaniesFromJSON(db, "internals/seeds/hr/companies/data_companies.json")
	projects.SeedProjectsFromJSON(db, "internals/seeds/hr/projects/data_projects.json")
	departments.SeedDepartmentsFromJSON(db, "internals/seeds/hr/departments/data_departments.json")
	branches.SeedBranchesFromJSON(db, "internals/seeds/hr/branches/data_branches.json")
	shift_types.SeedShiftTypesFromJSON(db, "internals/seeds/hr/shift_types/data_shift_types.json")
	employees.SeedEmployeesFromJSON(db, "internals/seeds/hr/employees/data_employees.json")

	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/auth/data_users.json")

	//* Sales masters
	items.SeedItemsFromJSON(db, "internals/seeds/sales/items/data_items.json")
	warehouses.SeedWarehousesFromJSON(db, "internals/seeds/sales/warehouses/data_warehouses.json")
	bins.SeedBinsFromJSON(db, "internals/seeds/sales/bins/data_bins.json")
	item_prices.SeedItemPricesFromJSON(db, "internals/seeds/sales/item_prices/data_item_prices.json")
	customers.SeedCustomersFromJSON(db, "internals/seeds/sales/customers/data_customers.json")
	loyalty_point_entries.SeedLoyaltyPointEntriesFromJSON(db, "internals/seeds/sales/loyalty_point_entries/data_loyalty_point_entries.json")
	sales_orders.SeedSalesOrdersFromJSON(db, "internals/seeds/sales/sales_orders/data_sales_orders.json")
}
