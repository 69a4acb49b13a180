package entities

import "strings"

// Permission is a capability checked before an operation runs.
type Permission string

const (
	PermWorkOrdersView   Permission = "work_orders.view"
	PermWorkOrdersCreate Permission = "work_orders.create"
	PermWorkOrdersEdit   Permission = "work_orders.edit"
	PermWorkOrdersDelete Permission = "work_orders.delete"

	PermEstimatesView    Permission = "estimates.view"
	PermEstimatesCreate  Permission = "estimates.create"
	PermEstimatesApprove Permission = "estimates.approve"
	PermInvoicesView     Permission = "invoices.view"
	PermInvoicesCreate   Permission = "invoices.create"
	PermPaymentsProcess  Permission = "payments.process"

	PermInventoryView   Permission = "inventory.view"
	PermInventoryManage Permission = "inventory.manage"

	PermCustomersView   Permission = "customers.view"
	PermCustomersManage Permission = "customers.manage"

	PermSettingsView   Permission = "settings.view"
	PermSettingsManage Permission = "settings.manage"
	PermUsersManage    Permission = "users.manage"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
	RoleTechnician Role = "technician"
	RoleCustom     Role = "custom"
)

// Technicians may edit jobs but cannot create or delete them.
var defaultRoles = map[Role][]Permission{
	RoleAdmin: {
		PermWorkOrdersView, PermWorkOrdersCreate, PermWorkOrdersEdit, PermWorkOrdersDelete,
		PermEstimatesView, PermEstimatesCreate, PermEstimatesApprove,
		PermInvoicesView, PermInvoicesCreate, PermPaymentsProcess,
		PermInventoryView, PermInventoryManage,
		PermCustomersView, PermCustomersManage,
		PermSettingsView, PermSettingsManage, PermUsersManage,
	},
	RoleStaff: {
		PermWorkOrdersView, PermWorkOrdersCreate, PermWorkOrdersEdit,
		PermEstimatesView, PermEstimatesCreate,
		PermInvoicesView, PermInvoicesCreate,
		PermInventoryView,
		PermCustomersView, PermCustomersManage,
	},
	RoleTechnician: {
		PermWorkOrdersView, PermWorkOrdersEdit,
		PermInventoryView,
		PermCustomersView,
	},
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleStaff, RoleTechnician, RoleCustom:
		return r, true
	}
	return "", false
}

// HasPermission checks the custom grants first, then the role's defaults.
// The custom role has no defaults.
func HasPermission(role Role, custom []string, required Permission) bool {
	for _, p := range custom {
		if Permission(p) == required {
			return true
		}
	}
	for _, p := range defaultRoles[role] {
		if p == required {
			return true
		}
	}
	return false
}
