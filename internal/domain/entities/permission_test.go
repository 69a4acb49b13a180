package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, nil, PermWorkOrdersDelete))
	assert.True(t, HasPermission(RoleStaff, nil, PermWorkOrdersCreate))
	assert.False(t, HasPermission(RoleStaff, nil, PermWorkOrdersDelete))
	assert.True(t, HasPermission(RoleTechnician, nil, PermWorkOrdersEdit))
	assert.False(t, HasPermission(RoleTechnician, nil, PermWorkOrdersCreate))
	assert.False(t, HasPermission(RoleTechnician, nil, PermEstimatesApprove))

	// custom grants override the role table
	assert.True(t, HasPermission(RoleTechnician, []string{"work_orders.delete"}, PermWorkOrdersDelete))
	assert.False(t, HasPermission(RoleCustom, nil, PermWorkOrdersView))
	assert.True(t, HasPermission(RoleCustom, []string{"work_orders.view"}, PermWorkOrdersView))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Staff ")
	assert.True(t, ok)
	assert.Equal(t, RoleStaff, r)

	_, ok = ParseRole("customer")
	assert.False(t, ok)
}
