package request

import (
	"testing"

	"mass_oss/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkOrderRequest_ToInput(t *testing.T) {
	est := 300.0
	in := CreateWorkOrderRequest{
		Vehicle:      VehicleRequest{Make: "Toyota", Model: "Camry", Year: 2020, Plate: "ABC-1234"},
		Customer:     CustomerRequest{Name: "Ahmed Hassan", Phone: "+252"},
		Services:     []string{"Oil Change"},
		AssignedTech: "Mohamed Ali",
		Priority:     "high",
		Estimate:     &est,
	}.ToInput()

	assert.Equal(t, "ABC-1234", in.Vehicle.Plate)
	assert.Equal(t, 2020, in.Vehicle.Year)
	assert.Equal(t, "Ahmed Hassan", in.Customer.Name)
	assert.Equal(t, entities.PriorityHigh, in.Priority)
	require.NotNil(t, in.Estimate)
	assert.Equal(t, 300.0, *in.Estimate)
}

func TestPatchWorkOrderRequest_ToPatch(t *testing.T) {
	assert.True(t, PatchWorkOrderRequest{}.ToPatch().IsEmpty())

	prio := "urgent"
	p := PatchWorkOrderRequest{
		Customer: &CustomerRequest{Name: "Fatima Omar"},
		Priority: &prio,
	}.ToPatch()

	require.NotNil(t, p.Customer)
	assert.Equal(t, "Fatima Omar", p.Customer.Name)
	require.NotNil(t, p.Priority)
	assert.Equal(t, entities.PriorityUrgent, *p.Priority)
	assert.Nil(t, p.Vehicle)
}

func TestListQuery(t *testing.T) {
	q := ListQuery{Query: "  abc ", Status: "in-progress", Page: 2, PageSize: 10}
	assert.Equal(t, entities.WorkOrderFilter{Query: "abc", Status: "in-progress"}, q.Filter())
	assert.Equal(t, entities.PageRequest{Page: 2, PageSize: 10}, q.PageRequest())
}
