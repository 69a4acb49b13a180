package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkOrderPatch_Apply(t *testing.T) {
	est := 100.0
	orig := WorkOrder{
		ID:       "WO-001",
		Status:   StatusCheckIn,
		Services: []string{"Oil Change"},
		Priority: PriorityNormal,
		Estimate: &est,
	}

	tech := "Abdi Kareem"
	prio := PriorityUrgent
	newEst := 250.0
	patch := WorkOrderPatch{
		Services:     []string{"Oil Change", "Oil Change"},
		AssignedTech: &tech,
		Priority:     &prio,
		Estimate:     &newEst,
	}
	require.False(t, patch.IsEmpty())

	out := patch.Apply(orig)
	assert.Equal(t, []string{"Oil Change", "Oil Change"}, out.Services)
	assert.Equal(t, "Abdi Kareem", out.AssignedTech)
	assert.Equal(t, PriorityUrgent, out.Priority)
	assert.Equal(t, 250.0, *out.Estimate)
	assert.Equal(t, StatusCheckIn, out.Status)

	// original untouched
	assert.Equal(t, []string{"Oil Change"}, orig.Services)
	assert.Equal(t, 100.0, *orig.Estimate)
	assert.True(t, WorkOrderPatch{}.IsEmpty())
}

func TestWorkOrder_Clone(t *testing.T) {
	est := 10.0
	o := WorkOrder{Services: []string{"A"}, Estimate: &est}
	c := o.Clone()
	c.Services[0] = "B"
	*c.Estimate = 20
	assert.Equal(t, "A", o.Services[0])
	assert.Equal(t, 10.0, *o.Estimate)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityNormal, p)

	p, err = ParsePriority("URGENT")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)

	_, err = ParsePriority("critical")
	assert.Error(t, err)
}

func TestCleanServices(t *testing.T) {
	assert.Equal(t, []string{"Oil Change", "Oil Change", "A/C"}, CleanServices([]string{" Oil Change", "", "Oil Change ", "  ", "A/C"}))
	assert.Empty(t, CleanServices(nil))
}
