package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRegistry(t *testing.T) {
	reg := StatusRegistry()
	require.Len(t, reg, 8)

	keys := make([]WorkOrderStatus, 0, len(reg))
	for _, d := range reg {
		assert.NotEmpty(t, d.Label)
		assert.NotEmpty(t, d.Color)
		keys = append(keys, d.Key)
	}
	assert.Equal(t, []WorkOrderStatus{
		StatusCheckIn, StatusInspecting, StatusAwaitingApproval, StatusInProgress,
		StatusWaitingParts, StatusComplete, StatusInvoiced, StatusCancelled,
	}, keys)

	// callers cannot mutate the registry
	reg[0].Label = "changed"
	info, ok := StatusInfo(StatusCheckIn)
	require.True(t, ok)
	assert.Equal(t, "Check-In", info.Label)
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" In-Progress ")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, st)

	_, err = ParseStatus("IN_PROGRESS")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to WorkOrderStatus
		want     bool
	}{
		{StatusCheckIn, StatusInspecting, true},
		{StatusCheckIn, StatusComplete, false},
		{StatusInspecting, StatusAwaitingApproval, true},
		{StatusAwaitingApproval, StatusInProgress, true},
		{StatusInProgress, StatusWaitingParts, true},
		{StatusWaitingParts, StatusInProgress, true},
		{StatusInProgress, StatusComplete, true},
		{StatusComplete, StatusInvoiced, true},
		{StatusComplete, StatusInProgress, true},
		{StatusInvoiced, StatusComplete, false},
		{StatusCancelled, StatusInProgress, false},
		{StatusInvoiced, StatusInvoiced, true},
		{StatusCancelled, StatusCancelled, true},
		{"bogus", StatusCheckIn, false},
		{StatusCheckIn, "bogus", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestAllowedNextStates(t *testing.T) {
	assert.Equal(t, []WorkOrderStatus{StatusInspecting, StatusCancelled}, AllowedNextStates(StatusCheckIn))
	assert.Empty(t, AllowedNextStates(StatusInvoiced))
	assert.Empty(t, AllowedNextStates("bogus"))
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusComplete.IsTerminal())

	next := AllowedNextStates(StatusCheckIn)
	next[0] = StatusInvoiced
	assert.False(t, CanTransition(StatusCheckIn, StatusInvoiced))
}

func TestEveryRegistryStatusHasTransitions(t *testing.T) {
	for _, d := range StatusRegistry() {
		assert.True(t, d.Key.IsValid(), d.Key)
		for _, next := range AllowedNextStates(d.Key) {
			_, ok := StatusInfo(next)
			assert.True(t, ok, "%s -> %s", d.Key, next)
		}
	}
}
