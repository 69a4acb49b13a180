package response

import (
	"testing"
	"time"

	"mass_oss/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatuses(t *testing.T) {
	res := FromStatuses(entities.StatusRegistry())
	require.Len(t, res, 8)

	assert.Equal(t, "check-in", res[0].Key)
	assert.Equal(t, []string{"inspecting", "cancelled"}, res[0].AllowedNextStates)
	assert.Equal(t, "cancelled", res[7].Key)
	assert.Empty(t, res[7].AllowedNextStates)
}

func TestFromBoard(t *testing.T) {
	orders := entities.DemoWorkOrders("demo-a", time.Date(2024, 12, 27, 9, 0, 0, 0, time.UTC))
	b := entities.BuildBoard(orders, entities.WorkOrderFilter{Status: "in-progress"}, entities.PageRequest{})

	res := FromBoard(b)
	require.Len(t, res.WorkOrders, 1)
	assert.Equal(t, "WO-003", res.WorkOrders[0].ID)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 1, res.Matched)
	require.Len(t, res.StatusCounts, 8)
	assert.Empty(t, res.StatusCounts[0].AllowedNextStates)
}
