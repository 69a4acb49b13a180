package repository

import (
	"context"
	"testing"
	"time"

	"mass_oss/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(orgID, plate string) entities.WorkOrder {
	return entities.WorkOrder{
		OrgID:    orgID,
		Status:   entities.StatusCheckIn,
		Vehicle:  entities.VehicleSnapshot{Plate: plate},
		Customer: entities.CustomerSnapshot{Name: "Hodan Abdi"},
		Services: []string{"Oil Change"},
		Priority: entities.PriorityNormal,
	}
}

func TestWorkOrderMemoryRepository_SeedsOnFirstUse(t *testing.T) {
	repo := NewWorkOrderMemoryRepository(entities.DemoWorkOrders)

	list, err := repo.List(context.Background(), "demo-a")
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "WO-001", list[0].ID)
	assert.Equal(t, "demo-a", list[0].OrgID)

	empty := NewWorkOrderMemoryRepository(nil)
	list, err = empty.List(context.Background(), "demo-a")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkOrderMemoryRepository_CreatePrependsWithUniqueIDs(t *testing.T) {
	repo := NewWorkOrderMemoryRepository(nil)
	fixed := time.UnixMilli(1_700_000_123_456)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	first, err := repo.Create(ctx, newOrder("demo-a", "AAA-1"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newOrder("demo-a", "BBB-2"))
	require.NoError(t, err)

	assert.Equal(t, "WO-123456", first.ID)
	assert.Equal(t, "WO-123457", second.ID)

	list, err := repo.List(ctx, "demo-a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	dup := newOrder("demo-a", "CCC-3")
	dup.ID = first.ID
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrWorkOrderExists)
}

func TestWorkOrderMemoryRepository_UpdateAndStatus(t *testing.T) {
	repo := NewWorkOrderMemoryRepository(entities.DemoWorkOrders)
	later := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return later }
	ctx := context.Background()

	tech := "Abdi Kareem"
	updated, err := repo.Update(ctx, "demo-a", "WO-001", entities.WorkOrderPatch{AssignedTech: &tech})
	require.NoError(t, err)
	assert.Equal(t, tech, updated.AssignedTech)
	assert.Equal(t, later, updated.UpdatedAt)

	moved, err := repo.UpdateStatus(ctx, "demo-a", "WO-001", entities.StatusCheckIn, entities.StatusInspecting)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInspecting, moved.Status)
	assert.Equal(t, tech, moved.AssignedTech)

	missing, err := repo.UpdateStatus(ctx, "demo-a", "WO-999", entities.StatusCheckIn, entities.StatusInspecting)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	got, err := repo.GetByID(ctx, "demo-a", "WO-001")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInspecting, got.Status)
}

func TestWorkOrderMemoryRepository_UpdateStatusStaleFrom(t *testing.T) {
	repo := NewWorkOrderMemoryRepository(entities.DemoWorkOrders)
	ctx := context.Background()

	_, err := repo.UpdateStatus(ctx, "demo-a", "WO-005", entities.StatusComplete, entities.StatusInvoiced)
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "demo-a", "WO-005", entities.StatusComplete, entities.StatusInProgress)
	assert.ErrorIs(t, err, entities.ErrStatusChanged)

	got, err := repo.GetByID(ctx, "demo-a", "WO-005")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInvoiced, got.Status)
}

func TestWorkOrderMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewWorkOrderMemoryRepository(entities.DemoWorkOrders)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, "demo-a", "WO-001")
	require.NoError(t, err)
	got.Services[0] = "changed"

	again, err := repo.GetByID(ctx, "demo-a", "WO-001")
	require.NoError(t, err)
	assert.Equal(t, "Oil Change", again.Services[0])
}

func TestWorkOrderMemoryRepository_Delete(t *testing.T) {
	repo := NewWorkOrderMemoryRepository(entities.DemoWorkOrders)
	ctx := context.Background()

	ok, err := repo.Delete(ctx, "demo-a", "WO-003")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "demo-a", "WO-003")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := repo.List(ctx, "demo-a")
	require.NoError(t, err)
	assert.Len(t, list, 4)

	other, err := repo.List(ctx, "demo-b")
	require.NoError(t, err)
	assert.Len(t, other, 5)
}

func TestWorkOrderMemoryRepository_CanceledContext(t *testing.T) {
	repo := NewWorkOrderMemoryRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx, "demo-a")
	assert.ErrorIs(t, err, context.Canceled)
}
