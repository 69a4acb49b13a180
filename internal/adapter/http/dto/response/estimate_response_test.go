package response

import (
	"testing"
	"time"

	"mass_oss/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	price := 99.9
	o := entities.WorkOrder{
		ID:        "WO-004",
		Status:    entities.StatusAwaitingApproval,
		Estimate:  &price,
		UpdatedAt: now,
	}

	res := FromEstimate(o)
	if res.WorkOrderID != "WO-004" {
		t.Fatalf("unexpected id: %+v", res)
	}
	if res.Price != 99.9 || res.Status != "awaiting-approval" || res.StatusLabel == "" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	if got := FromEstimate(entities.WorkOrder{ID: "WO-001"}); got.Price != 0 {
		t.Fatalf("expected zero price without estimate, got %v", got.Price)
	}
}
