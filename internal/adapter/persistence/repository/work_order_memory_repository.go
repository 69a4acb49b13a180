package repository

import (
	"context"
	"sync"
	"time"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"
)

// ErrWorkOrderExists is returned by both stores when an id is taken.
var ErrWorkOrderExists = entities.ErrWorkOrderExists

// SeedFunc returns the orders an org starts with the first time it is used.
type SeedFunc func(orgID string, now time.Time) []entities.WorkOrder

// maxIDAttempts bounds the search for a free synthesized id.
const maxIDAttempts = 1000

// WorkOrderMemoryRepository is the demo sandbox: each org owns a slice held in
// memory, newest first. Nothing survives a restart.
//
// Writes are last-write-wins; there is no version check.

type WorkOrderMemoryRepository struct {
	mu   sync.Mutex
	orgs map[string][]entities.WorkOrder
	seed SeedFunc
	now  func() time.Time
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderMemoryRepository)(nil)

// NewWorkOrderMemoryRepository builds an empty store. seed may be nil, in
// which case new orgs start empty.
func NewWorkOrderMemoryRepository(seed SeedFunc) *WorkOrderMemoryRepository {
	return &WorkOrderMemoryRepository{
		orgs: make(map[string][]entities.WorkOrder),
		seed: seed,
		now:  time.Now,
	}
}

// orders returns the org's slice, seeding it on first use. Callers hold mu.
func (r *WorkOrderMemoryRepository) orders(orgID string) []entities.WorkOrder {
	list, ok := r.orgs[orgID]
	if !ok {
		if r.seed != nil {
			list = r.seed(orgID, r.now().UTC())
		}
		r.orgs[orgID] = list
	}
	return list
}

func (r *WorkOrderMemoryRepository) List(ctx context.Context, orgID string) ([]entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.orders(orgID)
	out := make([]entities.WorkOrder, 0, len(list))
	for _, o := range list {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (r *WorkOrderMemoryRepository) GetByID(ctx context.Context, orgID, id string) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.orders(orgID)
	if i := indexOf(list, id); i >= 0 {
		return list[i].Clone(), nil
	}
	return entities.WorkOrder{}, nil
}

// Create prepends wo. An empty ID is replaced with a synthesized one that is
// unique within the org.
func (r *WorkOrderMemoryRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.orders(wo.OrgID)
	if wo.ID == "" {
		now := r.now()
		for bump := 0; ; bump++ {
			if bump == maxIDAttempts {
				return entities.WorkOrder{}, ErrWorkOrderExists
			}
			candidate := entities.SynthesizeWorkOrderID(now, bump)
			if indexOf(list, candidate) < 0 {
				wo.ID = candidate
				break
			}
		}
	} else if indexOf(list, wo.ID) >= 0 {
		return entities.WorkOrder{}, ErrWorkOrderExists
	}

	stored := wo.Clone()
	r.orgs[wo.OrgID] = append([]entities.WorkOrder{stored}, list...)
	return stored.Clone(), nil
}

func (r *WorkOrderMemoryRepository) Update(ctx context.Context, orgID, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	return r.mutate(ctx, orgID, id, func(o entities.WorkOrder) (entities.WorkOrder, error) {
		return patch.Apply(o), nil
	})
}

// UpdateStatus writes to only while the stored status is still from.
func (r *WorkOrderMemoryRepository) UpdateStatus(ctx context.Context, orgID, id string, from, to entities.WorkOrderStatus) (entities.WorkOrder, error) {
	return r.mutate(ctx, orgID, id, func(o entities.WorkOrder) (entities.WorkOrder, error) {
		if o.Status != from {
			return o, entities.ErrStatusChanged
		}
		o.Status = to
		return o, nil
	})
}

func (r *WorkOrderMemoryRepository) mutate(ctx context.Context, orgID, id string, fn func(entities.WorkOrder) (entities.WorkOrder, error)) (entities.WorkOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.orders(orgID)
	i := indexOf(list, id)
	if i < 0 {
		return entities.WorkOrder{}, nil
	}
	updated, err := fn(list[i].Clone())
	if err != nil {
		return entities.WorkOrder{}, err
	}
	updated.UpdatedAt = r.now().UTC()
	list[i] = updated
	return updated.Clone(), nil
}

func (r *WorkOrderMemoryRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.orders(orgID)
	i := indexOf(list, id)
	if i < 0 {
		return false, nil
	}
	out := make([]entities.WorkOrder, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	r.orgs[orgID] = out
	return true, nil
}

func indexOf(list []entities.WorkOrder, id string) int {
	for i, o := range list {
		if o.ID == id {
			return i
		}
	}
	return -1
}
