package repository

import (
	"context"
	"strings"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"
)

// WorkOrderRoutingRepository sends demo orgs to the sandbox and everyone else
// to the remote store. The choice is made per call from the org id alone.

type WorkOrderRoutingRepository struct {
	demoPrefix string
	demo       interfaces.IWorkOrderRepository
	remote     interfaces.IWorkOrderRepository
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderRoutingRepository)(nil)

func NewWorkOrderRoutingRepository(demoPrefix string, demo, remote interfaces.IWorkOrderRepository) *WorkOrderRoutingRepository {
	return &WorkOrderRoutingRepository{demoPrefix: demoPrefix, demo: demo, remote: remote}
}

// IsDemo reports whether orgID belongs to the demo sandbox.
func (r *WorkOrderRoutingRepository) IsDemo(orgID string) bool {
	return r.demoPrefix != "" && strings.HasPrefix(orgID, r.demoPrefix)
}

func (r *WorkOrderRoutingRepository) route(orgID string) interfaces.IWorkOrderRepository {
	if r.IsDemo(orgID) {
		return r.demo
	}
	return r.remote
}

func (r *WorkOrderRoutingRepository) List(ctx context.Context, orgID string) ([]entities.WorkOrder, error) {
	return r.route(orgID).List(ctx, orgID)
}

func (r *WorkOrderRoutingRepository) GetByID(ctx context.Context, orgID, id string) (entities.WorkOrder, error) {
	return r.route(orgID).GetByID(ctx, orgID, id)
}

func (r *WorkOrderRoutingRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	return r.route(wo.OrgID).Create(ctx, wo)
}

func (r *WorkOrderRoutingRepository) Update(ctx context.Context, orgID, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	return r.route(orgID).Update(ctx, orgID, id, patch)
}

func (r *WorkOrderRoutingRepository) UpdateStatus(ctx context.Context, orgID, id string, from, to entities.WorkOrderStatus) (entities.WorkOrder, error) {
	return r.route(orgID).UpdateStatus(ctx, orgID, id, from, to)
}

func (r *WorkOrderRoutingRepository) Delete(ctx context.Context, orgID, id string) (bool, error) {
	return r.route(orgID).Delete(ctx, orgID, id)
}
