package interfaces

import (
	"context"
	"mass_oss/internal/domain/entities"
)

// IWorkOrderRepository is the single store contract shared by the in-memory
// demo sandbox and the DynamoDB backend.
//
// Missing work orders are reported as a zero value (empty ID) or false, never
// as an error; the use case decides what "not found" means. UpdateStatus only
// writes while the stored status equals from and returns
// entities.ErrStatusChanged otherwise.
//
//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/mock_work_order_repository.go -package=mock_interfaces

type IWorkOrderRepository interface {
	List(ctx context.Context, orgID string) ([]entities.WorkOrder, error)
	GetByID(ctx context.Context, orgID, id string) (entities.WorkOrder, error)
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	Update(ctx context.Context, orgID, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	UpdateStatus(ctx context.Context, orgID, id string, from, to entities.WorkOrderStatus) (entities.WorkOrder, error)
	Delete(ctx context.Context, orgID, id string) (bool, error)
}
