package usecase

import (
	"context"
	"errors"
	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidEstimateVal = errors.New("invalid estimate value")
	ErrEstimateNotPending = errors.New("estimate not awaiting approval")
	ErrEstimateMissing    = errors.New("work order has no estimate")
)

// IEstimateUseCase drives the customer-approval part of the workflow.
//
//   - CalculateEstimate prices the job and moves it to awaiting-approval
//   - Approve moves an awaiting order to in-progress
//   - Reject cancels an awaiting order
//   - UpdateEstimatePrice re-prices without moving the order

type IEstimateUseCase interface {
	CalculateEstimate(ctx context.Context, orgID, id string, price float64) (entities.WorkOrder, error)
	Approve(ctx context.Context, orgID, id string) (entities.WorkOrder, error)
	Reject(ctx context.Context, orgID, id string) (entities.WorkOrder, error)
	UpdateEstimatePrice(ctx context.Context, orgID, id string, newPrice float64) (entities.WorkOrder, error)
}

type EstimateUseCase struct {
	repo     interfaces.IWorkOrderRepository
	notifier interfaces.INotifier
	now      func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IWorkOrderRepository, notifier interfaces.INotifier) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, notifier: notifier, now: time.Now}
}

func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, orgID, id string, price float64) (wo entities.WorkOrder, err error) {
	var from entities.WorkOrderStatus
	defer func() { publishResult(ctx, u.notifier, u.now, entities.OperationEstimate, orgID, id, from, wo, err) }()

	orgID, id, err = normalizeKeys(orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if price <= 0 {
		return entities.WorkOrder{}, ErrInvalidEstimateVal
	}

	current, err := u.load(ctx, orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !entities.CanTransition(current.Status, entities.StatusAwaitingApproval) {
		return entities.WorkOrder{}, ErrInvalidTransition
	}
	from = current.Status

	priced, err := u.repo.Update(ctx, orgID, id, entities.WorkOrderPatch{Estimate: &price})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if priced.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	log.WithFields(log.Fields{"org_id": orgID, "id": id, "estimate": price}).Info("[estimate][usecase] estimate calculated")

	return transitionWorkOrder(ctx, u.repo, orgID, priced, entities.StatusAwaitingApproval)
}

func (u *EstimateUseCase) Approve(ctx context.Context, orgID, id string) (entities.WorkOrder, error) {
	return u.decide(ctx, orgID, id, entities.StatusInProgress)
}

func (u *EstimateUseCase) Reject(ctx context.Context, orgID, id string) (entities.WorkOrder, error) {
	return u.decide(ctx, orgID, id, entities.StatusCancelled)
}

func (u *EstimateUseCase) decide(ctx context.Context, orgID, id string, next entities.WorkOrderStatus) (wo entities.WorkOrder, err error) {
	var from entities.WorkOrderStatus
	defer func() { publishResult(ctx, u.notifier, u.now, entities.OperationEstimate, orgID, id, from, wo, err) }()

	orgID, id, err = normalizeKeys(orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	current, err := u.load(ctx, orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if current.Status != entities.StatusAwaitingApproval {
		return entities.WorkOrder{}, ErrEstimateNotPending
	}
	if current.Estimate == nil {
		return entities.WorkOrder{}, ErrEstimateMissing
	}
	from = current.Status
	return transitionWorkOrder(ctx, u.repo, orgID, current, next)
}

func (u *EstimateUseCase) UpdateEstimatePrice(ctx context.Context, orgID, id string, newPrice float64) (wo entities.WorkOrder, err error) {
	defer func() { publishResult(ctx, u.notifier, u.now, entities.OperationEstimate, orgID, id, "", wo, err) }()

	orgID, id, err = normalizeKeys(orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if newPrice <= 0 {
		return entities.WorkOrder{}, ErrInvalidEstimateVal
	}
	current, err := u.load(ctx, orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if current.Status.IsTerminal() {
		return entities.WorkOrder{}, ErrInvalidTransition
	}

	updated, err := u.repo.Update(ctx, orgID, id, entities.WorkOrderPatch{Estimate: &newPrice})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}

func (u *EstimateUseCase) load(ctx context.Context, orgID, id string) (entities.WorkOrder, error) {
	wo, err := u.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}
