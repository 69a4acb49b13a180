package usecase

import (
	"context"
	"errors"
	"fmt"
	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrInvalidOrgID          = errors.New("invalid org_id")
	ErrInvalidWorkOrderID    = errors.New("invalid work order id")
	ErrInvalidWorkOrderInput = errors.New("invalid work order input")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrInvalidFilter         = errors.New("invalid filter")
	ErrEmptyPatch            = errors.New("nothing to update")
	ErrDuplicateRequest      = errors.New("duplicate request")
)

// CreateWorkOrderInput is what a shop supplies at check-in. Customer and
// vehicle are copied into the order; CheckinDate defaults to today.
type CreateWorkOrderInput struct {
	Vehicle      entities.VehicleSnapshot
	Customer     entities.CustomerSnapshot
	CheckinDate  string
	Services     []string
	AssignedTech string
	Priority     entities.Priority
	Estimate     *float64
}

// IWorkOrderUseCase is the mutation gateway and query surface of the work
// order board.

type IWorkOrderUseCase interface {
	List(ctx context.Context, orgID string, filter entities.WorkOrderFilter, page entities.PageRequest) (entities.Board, error)
	Get(ctx context.Context, orgID, id string) (entities.WorkOrder, error)
	AllowedNextStates(ctx context.Context, orgID, id string) ([]entities.WorkOrderStatus, error)
	Create(ctx context.Context, orgID string, in CreateWorkOrderInput, idempotencyKey string) (entities.WorkOrder, error)
	Update(ctx context.Context, orgID, id string, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	SetStatus(ctx context.Context, orgID, id, status string) (entities.WorkOrder, error)
	Delete(ctx context.Context, orgID, id string) error
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	notifier interfaces.INotifier
	guard    interfaces.IIdempotencyGuard
	now      func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

// NewWorkOrderUseCase wires the gateway. notifier and guard may be nil:
// results are then only logged and idempotency keys are ignored.
func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, notifier interfaces.INotifier, guard interfaces.IIdempotencyGuard) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, notifier: notifier, guard: guard, now: time.Now}
}

func (u *WorkOrderUseCase) List(ctx context.Context, orgID string, filter entities.WorkOrderFilter, page entities.PageRequest) (entities.Board, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return entities.Board{}, ErrInvalidOrgID
	}
	status := strings.ToLower(strings.TrimSpace(filter.Status))
	if status != "" && status != entities.StatusFilterAll {
		if _, err := entities.ParseStatus(status); err != nil {
			return entities.Board{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
	}
	filter.Status = status
	if err := page.Validate(); err != nil {
		return entities.Board{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	orders, err := u.repo.List(ctx, orgID)
	if err != nil {
		log.WithError(err).WithField("org_id", orgID).Error("[workorder][usecase] list failed")
		return entities.Board{}, err
	}
	return entities.BuildBoard(orders, filter, page), nil
}

func (u *WorkOrderUseCase) Get(ctx context.Context, orgID, id string) (entities.WorkOrder, error) {
	orgID, id, err := normalizeKeys(orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	wo, err := u.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderUseCase) AllowedNextStates(ctx context.Context, orgID, id string) ([]entities.WorkOrderStatus, error) {
	wo, err := u.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return entities.AllowedNextStates(wo.Status), nil
}

func (u *WorkOrderUseCase) Create(ctx context.Context, orgID string, in CreateWorkOrderInput, idempotencyKey string) (wo entities.WorkOrder, err error) {
	orgID = strings.TrimSpace(orgID)
	defer func() { u.publish(ctx, entities.OperationCreate, orgID, wo.ID, "", wo, err) }()

	if orgID == "" {
		return entities.WorkOrder{}, ErrInvalidOrgID
	}
	wo, err = u.buildWorkOrder(orgID, in)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	guardKey := ""
	if key := strings.TrimSpace(idempotencyKey); key != "" && u.guard != nil {
		guardKey = "workorders:create:" + orgID + ":" + key
		first, gErr := u.guard.Acquire(ctx, guardKey)
		if gErr != nil {
			log.WithError(gErr).WithField("org_id", orgID).Error("[workorder][usecase] idempotency guard failed")
			return entities.WorkOrder{}, gErr
		}
		if !first {
			log.WithFields(log.Fields{"org_id": orgID, "key": key}).Warn("[workorder][usecase] duplicate create suppressed")
			return entities.WorkOrder{}, ErrDuplicateRequest
		}
	}

	created, err := u.repo.Create(ctx, wo)
	if err != nil {
		log.WithError(err).WithField("org_id", orgID).Error("[workorder][usecase] create failed")
		if guardKey != "" {
			if rErr := u.guard.Release(context.WithoutCancel(ctx), guardKey); rErr != nil {
				log.WithError(rErr).WithField("org_id", orgID).Warn("[workorder][usecase] idempotency release failed")
			}
		}
		return entities.WorkOrder{}, err
	}
	log.WithFields(log.Fields{"org_id": orgID, "id": created.ID}).Info("[workorder][usecase] create success")
	return created, nil
}

func (u *WorkOrderUseCase) buildWorkOrder(orgID string, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	services := entities.CleanServices(in.Services)
	if len(services) == 0 {
		return entities.WorkOrder{}, fmt.Errorf("%w: at least one service is required", ErrInvalidWorkOrderInput)
	}
	if strings.TrimSpace(in.Customer.Name) == "" {
		return entities.WorkOrder{}, fmt.Errorf("%w: customer name is required", ErrInvalidWorkOrderInput)
	}
	if strings.TrimSpace(in.Vehicle.Plate) == "" {
		return entities.WorkOrder{}, fmt.Errorf("%w: vehicle plate is required", ErrInvalidWorkOrderInput)
	}
	priority, err := entities.ParsePriority(string(in.Priority))
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrInvalidWorkOrderInput, err)
	}
	if in.Estimate != nil && *in.Estimate < 0 {
		return entities.WorkOrder{}, fmt.Errorf("%w: estimate cannot be negative", ErrInvalidWorkOrderInput)
	}

	now := u.now().UTC()
	checkin := strings.TrimSpace(in.CheckinDate)
	if checkin == "" {
		checkin = now.Format(entities.CheckinDateLayout)
	} else if _, err := time.Parse(entities.CheckinDateLayout, checkin); err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: checkin_date must be YYYY-MM-DD", ErrInvalidWorkOrderInput)
	}

	wo := entities.WorkOrder{
		OrgID:        orgID,
		Status:       entities.StatusCheckIn,
		Vehicle:      trimVehicle(in.Vehicle),
		Customer:     trimCustomer(in.Customer),
		CheckinDate:  checkin,
		Services:     services,
		AssignedTech: strings.TrimSpace(in.AssignedTech),
		Priority:     priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Estimate != nil {
		v := *in.Estimate
		wo.Estimate = &v
	}
	return wo, nil
}

func (u *WorkOrderUseCase) Update(ctx context.Context, orgID, id string, patch entities.WorkOrderPatch) (wo entities.WorkOrder, err error) {
	defer func() { u.publish(ctx, entities.OperationUpdate, orgID, id, "", wo, err) }()

	orgID, id, err = normalizeKeys(orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	patch, err = normalizePatch(patch)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	wo, err = u.repo.Update(ctx, orgID, id, patch)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"org_id": orgID, "id": id}).Error("[workorder][usecase] update failed")
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func normalizePatch(p entities.WorkOrderPatch) (entities.WorkOrderPatch, error) {
	if p.IsEmpty() {
		return p, ErrEmptyPatch
	}
	if p.Services != nil {
		p.Services = entities.CleanServices(p.Services)
		if len(p.Services) == 0 {
			return p, fmt.Errorf("%w: at least one service is required", ErrInvalidWorkOrderInput)
		}
	}
	if p.Customer != nil {
		c := trimCustomer(*p.Customer)
		if c.Name == "" {
			return p, fmt.Errorf("%w: customer name is required", ErrInvalidWorkOrderInput)
		}
		p.Customer = &c
	}
	if p.Vehicle != nil {
		v := trimVehicle(*p.Vehicle)
		if v.Plate == "" {
			return p, fmt.Errorf("%w: vehicle plate is required", ErrInvalidWorkOrderInput)
		}
		p.Vehicle = &v
	}
	if p.Priority != nil {
		pr, err := entities.ParsePriority(string(*p.Priority))
		if err != nil {
			return p, fmt.Errorf("%w: %v", ErrInvalidWorkOrderInput, err)
		}
		p.Priority = &pr
	}
	if p.CheckinDate != nil {
		d := strings.TrimSpace(*p.CheckinDate)
		if _, err := time.Parse(entities.CheckinDateLayout, d); err != nil {
			return p, fmt.Errorf("%w: checkin_date must be YYYY-MM-DD", ErrInvalidWorkOrderInput)
		}
		p.CheckinDate = &d
	}
	if p.AssignedTech != nil {
		t := strings.TrimSpace(*p.AssignedTech)
		p.AssignedTech = &t
	}
	if p.Estimate != nil && *p.Estimate < 0 {
		return p, fmt.Errorf("%w: estimate cannot be negative", ErrInvalidWorkOrderInput)
	}
	return p, nil
}

// SetStatus moves an order along the transition graph. Setting the current
// status again is accepted and still written.
func (u *WorkOrderUseCase) SetStatus(ctx context.Context, orgID, id, status string) (wo entities.WorkOrder, err error) {
	var from entities.WorkOrderStatus
	defer func() { u.publish(ctx, entities.OperationStatus, orgID, id, from, wo, err) }()

	orgID, id, err = normalizeKeys(orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	next, err := entities.ParseStatus(status)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	current, err := u.Get(ctx, orgID, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	from = current.Status
	return transitionWorkOrder(ctx, u.repo, orgID, current, next)
}

// transitionWorkOrder validates current.Status -> next against the graph
// before writing anything.
func transitionWorkOrder(ctx context.Context, repo interfaces.IWorkOrderRepository, orgID string, current entities.WorkOrder, next entities.WorkOrderStatus) (entities.WorkOrder, error) {
	if !entities.CanTransition(current.Status, next) {
		log.WithFields(log.Fields{"org_id": orgID, "id": current.ID, "from": current.Status, "to": next}).
			Warn("[workorder][usecase] transition rejected")
		return entities.WorkOrder{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
	}

	updated, err := repo.UpdateStatus(ctx, orgID, current.ID, current.Status, next)
	if errors.Is(err, entities.ErrStatusChanged) {
		log.WithFields(log.Fields{"org_id": orgID, "id": current.ID, "from": current.Status, "to": next}).
			Warn("[workorder][usecase] status changed concurrently")
		return entities.WorkOrder{}, fmt.Errorf("%w: %s is no longer %s", ErrInvalidTransition, current.ID, current.Status)
	}
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"org_id": orgID, "id": current.ID}).Error("[workorder][usecase] status update failed")
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	log.WithFields(log.Fields{"org_id": orgID, "id": updated.ID, "from": current.Status, "to": updated.Status}).
		Info("[workorder][usecase] status changed")
	return updated, nil
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, orgID, id string) (err error) {
	defer func() { u.publish(ctx, entities.OperationDelete, orgID, id, "", entities.WorkOrder{}, err) }()

	orgID, id, err = normalizeKeys(orgID, id)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, orgID, id)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"org_id": orgID, "id": id}).Error("[workorder][usecase] delete failed")
		return err
	}
	if !deleted {
		return ErrWorkOrderNotFound
	}
	log.WithFields(log.Fields{"org_id": orgID, "id": id}).Info("[workorder][usecase] delete success")
	return nil
}

func (u *WorkOrderUseCase) publish(ctx context.Context, op entities.MutationOperation, orgID, id string, from entities.WorkOrderStatus, wo entities.WorkOrder, err error) {
	publishResult(ctx, u.notifier, u.now, op, orgID, id, from, wo, err)
}

// publishResult turns a mutation outcome into a MutationResult and hands it to
// notifier. from is the status the order left, empty when the mutation is not
// a status move. A nil notifier only logs.
func publishResult(ctx context.Context, notifier interfaces.INotifier, now func() time.Time, op entities.MutationOperation, orgID, id string, from entities.WorkOrderStatus, wo entities.WorkOrder, err error) {
	res := entities.MutationResult{
		ID:          uuid.NewString(),
		Operation:   op,
		OrgID:       strings.TrimSpace(orgID),
		WorkOrderID: strings.TrimSpace(id),
		FromStatus:  from,
		OK:          err == nil,
		At:          now().UTC(),
	}
	if actor, ok := entities.ActorFrom(ctx); ok {
		res.Actor = actor.ID
		res.ActorRole = actor.Role
	}
	if wo.ID != "" {
		res.WorkOrderID = wo.ID
		res.Status = wo.Status
	}
	if err != nil {
		res.Reason = err.Error()
	}
	if notifier == nil {
		log.WithFields(log.Fields{"operation": res.Operation, "org_id": res.OrgID, "id": res.WorkOrderID, "ok": res.OK, "actor": res.Actor}).
			Debug("[workorder][usecase] mutation result")
		return
	}
	notifier.Notify(ctx, res)
}

func normalizeKeys(orgID, id string) (string, string, error) {
	orgID = strings.TrimSpace(orgID)
	id = strings.TrimSpace(id)
	if orgID == "" {
		return orgID, id, ErrInvalidOrgID
	}
	if id == "" {
		return orgID, id, ErrInvalidWorkOrderID
	}
	return orgID, id, nil
}

func trimVehicle(v entities.VehicleSnapshot) entities.VehicleSnapshot {
	return entities.VehicleSnapshot{
		Make:  strings.TrimSpace(v.Make),
		Model: strings.TrimSpace(v.Model),
		Year:  v.Year,
		Plate: strings.TrimSpace(v.Plate),
	}
}

func trimCustomer(c entities.CustomerSnapshot) entities.CustomerSnapshot {
	return entities.CustomerSnapshot{
		Name:  strings.TrimSpace(c.Name),
		Phone: strings.TrimSpace(c.Phone),
	}
}
