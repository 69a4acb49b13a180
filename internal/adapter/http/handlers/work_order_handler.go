package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	request "mass_oss/internal/adapter/http/dto/request"
	response "mass_oss/internal/adapter/http/dto/response"
	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase"
	"mass_oss/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const IdempotencyKeyHeader = "Idempotency-Key"

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
	errInvalidStatusPayload    = pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status payload", http.StatusBadRequest)
	errInvalidQuery            = pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid query parameters", http.StatusBadRequest)
	errStreamUnavailable       = pkg.NewDomainErrorSimple("STREAM_UNAVAILABLE", "Live updates are not enabled", http.StatusServiceUnavailable)
)

// IEventSource hands out live mutation results for one org.

type IEventSource interface {
	Subscribe(orgID string) (<-chan entities.MutationResult, func())
}

// WorkOrderHandler serves the work order board and its mutations.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
	events  IEventSource
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, events IEventSource) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, events: events}
}

// ListStatuses returns the status registry in board order.
func (h *WorkOrderHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatuses(entities.StatusRegistry()))
}

// ListWorkOrders returns the board: filtered page, totals and per-status counts.
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	board, err := h.usecase.List(c.Request.Context(), c.Param("org_id"), q.Filter(), q.PageRequest())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromBoard(board))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.Get(c.Request.Context(), c.Param("org_id"), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo).WithNextStates(entities.AllowedNextStates(wo.Status)))
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.Create(c.Request.Context(), c.Param("org_id"), payload.ToInput(), c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Mutation("Work order created", &wo))
}

func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	var payload request.PatchWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.Update(c.Request.Context(), c.Param("org_id"), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.Mutation("Work order updated", &wo))
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.SetStatus(c.Request.Context(), c.Param("org_id"), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}

	info, _ := entities.StatusInfo(wo.Status)
	c.JSON(http.StatusOK, response.Mutation(fmt.Sprintf("Status updated to %s", info.Label), &wo))
}

func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("org_id"), c.Param("id")); err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}

	c.JSON(http.StatusOK, response.Mutation("Work order deleted", nil))
}

// StreamWorkOrders sends the org's board as a server-sent "board" event on
// connect, then every mutation result as a "mutation" event followed by the
// refreshed board, until the client goes away.
func (h *WorkOrderHandler) StreamWorkOrders(c *gin.Context) {
	if h.events == nil {
		c.JSON(errStreamUnavailable.HTTPStatus, errStreamUnavailable.ToHTTPError())
		return
	}

	orgID := c.Param("org_id")
	ctx := c.Request.Context()
	board, err := h.usecase.List(ctx, orgID, entities.WorkOrderFilter{}, entities.PageRequest{})
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}

	ch, unsubscribe := h.events.Subscribe(orgID)
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.SSEvent("board", response.FromBoard(board))
	c.Writer.Flush()

	log.WithField("org_id", orgID).Debug("[workorder][http] stream opened")
	for {
		select {
		case <-ctx.Done():
			log.WithField("org_id", orgID).Debug("[workorder][http] stream closed")
			return
		case res, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent("mutation", res)
			if board, err := h.usecase.List(ctx, orgID, entities.WorkOrderFilter{}, entities.PageRequest{}); err != nil {
				log.WithError(err).WithField("org_id", orgID).Warn("[workorder][http] stream board refresh failed")
			} else {
				c.SSEvent("board", response.FromBoard(board))
			}
			c.Writer.Flush()
		}
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithError(appErr.Err).WithField("path", c.FullPath()).Error("[workorder][http] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrgID), errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWorkOrderInput):
		return pkg.NewDomainError("INVALID_WORK_ORDER_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyPatch):
		return pkg.NewDomainErrorSimple("EMPTY_PATCH", "Nothing to update", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_STATUS", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFilter):
		return pkg.NewDomainError("INVALID_FILTER", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrWorkOrderExists):
		return pkg.NewDomainErrorSimple("WORK_ORDER_EXISTS", "A work order with this id already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateRequest):
		return pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "This request was already processed", http.StatusConflict)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REMOTE_TIMEOUT", "The work order store did not respond in time", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
