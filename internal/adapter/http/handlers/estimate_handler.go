package handlers

import (
	"context"
	"errors"
	"net/http"

	request "mass_oss/internal/adapter/http/dto/request"
	response "mass_oss/internal/adapter/http/dto/response"
	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase"
	"mass_oss/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles the customer-approval steps of a work order.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate prices the job and sends it for customer approval.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	h.priceByRequest(c, http.StatusCreated, h.usecase.CalculateEstimate)
}

// UpdateEstimate re-prices the job without moving it.
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	h.priceByRequest(c, http.StatusOK, h.usecase.UpdateEstimatePrice)
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Approve)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Reject)
}

func (h *EstimateHandler) priceByRequest(
	c *gin.Context,
	status int,
	pricer func(ctx context.Context, orgID, id string, price float64) (entities.WorkOrder, error),
) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	wo, err := pricer(c.Request.Context(), c.Param("org_id"), c.Param("id"), price)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(status, response.FromEstimate(wo))
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, orgID, id string) (entities.WorkOrder, error),
) {
	wo, err := updater(c.Request.Context(), c.Param("org_id"), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(wo))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateVal):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Estimate must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotPending):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_PENDING", "Work order is not awaiting approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateMissing):
		return pkg.NewDomainErrorSimple("ESTIMATE_MISSING", "Work order has no estimate", http.StatusConflict)
	default:
		return mapWorkOrderError(err)
	}
}
