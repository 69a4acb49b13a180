package routes

import (
	"mass_oss/internal/adapter/http/handlers"
	"mass_oss/internal/adapter/http/middleware"
	"mass_oss/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathStatuses   = "/statuses"
	PathOrg        = "/orgs/:org_id"
	PathWorkOrders = "/work-orders"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, tokens middleware.ITokenValidator, h *handlers.WorkOrderHandler, estimateHandler *handlers.EstimateHandler) {
	rg.GET(PathStatuses, h.ListStatuses)

	workOrders := rg.Group(PathOrg+PathWorkOrders, middleware.Authenticate(tokens), middleware.RequireOrgAccess())
	{
		view := middleware.RequirePermission(entities.PermWorkOrdersView)
		edit := middleware.RequirePermission(entities.PermWorkOrdersEdit)

		workOrders.GET("", view, h.ListWorkOrders)
		workOrders.GET("/stream", view, h.StreamWorkOrders)
		workOrders.POST("", middleware.RequirePermission(entities.PermWorkOrdersCreate), h.CreateWorkOrder)
		workOrders.GET("/:id", view, h.GetWorkOrder)
		workOrders.PATCH("/:id", edit, h.UpdateWorkOrder)
		workOrders.PATCH("/:id/status", edit, h.UpdateStatus)
		workOrders.DELETE("/:id", middleware.RequirePermission(entities.PermWorkOrdersDelete), h.DeleteWorkOrder)

		price := middleware.RequirePermission(entities.PermEstimatesCreate)
		approve := middleware.RequirePermission(entities.PermEstimatesApprove)

		workOrders.POST("/:id/estimate", price, estimateHandler.CreateEstimate)
		workOrders.PATCH("/:id/estimate", price, estimateHandler.UpdateEstimate)
		workOrders.PATCH("/:id/estimate/approve", approve, estimateHandler.ApproveEstimate)
		workOrders.PATCH("/:id/estimate/reject", approve, estimateHandler.RejectEstimate)
	}
}
