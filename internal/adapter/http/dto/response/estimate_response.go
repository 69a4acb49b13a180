package response

import (
	"time"

	"mass_oss/internal/domain/entities"
)

type EstimateResponse struct {
	WorkOrderID string    `json:"work_order_id"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromEstimate(o entities.WorkOrder) EstimateResponse {
	info, _ := entities.StatusInfo(o.Status)
	res := EstimateResponse{
		WorkOrderID: o.ID,
		Status:      string(o.Status),
		StatusLabel: info.Label,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Estimate != nil {
		res.Price = *o.Estimate
	}
	return res
}
