package response

import "mass_oss/internal/domain/entities"

type StatusResponse struct {
	Key               string   `json:"key"`
	Label             string   `json:"label"`
	Color             string   `json:"color"`
	AllowedNextStates []string `json:"allowed_next_states,omitempty"`
}

type StatusCountResponse struct {
	StatusResponse
	Count int `json:"count"`
}

type BoardResponse struct {
	WorkOrders   []WorkOrderResponse   `json:"work_orders"`
	Total        int                   `json:"total"`
	Matched      int                   `json:"matched"`
	StatusCounts []StatusCountResponse `json:"status_counts"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	From         int                   `json:"from"`
	To           int                   `json:"to"`
}

func FromStatus(d entities.StatusDescriptor) StatusResponse {
	return StatusResponse{Key: string(d.Key), Label: d.Label, Color: d.Color}
}

func FromStatuses(ds []entities.StatusDescriptor) []StatusResponse {
	out := make([]StatusResponse, 0, len(ds))
	for _, d := range ds {
		r := FromStatus(d)
		r.AllowedNextStates = statusKeys(entities.AllowedNextStates(d.Key))
		out = append(out, r)
	}
	return out
}

func FromBoard(b entities.Board) BoardResponse {
	orders := make([]WorkOrderResponse, 0, len(b.Orders))
	for _, o := range b.Orders {
		orders = append(orders, FromWorkOrder(o))
	}
	counts := make([]StatusCountResponse, 0, len(b.StatusCounts))
	for _, c := range b.StatusCounts {
		counts = append(counts, StatusCountResponse{StatusResponse: FromStatus(c.StatusDescriptor), Count: c.Count})
	}
	return BoardResponse{
		WorkOrders:   orders,
		Total:        b.Total,
		Matched:      b.Matched,
		StatusCounts: counts,
		Page:         b.Page,
		PageSize:     b.PageSize,
		From:         b.From,
		To:           b.To,
	}
}
