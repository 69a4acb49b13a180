package request

import (
	"errors"
)

var (
	ErrInvalidEstimateValue = errors.New("invalid estimate value")
)

type PartsSupplyRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
}

type ServiceRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
}

// EstimateRequest prices a job either with an explicit total or with the
// itemised services and parts it needs.
type EstimateRequest struct {
	Price         *float64             `json:"price"`
	Services      []ServiceRequest     `json:"services"`
	PartsSupplies []PartsSupplyRequest `json:"parts_supplies"`
}

// ResolvePrice prefers an explicit positive price and otherwise sums the
// valid line items.
func (r EstimateRequest) ResolvePrice() (float64, error) {
	if r.Price != nil {
		if *r.Price > 0 {
			return *r.Price, nil
		}
		return 0, ErrInvalidEstimateValue
	}

	totalFromItems := 0.0
	for _, s := range r.Services {
		if s.Price > 0 {
			totalFromItems += s.Price
		}
	}
	for _, p := range r.PartsSupplies {
		if p.Price > 0 && p.Quantity > 0 {
			totalFromItems += p.Price * float64(p.Quantity)
		}
	}
	if totalFromItems > 0 {
		return totalFromItems, nil
	}

	return 0, ErrInvalidEstimateValue
}
