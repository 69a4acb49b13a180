package request

import (
	"strings"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase"
)

type VehicleRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year" binding:"gte=0"`
	Plate string `json:"plate" binding:"required"`
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type CreateWorkOrderRequest struct {
	Vehicle      VehicleRequest  `json:"vehicle" binding:"required"`
	Customer     CustomerRequest `json:"customer" binding:"required"`
	CheckinDate  string          `json:"checkin_date"`
	Services     []string        `json:"services" binding:"required,min=1"`
	AssignedTech string          `json:"assigned_tech"`
	Priority     string          `json:"priority"`
	Estimate     *float64        `json:"estimate"`
}

func (v VehicleRequest) toSnapshot() entities.VehicleSnapshot {
	return entities.VehicleSnapshot{Make: v.Make, Model: v.Model, Year: v.Year, Plate: v.Plate}
}

func (c CustomerRequest) toSnapshot() entities.CustomerSnapshot {
	return entities.CustomerSnapshot{Name: c.Name, Phone: c.Phone}
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		Vehicle:      r.Vehicle.toSnapshot(),
		Customer:     r.Customer.toSnapshot(),
		CheckinDate:  r.CheckinDate,
		Services:     r.Services,
		AssignedTech: r.AssignedTech,
		Priority:     entities.Priority(r.Priority),
		Estimate:     r.Estimate,
	}
}

// PatchWorkOrderRequest carries a partial update. Absent fields stay as they
// are; an explicit empty services list is rejected downstream.
type PatchWorkOrderRequest struct {
	Vehicle      *VehicleRequest  `json:"vehicle"`
	Customer     *CustomerRequest `json:"customer"`
	CheckinDate  *string          `json:"checkin_date"`
	Services     []string         `json:"services"`
	AssignedTech *string          `json:"assigned_tech"`
	Priority     *string          `json:"priority"`
	Estimate     *float64         `json:"estimate"`
}

func (r PatchWorkOrderRequest) ToPatch() entities.WorkOrderPatch {
	p := entities.WorkOrderPatch{
		CheckinDate:  r.CheckinDate,
		Services:     r.Services,
		AssignedTech: r.AssignedTech,
		Estimate:     r.Estimate,
	}
	if r.Vehicle != nil {
		v := r.Vehicle.toSnapshot()
		p.Vehicle = &v
	}
	if r.Customer != nil {
		c := r.Customer.toSnapshot()
		p.Customer = &c
	}
	if r.Priority != nil {
		pr := entities.Priority(*r.Priority)
		p.Priority = &pr
	}
	return p
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListQuery is the board's query string.
type ListQuery struct {
	Query    string `form:"q"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (q ListQuery) Filter() entities.WorkOrderFilter {
	return entities.WorkOrderFilter{Query: strings.TrimSpace(q.Query), Status: q.Status}
}

func (q ListQuery) PageRequest() entities.PageRequest {
	return entities.PageRequest{Page: q.Page, PageSize: q.PageSize}
}
