package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrWorkOrderExists = errors.New("work order id already exists")

// CheckinDateLayout is the calendar-date format used for CheckinDate.
const CheckinDateLayout = "2006-01-02"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return p, nil
	case "":
		return PriorityNormal, nil
	default:
		return "", fmt.Errorf("unknown priority: %s", s)
	}
}

// VehicleSnapshot is copied into the work order at check-in and has no
// lifecycle of its own.
type VehicleSnapshot struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Plate string `json:"plate"`
}

// CustomerSnapshot is copied into the work order at check-in.
type CustomerSnapshot struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// WorkOrder is a single vehicle-service job tracked from check-in through
// invoicing.
//
// Storage model (DynamoDB):
//   - PK: org_id
//   - SK: id (display id, e.g. "WO-001")
//
// Services keeps insertion order and may contain duplicates.
type WorkOrder struct {
	ID           string           `json:"id"`
	OrgID        string           `json:"org_id"`
	Status       WorkOrderStatus  `json:"status"`
	Vehicle      VehicleSnapshot  `json:"vehicle"`
	Customer     CustomerSnapshot `json:"customer"`
	CheckinDate  string           `json:"checkin_date"`
	Services     []string         `json:"services"`
	AssignedTech string           `json:"assigned_tech"`
	Priority     Priority         `json:"priority"`
	Estimate     *float64         `json:"estimate,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with o.
func (o WorkOrder) Clone() WorkOrder {
	c := o
	if o.Services != nil {
		c.Services = append([]string(nil), o.Services...)
	}
	if o.Estimate != nil {
		v := *o.Estimate
		c.Estimate = &v
	}
	return c
}

// WorkOrderPatch carries the editable fields of a work order. Nil fields are
// left untouched. Status is changed only through the status transition path.
type WorkOrderPatch struct {
	Vehicle      *VehicleSnapshot
	Customer     *CustomerSnapshot
	CheckinDate  *string
	Services     []string
	AssignedTech *string
	Priority     *Priority
	Estimate     *float64
}

func (p WorkOrderPatch) IsEmpty() bool {
	return p.Vehicle == nil && p.Customer == nil && p.CheckinDate == nil && p.Services == nil &&
		p.AssignedTech == nil && p.Priority == nil && p.Estimate == nil
}

// Apply returns o with the patch applied; o itself is not modified.
func (p WorkOrderPatch) Apply(o WorkOrder) WorkOrder {
	out := o.Clone()
	if p.Vehicle != nil {
		out.Vehicle = *p.Vehicle
	}
	if p.Customer != nil {
		out.Customer = *p.Customer
	}
	if p.CheckinDate != nil {
		out.CheckinDate = *p.CheckinDate
	}
	if p.Services != nil {
		out.Services = append([]string(nil), p.Services...)
	}
	if p.AssignedTech != nil {
		out.AssignedTech = *p.AssignedTech
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Estimate != nil {
		v := *p.Estimate
		out.Estimate = &v
	}
	return out
}

// CleanServices trims every service name and drops blank entries. Duplicates
// are kept.
func CleanServices(services []string) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
