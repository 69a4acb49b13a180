package response

import (
	"time"

	"mass_oss/internal/domain/entities"
)

type VehicleResponse struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Plate string `json:"plate"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type WorkOrderResponse struct {
	ID                string           `json:"id"`
	OrgID             string           `json:"org_id"`
	Status            string           `json:"status"`
	StatusLabel       string           `json:"status_label"`
	StatusColor       string           `json:"status_color"`
	Vehicle           VehicleResponse  `json:"vehicle"`
	Customer          CustomerResponse `json:"customer"`
	CheckinDate       string           `json:"checkin_date"`
	Services          []string         `json:"services"`
	AssignedTech      string           `json:"assigned_tech"`
	Priority          string           `json:"priority"`
	Estimate          *float64         `json:"estimate"`
	AllowedNextStates []string         `json:"allowed_next_states,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	info, _ := entities.StatusInfo(o.Status)
	services := o.Services
	if services == nil {
		services = []string{}
	}
	return WorkOrderResponse{
		ID:          o.ID,
		OrgID:       o.OrgID,
		Status:      string(o.Status),
		StatusLabel: info.Label,
		StatusColor: info.Color,
		Vehicle: VehicleResponse{
			Make:  o.Vehicle.Make,
			Model: o.Vehicle.Model,
			Year:  o.Vehicle.Year,
			Plate: o.Vehicle.Plate,
		},
		Customer:     CustomerResponse{Name: o.Customer.Name, Phone: o.Customer.Phone},
		CheckinDate:  o.CheckinDate,
		Services:     services,
		AssignedTech: o.AssignedTech,
		Priority:     string(o.Priority),
		Estimate:     o.Estimate,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// WithNextStates attaches the statuses the order may move to.
func (r WorkOrderResponse) WithNextStates(next []entities.WorkOrderStatus) WorkOrderResponse {
	r.AllowedNextStates = statusKeys(next)
	return r
}

func statusKeys(ss []entities.WorkOrderStatus) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, string(s))
	}
	return out
}

// MutationResponse is the body of every write endpoint.
type MutationResponse struct {
	OK        bool               `json:"ok"`
	Message   string             `json:"message"`
	WorkOrder *WorkOrderResponse `json:"work_order,omitempty"`
}

func Mutation(message string, o *entities.WorkOrder) MutationResponse {
	res := MutationResponse{OK: true, Message: message}
	if o != nil {
		wo := FromWorkOrder(*o)
		res.WorkOrder = &wo
	}
	return res
}
