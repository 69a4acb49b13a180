package entities

import "time"

type MutationOperation string

const (
	OperationCreate   MutationOperation = "create"
	OperationUpdate   MutationOperation = "update"
	OperationStatus   MutationOperation = "status"
	OperationDelete   MutationOperation = "delete"
	OperationEstimate MutationOperation = "estimate"
)

// MutationResult is the outcome of one mutation, published on success and on
// failure alike. Reason is empty when OK is true. FromStatus is set on status
// moves; Actor and ActorRole name the caller when one is known.
type MutationResult struct {
	ID          string            `json:"id"`
	Operation   MutationOperation `json:"operation"`
	OrgID       string            `json:"org_id"`
	WorkOrderID string            `json:"work_order_id,omitempty"`
	FromStatus  WorkOrderStatus   `json:"from_status,omitempty"`
	Status      WorkOrderStatus   `json:"status,omitempty"`
	Actor       string            `json:"actor,omitempty"`
	ActorRole   Role              `json:"actor_role,omitempty"`
	OK          bool              `json:"ok"`
	Reason      string            `json:"reason,omitempty"`
	At          time.Time         `json:"at"`
}
