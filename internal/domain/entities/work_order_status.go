package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStatusChanged is returned by a store when a conditional status write
// finds the order no longer in the expected status.
var ErrStatusChanged = errors.New("status changed by another request")

// WorkOrderStatus is a lifecycle stage of a work order.
type WorkOrderStatus string

const (
	StatusCheckIn          WorkOrderStatus = "check-in"
	StatusInspecting       WorkOrderStatus = "inspecting"
	StatusAwaitingApproval WorkOrderStatus = "awaiting-approval"
	StatusInProgress       WorkOrderStatus = "in-progress"
	StatusWaitingParts     WorkOrderStatus = "waiting-parts"
	StatusComplete         WorkOrderStatus = "complete"
	StatusInvoiced         WorkOrderStatus = "invoiced"
	StatusCancelled        WorkOrderStatus = "cancelled"
)

// StatusFilterAll selects every status when filtering.
const StatusFilterAll = "all"

// StatusDescriptor is the display metadata of a status.
type StatusDescriptor struct {
	Key   WorkOrderStatus `json:"key"`
	Label string          `json:"label"`
	Color string          `json:"color"`
}

var statusRegistry = []StatusDescriptor{
	{Key: StatusCheckIn, Label: "Check-In", Color: "blue"},
	{Key: StatusInspecting, Label: "Inspecting", Color: "yellow"},
	{Key: StatusAwaitingApproval, Label: "Awaiting Approval", Color: "orange"},
	{Key: StatusInProgress, Label: "In Progress", Color: "purple"},
	{Key: StatusWaitingParts, Label: "Waiting Parts", Color: "amber"},
	{Key: StatusComplete, Label: "Complete", Color: "green"},
	{Key: StatusInvoiced, Label: "Invoiced", Color: "teal"},
	{Key: StatusCancelled, Label: "Cancelled", Color: "red"},
}

// transitions lists the legal successors of every status. Staying on the same
// status is always legal and is not listed here.
var transitions = map[WorkOrderStatus][]WorkOrderStatus{
	StatusCheckIn:          {StatusInspecting, StatusCancelled},
	StatusInspecting:       {StatusAwaitingApproval, StatusInProgress, StatusCancelled},
	StatusAwaitingApproval: {StatusInProgress, StatusInspecting, StatusCancelled},
	StatusInProgress:       {StatusWaitingParts, StatusComplete, StatusCancelled},
	StatusWaitingParts:     {StatusInProgress, StatusCancelled},
	StatusComplete:         {StatusInvoiced, StatusInProgress},
	StatusInvoiced:         {},
	StatusCancelled:        {},
}

// StatusRegistry returns the registry in board-column order.
func StatusRegistry() []StatusDescriptor {
	return append([]StatusDescriptor(nil), statusRegistry...)
}

func StatusInfo(s WorkOrderStatus) (StatusDescriptor, bool) {
	for _, d := range statusRegistry {
		if d.Key == s {
			return d, true
		}
	}
	return StatusDescriptor{}, false
}

func (s WorkOrderStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s WorkOrderStatus) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func ParseStatus(s string) (WorkOrderStatus, error) {
	st := WorkOrderStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("unknown status: %s", s)
	}
	return st, nil
}

// AllowedNextStates returns the statuses current may move to, excluding
// current itself. Unknown statuses have no successors.
func AllowedNextStates(current WorkOrderStatus) []WorkOrderStatus {
	return append([]WorkOrderStatus(nil), transitions[current]...)
}

// CanTransition reports whether from -> to is legal. A same-status move is
// legal for every known status.
func CanTransition(from, to WorkOrderStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
