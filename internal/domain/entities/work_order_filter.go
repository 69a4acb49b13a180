package entities

import "strings"

// WorkOrderFilter is the board search state: free text plus a status tab.
// An empty Status behaves like StatusFilterAll.
type WorkOrderFilter struct {
	Query  string
	Status string
}

func (f WorkOrderFilter) Matches(o WorkOrder) bool {
	if f.Status != "" && f.Status != StatusFilterAll && string(o.Status) != f.Status {
		return false
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.Customer.Name), q) ||
		strings.Contains(strings.ToLower(o.Vehicle.Plate), q)
}

// FilterWorkOrders returns the orders matching f in store order. The input
// slice is never modified.
func FilterWorkOrders(orders []WorkOrder, f WorkOrderFilter) []WorkOrder {
	out := make([]WorkOrder, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}
