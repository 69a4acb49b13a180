package entities

import (
	"errors"
)

var ErrInvalidPage = errors.New("invalid page")

// PageSizes are the page sizes offered by the board footer. A zero page size
// shows every matching order on a single page.
var PageSizes = []int{10, 25, 50}

type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return ErrInvalidPage
	}
	if p.PageSize == 0 {
		return nil
	}
	for _, s := range PageSizes {
		if p.PageSize == s {
			return nil
		}
	}
	return ErrInvalidPage
}

// StatusCount is one board tab: a status and how many orders sit in it.
type StatusCount struct {
	StatusDescriptor
	Count int `json:"count"`
}

// Board is the derived view over one org's store.
//
// Total and StatusCounts describe the whole store; Matched is the number of
// orders passing the filter and Orders is the requested page of those. From
// and To are 1-based positions within the matched set ("Showing 1 to 10 of
// 23"), both zero when nothing matched.
type Board struct {
	Orders       []WorkOrder
	Total        int
	Matched      int
	StatusCounts []StatusCount
	Page         int
	PageSize     int
	From         int
	To           int
}

// BuildBoard filters orders with f and slices the requested page. Store order
// is preserved.
func BuildBoard(orders []WorkOrder, f WorkOrderFilter, p PageRequest) Board {
	counts := make(map[WorkOrderStatus]int, len(statusRegistry))
	for _, o := range orders {
		counts[o.Status]++
	}
	tabs := make([]StatusCount, 0, len(statusRegistry))
	for _, d := range statusRegistry {
		tabs = append(tabs, StatusCount{StatusDescriptor: d, Count: counts[d.Key]})
	}

	matched := FilterWorkOrders(orders, f)

	page := p.Page
	if page < 1 {
		page = 1
	}
	start, end := 0, len(matched)
	if p.PageSize > 0 {
		start = (page - 1) * p.PageSize
		if start > len(matched) {
			start = len(matched)
		}
		end = start + p.PageSize
		if end > len(matched) {
			end = len(matched)
		}
	}

	b := Board{
		Orders:       matched[start:end],
		Total:        len(orders),
		Matched:      len(matched),
		StatusCounts: tabs,
		Page:         page,
		PageSize:     p.PageSize,
	}
	if end > start {
		b.From = start + 1
		b.To = end
	}
	return b
}
