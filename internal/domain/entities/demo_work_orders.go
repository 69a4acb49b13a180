package entities

import "time"

// DemoWorkOrders returns the sample jobs every demo shop starts with, in board
// order. CreatedAt decreases down the list so a newest-first store keeps the
// same order.
func DemoWorkOrders(orgID string, now time.Time) []WorkOrder {
	est := func(v float64) *float64 { return &v }

	orders := []WorkOrder{
		{
			ID:           "WO-001",
			Status:       StatusCheckIn,
			Vehicle:      VehicleSnapshot{Make: "Toyota", Model: "Camry", Year: 2020, Plate: "ABC-1234"},
			Customer:     CustomerSnapshot{Name: "Ahmed Hassan", Phone: "+252-63-4567890"},
			CheckinDate:  "2024-12-26",
			Services:     []string{"Oil Change", "Brake Inspection"},
			AssignedTech: "Mohamed Ali",
			Priority:     PriorityNormal,
		},
		{
			ID:           "WO-002",
			Status:       StatusInspecting,
			Vehicle:      VehicleSnapshot{Make: "Honda", Model: "Civic", Year: 2019, Plate: "XYZ-5678"},
			Customer:     CustomerSnapshot{Name: "Fatima Omar", Phone: "+252-63-7890123"},
			CheckinDate:  "2024-12-25",
			Services:     []string{"Full Service", "A/C Repair"},
			AssignedTech: "Abdi Kareem",
			Priority:     PriorityHigh,
		},
		{
			ID:           "WO-003",
			Status:       StatusInProgress,
			Vehicle:      VehicleSnapshot{Make: "Nissan", Model: "Patrol", Year: 2021, Plate: "DEF-9012"},
			Customer:     CustomerSnapshot{Name: "Said Ibrahim", Phone: "+252-63-2345678"},
			CheckinDate:  "2024-12-24",
			Services:     []string{"Engine Diagnostics", "Transmission Service"},
			AssignedTech: "Mohamed Ali",
			Priority:     PriorityUrgent,
			Estimate:     est(4500),
		},
		{
			ID:           "WO-004",
			Status:       StatusAwaitingApproval,
			Vehicle:      VehicleSnapshot{Make: "Toyota", Model: "Land Cruiser", Year: 2018, Plate: "GHI-3456"},
			Customer:     CustomerSnapshot{Name: "Khadija Jama", Phone: "+252-63-5678901"},
			CheckinDate:  "2024-12-25",
			Services:     []string{"Brake Replacement", "Tire Alignment"},
			AssignedTech: "Abdi Kareem",
			Priority:     PriorityNormal,
			Estimate:     est(2800),
		},
		{
			ID:           "WO-005",
			Status:       StatusComplete,
			Vehicle:      VehicleSnapshot{Make: "Hyundai", Model: "Elantra", Year: 2022, Plate: "JKL-7890"},
			Customer:     CustomerSnapshot{Name: "Ali Yusuf", Phone: "+252-63-8901234"},
			CheckinDate:  "2024-12-24",
			Services:     []string{"Oil Change", "Filter Replacement"},
			AssignedTech: "Mohamed Ali",
			Priority:     PriorityNormal,
			Estimate:     est(850),
		},
	}

	for i := range orders {
		ts := now.Add(-time.Duration(i) * time.Second)
		orders[i].OrgID = orgID
		orders[i].CreatedAt = ts
		orders[i].UpdatedAt = ts
	}
	return orders
}
