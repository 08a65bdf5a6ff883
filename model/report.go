package model

// SalesReport is the backend's authoritative revenue aggregate.
type SalesReport struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int     `json:"total_orders"`
}

// PropertyReport is the backend's per-property occupancy aggregate.
type PropertyReport struct {
	TotalProperties int `json:"total_properties"`
	TotalRooms      int `json:"total_rooms"`
	OccupiedRooms   int `json:"occupied_rooms"`
}
