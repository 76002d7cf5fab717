package entities

// DashboardStats aggregates the admin landing-page counters.
type DashboardStats struct {
	TotalCustomers int
	TotalProducts  int
	TotalOrders    int
	// OpenShipments counts shipments that are not delivered or confirmed yet.
	OpenShipments   int
	CustomersByKind map[AccountKind]int
	OrdersByStatus  map[OrderStatus]int
}
