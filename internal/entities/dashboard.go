package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	ActiveOrders  int             `json:"active_orders"`
	PendingOrders int             `json:"pending_orders"`
	OnlineDrivers int             `json:"online_drivers"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type Activity struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	At       time.Time `json:"at"`
}

// OrderUpdate полезная нагрузка события order_update.
type OrderUpdate struct {
	OrderID    int64       `json:"order_id"`
	Status     OrderStatus `json:"status"`
	DriverName *string     `json:"driver_name,omitempty"`
}
