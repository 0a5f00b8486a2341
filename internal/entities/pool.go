package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PoolStatus string

const (
	PoolStatusOpen       PoolStatus = "OPEN"
	PoolStatusClosed     PoolStatus = "CLOSED"
	PoolStatusSynced     PoolStatus = "SYNCED"
	PoolStatusAssigned   PoolStatus = "ASSIGNED"
	PoolStatusInProgress PoolStatus = "IN_PROGRESS"
	PoolStatusCompleted  PoolStatus = "COMPLETED"
)

type Pool struct {
	PoolID          int64           `json:"pool_id"`
	ExternalPoolID  *string         `json:"external_pool_id,omitempty"`
	Status          PoolStatus      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	SyncedAt        *time.Time      `json:"synced_at,omitempty"`
	TotalOrders     int             `json:"total_orders"`
	TotalValue      decimal.Decimal `json:"total_value"`
	PendingOrders   int             `json:"pending_orders"`
	AssignedOrders  int             `json:"assigned_orders"`
	DeliveredOrders int             `json:"delivered_orders"`
	RestaurantCount int             `json:"restaurant_count"`
}

type PoolFilter struct {
	Status PoolStatus
}

type PickupStop struct {
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	OrderIDs     []int64 `json:"order_ids"`
}

type DeliveryStop struct {
	OrderID          int64   `json:"order_id"`
	CustomerName     string  `json:"customer_name"`
	Address          string  `json:"address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	DistanceFromPrev float64 `json:"distance_from_prev"`
}

// DriverGroup часть пула с рассчитанным backend маршрутом для одного водителя.
type DriverGroup struct {
	GroupID              int64           `json:"group_id"`
	DriverID             *int64          `json:"driver_id"`
	OrderIDs             []int64         `json:"order_ids"`
	RestaurantIDs        []int64         `json:"restaurant_ids"`
	CenterLat            float64         `json:"center_lat"`
	CenterLng            float64         `json:"center_lng"`
	RadiusKm             float64         `json:"radius_km"`
	PickupSequence       []PickupStop    `json:"pickup_sequence"`
	DeliverySequence     []DeliveryStop  `json:"delivery_sequence"`
	TotalDistanceKm      float64         `json:"total_distance_km"`
	EstimatedTimeMinutes float64         `json:"estimated_time_minutes"`
	TotalOrderValue      decimal.Decimal `json:"total_order_value"`
	DriverEarnings       decimal.Decimal `json:"driver_earnings"`
}

type PoolDetail struct {
	Pool
	UniqueRestaurants  int           `json:"unique_restaurants"`
	CenterLat          float64       `json:"center_lat"`
	CenterLng          float64       `json:"center_lng"`
	RadiusKm           float64       `json:"radius_km"`
	DriverGroups       []DriverGroup `json:"driver_groups"`
	TotalDriversNeeded int           `json:"total_drivers_needed"`
	AssignedDrivers    int           `json:"assigned_drivers"`
}

// Group возвращает группу по id.
func (p PoolDetail) Group(groupID int64) (DriverGroup, bool) {
	for _, g := range p.DriverGroups {
		if g.GroupID == groupID {
			return g, true
		}
	}
	return DriverGroup{}, false
}

type PoolOrder struct {
	OrderID             int64           `json:"order_id"`
	ExternalOrderID     string          `json:"external_order_id"`
	CustomerName        string          `json:"customer_name"`
	CustomerPhone       string          `json:"customer_phone"`
	RestaurantID        int64           `json:"restaurant_id"`
	RestaurantName      string          `json:"restaurant_name"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	DeliveryAddress     string          `json:"delivery_address"`
	SpecialInstructions *string         `json:"special_instructions,omitempty"`
	Status              OrderStatus     `json:"status"`
	DriverID            *int64          `json:"driver_id,omitempty"`
	DriverName          *string         `json:"driver_name,omitempty"`
	OTP                 *string         `json:"otp,omitempty"`
	AssignedAt          *time.Time      `json:"assigned_at,omitempty"`
	PickedUpAt          *time.Time      `json:"picked_up_at,omitempty"`
	DeliveredAt         *time.Time      `json:"delivered_at,omitempty"`
}

type PoolOrders struct {
	Pool   Pool        `json:"pool"`
	Orders []PoolOrder `json:"orders"`
}

type PoolSyncRequest struct {
	FetchLatest bool `json:"fetch_latest"`
	ForceResync bool `json:"force_resync"`
}

// DefaultPoolSyncRequest свежие заказы без принудительной пересинхронизации.
func DefaultPoolSyncRequest() PoolSyncRequest {
	return PoolSyncRequest{FetchLatest: true}
}

type PoolSyncResult struct {
	Success        bool   `json:"success"`
	OrdersSynced   int    `json:"orders_synced"`
	ExternalPoolID string `json:"external_pool_id,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}

type PoolDriverAssignment struct {
	OrderIDs       []int64          `json:"order_ids"`
	DriverID       int64            `json:"driver_id"`
	DriverEarnings *decimal.Decimal `json:"driver_earnings,omitempty"`
}

type TriggerSyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Details struct {
		Synced  int `json:"synced"`
		Skipped int `json:"skipped"`
		Errors  int `json:"errors"`
	} `json:"details"`
}
