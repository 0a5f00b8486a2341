package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusAssigned  OrderStatus = "ASSIGNED"
	OrderStatusAccepted  OrderStatus = "ACCEPTED"
	OrderStatusPickedUp  OrderStatus = "PICKED_UP"
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAssigned, OrderStatusAccepted, OrderStatusPickedUp,
		OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsActive заказ в работе у водителя.
func (s OrderStatus) IsActive() bool {
	switch s {
	case OrderStatusAssigned, OrderStatusAccepted, OrderStatusPickedUp, OrderStatusInTransit:
		return true
	}
	return false
}

type Order struct {
	ID              int64           `json:"id"`
	Status          OrderStatus     `json:"status"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	DeliveryAddress string          `json:"delivery_address"`
	RestaurantID    *int64          `json:"restaurant_id,omitempty"`
	RestaurantName  string          `json:"restaurant_name"`
	DriverID        *int64          `json:"driver_id,omitempty"`
	DriverName      *string         `json:"driver_name,omitempty"`
	OrderTotal      decimal.Decimal `json:"order_total"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	OTP             *string         `json:"otp,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Amount сумма заказа: backend отдаёт её то в order_total, то в total_amount.
func (o Order) Amount() decimal.Decimal {
	if !o.TotalAmount.IsZero() {
		return o.TotalAmount
	}
	return o.OrderTotal
}

type OrderFilter struct {
	Status OrderStatus
}

type OrderItem struct {
	Name     string          `json:"name" validate:"required"`
	Quantity int             `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal `json:"price"`
}

type OrderCreate struct {
	CustomerName        string          `json:"customer_name" validate:"required"`
	CustomerPhone       string          `json:"customer_phone" validate:"required"`
	DeliveryAddress     string          `json:"delivery_address" validate:"required"`
	DeliveryLat         float64         `json:"delivery_lat"`
	DeliveryLng         float64         `json:"delivery_lng"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	RestaurantID        int64           `json:"restaurant_id"`
	Items               []OrderItem     `json:"items" validate:"dive"`
	OrderTotal          decimal.Decimal `json:"order_total"`
}

// Значения тестового заказа по умолчанию (центр Дели, одна позиция).
const (
	DefaultTestOrderLat          = 28.6139
	DefaultTestOrderLng          = 77.2090
	DefaultTestOrderRestaurantID = 1
)

// WithTestDefaults заполняет незаданные поля тестового заказа.
func (c OrderCreate) WithTestDefaults() OrderCreate {
	if c.DeliveryLat == 0 && c.DeliveryLng == 0 {
		c.DeliveryLat = DefaultTestOrderLat
		c.DeliveryLng = DefaultTestOrderLng
	}
	if c.RestaurantID == 0 {
		c.RestaurantID = DefaultTestOrderRestaurantID
	}
	if len(c.Items) == 0 {
		c.Items = []OrderItem{{Name: "Sample Item", Quantity: 1, Price: decimal.NewFromInt(100)}}
	}
	if c.OrderTotal.IsZero() {
		c.OrderTotal = SumMoney(c.Items, func(i OrderItem) decimal.Decimal {
			return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
		})
	}
	return c
}

// DefaultDriverEarnings выплата водителю за заказ по умолчанию.
var DefaultDriverEarnings = decimal.NewFromInt(50)

type OrderAssignment struct {
	DriverID       int64           `json:"driver_id"`
	DriverEarnings decimal.Decimal `json:"driver_earnings"`
}
