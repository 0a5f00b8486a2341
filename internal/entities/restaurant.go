package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type RestaurantEarningSummary struct {
	RestaurantID         int64            `json:"restaurant_id"`
	RestaurantName       string           `json:"restaurant_name"`
	RestaurantPhone      *string          `json:"restaurant_phone,omitempty"`
	RestaurantEmail      *string          `json:"restaurant_email,omitempty"`
	CommissionRate       decimal.Decimal  `json:"commission_rate"`
	TotalPendingEarnings decimal.Decimal  `json:"total_pending_earnings"`
	TotalPaidEarnings    decimal.Decimal  `json:"total_paid_earnings"`
	TotalCommission      decimal.Decimal  `json:"total_commission"`
	PendingOrders        int              `json:"pending_orders"`
	TotalOrders          int              `json:"total_orders"`
	TotalOrderValue      decimal.Decimal  `json:"total_order_value"`
	LifetimeEarnings     decimal.Decimal  `json:"lifetime_earnings"`
	AvgEarningsPerOrder  decimal.Decimal  `json:"avg_earnings_per_order"`
	HasBankDetails       bool             `json:"has_bank_details"`
	LastPaymentDate      *time.Time       `json:"last_payment_date,omitempty"`
	LastPaymentAmount    *decimal.Decimal `json:"last_payment_amount,omitempty"`
	BankDetails
}

type RestaurantEarningStats struct {
	TotalPendingAmount      decimal.Decimal `json:"total_pending_amount"`
	TotalRestaurantsPending int             `json:"total_restaurants_pending"`
	TotalPaidThisMonth      decimal.Decimal `json:"total_paid_this_month"`
	TotalCommissionEarned   decimal.Decimal `json:"total_commission_earned"`
	NextPayoutDate          *time.Time      `json:"next_payout_date,omitempty"`
	CurrentCycleName        string          `json:"current_cycle_name"`
}

type RestaurantEarning struct {
	ID                 int64            `json:"id"`
	OrderID            int64            `json:"order_id"`
	OrderStatus        *OrderStatus     `json:"order_status,omitempty"`
	OrderTotal         decimal.Decimal  `json:"order_total"`
	FoodValue          *decimal.Decimal `json:"food_value,omitempty"`
	DeliveryFee        *decimal.Decimal `json:"delivery_fee,omitempty"`
	PlatformCommission decimal.Decimal  `json:"platform_commission"`
	NetAmount          decimal.Decimal  `json:"net_amount"`
	IsPaid             bool             `json:"is_paid"`
	EarnedAt           time.Time        `json:"earned_at"`
}

type RestaurantEarningsDetail struct {
	Summary  RestaurantEarningSummary `json:"summary"`
	Earnings []RestaurantEarning      `json:"earnings"`
}

type RestaurantEarningStatus string

const (
	RestaurantEarningPending RestaurantEarningStatus = "pending"
	RestaurantEarningPaid    RestaurantEarningStatus = "paid"
	RestaurantEarningAll     RestaurantEarningStatus = "all"
)

type RestaurantPayoutRequest struct {
	RestaurantIDs    []int64 `json:"restaurant_ids"`
	PaymentMethod    string  `json:"payment_method"`
	PaymentReference string  `json:"payment_reference"`
	Notes            *string `json:"notes,omitempty"`
}

type FailedRestaurant struct {
	RestaurantID int64  `json:"restaurant_id"`
	Reason       string `json:"reason"`
}

type RestaurantPayoutResult struct {
	Success              bool               `json:"success"`
	Message              string             `json:"message"`
	TotalRestaurantsPaid int                `json:"total_restaurants_paid"`
	TotalAmountPaid      decimal.Decimal    `json:"total_amount_paid"`
	FailedRestaurants    []FailedRestaurant `json:"failed_restaurants,omitempty"`
}

type PortalSyncResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	RestaurantName string `json:"restaurant_name"`
	DataSummary    struct {
		TotalLifetimeEarnings decimal.Decimal `json:"total_lifetime_earnings"`
		TotalCompletedOrders  int             `json:"total_completed_orders"`
	} `json:"data_summary"`
}

// RestaurantUpdate частичное обновление ресторана: реквизиты или контакты.
type RestaurantUpdate struct {
	BankDetails
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}
