package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DriverEarningSummary struct {
	DriverID               int64            `json:"driver_id"`
	DriverName             string           `json:"driver_name"`
	DriverPhone            string           `json:"driver_phone"`
	DriverRating           float64          `json:"driver_rating"`
	TotalPendingEarnings   decimal.Decimal  `json:"total_pending_earnings"`
	TotalPaidEarnings      decimal.Decimal  `json:"total_paid_earnings"`
	CurrentCycleEarnings   decimal.Decimal  `json:"current_cycle_earnings"`
	PendingDeliveries      int              `json:"pending_deliveries"`
	TotalDeliveries        int              `json:"total_deliveries"`
	AvgEarningsPerDelivery decimal.Decimal  `json:"avg_earnings_per_delivery"`
	LastPaymentDate        *time.Time       `json:"last_payment_date,omitempty"`
	LastPaymentAmount      *decimal.Decimal `json:"last_payment_amount,omitempty"`
	HasBankDetails         bool             `json:"has_bank_details"`
	BankDetails
}

// PayoutEligible водителю есть что выплатить и есть куда.
func (s DriverEarningSummary) PayoutEligible() bool {
	return s.TotalPendingEarnings.IsPositive() && s.HasBankDetails
}

type DriverEarningStats struct {
	TotalPendingAmount   decimal.Decimal `json:"total_pending_amount"`
	TotalPaidThisMonth   decimal.Decimal `json:"total_paid_this_month"`
	TotalDriversPending  int             `json:"total_drivers_pending"`
	CurrentCycleName     string          `json:"current_cycle_name"`
	CurrentCycleEndDate  *time.Time      `json:"current_cycle_end_date,omitempty"`
	CurrentCycleStartDay *time.Time      `json:"current_cycle_start_date,omitempty"`
}

type DriverEarning struct {
	ID               int64           `json:"id"`
	OrderID          int64           `json:"order_id"`
	CustomerName     *string         `json:"customer_name,omitempty"`
	DeliveryAddress  *string         `json:"delivery_address,omitempty"`
	BaseFare         decimal.Decimal `json:"base_fare"`
	DistanceKm       *float64        `json:"distance_km,omitempty"`
	DistanceFare     decimal.Decimal `json:"distance_fare"`
	PeakHourBonus    decimal.Decimal `json:"peak_hour_bonus"`
	MultiOrderBonus  decimal.Decimal `json:"multi_order_bonus"`
	Incentive        decimal.Decimal `json:"incentive"`
	AdjustmentAmount decimal.Decimal `json:"adjustment_amount"`
	TotalEarning     decimal.Decimal `json:"total_earning"`
	IsPaid           bool            `json:"is_paid"`
	EarnedAt         time.Time       `json:"earned_at"`
}

// Net итог с учётом корректировки.
func (e DriverEarning) Net() decimal.Decimal {
	return e.TotalEarning.Add(e.AdjustmentAmount)
}

type DriverEarningsDetail struct {
	Summary  DriverEarningSummary `json:"summary"`
	Earnings []DriverEarning      `json:"earnings"`
}

type DriverPayoutRequest struct {
	DriverIDs        []int64 `json:"driver_ids"`
	PaymentMethod    string  `json:"payment_method"`
	PaymentReference *string `json:"payment_reference,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

type DriverPayoutResult struct {
	TotalDriversPaid int             `json:"total_drivers_paid"`
	TotalAmountPaid  decimal.Decimal `json:"total_amount_paid"`
	Message          string          `json:"message,omitempty"`
}

const DefaultPaymentMethod = "bank_transfer"

// PayoutForm параметры выплаты, выбор получателей хранится отдельно.
type PayoutForm struct {
	PaymentMethod    string `json:"payment_method"`
	PaymentReference string `json:"payment_reference"`
	Notes            string `json:"notes"`
}
