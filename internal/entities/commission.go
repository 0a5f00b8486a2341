package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionRate struct {
	ID             int64           `json:"id"`
	RateName       string          `json:"rate_name"`
	RatePercentage decimal.Decimal `json:"rate_percentage"`
	Description    string          `json:"description"`
	IsActive       bool            `json:"is_active"`
	IsDefault      bool            `json:"is_default"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CommissionRateCreate struct {
	RateName       string          `json:"rate_name" validate:"required"`
	RatePercentage decimal.Decimal `json:"rate_percentage"`
	Description    *string         `json:"description,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
	IsDefault      *bool           `json:"is_default,omitempty"`
}

type CommissionRateUpdate struct {
	RateName       *string          `json:"rate_name,omitempty"`
	RatePercentage *decimal.Decimal `json:"rate_percentage,omitempty"`
	Description    *string          `json:"description,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
	IsDefault      *bool            `json:"is_default,omitempty"`
}

type RestaurantWithCommission struct {
	RestaurantID            int64           `json:"restaurant_id"`
	RestaurantName          string          `json:"restaurant_name"`
	CurrentCommissionRateID int64           `json:"current_commission_rate_id"`
	CurrentRateName         string          `json:"current_rate_name"`
	CurrentRatePercentage   decimal.Decimal `json:"current_rate_percentage"`
	AssignedAt              time.Time       `json:"assigned_at"`
	AssignedBy              string          `json:"assigned_by"`
	AssignmentNotes         *string         `json:"assignment_notes,omitempty"`
}

type RestaurantCommissionAssignment struct {
	ID               int64          `json:"id"`
	RestaurantID     int64          `json:"restaurant_id"`
	CommissionRateID int64          `json:"commission_rate_id"`
	AssignedAt       time.Time      `json:"assigned_at"`
	AssignedBy       string         `json:"assigned_by"`
	Notes            *string        `json:"notes,omitempty"`
	CommissionRate   CommissionRate `json:"commission_rate"`
}

type AssignCommissionRequest struct {
	RestaurantID     int64   `json:"restaurant_id"`
	CommissionRateID int64   `json:"commission_rate_id"`
	Notes            *string `json:"notes,omitempty"`
}

type ChangeCommissionRequest struct {
	CommissionRateID int64   `json:"commission_rate_id"`
	Notes            *string `json:"notes,omitempty"`
}

type CommissionHistory struct {
	ID               int64           `json:"id"`
	RestaurantID     int64           `json:"restaurant_id"`
	CommissionRateID int64           `json:"commission_rate_id"`
	RateName         string          `json:"rate_name"`
	RatePercentage   decimal.Decimal `json:"rate_percentage"`
	AssignedAt       time.Time       `json:"assigned_at"`
	AssignedBy       string          `json:"assigned_by"`
	Notes            *string         `json:"notes,omitempty"`
}

type PlatformConfig struct {
	ID          int64          `json:"id"`
	ConfigKey   string         `json:"config_key"`
	ConfigValue map[string]any `json:"config_value"`
	Description *string        `json:"description,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type PlatformConfigUpdate struct {
	ConfigKey   string         `json:"config_key" validate:"required"`
	ConfigValue map[string]any `json:"config_value" validate:"required"`
}
