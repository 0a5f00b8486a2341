package entities

import (
	"strings"
	"time"
)

type DriverStatus string

const (
	DriverStatusPending  DriverStatus = "pending"
	DriverStatusApproved DriverStatus = "approved"
	DriverStatusActive   DriverStatus = "active"
	DriverStatusBlocked  DriverStatus = "blocked"
)

// Is сравнивает статусы без учёта регистра: backend отдаёт оба варианта.
func (s DriverStatus) Is(other DriverStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// Settable статусы, которые админ может выставить вручную.
func (s DriverStatus) Settable() bool {
	return s.Is(DriverStatusPending) || s.Is(DriverStatusApproved) || s.Is(DriverStatusBlocked)
}

type Driver struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	Email           *string      `json:"email,omitempty"`
	VehicleType     string       `json:"vehicle_type"`
	VehicleNumber   string       `json:"vehicle_number"`
	Status          DriverStatus `json:"status"`
	IsAvailable     bool         `json:"is_available"`
	IsOnline        bool         `json:"is_online"`
	CompletedOrders int          `json:"completed_orders"`
	CancelledOrders int          `json:"cancelled_orders"`
	Rating          float64      `json:"rating"`
	CreatedAt       time.Time    `json:"created_at"`
	BankDetails
}

// Assignable водитель одобрен или активен и сейчас онлайн.
func (d Driver) Assignable() bool {
	return (d.Status.Is(DriverStatusApproved) || d.Status.Is(DriverStatusActive)) && d.IsOnline
}

type DriverFilter struct {
	Status DriverStatus
}

type BankDetails struct {
	BankAccountNumber     *string `json:"bank_account_number,omitempty"`
	BankIFSCCode          *string `json:"bank_ifsc_code,omitempty"`
	BankAccountHolderName *string `json:"bank_account_holder_name,omitempty"`
	UPIID                 *string `json:"upi_id,omitempty"`
}

// Provided достаточно номера счёта или UPI.
func (b BankDetails) Provided() bool {
	return nonBlank(b.BankAccountNumber) || nonBlank(b.UPIID)
}

// AvailableDriver водитель из /available-drivers.
type AvailableDriver struct {
	DriverID    int64  `json:"driver_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
	IsAvailable bool   `json:"is_available"`
}

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
