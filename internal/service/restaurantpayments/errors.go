package restaurantpayments

import (
	"fmt"

	"khaogully-admin/internal/apperr"
	"khaogully-admin/internal/entities"
)

var (
	ErrInvalidStatus      = fmt.Errorf("%w: status must be pending, paid or all", apperr.Invalid)
	ErrNothingSelected    = fmt.Errorf("%w: please select at least one restaurant", apperr.Invalid)
	ErrReferenceRequired  = fmt.Errorf("%w: please enter a payment reference", apperr.Invalid)
	ErrRestaurantRequired = fmt.Errorf("%w: restaurant id is required", apperr.Invalid)
	ErrRateRequired       = fmt.Errorf("%w: please select a commission rate", apperr.Invalid)
	ErrPhoneRequired      = fmt.Errorf("%w: phone number is required for syncing to portal", apperr.Invalid)
	ErrBankDetails        = fmt.Errorf("%w: bank account number or UPI ID is required", apperr.Invalid)
	ErrPayoutInFlight     = fmt.Errorf("%w: payout for these restaurants is already being processed", apperr.Conflict)
	ErrUnknownRestaurant  = fmt.Errorf("%w: restaurant is not in the payments list", apperr.NotFound)
)

// PayoutIssuesError backend принял выплату, но вернул success=false.
// Result содержит, кому выплачено и кому нет.
type PayoutIssuesError struct {
	Result *entities.RestaurantPayoutResult
}

func (e *PayoutIssuesError) Error() string {
	return "payout completed with issues: " + e.Result.Message
}

func (e *PayoutIssuesError) Unwrap() error {
	return apperr.Conflict
}

// PortalSyncError портал ресторана отклонил синхронизацию.
type PortalSyncError struct {
	Message string
}

func (e *PortalSyncError) Error() string {
	if e.Message == "" {
		return "failed to sync to restaurant portal"
	}
	return "failed to sync to restaurant portal: " + e.Message
}

func (e *PortalSyncError) Unwrap() error {
	return apperr.Conflict
}
