package earnings

import (
	"fmt"
	"strings"

	"khaogully-admin/internal/apperr"
)

var (
	ErrNothingSelected = fmt.Errorf("%w: please select at least one driver", apperr.Invalid)
	ErrDriverRequired  = fmt.Errorf("%w: driver id is required", apperr.Invalid)
	ErrBankDetails     = fmt.Errorf("%w: bank account number or UPI ID is required", apperr.Invalid)
	ErrPayoutInFlight  = fmt.Errorf("%w: payout for these drivers is already being processed", apperr.Conflict)
	ErrUnknownDriver   = fmt.Errorf("%w: driver is not in the earnings list", apperr.NotFound)
)

// MissingBankDetailsError выбранные водители без реквизитов. Выплата
// не отправляется, пока они в выборе.
type MissingBankDetailsError struct {
	Drivers []string
}

func (e *MissingBankDetailsError) Error() string {
	return "cannot process payout: the following drivers are missing bank details: " +
		strings.Join(e.Drivers, ", ")
}

func (e *MissingBankDetailsError) Unwrap() error {
	return apperr.Invalid
}
