package drivers

import (
	"fmt"

	"khaogully-admin/internal/apperr"
)

var (
	ErrInvalidStatus  = fmt.Errorf("%w: status must be pending, approved or blocked", apperr.Invalid)
	ErrDriverRequired = fmt.Errorf("%w: driver id is required", apperr.Invalid)
	ErrBankDetails    = fmt.Errorf("%w: bank account number or UPI ID is required", apperr.Invalid)
)
