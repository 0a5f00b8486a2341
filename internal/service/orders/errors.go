package orders

import (
	"fmt"

	"khaogully-admin/internal/apperr"
)

var (
	ErrInvalidStatus    = fmt.Errorf("%w: unknown order status", apperr.Invalid)
	ErrOrderRequired    = fmt.Errorf("%w: order id is required", apperr.Invalid)
	ErrDriverRequired   = fmt.Errorf("%w: please select a driver", apperr.Invalid)
	ErrNegativeEarnings = fmt.Errorf("%w: driver earnings must not be negative", apperr.Invalid)
)
