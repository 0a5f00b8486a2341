package pools

import (
	"fmt"

	"khaogully-admin/internal/apperr"
)

var (
	ErrPoolRequired     = fmt.Errorf("%w: pool id is required", apperr.Invalid)
	ErrGroupRequired    = fmt.Errorf("%w: group id is required", apperr.Invalid)
	ErrDriverRequired   = fmt.Errorf("%w: please select a driver", apperr.Invalid)
	ErrNoPoolSelected   = fmt.Errorf("%w: no pool selected", apperr.Invalid)
	ErrNothingSelected  = fmt.Errorf("%w: select at least one order", apperr.Invalid)
	ErrPoolNotSelected  = fmt.Errorf("%w: order selection belongs to another pool", apperr.Conflict)
	ErrNegativeEarnings = fmt.Errorf("%w: driver earnings must not be negative", apperr.Invalid)
)
