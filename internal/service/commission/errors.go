package commission

import (
	"fmt"

	"khaogully-admin/internal/apperr"
)

var (
	ErrRateName           = fmt.Errorf("%w: please provide a valid rate name", apperr.Invalid)
	ErrRatePercentage     = fmt.Errorf("%w: rate percentage must be between 0 and 100", apperr.Invalid)
	ErrRateRequired       = fmt.Errorf("%w: commission rate id is required", apperr.Invalid)
	ErrRestaurantRequired = fmt.Errorf("%w: restaurant id is required", apperr.Invalid)
	ErrEmptyUpdate        = fmt.Errorf("%w: nothing to update", apperr.Invalid)
	ErrConfigKey          = fmt.Errorf("%w: config key and value are required", apperr.Invalid)
	ErrRateNotFound       = fmt.Errorf("%w: commission rate not found", apperr.NotFound)
)
