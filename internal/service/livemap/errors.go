package livemap

import (
	"fmt"

	"khaogully-admin/internal/apperr"
)

var ErrBadLocation = fmt.Errorf("%w: malformed location update", apperr.Invalid)
