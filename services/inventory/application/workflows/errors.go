package workflows

import (
	"errors"

	invdomain "github.com/ghuser/inventree/services/inventory/domain"
)

// isRejection reports whether err is a domain rejection of the entry itself
// rather than a transient infrastructure failure.
func isRejection(err error) bool {
	return errors.Is(err, invdomain.ErrDuplicateCode) ||
		errors.Is(err, invdomain.ErrParentNotFound) ||
		errors.Is(err, invdomain.ErrProductNotFound) ||
		errors.Is(err, invdomain.ErrValidation) ||
		errors.Is(err, invdomain.ErrCycle)
}
