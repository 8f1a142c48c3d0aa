package intake

import (
	"errors"
	"strings"
)

// ValidationError carries every violated-field message so the caller can
// highlight all bad fields at once.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// ErrSendFailed means the mandatory operator notification could not be
// delivered. The provider's response is logged, never returned.
var ErrSendFailed = errors.New("failed to send email")
