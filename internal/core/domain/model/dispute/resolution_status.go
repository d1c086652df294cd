package dispute

import (
	"fmt"

	"shipflow/internal/pkg/errs"
)

// ResolutionStatus tracks the external resolution process of a dispute.
type ResolutionStatus string

const (
	Open   ResolutionStatus = "open"
	Closed ResolutionStatus = "closed"
)

func (s ResolutionStatus) String() string {
	return string(s)
}

func (s ResolutionStatus) Validate() error {
	switch s {
	case Open, Closed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("resolutionStatus", fmt.Errorf("%q is not a valid resolution status", string(s)))
	}
}
