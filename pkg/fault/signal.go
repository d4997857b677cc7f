package fault

import "errors"

// SelfHandled is a control-flow marker, not a taxonomy error: the fragment
// that raised the underlying failure already displayed or recovered from it,
// and surrounding orchestration must not handle it again or show it to the
// user.
//
// It deliberately does not implement Unwrap: the handled cause stays
// reachable through the Cause field for bookkeeping, but errors.Is and
// errors.As must not see through the marker, otherwise an outer boundary
// would re-catch the already handled framework error.
type SelfHandled struct {
	// Cause is the failure that was handled, kept for bookkeeping only.
	Cause error
}

// NewSelfHandled wraps an already handled failure in the marker.
func NewSelfHandled(cause error) *SelfHandled {
	return &SelfHandled{Cause: cause}
}

// Error implements the error interface with a fixed marker string. The text
// is not part of any display contract.
func (s *SelfHandled) Error() string {
	return "fragment handled its own exception"
}

// IsSelfHandled checks whether err is the self-handled marker.
func IsSelfHandled(err error) bool {
	var s *SelfHandled
	return errors.As(err, &s)
}
