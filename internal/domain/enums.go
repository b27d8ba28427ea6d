package domain

// ResolutionState represents where a checkout session stands in mapping an
// email to a customer profile
type ResolutionState string

const (
	// ResolutionUnresolved means no email has been checked yet
	ResolutionUnresolved ResolutionState = "UNRESOLVED"
	// ResolutionNeedsProfile means the email is unknown and the customer
	// must complete a profile before ordering
	ResolutionNeedsProfile ResolutionState = "NEEDS_PROFILE"
	// ResolutionResolved means the session has a persisted customer profile
	ResolutionResolved ResolutionState = "RESOLVED"
)

// IsValid checks if the resolution state is valid
func (s ResolutionState) IsValid() bool {
	switch s {
	case ResolutionUnresolved, ResolutionNeedsProfile, ResolutionResolved:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a state transition is valid
func (s ResolutionState) CanTransitionTo(newState ResolutionState) bool {
	switch s {
	case ResolutionUnresolved:
		return newState == ResolutionNeedsProfile ||
			newState == ResolutionResolved
	case ResolutionNeedsProfile:
		return newState == ResolutionResolved ||
			newState == ResolutionUnresolved
	case ResolutionResolved:
		return newState == ResolutionUnresolved
	default:
		return false
	}
}
