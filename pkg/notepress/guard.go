package notepress

import "github.com/google/uuid"

// Decision is the tri-state result of an ownership check. Every entry point
// goes through the same Authorize call so the information-hiding policy
// cannot drift between call sites.
type Decision int

const (
	// DecisionAllowed permits the action.
	DecisionAllowed Decision = iota

	// DecisionDeniedUnauthenticated denies an anonymous caller. Surfaced
	// as a redirect to the login page, never as an authorization error,
	// so resource existence is not confirmed to unauthenticated callers.
	DecisionDeniedUnauthenticated

	// DecisionDeniedNotFound denies an authenticated non-owner. Surfaced
	// as not-found: the boundary is hidden, never "forbidden".
	DecisionDeniedNotFound
)

// Authorize decides whether principal p may perform action on a resource
// owned by ownerID. Reads of public resources must not be routed through
// Authorize; they are allowed for every principal, including anonymous.
func Authorize(p Principal, ownerID uuid.UUID, action Action) Decision {
	if p.IsAnonymous() {
		return DecisionDeniedUnauthenticated
	}
	if p.ID != ownerID {
		return DecisionDeniedNotFound
	}
	return DecisionAllowed
}

// Allowed reports whether the decision permits the action.
func (d Decision) Allowed() bool { return d == DecisionAllowed }

// Err maps a denial to its caller-facing error. notFound is the sentinel
// for the resource kind being guarded, so a denied non-owner receives the
// same error as a lookup of a genuinely absent resource.
func (d Decision) Err(notFound error) error {
	switch d {
	case DecisionDeniedUnauthenticated:
		return ErrUnauthenticated
	case DecisionDeniedNotFound:
		return notFound
	default:
		return nil
	}
}
