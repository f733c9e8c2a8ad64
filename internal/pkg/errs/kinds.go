package errs

import "errors"

// Error kinds shared across usecase layers. Domain packages keep their own
// specific sentinels; commands mark them with one of these so handlers can
// map outcomes without knowing every sentinel.
var (
	// ErrInvalidOperation covers malformed input to a pure calculation or
	// composer step. Always recoverable; existing state is never touched.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrForbidden means the actor's role or ownership fails the policy
	// predicate for the requested action. No state mutation occurs.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition means the promotion's current status does not
	// permit the requested workflow action.
	ErrInvalidTransition = errors.New("invalid transition")

	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable wraps failures of the data-store collaborator.
	// The core does not retry; retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)
