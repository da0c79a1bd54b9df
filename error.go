package authorize

import "errors"

// exported errors
var (
	// ErrNoCurrentUser is returned by New when no current user accessor is
	// configured: the engine would have no subject to decide for
	ErrNoCurrentUser = errors.New("current user accessor is not configured")

	// ErrInvalidUsage is returned when a guard is given neither a handler to
	// decorate nor objects to authorize
	ErrInvalidUsage = errors.New("needs either a handler to decorate or objects to authorize")

	// ErrDenied is the deny outcome surfaced at a boundary. It is a decision,
	// not a failure.
	ErrDenied = errors.New("authorization denied")
)
