package client

import "errors"

var (
	// ErrUnavailable wraps transport-level failures reaching the server.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotLoggedIn marks calls that need a session when none is held.
	ErrNotLoggedIn = errors.New("not logged in")
)
