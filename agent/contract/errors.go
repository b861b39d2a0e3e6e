package contract

import "errors"

var (
	// ErrNotFound marks a lookup miss for an account id or loan code. It is
	// an expected business outcome, surfaced as ordinary response text.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidArgument is reserved for stricter input validation. The
	// in-memory store accepts any well-formed string, so no current code
	// path returns it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownTool means the classifier emitted a tool name the registry
	// does not hold. That is a programming invariant violation, not a user
	// error.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrUpstreamUnavailable marks a transport failure talking to a
	// remotely deployed record store.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrGenerationFailure marks a failed fallback generation call.
	ErrGenerationFailure = errors.New("generation failed")
)
