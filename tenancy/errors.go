package tenancy

import "errors"

// Error kinds returned by Resolver operations. Use errors.Is to tell a
// setup problem apart from a failed remote round trip.
var (
	// ErrConfiguration indicates required setup is missing: no NFT contract
	// address is resolvable, or the resolver's eager rental bindings were
	// never built. It is a caller bug, not a transient condition.
	ErrConfiguration = errors.New("configuration error")

	// ErrRemoteQuery wraps any failure surfaced by the node or contract
	// layer during a token or borrower fetch. The resolver never retries.
	ErrRemoteQuery = errors.New("remote query error")
)
