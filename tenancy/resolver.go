package tenancy

import (
	"context"
	"fmt"
)

// TokenReader is the read-only handle of an NFT contract.
type TokenReader interface {
	AccountID() string
	TokenOwner(ctx context.Context, tokenID string) (string, error)
}

// BorrowerReader is the read-only handle of a rental proxy contract.
type BorrowerReader interface {
	Borrower(ctx context.Context, contractID, tokenID string) (string, error)
}

// ContractSource constructs contract handles by account id. Construction
// must be cheap and side effect free; no remote call happens until a handle
// method is invoked.
type ContractSource interface {
	NFT(accountID string) TokenReader
	RentalProxy(accountID string) BorrowerReader
}

// Resolver answers who the current legitimate user of a token is: the
// active borrower when the token is held by a trusted rental proxy, the
// nominal owner otherwise. All of its state is immutable after NewResolver
// so a Resolver is safe for concurrent use.
type Resolver struct {
	source     ContractSource
	registry   *TrustRegistry
	defaultNFT TokenReader
	rentals    map[string]BorrowerReader
}

// NewResolver builds a resolver trusting the given rental proxies. One
// rental binding per trusted proxy is built eagerly here; resolution never
// dials proxy handles lazily. defaultNFTContract may be empty, in which
// case every query must carry an explicit contract id.
func NewResolver(source ContractSource, defaultNFTContract string, trustedProxies []string) *Resolver {
	r := &Resolver{
		source:   source,
		registry: NewTrustRegistry(trustedProxies),
		rentals:  map[string]BorrowerReader{},
	}
	if defaultNFTContract != "" {
		r.defaultNFT = source.NFT(defaultNFTContract)
	}
	for _, p := range r.registry.Proxies() {
		r.rentals[p] = source.RentalProxy(p)
	}
	return r
}

// Registry returns the resolver's trust registry.
func (r *Resolver) Registry() *TrustRegistry {
	return r.registry
}

// nftBinding picks the NFT handle for one query. An explicit contractID
// gets a fresh call-scoped handle which is never memoized.
func (r *Resolver) nftBinding(contractID string) (TokenReader, error) {
	if r.source == nil || r.registry == nil {
		return nil, fmt.Errorf("%w: resolver is not initialized", ErrConfiguration)
	}
	if contractID != "" {
		return r.source.NFT(contractID), nil
	}
	if r.defaultNFT == nil {
		return nil, fmt.Errorf("%w: no contract address available", ErrConfiguration)
	}
	return r.defaultNFT, nil
}

// CurrentUser returns the current legitimate user of tokenID. contractID
// selects the NFT contract to query; empty means the default contract
// configured at construction.
//
// When the token's nominal owner is a trusted rental proxy, the proxy's
// reported borrower is returned verbatim. In particular an empty borrower
// (no active lease) comes back as the empty string; the nominal owner is
// never substituted for it.
func (r *Resolver) CurrentUser(ctx context.Context, tokenID, contractID string) (string, error) {
	nft, err := r.nftBinding(contractID)
	if err != nil {
		return "", err
	}
	owner, err := nft.TokenOwner(ctx, tokenID)
	if err != nil {
		return "", fmt.Errorf("%w: token %s on %s: %w", ErrRemoteQuery, tokenID, nft.AccountID(), err)
	}
	if !r.registry.IsTrustedProxy(owner) {
		return owner, nil
	}
	rental, found := r.rentals[owner]
	if !found {
		return "", fmt.Errorf("%w: rental contract %s is not initialized", ErrConfiguration, owner)
	}
	borrower, err := rental.Borrower(ctx, nft.AccountID(), tokenID)
	if err != nil {
		return "", fmt.Errorf("%w: borrower of %s via %s: %w", ErrRemoteQuery, tokenID, owner, err)
	}
	return borrower, nil
}

// IsRented reports whether tokenID is currently held by a trusted rental
// proxy. It does not check that an active borrower exists; a proxy-held
// token with no lease is still rented in this sense.
func (r *Resolver) IsRented(ctx context.Context, tokenID, contractID string) (bool, error) {
	nft, err := r.nftBinding(contractID)
	if err != nil {
		return false, err
	}
	owner, err := nft.TokenOwner(ctx, tokenID)
	if err != nil {
		return false, fmt.Errorf("%w: token %s on %s: %w", ErrRemoteQuery, tokenID, nft.AccountID(), err)
	}
	return r.registry.IsTrustedProxy(owner), nil
}

// IsCurrentUser reports whether user is the current legitimate user of
// tokenID. Equality is exact, no normalization.
func (r *Resolver) IsCurrentUser(ctx context.Context, user, tokenID, contractID string) (bool, error) {
	current, err := r.CurrentUser(ctx, tokenID, contractID)
	if err != nil {
		return false, err
	}
	return current == user, nil
}
