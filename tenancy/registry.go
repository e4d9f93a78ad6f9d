package tenancy

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// TrustRegistry holds the contract accounts recognized as legitimate rental
// proxies. It is immutable once built.
type TrustRegistry struct {
	proxies mapset.Set[string]
	ordered []string
}

func NewTrustRegistry(proxies []string) *TrustRegistry {
	ordered := make([]string, len(proxies))
	copy(ordered, proxies)
	return &TrustRegistry{
		proxies: mapset.NewSet(ordered...),
		ordered: ordered,
	}
}

// IsTrustedProxy reports whether accountID is a recognized rental proxy.
// Matching is exact string equality, no case folding or normalization.
func (t *TrustRegistry) IsTrustedProxy(accountID string) bool {
	return t.proxies.Contains(accountID)
}

// Proxies returns the trusted proxy accounts in configured order.
func (t *TrustRegistry) Proxies() []string {
	res := make([]string, len(t.ordered))
	copy(res, t.ordered)
	return res
}
