package contracts

import (
	"github.com/leasewatch/nftenant/tenancy"
)

// Source constructs contract handles over one caller. It implements
// tenancy.ContractSource.
type Source struct {
	caller Caller
}

func NewSource(caller Caller) *Source {
	return &Source{caller: caller}
}

func (s *Source) NFT(accountID string) tenancy.TokenReader {
	return NewNFT(s.caller, accountID)
}

func (s *Source) RentalProxy(accountID string) tenancy.BorrowerReader {
	return NewRentalProxy(s.caller, accountID)
}
