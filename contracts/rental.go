package contracts

import "context"

// RentalProxy is a read-only handle to a rental marketplace contract, i.e.
// a contract that temporarily holds token ownership on behalf of borrowers
// and reports who the active borrower is.
type RentalProxy struct {
	accountID string
	caller    Caller
}

func NewRentalProxy(caller Caller, accountID string) *RentalProxy {
	return &RentalProxy{
		accountID: accountID,
		caller:    caller,
	}
}

func (r *RentalProxy) AccountID() string {
	return r.accountID
}

// Borrower returns the account currently borrowing tokenID of contractID
// through this proxy. A null answer from the contract means no active
// lease and is returned as the empty string, not as an error.
func (r *RentalProxy) Borrower(ctx context.Context, contractID, tokenID string) (string, error) {
	var borrower *string
	err := r.caller.CallFunction(ctx, r.accountID, "get_borrower", map[string]string{
		"contract_id": contractID,
		"token_id":    tokenID,
	}, &borrower)
	if err != nil {
		return "", err
	}
	if borrower == nil {
		return "", nil
	}
	return *borrower, nil
}
