package contracts

import (
	"context"
	"fmt"
)

// Caller performs a read-only contract function call and JSON-decodes the
// result into out. rpc.NodeClient and rpc.Reader implement it.
type Caller interface {
	CallFunction(ctx context.Context, accountID, method string, args any, out any) error
}

// Token is the NEP-171 token record returned by nft_token. Only the fields
// this tool needs are decoded.
type Token struct {
	TokenID  string         `json:"token_id"`
	OwnerID  string         `json:"owner_id"`
	Metadata *TokenMetadata `json:"metadata,omitempty"`
}

type TokenMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Media       string `json:"media,omitempty"`
}

// NFT is a read-only handle to a NEP-171 contract.
type NFT struct {
	accountID string
	caller    Caller
}

func NewNFT(caller Caller, accountID string) *NFT {
	return &NFT{
		accountID: accountID,
		caller:    caller,
	}
}

func (n *NFT) AccountID() string {
	return n.accountID
}

// Token fetches the token record for tokenID. A null response from the
// contract means the token doesn't exist and is returned as an error.
func (n *NFT) Token(ctx context.Context, tokenID string) (*Token, error) {
	var token *Token
	err := n.caller.CallFunction(ctx, n.accountID, "nft_token", map[string]string{
		"token_id": tokenID,
	}, &token)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, fmt.Errorf("token %s does not exist on %s", tokenID, n.accountID)
	}
	return token, nil
}

// TokenOwner returns the nominal owner recorded for tokenID. The owner can
// be a user account or a rental proxy contract, the contract doesn't tell
// them apart.
func (n *NFT) TokenOwner(ctx context.Context, tokenID string) (string, error) {
	token, err := n.Token(ctx, tokenID)
	if err != nil {
		return "", err
	}
	return token.OwnerID, nil
}
