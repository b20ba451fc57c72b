package tokens

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	DefaultTokenName     = "My Deletable Token"
	DefaultTokenSymbol   = "MDT"
	DefaultInitialSupply = 1
)

// CreateTokenOptions are the descriptive fields of the token to create. The
// treasury is always the operator and the admin key is supplied separately.
// Zero values select the defaults above.
type CreateTokenOptions struct {
	Name          string
	Symbol        string
	InitialSupply uint64
	Decimals      uint
	Memo          string
}

func (o CreateTokenOptions) withDefaults() CreateTokenOptions {
	if o.Name == "" {
		o.Name = DefaultTokenName
	}
	if o.Symbol == "" {
		o.Symbol = DefaultTokenSymbol
	}
	if o.InitialSupply == 0 {
		o.InitialSupply = DefaultInitialSupply
	}
	return o
}

// CreateTokenResult is a successful creation: the assigned token, the
// transaction that created it and what was requested.
type CreateTokenResult struct {
	TokenID       hedera.TokenID
	TransactionID string
	Descriptor    TokenDescriptor
}

// DeleteTokenResult is a successful deletion.
type DeleteTokenResult struct {
	TokenID       hedera.TokenID
	TransactionID string
}

// RunResult summarises a completed create-then-delete run.
type RunResult struct {
	RunID               string `json:"runId"`
	Network             string `json:"network"`
	OperatorAccountID   string `json:"operatorAccountId"`
	KeyType             string `json:"keyType"`
	AdminPublicKey      string `json:"adminPublicKey"`
	TokenID             string `json:"tokenId"`
	CreateTransactionID string `json:"createTransactionId"`
	DeleteTransactionID string `json:"deleteTransactionId"`
}
