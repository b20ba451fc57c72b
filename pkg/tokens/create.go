package tokens

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// CreateToken creates a fungible token with the operator as treasury and
// adminKey as admin key. The request is signed by both keys after freezing.
// A non-SUCCESS status is returned as *StatusError.
func CreateToken(
	ctx context.Context,
	ledger Ledger,
	operatorKey hedera.PrivateKey,
	adminKey hedera.PrivateKey,
	options CreateTokenOptions,
) (CreateTokenResult, error) {
	options = options.withDefaults()
	descriptor := TokenDescriptor{
		Name:              options.Name,
		Symbol:            options.Symbol,
		InitialSupply:     options.InitialSupply,
		Decimals:          options.Decimals,
		TreasuryAccountID: ledger.OperatorAccountID(),
		AdminKey:          adminKey.PublicKey(),
		Memo:              options.Memo,
	}

	request, err := NewCreateRequest(descriptor)
	if err != nil {
		return CreateTokenResult{}, err
	}
	if err := ledger.Freeze(request); err != nil {
		return CreateTokenResult{}, err
	}
	for _, key := range []hedera.PrivateKey{operatorKey, adminKey} {
		if err := request.Sign(key); err != nil {
			return CreateTokenResult{}, err
		}
	}

	receipt, err := submit(ctx, ledger, request)
	if err != nil {
		return CreateTokenResult{}, err
	}
	if receipt.Status != hedera.StatusSuccess {
		return CreateTokenResult{}, &StatusError{
			Operation:     "token creation",
			Status:        receipt.Status,
			TransactionID: receipt.TransactionID,
		}
	}
	if receipt.TokenID == nil {
		return CreateTokenResult{}, fmt.Errorf("token create receipt did not include token ID")
	}

	return CreateTokenResult{
		TokenID:       *receipt.TokenID,
		TransactionID: receipt.TransactionID,
		Descriptor:    descriptor,
	}, nil
}
