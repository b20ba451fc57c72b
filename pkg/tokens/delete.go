package tokens

import (
	"context"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// DeleteToken deletes tokenID. adminKey must be the key the token was
// created with; the network rejects any other. Deleting an already deleted
// token yields a *StatusError with TOKEN_WAS_DELETED.
func DeleteToken(
	ctx context.Context,
	ledger Ledger,
	operatorKey hedera.PrivateKey,
	adminKey hedera.PrivateKey,
	tokenID hedera.TokenID,
) (DeleteTokenResult, error) {
	request, err := NewDeleteRequest(tokenID)
	if err != nil {
		return DeleteTokenResult{}, err
	}
	if err := ledger.Freeze(request); err != nil {
		return DeleteTokenResult{}, err
	}
	for _, key := range []hedera.PrivateKey{operatorKey, adminKey} {
		if err := request.Sign(key); err != nil {
			return DeleteTokenResult{}, err
		}
	}

	receipt, err := submit(ctx, ledger, request)
	if err != nil {
		return DeleteTokenResult{}, err
	}
	if receipt.Status != hedera.StatusSuccess {
		return DeleteTokenResult{}, &StatusError{
			Operation:     "token deletion",
			Status:        receipt.Status,
			TransactionID: receipt.TransactionID,
		}
	}

	return DeleteTokenResult{
		TokenID:       tokenID,
		TransactionID: receipt.TransactionID,
	}, nil
}
