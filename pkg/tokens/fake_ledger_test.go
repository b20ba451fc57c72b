package tokens

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// fakeLedger stands in for the network. It enforces the signature rules the
// real network applies to token create and delete and records every call.
type fakeLedger struct {
	operatorID   hedera.AccountID
	operatorKey  hedera.PublicKey
	nextToken    uint64
	forcedStatus map[RequestKind]hedera.Status
	submitErr    map[RequestKind]error

	calls     []string
	requests  []*Request
	adminKeys map[string]hedera.PublicKey
	deleted   map[string]bool
}

func newFakeLedger(operator Operator) *fakeLedger {
	return &fakeLedger{
		operatorID:   operator.AccountID,
		operatorKey:  operator.Key.PublicKey(),
		nextToken:    1234,
		forcedStatus: map[RequestKind]hedera.Status{},
		submitErr:    map[RequestKind]error{},
		adminKeys:    map[string]hedera.PublicKey{},
		deleted:      map[string]bool{},
	}
}

func (l *fakeLedger) OperatorAccountID() hedera.AccountID {
	return l.operatorID
}

func (l *fakeLedger) Freeze(request *Request) error {
	l.calls = append(l.calls, "freeze "+string(request.Kind()))
	return request.FreezeWithTransactionID(
		hedera.TransactionIDGenerate(l.operatorID),
		[]hedera.AccountID{{Account: 3}},
	)
}

func (l *fakeLedger) Submit(ctx context.Context, request *Request) (Receipt, error) {
	l.calls = append(l.calls, "submit "+string(request.Kind()))
	l.requests = append(l.requests, request)
	transactionID := request.TransactionID()

	if err, ok := l.submitErr[request.Kind()]; ok {
		return Receipt{}, err
	}
	if status, ok := l.forcedStatus[request.Kind()]; ok {
		return Receipt{Status: status, TransactionID: transactionID}, nil
	}
	if !request.SignedBy(l.operatorKey) {
		return Receipt{Status: hedera.StatusInvalidSignature, TransactionID: transactionID}, nil
	}

	switch request.Kind() {
	case RequestTokenCreate:
		descriptor := request.Descriptor()
		if !request.SignedBy(descriptor.AdminKey) {
			return Receipt{Status: hedera.StatusInvalidSignature, TransactionID: transactionID}, nil
		}
		tokenID := hedera.TokenID{Token: l.nextToken}
		l.nextToken++
		l.adminKeys[tokenID.String()] = descriptor.AdminKey
		return Receipt{Status: hedera.StatusSuccess, TokenID: &tokenID, TransactionID: transactionID}, nil
	case RequestTokenDelete:
		tokenID := request.TokenID().String()
		adminKey, known := l.adminKeys[tokenID]
		if !known {
			return Receipt{Status: hedera.StatusInvalidTokenID, TransactionID: transactionID}, nil
		}
		if l.deleted[tokenID] {
			return Receipt{Status: hedera.StatusTokenWasDeleted, TransactionID: transactionID}, nil
		}
		if !request.SignedBy(adminKey) {
			return Receipt{Status: hedera.StatusInvalidSignature, TransactionID: transactionID}, nil
		}
		l.deleted[tokenID] = true
		return Receipt{Status: hedera.StatusSuccess, TransactionID: transactionID}, nil
	default:
		return Receipt{}, fmt.Errorf("unexpected request kind %q", request.Kind())
	}
}

func (l *fakeLedger) submittedKinds() []RequestKind {
	kinds := make([]RequestKind, 0, len(l.requests))
	for _, request := range l.requests {
		kinds = append(kinds, request.Kind())
	}
	return kinds
}
