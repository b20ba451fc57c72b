package tokens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashgraph-online/token-lifecycle-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// Receipt is the outcome of a submitted request.
type Receipt struct {
	Status        hedera.Status
	TokenID       *hedera.TokenID
	TransactionID string
}

// Ledger is the network the requests are frozen against and submitted to.
// Submit blocks until a receipt is available. A request rejected at
// precheck is reported as a Receipt carrying the precheck status, not as an
// error; errors are reserved for transport and SDK failures.
type Ledger interface {
	OperatorAccountID() hedera.AccountID
	Freeze(request *Request) error
	Submit(ctx context.Context, request *Request) (Receipt, error)
}

// Operator is the payer identity: an account and the key that signs for it.
type Operator struct {
	AccountID hedera.AccountID
	Key       hedera.PrivateKey
}

// ParseOperator decodes an operator account ID and private key. Failures
// are configuration errors.
func ParseOperator(accountID string, privateKey string) (Operator, error) {
	trimmedAccountID := strings.TrimSpace(accountID)
	if trimmedAccountID == "" {
		return Operator{}, configError("operator account ID is required")
	}
	parsedAccountID, err := hedera.AccountIDFromString(trimmedAccountID)
	if err != nil {
		return Operator{}, configError("invalid operator account ID %q: %w", trimmedAccountID, err)
	}
	key, err := shared.ParsePrivateKey(privateKey)
	if err != nil {
		return Operator{}, configError("invalid operator key: %w", err)
	}
	return Operator{AccountID: parsedAccountID, Key: key}, nil
}

// LedgerConfig selects the network and payer for a HederaLedger.
type LedgerConfig struct {
	Network  string
	Operator Operator
	// RequestTimeout and MaxAttempts override the SDK defaults when positive.
	RequestTimeout time.Duration
	MaxAttempts    int
}

// HederaLedger submits requests to Hedera consensus nodes through the SDK
// client.
type HederaLedger struct {
	client  *hedera.Client
	network string
}

// NewHederaLedger builds an SDK client for config.Network with the operator
// attached. An unknown network is a *ConfigError.
func NewHederaLedger(config LedgerConfig) (*HederaLedger, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	client, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	client.SetOperator(config.Operator.AccountID, config.Operator.Key)
	if config.RequestTimeout > 0 {
		timeout := config.RequestTimeout
		client.SetRequestTimeout(&timeout)
	}
	if config.MaxAttempts > 0 {
		client.SetMaxAttempts(config.MaxAttempts)
	}

	return &HederaLedger{client: client, network: network}, nil
}

// Network is the normalised network name the client is bound to.
func (l *HederaLedger) Network() string {
	return l.network
}

// OperatorAccountID reads the payer back from the client.
func (l *HederaLedger) OperatorAccountID() hedera.AccountID {
	return l.client.GetOperatorAccountID()
}

// Freeze binds request to the client's network, nodes and operator.
func (l *HederaLedger) Freeze(request *Request) error {
	return request.FreezeWith(l.client)
}

// Submit executes the request and waits for its receipt. The SDK call does
// not observe ctx, so cancellation is only checked before submission.
func (l *HederaLedger) Submit(ctx context.Context, request *Request) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	response, err := request.body.execute(l.client)
	if err != nil {
		var precheck hedera.ErrHederaPreCheckStatus
		if errors.As(err, &precheck) {
			return Receipt{Status: precheck.Status, TransactionID: request.TransactionID()}, nil
		}
		return Receipt{}, fmt.Errorf("failed to execute %s transaction: %w", request.Kind(), err)
	}

	transactionID := response.TransactionID.String()
	receipt, err := response.GetReceipt(l.client)
	if err != nil {
		var receiptStatus hedera.ErrHederaReceiptStatus
		if errors.As(err, &receiptStatus) {
			return Receipt{Status: receiptStatus.Status, TransactionID: transactionID}, nil
		}
		return Receipt{}, fmt.Errorf("failed to get %s receipt: %w", request.Kind(), err)
	}

	return Receipt{
		Status:        receipt.Status,
		TokenID:       receipt.TokenID,
		TransactionID: transactionID,
	}, nil
}

// Close releases the client's node connections.
func (l *HederaLedger) Close() error {
	return l.client.Close()
}

// submit moves a signed request through submitted to receipted.
func submit(ctx context.Context, ledger Ledger, request *Request) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if err := request.expect(StateSigned, "submit"); err != nil {
		return Receipt{}, err
	}

	request.state = StateSubmitted
	receipt, err := ledger.Submit(ctx, request)
	if err != nil {
		return Receipt{}, err
	}
	request.status = receipt.Status
	request.state = StateReceipted
	return receipt, nil
}
