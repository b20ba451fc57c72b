package tokens

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashgraph-online/token-lifecycle-go/pkg/mirror"
)

// Verifier confirms that what consensus reported is visible on a read path.
type Verifier interface {
	VerifyCreated(ctx context.Context, created CreateTokenResult) error
	VerifyDeleted(ctx context.Context, deleted DeleteTokenResult) error
}

const (
	defaultVerifyTimeout  = 30 * time.Second
	defaultVerifyInterval = 500 * time.Millisecond

	mirrorResultSuccess     = "SUCCESS"
	mirrorNameTokenCreation = "TOKENCREATION"
	mirrorNameTokenDeletion = "TOKENDELETION"
)

// MirrorVerifier polls the mirror node, which trails consensus by a few
// seconds, until a transaction and its token reflect the expected state.
type MirrorVerifier struct {
	client          *mirror.Client
	timeout         time.Duration
	initialInterval time.Duration
}

// NewMirrorVerifier returns a verifier that gives the mirror node up to
// timeout per check. A non-positive timeout selects 30s.
func NewMirrorVerifier(client *mirror.Client, timeout time.Duration) *MirrorVerifier {
	if timeout <= 0 {
		timeout = defaultVerifyTimeout
	}
	return &MirrorVerifier{
		client:          client,
		timeout:         timeout,
		initialInterval: defaultVerifyInterval,
	}
}

// VerifyCreated checks the creation transaction record, the token's name,
// symbol, treasury and admin key, and that the treasury account exists.
func (v *MirrorVerifier) VerifyCreated(ctx context.Context, created CreateTokenResult) error {
	tokenID := created.TokenID.String()
	descriptor := created.Descriptor

	if err := v.verifyTransaction(ctx, created.TransactionID, mirrorNameTokenCreation, tokenID); err != nil {
		return err
	}

	err := v.poll(ctx, func() error {
		info, err := v.client.GetToken(ctx, tokenID)
		if err != nil {
			return classifyMirrorError(err)
		}
		if info.Name != descriptor.Name || info.Symbol != descriptor.Symbol {
			return backoff.Permanent(fmt.Errorf(
				"mirror node reports token %s as %s/%s, expected %s/%s",
				tokenID, info.Name, info.Symbol, descriptor.Name, descriptor.Symbol,
			))
		}
		if info.TreasuryAccountID != descriptor.TreasuryAccountID.String() {
			return backoff.Permanent(fmt.Errorf(
				"mirror node reports treasury %s for token %s, expected %s",
				info.TreasuryAccountID, tokenID, descriptor.TreasuryAccountID,
			))
		}
		matches, err := info.AdminKey.Matches(descriptor.AdminKey)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !matches {
			return backoff.Permanent(fmt.Errorf("mirror node admin key for token %s does not match the generated key", tokenID))
		}
		return nil
	})
	if err != nil {
		return err
	}

	treasury := descriptor.TreasuryAccountID.String()
	return v.poll(ctx, func() error {
		account, err := v.client.GetAccount(ctx, treasury)
		if err != nil {
			return classifyMirrorError(err)
		}
		if account.Account != treasury {
			return backoff.Permanent(fmt.Errorf("mirror node returned account %s for treasury %s", account.Account, treasury))
		}
		if account.Deleted {
			return backoff.Permanent(fmt.Errorf("treasury account %s is deleted", treasury))
		}
		return nil
	})
}

// VerifyDeleted checks the deletion transaction record and waits for the
// token to be marked deleted.
func (v *MirrorVerifier) VerifyDeleted(ctx context.Context, deleted DeleteTokenResult) error {
	tokenID := deleted.TokenID.String()

	if err := v.verifyTransaction(ctx, deleted.TransactionID, mirrorNameTokenDeletion, tokenID); err != nil {
		return err
	}

	return v.poll(ctx, func() error {
		info, err := v.client.GetToken(ctx, tokenID)
		if err != nil {
			return classifyMirrorError(err)
		}
		if !info.Deleted {
			return fmt.Errorf("mirror node does not yet report token %s as deleted", tokenID)
		}
		return nil
	})
}

func (v *MirrorVerifier) verifyTransaction(ctx context.Context, transactionID string, name string, tokenID string) error {
	return v.poll(ctx, func() error {
		transaction, err := v.client.GetTransaction(ctx, transactionID)
		if err != nil {
			return classifyMirrorError(err)
		}
		if transaction == nil {
			return fmt.Errorf("mirror node has no record of transaction %s yet", transactionID)
		}
		if transaction.Name != name {
			return backoff.Permanent(fmt.Errorf(
				"mirror node reports transaction %s as %s, expected %s",
				transactionID, transaction.Name, name,
			))
		}
		if transaction.Result != mirrorResultSuccess {
			return backoff.Permanent(fmt.Errorf(
				"mirror node reports transaction %s with result %s",
				transactionID, transaction.Result,
			))
		}
		if transaction.EntityID != nil && *transaction.EntityID != tokenID {
			return backoff.Permanent(fmt.Errorf(
				"mirror node reports transaction %s for entity %s, expected %s",
				transactionID, *transaction.EntityID, tokenID,
			))
		}
		return nil
	})
}

// classifyMirrorError keeps retrying while the mirror node may still catch
// up: a 404, rate limiting, a 5xx or a transport failure. Any other HTTP
// status ends the poll.
func classifyMirrorError(err error) error {
	if mirror.IsNotFound(err) {
		return err
	}
	var requestErr *mirror.RequestError
	if !errors.As(err, &requestErr) {
		return err
	}
	if requestErr.StatusCode == http.StatusTooManyRequests || requestErr.StatusCode >= http.StatusInternalServerError {
		return err
	}
	return backoff.Permanent(err)
}

func (v *MirrorVerifier) poll(ctx context.Context, check func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = v.initialInterval
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = v.timeout

	if err := backoff.Retry(check, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("mirror verification failed: %w", err)
	}
	return nil
}
