package tokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashgraph-online/token-lifecycle-go/pkg/mirror"
	"github.com/hashgraph-online/token-lifecycle-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
)

// RunnerConfig holds the collaborators and settings of a Runner. Ledger is
// required.
type RunnerConfig struct {
	Ledger      Ledger
	OperatorKey hedera.PrivateKey
	Network     string
	KeyType     shared.KeyType
	Token       CreateTokenOptions
	// Verifier is optional; when nil no read-path checks are made.
	Verifier Verifier
	Logger   zerolog.Logger
	// GenerateKey defaults to shared.GeneratePrivateKey.
	GenerateKey func(shared.KeyType) (hedera.PrivateKey, error)
}

// Runner creates a token and then deletes it with the same admin key.
type Runner struct {
	ledger      Ledger
	operatorKey hedera.PrivateKey
	network     string
	keyType     shared.KeyType
	token       CreateTokenOptions
	verifier    Verifier
	logger      zerolog.Logger
	generateKey func(shared.KeyType) (hedera.PrivateKey, error)
}

// NewRunner applies defaults: ed25519 admin keys generated by
// shared.GeneratePrivateKey.
func NewRunner(config RunnerConfig) (*Runner, error) {
	if config.Ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	generateKey := config.GenerateKey
	if generateKey == nil {
		generateKey = shared.GeneratePrivateKey
	}
	keyType := config.KeyType
	if keyType == "" {
		keyType = shared.KeyTypeED25519
	}

	return &Runner{
		ledger:      config.Ledger,
		operatorKey: config.OperatorKey,
		network:     config.Network,
		keyType:     keyType,
		token:       config.Token,
		verifier:    config.Verifier,
		logger:      config.Logger,
		generateKey: generateKey,
	}, nil
}

// Run performs the two steps in order. Deletion is only attempted after a
// successful creation and always targets the token creation returned. The
// returned result holds whatever was completed before a failure.
func (r *Runner) Run(ctx context.Context) (RunResult, error) {
	result := RunResult{
		RunID:             uuid.NewString(),
		Network:           r.network,
		OperatorAccountID: r.ledger.OperatorAccountID().String(),
		KeyType:           string(r.keyType),
	}
	logger := r.logger.With().Str("run_id", result.RunID).Logger()
	logger.Info().Str("operator_id", result.OperatorAccountID).Msg("client set up with operator")

	logger.Info().Str("key_type", result.KeyType).Msg("generating a new admin key for the token")
	adminKey, err := r.generateKey(r.keyType)
	if err != nil {
		logger.Error().Err(err).Msg("admin key generation failed")
		return result, fmt.Errorf("failed to generate admin key: %w", err)
	}
	result.AdminPublicKey = adminKey.PublicKey().String()
	logger.Info().Str("admin_public_key", result.AdminPublicKey).Msg("admin key generated successfully")

	token := r.token.withDefaults()
	logger.Info().Str("name", token.Name).Str("symbol", token.Symbol).Msg("STEP 1: creating a new token")
	created, err := CreateToken(ctx, r.ledger, r.operatorKey, adminKey, token)
	if err != nil {
		logStepFailure(logger, "token creation", err)
		return result, err
	}
	result.TokenID = created.TokenID.String()
	result.CreateTransactionID = created.TransactionID
	logger.Info().
		Str("token_id", result.TokenID).
		Str("transaction_id", created.TransactionID).
		Msg("token created successfully")

	if r.verifier != nil {
		if err := r.verifier.VerifyCreated(ctx, created); err != nil {
			logStepFailure(logger, "token creation verification", err)
			return result, err
		}
		logger.Debug().Str("token_id", result.TokenID).Msg("mirror node confirms token creation")
	}

	logger.Info().Str("token_id", result.TokenID).Msg("STEP 2: deleting token")
	deleted, err := DeleteToken(ctx, r.ledger, r.operatorKey, adminKey, created.TokenID)
	if err != nil {
		logStepFailure(logger, "token deletion", err)
		return result, err
	}
	result.DeleteTransactionID = deleted.TransactionID
	logger.Info().
		Str("token_id", result.TokenID).
		Str("transaction_id", deleted.TransactionID).
		Msg("token deleted successfully")

	if r.verifier != nil {
		if err := r.verifier.VerifyDeleted(ctx, deleted); err != nil {
			logStepFailure(logger, "token deletion verification", err)
			return result, err
		}
		logger.Debug().Str("token_id", result.TokenID).Msg("mirror node confirms token deletion")
	}

	return result, nil
}

func logStepFailure(logger zerolog.Logger, step string, err error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		logger.Error().
			Str("status", statusErr.Status.String()).
			Str("transaction_id", statusErr.TransactionID).
			Msgf("%s failed with status: %s", step, statusErr.Status.String())
		return
	}
	logger.Error().Err(err).Msgf("error during %s", step)
}

// Execute wires a run from config: operator parsing, the Hedera ledger, an
// optional mirror verifier, then Runner.Run.
func Execute(ctx context.Context, config Config, logger zerolog.Logger) (RunResult, error) {
	network, err := shared.NormalizeNetwork(config.Operator.Network)
	if err != nil {
		return RunResult{}, &ConfigError{Err: err}
	}
	logger.Info().Str("network", network).Msg("connecting to Hedera network")

	operator, err := ParseOperator(config.Operator.AccountID, config.Operator.PrivateKey)
	if err != nil {
		return RunResult{}, err
	}

	ledger, err := NewHederaLedger(LedgerConfig{
		Network:        network,
		Operator:       operator,
		RequestTimeout: config.RequestTimeout,
		MaxAttempts:    config.MaxAttempts,
	})
	if err != nil {
		return RunResult{}, err
	}
	defer func() {
		if closeErr := ledger.Close(); closeErr != nil {
			logger.Debug().Err(closeErr).Msg("failed to close Hedera client")
		}
	}()

	var verifier Verifier
	if config.VerifyWithMirror {
		mirrorClient, err := mirror.NewClient(mirror.Config{
			Network: network,
			BaseURL: config.MirrorBaseURL,
			APIKey:  config.MirrorAPIKey,
		})
		if err != nil {
			return RunResult{}, &ConfigError{Err: err}
		}
		verifier = NewMirrorVerifier(mirrorClient, config.VerifyTimeout)
	}

	runner, err := NewRunner(RunnerConfig{
		Ledger:      ledger,
		OperatorKey: operator.Key,
		Network:     network,
		KeyType:     config.Operator.KeyType,
		Token:       config.Token,
		Verifier:    verifier,
		Logger:      logger,
	})
	if err != nil {
		return RunResult{}, err
	}
	return runner.Run(ctx)
}
