package tokens

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hashgraph-online/token-lifecycle-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
)

type recordingVerifier struct {
	created   []string
	deleted   []string
	failOn    string
	failError error
}

func (v *recordingVerifier) VerifyCreated(ctx context.Context, created CreateTokenResult) error {
	v.created = append(v.created, created.TokenID.String())
	if v.failOn == "created" {
		return v.failError
	}
	return nil
}

func (v *recordingVerifier) VerifyDeleted(ctx context.Context, deleted DeleteTokenResult) error {
	v.deleted = append(v.deleted, deleted.TokenID.String())
	if v.failOn == "deleted" {
		return v.failError
	}
	return nil
}

func newTestRunner(t *testing.T, ledger Ledger, operator Operator, verifier Verifier, output *bytes.Buffer) *Runner {
	t.Helper()
	config := RunnerConfig{
		Ledger:      ledger,
		OperatorKey: operator.Key,
		Network:     shared.NetworkTestnet,
		Logger:      zerolog.New(output),
	}
	if verifier != nil {
		config.Verifier = verifier
	}
	runner, err := NewRunner(config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return runner
}

func TestNewRunnerRequiresLedger(t *testing.T) {
	if _, err := NewRunner(RunnerConfig{}); err == nil {
		t.Fatal("expected error without ledger")
	}
}

func TestRunCreatesThenDeletesSameToken(t *testing.T) {
	operator := testOperator(t)
	ledger := newFakeLedger(operator)
	var output bytes.Buffer

	result, err := newTestRunner(t, ledger, operator, nil, &output).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code := ExitCode(err); code != ExitSuccess {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	expectedCalls := []string{
		"freeze token create",
		"submit token create",
		"freeze token delete",
		"submit token delete",
	}
	if !reflect.DeepEqual(ledger.calls, expectedCalls) {
		t.Fatalf("unexpected call order: %v", ledger.calls)
	}
	if result.TokenID != "0.0.1234" {
		t.Fatalf("unexpected token ID: %s", result.TokenID)
	}
	if got := ledger.requests[1].TokenID().String(); got != "0.0.1234" {
		t.Fatalf("deletion targeted %s, expected 0.0.1234", got)
	}
	if result.RunID == "" || result.AdminPublicKey == "" || result.KeyType != "ed25519" {
		t.Fatalf("incomplete result: %+v", result)
	}
	if result.OperatorAccountID != "0.0.1001" || result.Network != "testnet" {
		t.Fatalf("unexpected operator/network: %+v", result)
	}

	logs := output.String()
	created := strings.Index(logs, "token created successfully")
	deleted := strings.Index(logs, "token deleted successfully")
	if created < 0 || deleted < 0 || created > deleted {
		t.Fatalf("expected both success messages in order, got:\n%s", logs)
	}
	if !strings.Contains(logs, `"token_id":"0.0.1234"`) {
		t.Fatalf("expected token ID in logs, got:\n%s", logs)
	}
}

func TestRunDeleteUsesCreationAdminKey(t *testing.T) {
	operator := testOperator(t)
	ledger := newFakeLedger(operator)
	adminKey := testKey(t)
	var output bytes.Buffer

	runner, err := NewRunner(RunnerConfig{
		Ledger:      ledger,
		OperatorKey: operator.Key,
		KeyType:     shared.KeyTypeECDSA,
		Logger:      zerolog.New(&output),
		GenerateKey: func(keyType shared.KeyType) (hedera.PrivateKey, error) {
			if keyType != shared.KeyTypeECDSA {
				t.Fatalf("expected configured key type, got %s", keyType)
			}
			return adminKey, nil
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, request := range ledger.requests {
		if !request.SignedBy(adminKey.PublicKey()) {
			t.Fatalf("%s request not signed by admin key", request.Kind())
		}
	}
}

func TestRunStopsWhenCreationFails(t *testing.T) {
	operator := testOperator(t)
	ledger := newFakeLedger(operator)
	ledger.forcedStatus[RequestTokenCreate] = hedera.StatusInvalidSignature
	var output bytes.Buffer

	result, err := newTestRunner(t, ledger, operator, nil, &output).Run(context.Background())
	if !IsStatus(err, hedera.StatusInvalidSignature) {
		t.Fatalf("expected INVALID_SIGNATURE, got %v", err)
	}
	if ExitCode(err) == ExitSuccess {
		t.Fatal("expected non-zero exit code")
	}
	if !reflect.DeepEqual(ledger.submittedKinds(), []RequestKind{RequestTokenCreate}) {
		t.Fatalf("deletion must not be attempted, saw %v", ledger.calls)
	}
	for _, call := range ledger.calls {
		if strings.Contains(call, string(RequestTokenDelete)) {
			t.Fatalf("unexpected deletion call %q", call)
		}
	}
	if result.TokenID != "" {
		t.Fatalf("expected no token ID, got %s", result.TokenID)
	}
	if !strings.Contains(output.String(), "token creation failed with status: INVALID_SIGNATURE") {
		t.Fatalf("expected failing status name in logs, got:\n%s", output.String())
	}
}

func TestRunReportsDeletionFailure(t *testing.T) {
	operator := testOperator(t)
	ledger := newFakeLedger(operator)
	ledger.forcedStatus[RequestTokenDelete] = hedera.StatusTokenWasDeleted
	var output bytes.Buffer

	result, err := newTestRunner(t, ledger, operator, nil, &output).Run(context.Background())
	if !IsStatus(err, hedera.StatusTokenWasDeleted) {
		t.Fatalf("expected TOKEN_WAS_DELETED, got %v", err)
	}
	if ExitCode(err) != ExitFailure {
		t.Fatalf("expected exit code %d, got %d", ExitFailure, ExitCode(err))
	}
	if result.TokenID != "0.0.1234" || result.DeleteTransactionID != "" {
		t.Fatalf("unexpected partial result: %+v", result)
	}
	if !strings.Contains(output.String(), "token deletion failed with status: TOKEN_WAS_DELETED") {
		t.Fatalf("expected failing status name in logs, got:\n%s", output.String())
	}
}

func TestRunKeyGenerationFailure(t *testing.T) {
	operator := testOperator(t)
	ledger := newFakeLedger(operator)

	runner, err := NewRunner(RunnerConfig{
		Ledger:      ledger,
		OperatorKey: operator.Key,
		Logger:      zerolog.Nop(),
		GenerateKey: func(shared.KeyType) (hedera.PrivateKey, error) {
			return hedera.PrivateKey{}, errors.New("entropy unavailable")
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := runner.Run(context.Background()); err == nil {
		t.Fatal("expected key generation error")
	}
	if len(ledger.calls) != 0 {
		t.Fatalf("nothing should reach the ledger, saw %v", ledger.calls)
	}
}

func TestRunVerifiesWithMirror(t *testing.T) {
	operator := testOperator(t)
	ledger := newFakeLedger(operator)
	verifier := &recordingVerifier{}
	var output bytes.Buffer

	if _, err := newTestRunner(t, ledger, operator, verifier, &output).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(verifier.created, []string{"0.0.1234"}) || !reflect.DeepEqual(verifier.deleted, []string{"0.0.1234"}) {
		t.Fatalf("unexpected verifications: created=%v deleted=%v", verifier.created, verifier.deleted)
	}
}

func TestRunVerificationFailureStopsBeforeDelete(t *testing.T) {
	operator := testOperator(t)
	ledger := newFakeLedger(operator)
	verifier := &recordingVerifier{failOn: "created", failError: errors.New("admin key mismatch")}
	var output bytes.Buffer

	_, err := newTestRunner(t, ledger, operator, verifier, &output).Run(context.Background())
	if err == nil {
		t.Fatal("expected verification error")
	}
	if ExitCode(err) != ExitFailure {
		t.Fatalf("expected exit code %d, got %d", ExitFailure, ExitCode(err))
	}
	if len(ledger.requests) != 1 {
		t.Fatalf("deletion must not be attempted after failed verification, saw %v", ledger.calls)
	}
}

func TestExecuteRejectsBadOperator(t *testing.T) {
	cases := []Config{
		{Operator: shared.OperatorConfig{Network: "testnet", AccountID: "not-an-account", PrivateKey: "abc"}},
		{Operator: shared.OperatorConfig{Network: "testnet", AccountID: "0.0.1001", PrivateKey: "garbage"}},
		{Operator: shared.OperatorConfig{Network: "devnet", AccountID: "0.0.1001", PrivateKey: "garbage"}},
	}
	for _, config := range cases {
		_, err := Execute(context.Background(), config, zerolog.Nop())
		if ExitCode(err) != ExitConfig {
			t.Fatalf("expected configuration exit code for %+v, got %v", config.Operator, err)
		}
	}
}
