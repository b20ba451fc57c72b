package tokens

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func testOperator(t *testing.T) Operator {
	t.Helper()
	key, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate operator key: %v", err)
	}
	return Operator{AccountID: hedera.AccountID{Account: 1001}, Key: key}
}

func testKey(t *testing.T) hedera.PrivateKey {
	t.Helper()
	key, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return key
}
