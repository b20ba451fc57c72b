package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// KeyType names a signature algorithm supported by the ledger.
type KeyType string

const (
	KeyTypeED25519 KeyType = "ed25519"
	KeyTypeECDSA   KeyType = "ecdsa"
)

// ParseKeyType accepts the algorithm names used by Hedera tooling. An empty
// value selects ed25519.
func ParseKeyType(raw string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "ed25519":
		return KeyTypeED25519, nil
	case "ecdsa", "secp256k1", "ecdsa_secp256k1", "ecdsa-secp256k1":
		return KeyTypeECDSA, nil
	default:
		return "", fmt.Errorf("unsupported key type %q", raw)
	}
}

// GeneratePrivateKey creates a fresh key pair of the given type.
func GeneratePrivateKey(keyType KeyType) (hedera.PrivateKey, error) {
	switch keyType {
	case KeyTypeED25519, "":
		key, err := hedera.PrivateKeyGenerateEd25519()
		if err != nil {
			return hedera.PrivateKey{}, fmt.Errorf("failed to generate ed25519 key: %w", err)
		}
		return key, nil
	case KeyTypeECDSA:
		key, err := hedera.PrivateKeyGenerateEcdsa()
		if err != nil {
			return hedera.PrivateKey{}, fmt.Errorf("failed to generate ecdsa key: %w", err)
		}
		return key, nil
	default:
		return hedera.PrivateKey{}, fmt.Errorf("unsupported key type %q", keyType)
	}
}

// ParsePrivateKey decodes a DER or raw hex private key, trying ED25519,
// then ECDSA, then the SDK's generic decoder.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	ed25519Key, edErr := hedera.PrivateKeyFromStringEd25519(candidate)
	if edErr == nil {
		return ed25519Key, nil
	}

	ecdsaKey, ecdsaErr := hedera.PrivateKeyFromStringECDSA(candidate)
	if ecdsaErr == nil {
		return ecdsaKey, nil
	}

	genericKey, genericErr := hedera.PrivateKeyFromString(candidate)
	if genericErr == nil {
		return genericKey, nil
	}

	return hedera.PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ED25519 (%v), ECDSA (%v), or generic (%v)",
		edErr,
		ecdsaErr,
		genericErr,
	)
}
