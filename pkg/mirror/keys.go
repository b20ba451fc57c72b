package mirror

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	KeyTypeED25519         = "ED25519"
	KeyTypeECDSASecp256k1  = "ECDSA_SECP256K1"
	KeyTypeProtobufEncoded = "ProtobufEncoded"
)

// Matches reports whether the mirror-recorded key is the given public key.
// Secp256k1 keys are compared as points, so compressed and uncompressed
// encodings of the same key match.
func (k *TokenKey) Matches(publicKey hedera.PublicKey) (bool, error) {
	if k == nil {
		return false, nil
	}

	recorded, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(k.Key), "0x"))
	if err != nil {
		return false, fmt.Errorf("invalid %s key encoding: %w", k.Type, err)
	}
	expected := publicKey.BytesRaw()

	switch k.Type {
	case KeyTypeED25519:
		return bytes.Equal(recorded, expected), nil
	case KeyTypeECDSASecp256k1:
		recordedPoint, err := btcec.ParsePubKey(recorded)
		if err != nil {
			return false, fmt.Errorf("invalid secp256k1 key on mirror node: %w", err)
		}
		expectedPoint, err := btcec.ParsePubKey(expected)
		if err != nil {
			// An ED25519 key can never equal a secp256k1 key.
			return false, nil
		}
		return recordedPoint.IsEqual(expectedPoint), nil
	default:
		return false, fmt.Errorf("unsupported mirror key type %q", k.Type)
	}
}
