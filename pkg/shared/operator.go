package shared

import (
	"fmt"
	"os"
	"strings"
)

// OperatorConfig is the payer identity and network a run is bound to.
type OperatorConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
	KeyType    KeyType
}

var (
	networkEnvKeys     = []string{"NETWORK", "HEDERA_NETWORK"}
	operatorIDEnvKeys  = []string{"OPERATOR_ID", "HEDERA_OPERATOR_ID", "HEDERA_ACCOUNT_ID", "ACCOUNT_ID"}
	operatorKeyEnvKeys = []string{"OPERATOR_KEY", "HEDERA_OPERATOR_KEY", "HEDERA_PRIVATE_KEY", "PRIVATE_KEY"}
)

// OperatorConfigFromEnv reads the operator identity from the process
// environment after loading the nearest .env file. Network-scoped variables
// such as TESTNET_OPERATOR_ID take precedence over the generic names.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	LoadDotEnv()

	network, err := NormalizeNetwork(FirstNonEmptyEnv(networkEnvKeys...))
	if err != nil {
		return OperatorConfig{}, err
	}

	scope := strings.ToUpper(network) + "_"
	accountID := FirstNonEmptyEnv(scoped(scope, operatorIDEnvKeys)...)
	if accountID == "" {
		accountID = FirstNonEmptyEnv(operatorIDEnvKeys...)
	}
	privateKey := FirstNonEmptyEnv(scoped(scope, operatorKeyEnvKeys)...)
	if privateKey == "" {
		privateKey = FirstNonEmptyEnv(operatorKeyEnvKeys...)
	}

	if accountID == "" {
		return OperatorConfig{}, fmt.Errorf("OPERATOR_ID is required")
	}
	if privateKey == "" {
		return OperatorConfig{}, fmt.Errorf("OPERATOR_KEY is required")
	}

	keyType, err := ParseKeyType(FirstNonEmptyEnv("KEY_TYPE"))
	if err != nil {
		return OperatorConfig{}, err
	}

	return OperatorConfig{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    network,
		KeyType:    keyType,
	}, nil
}

func scoped(prefix string, keys []string) []string {
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, "HEDERA_") || strings.HasPrefix(key, "OPERATOR_") {
			result = append(result, prefix+key)
		}
	}
	return result
}

// FirstNonEmptyEnv returns the first of keys set to a non-blank value.
func FirstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
