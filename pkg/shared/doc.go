// Package shared provides the pieces every token lifecycle run needs before
// it talks to the ledger: network normalisation, operator configuration from
// the environment (including a .env file), Hedera client construction, key
// parsing and generation, and logger construction.
//
// # Environment Variables
//
//	NETWORK       testnet (default), mainnet or previewnet
//	OPERATOR_ID   payer account, e.g. 0.0.1234
//	OPERATOR_KEY  payer private key (DER or raw hex, ED25519 or ECDSA)
//	KEY_TYPE      algorithm for generated keys: ed25519 (default) or ecdsa
//
// The HEDERA_* aliases and network-scoped forms such as TESTNET_OPERATOR_ID
// are also accepted.
package shared
