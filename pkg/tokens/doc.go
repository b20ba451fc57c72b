// Package tokens creates a fungible token on Hedera and then deletes it
// again, the smallest complete exercise of a token's admin key.
//
// Each transaction is a Request that moves through
// draft -> frozen -> signed -> submitted -> receipted. Both steps freeze
// against a Ledger, sign with the operator key and the generated admin key,
// submit, and require a SUCCESS receipt. Failures are returned as errors:
// *StatusError for a non-SUCCESS status, *ConfigError for bad configuration.
// ExitCode turns either into a process exit code.
//
// HederaLedger is the production Ledger backed by hedera-sdk-go. Tests and
// dry runs can supply their own implementation.
package tokens
