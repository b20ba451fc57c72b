// Token Lifecycle for Go creates a fungible token on the Hedera network with
// a freshly generated admin key and then deletes it, demonstrating that a
// token deletion must be signed by the token's admin key in addition to the
// paying operator.
//
// # Packages
//
//   - pkg/tokens: request lifecycle, token create and delete steps, the
//     run orchestration and mirror node verification.
//   - pkg/mirror: a small Hedera mirror node REST client.
//   - pkg/shared: network selection, operator configuration from the
//     environment and .env files, key helpers and logging.
//
// # Running
//
// The examples/token-delete command runs the full create-then-delete flow:
//
//	OPERATOR_ID=0.0.1234 OPERATOR_KEY=302e... go run ./examples/token-delete
//
// Hedera documentation: https://docs.hedera.com/hedera/sdks-and-apis/sdks/token-service/delete-a-token
package tokenlifecycle
