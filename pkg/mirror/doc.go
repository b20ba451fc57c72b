// Package mirror is a small client for the Hedera mirror node REST API. It
// covers the lookups a token lifecycle run needs to confirm what consensus
// recorded: tokens, accounts and transactions.
//
// Responses may be brotli compressed; the client asks for it and decodes it.
package mirror
