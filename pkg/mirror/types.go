package mirror

// TokenKey is the mirror node encoding of a key: an algorithm tag and the
// hex-encoded raw public key.
type TokenKey struct {
	Type string `json:"_type"`
	Key  string `json:"key"`
}

// TokenInfo is the /api/v1/tokens/{id} response.
type TokenInfo struct {
	TokenID           string    `json:"token_id"`
	Name              string    `json:"name"`
	Symbol            string    `json:"symbol"`
	Type              string    `json:"type"`
	Decimals          string    `json:"decimals"`
	InitialSupply     string    `json:"initial_supply"`
	TotalSupply       string    `json:"total_supply"`
	TreasuryAccountID string    `json:"treasury_account_id"`
	Memo              string    `json:"memo"`
	Deleted           bool      `json:"deleted"`
	AdminKey          *TokenKey `json:"admin_key"`
	SupplyKey         *TokenKey `json:"supply_key"`
	CreatedTimestamp  string    `json:"created_timestamp"`
	ModifiedTimestamp string    `json:"modified_timestamp"`
}

// AccountInfo is the subset of /api/v1/accounts/{id} a run checks.
type AccountInfo struct {
	Account string    `json:"account"`
	Key     *TokenKey `json:"key"`
	Memo    string    `json:"memo"`
	Deleted bool      `json:"deleted"`
}

// Transaction is one entry of the /api/v1/transactions/{id} response. Name
// is the transaction type, e.g. TOKENCREATION, and Result its status.
type Transaction struct {
	ChargedTxFee       int64      `json:"charged_tx_fee"`
	ConsensusTimestamp string     `json:"consensus_timestamp"`
	EntityID           *string    `json:"entity_id"`
	MaxFee             string     `json:"max_fee"`
	MemoBase64         string     `json:"memo_base64"`
	Name               string     `json:"name"`
	Node               string     `json:"node"`
	Result             string     `json:"result"`
	TransactionID      string     `json:"transaction_id"`
	Transfers          []Transfer `json:"transfers"`
}

// Transfer is an hbar movement recorded with a transaction.
type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Links        struct {
		Next string `json:"next"`
	} `json:"links"`
}
