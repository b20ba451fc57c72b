package tokens

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// RequestKind names the transaction a Request carries.
type RequestKind string

const (
	RequestTokenCreate RequestKind = "token create"
	RequestTokenDelete RequestKind = "token delete"
)

// RequestState is the lifecycle position of a Request.
type RequestState int

const (
	StateDraft RequestState = iota
	StateFrozen
	StateSigned
	StateSubmitted
	StateReceipted
)

func (s RequestState) String() string {
	switch s {
	case StateDraft:
		return "draft"
	case StateFrozen:
		return "frozen"
	case StateSigned:
		return "signed"
	case StateSubmitted:
		return "submitted"
	case StateReceipted:
		return "receipted"
	default:
		return fmt.Sprintf("RequestState(%d)", int(s))
	}
}

// TokenDescriptor is the content of a token creation request.
type TokenDescriptor struct {
	Name              string
	Symbol            string
	InitialSupply     uint64
	Decimals          uint
	TreasuryAccountID hedera.AccountID
	AdminKey          hedera.PublicKey
	Memo              string
}

// Request wraps a Hedera token transaction and enforces the order
// draft -> frozen -> signed -> submitted -> receipted. Signatures are only
// accepted once the body is frozen and every signer is recorded.
type Request struct {
	kind       RequestKind
	state      RequestState
	body       requestBody
	descriptor TokenDescriptor
	tokenID    hedera.TokenID
	signers    []hedera.PublicKey
	status     hedera.Status
}

type requestBody interface {
	freezeWith(client *hedera.Client) error
	freeze(transactionID hedera.TransactionID, nodeAccountIDs []hedera.AccountID) error
	sign(key hedera.PrivateKey)
	execute(client *hedera.Client) (hedera.TransactionResponse, error)
	transactionID() hedera.TransactionID
	toBytes() ([]byte, error)
}

// NewCreateRequest builds a draft fungible token creation request.
func NewCreateRequest(descriptor TokenDescriptor) (*Request, error) {
	if strings.TrimSpace(descriptor.Name) == "" {
		return nil, fmt.Errorf("token name is required")
	}
	if strings.TrimSpace(descriptor.Symbol) == "" {
		return nil, fmt.Errorf("token symbol is required")
	}
	if descriptor.TreasuryAccountID == (hedera.AccountID{}) {
		return nil, fmt.Errorf("treasury account ID is required")
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(descriptor.Name).
		SetTokenSymbol(descriptor.Symbol).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetInitialSupply(descriptor.InitialSupply).
		SetDecimals(descriptor.Decimals).
		SetTreasuryAccountID(descriptor.TreasuryAccountID).
		SetAdminKey(descriptor.AdminKey)
	if strings.TrimSpace(descriptor.Memo) != "" {
		transaction.SetTokenMemo(descriptor.Memo)
	}

	return &Request{
		kind:       RequestTokenCreate,
		body:       tokenCreateBody{transaction: transaction},
		descriptor: descriptor,
	}, nil
}

// NewDeleteRequest builds a draft token deletion request.
func NewDeleteRequest(tokenID hedera.TokenID) (*Request, error) {
	if tokenID == (hedera.TokenID{}) {
		return nil, fmt.Errorf("token ID is required")
	}

	return &Request{
		kind:    RequestTokenDelete,
		body:    tokenDeleteBody{transaction: hedera.NewTokenDeleteTransaction().SetTokenID(tokenID)},
		tokenID: tokenID,
	}, nil
}

// Kind reports whether the request creates or deletes a token.
func (r *Request) Kind() RequestKind {
	return r.kind
}

// State is the request's current lifecycle position.
func (r *Request) State() RequestState {
	return r.state
}

// Descriptor returns the creation content. It is only meaningful for
// RequestTokenCreate.
func (r *Request) Descriptor() TokenDescriptor {
	return r.descriptor
}

// TokenID returns the target of a RequestTokenDelete.
func (r *Request) TokenID() hedera.TokenID {
	return r.tokenID
}

// Status is the receipt status once the request is receipted.
func (r *Request) Status() hedera.Status {
	return r.status
}

// FreezeWith binds the request to the client's network and operator.
func (r *Request) FreezeWith(client *hedera.Client) error {
	if err := r.expect(StateDraft, "freeze"); err != nil {
		return err
	}
	if err := r.body.freezeWith(client); err != nil {
		return fmt.Errorf("failed to freeze %s transaction: %w", r.kind, err)
	}
	r.state = StateFrozen
	return nil
}

// FreezeWithTransactionID freezes without a client, using an explicit
// transaction ID and node set.
func (r *Request) FreezeWithTransactionID(
	transactionID hedera.TransactionID,
	nodeAccountIDs []hedera.AccountID,
) error {
	if err := r.expect(StateDraft, "freeze"); err != nil {
		return err
	}
	if len(nodeAccountIDs) == 0 {
		return fmt.Errorf("at least one node account ID is required")
	}
	if err := r.body.freeze(transactionID, nodeAccountIDs); err != nil {
		return fmt.Errorf("failed to freeze %s transaction: %w", r.kind, err)
	}
	r.state = StateFrozen
	return nil
}

// Sign adds a signature. Signing is additive and only allowed after freeze.
func (r *Request) Sign(key hedera.PrivateKey) error {
	if r.state != StateFrozen && r.state != StateSigned {
		return fmt.Errorf("%w: cannot sign %s request in state %s", ErrInvalidState, r.kind, r.state)
	}
	publicKey := key.PublicKey()
	if r.SignedBy(publicKey) {
		return nil
	}
	r.body.sign(key)
	r.signers = append(r.signers, publicKey)
	r.state = StateSigned
	return nil
}

// SignedBy reports whether key has signed the request.
func (r *Request) SignedBy(key hedera.PublicKey) bool {
	expected := key.String()
	for _, signer := range r.signers {
		if signer.String() == expected {
			return true
		}
	}
	return false
}

// Signers returns the public keys that have signed, in signing order.
func (r *Request) Signers() []hedera.PublicKey {
	signers := make([]hedera.PublicKey, len(r.signers))
	copy(signers, r.signers)
	return signers
}

// TransactionID returns the SDK-format ID once the request is frozen.
func (r *Request) TransactionID() string {
	if r.state == StateDraft {
		return ""
	}
	return r.body.transactionID().String()
}

// Bytes serializes the frozen transaction with its signatures.
func (r *Request) Bytes() ([]byte, error) {
	if r.state == StateDraft {
		return nil, fmt.Errorf("%w: %s request is not frozen", ErrInvalidState, r.kind)
	}
	return r.body.toBytes()
}

func (r *Request) expect(state RequestState, action string) error {
	if r.state != state {
		return fmt.Errorf("%w: cannot %s %s request in state %s", ErrInvalidState, action, r.kind, r.state)
	}
	return nil
}

type tokenCreateBody struct {
	transaction *hedera.TokenCreateTransaction
}

func (b tokenCreateBody) freezeWith(client *hedera.Client) error {
	_, err := b.transaction.FreezeWith(client)
	return err
}

func (b tokenCreateBody) freeze(transactionID hedera.TransactionID, nodeAccountIDs []hedera.AccountID) error {
	_, err := b.transaction.
		SetTransactionID(transactionID).
		SetNodeAccountIDs(nodeAccountIDs).
		Freeze()
	return err
}

func (b tokenCreateBody) sign(key hedera.PrivateKey) {
	b.transaction.Sign(key)
}

func (b tokenCreateBody) execute(client *hedera.Client) (hedera.TransactionResponse, error) {
	return b.transaction.Execute(client)
}

func (b tokenCreateBody) transactionID() hedera.TransactionID {
	return b.transaction.GetTransactionID()
}

func (b tokenCreateBody) toBytes() ([]byte, error) {
	return b.transaction.ToBytes()
}

type tokenDeleteBody struct {
	transaction *hedera.TokenDeleteTransaction
}

func (b tokenDeleteBody) freezeWith(client *hedera.Client) error {
	_, err := b.transaction.FreezeWith(client)
	return err
}

func (b tokenDeleteBody) freeze(transactionID hedera.TransactionID, nodeAccountIDs []hedera.AccountID) error {
	_, err := b.transaction.
		SetTransactionID(transactionID).
		SetNodeAccountIDs(nodeAccountIDs).
		Freeze()
	return err
}

func (b tokenDeleteBody) sign(key hedera.PrivateKey) {
	b.transaction.Sign(key)
}

func (b tokenDeleteBody) execute(client *hedera.Client) (hedera.TransactionResponse, error) {
	return b.transaction.Execute(client)
}

func (b tokenDeleteBody) transactionID() hedera.TransactionID {
	return b.transaction.GetTransactionID()
}

func (b tokenDeleteBody) toBytes() ([]byte, error) {
	return b.transaction.ToBytes()
}
