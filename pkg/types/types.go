package types

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AuthorizationScheme identifies how a relayed request is authorized. The
// scheme is selected once per request and threaded through the whole
// pipeline; each variant carries exactly the data its verification path
// needs.
type AuthorizationScheme struct {
	Kind SchemeKind

	// WalletAddress is the user's smart contract wallet. Set only for
	// SchemeSmartWallet.
	WalletAddress common.Address
}

type SchemeKind string

const (
	// SchemeHostedCustody authorizes via an EIP-712 typed-data signature
	// produced by a custodial key (Magic users), verified against the
	// per-user nonce held by the target contract.
	SchemeHostedCustody SchemeKind = "hosted-custody"

	// SchemeSmartWallet authorizes via an EIP-191 signature over a call
	// hash, verified against the wallet contract's owner().
	SchemeSmartWallet SchemeKind = "smart-wallet"
)

// HostedCustody returns the scheme for custodial-key users.
func HostedCustody() AuthorizationScheme {
	return AuthorizationScheme{Kind: SchemeHostedCustody}
}

// SmartWallet returns the scheme for users acting through a deployed smart
// contract wallet.
func SmartWallet(wallet common.Address) AuthorizationScheme {
	return AuthorizationScheme{Kind: SchemeSmartWallet, WalletAddress: wallet}
}

type ActionKind string

const (
	ActionVote             ActionKind = "vote"
	ActionClaimReward      ActionKind = "claimReward"
	ActionCreateFundedPoll ActionKind = "createFundedPoll"
)

// Action is the intended contract call being authorized. Implementations are
// the three relayable action shapes below.
type Action interface {
	Kind() ActionKind
}

// VoteAction votes for an option on an existing poll.
type VoteAction struct {
	Poll   common.Address
	Option *big.Int
}

func (VoteAction) Kind() ActionKind { return ActionVote }

// ClaimAction claims the caller's token reward from a poll.
type ClaimAction struct {
	Poll common.Address
}

func (ClaimAction) Kind() ActionKind { return ActionClaimReward }

// CreateFundedPollAction deploys a new poll through the factory and funds its
// reward pool from the creator's token balance in the same transaction.
type CreateFundedPollAction struct {
	Title      string
	Options    []string
	Duration   *big.Int
	FundAmount *big.Int

	// FeeOverride, when non-nil, replaces the contract-computed platform fee
	// in the allowance check and the factory call. The factory still enforces
	// its own minimum on-chain.
	FeeOverride *big.Int

	// FeeAmount is the resolved platform fee: FeeOverride when set, otherwise
	// derived from the factory's fee rate. The executor fills this before
	// verification; it is part of the signed payload.
	FeeAmount *big.Int
}

func (CreateFundedPollAction) Kind() ActionKind { return ActionCreateFundedPoll }

// AuthorizationRequest is the per-call verification input: a claimed signer,
// the intended call, and the caller's signature. Built server-side from
// current chain state and discarded after the relay attempt.
type AuthorizationRequest struct {
	SignerClaim    common.Address
	TargetContract common.Address
	Scheme         AuthorizationScheme
	Action         Action
	Signature      []byte
}

// VerificationResult is produced once per AuthorizationRequest and never
// cached: the on-chain nonce advances after each successful relay, so a
// previous result says nothing about the next attempt.
type VerificationResult struct {
	Valid           bool
	RecoveredSigner *common.Address
}

// Invalid is the fail-closed result used for every internal verification
// failure.
func Invalid() *VerificationResult {
	return &VerificationResult{Valid: false, RecoveredSigner: nil}
}

// GasSettings is a versioned snapshot of fee parameters. Refreshes replace
// the whole value; submissions receive their own copy and never mutate it.
type GasSettings struct {
	MaxPriorityFeePerGas *big.Int
	MaxFeePerGas         *big.Int
	GasLimit             uint64

	// Version increments on every gas policy refresh.
	Version uint64
}

type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionConfirmed SubmissionStatus = "confirmed"
	SubmissionReverted  SubmissionStatus = "reverted"
	SubmissionRejected  SubmissionStatus = "rejected"
)

// Terminal reports whether the submission has reached a final state.
func (s SubmissionStatus) Terminal() bool {
	return s == SubmissionConfirmed || s == SubmissionReverted || s == SubmissionRejected
}

// RelaySubmission records one relay attempt for idempotency and observability.
// Created when a transaction is broadcast (or a request is rejected) and
// becomes terminal on receipt.
type RelaySubmission struct {
	RequestID string           `json:"request_id"`
	Operation string           `json:"operation"`
	TxHash    common.Hash      `json:"tx_hash"`
	Status    SubmissionStatus `json:"status"`

	// Confirmations the executor waited for: 1 normally, 2 for fund-moving
	// poll creation where the emitted poll address must survive a reorg.
	Confirmations uint64 `json:"confirmations"`

	GasSettings GasSettings `json:"gas_settings"`

	// PollAddress is set for confirmed poll creations.
	PollAddress *common.Address `json:"poll_address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
