package contractCaller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

// CreatePollParams carries everything the factory needs to deploy and fund a
// poll on a creator's behalf.
type CreatePollParams struct {
	Creator    common.Address
	Title      string
	Options    []string
	Duration   *big.Int
	FundAmount *big.Int
	FeeAmount  *big.Int
}

// RevertError is returned when a submitted transaction was mined but
// reverted. Reason is best-effort: extracted by re-simulating the call at the
// receipt block, empty when the node won't say.
type RevertError struct {
	TxHash common.Hash
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("transaction %s reverted", e.TxHash.Hex())
	}
	return fmt.Sprintf("transaction %s reverted: %s", e.TxHash.Hex(), e.Reason)
}

// IContractCaller is the relay core's whole view of the chain: read-only
// state queries, calldata encoding for smart-wallet inner calls, and
// platform-signed submissions. The split keeps the executor testable with a
// counting mock.
type IContractCaller interface {
	ChainID() *big.Int
	PollFactoryAddress() common.Address

	// Read-only state queries

	GetPollNonce(ctx context.Context, poll, user common.Address) (*big.Int, error)
	GetFactoryNonce(ctx context.Context, user common.Address) (*big.Int, error)
	GetWalletOwner(ctx context.Context, wallet common.Address) (common.Address, error)

	// GetWalletForOwner returns the deployed smart wallet for an owner, or
	// the zero address if none exists yet.
	GetWalletForOwner(ctx context.Context, owner common.Address) (common.Address, error)

	GetPlatformFeeRate(ctx context.Context) (*big.Int, error)

	// GetRewardTokenAllowance returns the reward-token allowance the owner
	// has granted to the poll factory.
	GetRewardTokenAllowance(ctx context.Context, owner common.Address) (*big.Int, error)

	HasVoted(ctx context.Context, poll, user common.Address) (bool, error)
	CanClaimReward(ctx context.Context, poll, user common.Address) (bool, error)

	// Calldata encoding for the smart-wallet execute() path

	EncodeVoteCall(option *big.Int) ([]byte, error)
	EncodeClaimRewardCall() ([]byte, error)
	EncodeCreatePollWithFundsCall(params *CreatePollParams) ([]byte, error)

	// Platform-signed submissions. Each waits for the given confirmation
	// count and returns a *RevertError when the receipt status is 0.

	SubmitMetaVote(ctx context.Context, poll, voter common.Address, option *big.Int, v uint8, r, s [32]byte, gas types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error)

	SubmitMetaClaimReward(ctx context.Context, poll, claimer common.Address, v uint8, r, s [32]byte, gas types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error)

	SubmitMetaCreatePollWithFunds(ctx context.Context, params *CreatePollParams, v uint8, r, s [32]byte, gas types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error)

	SubmitWalletExecute(ctx context.Context, wallet, target common.Address, value *big.Int, data, signature []byte, gas types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error)

	SubmitCreateWallet(ctx context.Context, owner common.Address, gas types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error)

	// ParsePollCreated extracts the new poll address from a factory receipt,
	// accepting either PollCreated or PollCreatedAndFunded.
	ParsePollCreated(receipt *ethereumTypes.Receipt) (common.Address, error)
}
