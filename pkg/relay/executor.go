package relay

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/gasPolicy"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/persistence"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/signing"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

const (
	// confirmationsDefault is enough for votes and claims: nothing downstream
	// depends on the receipt surviving a reorg.
	confirmationsDefault uint64 = 1

	// confirmationsPollCreation is used when funds move and the emitted poll
	// address is handed back to the client.
	confirmationsPollCreation uint64 = 2

	// feeRateDenominator converts the factory's basis-point fee rate into an
	// amount.
	feeRateDenominator = 10_000

	// DefaultWalletPropagationWait is how long a fresh wallet deployment is
	// given to propagate before a dependent relay. A heuristic, not a
	// guarantee; configurable for slow networks.
	DefaultWalletPropagationWait = 1500 * time.Millisecond
)

// ISignatureVerifier gates every relay. Satisfied by
// *verifier.SignatureVerifier.
type ISignatureVerifier interface {
	Verify(ctx context.Context, req *types.AuthorizationRequest) *types.VerificationResult
}

// IGasPolicy supplies fee settings per submission. Satisfied by
// *gasPolicy.Policy.
type IGasPolicy interface {
	ForOperation(op gasPolicy.Operation) types.GasSettings
}

type ExecutorConfig struct {
	// WalletPropagationWait is the pause after a wallet deployment before a
	// dependent relay is attempted. Zero selects the default.
	WalletPropagationWait time.Duration
}

// RelayExecutor orchestrates one relayed action end to end: verify the user's
// signature, build the platform-signed transaction, submit, await
// confirmation, classify the outcome. It never writes to the chain before
// verification succeeds, and it never retries on its own.
type RelayExecutor struct {
	caller   contractCaller.IContractCaller
	verifier ISignatureVerifier
	gas      IGasPolicy
	store    persistence.ISubmissionStore
	logger   *zap.Logger

	walletPropagationWait time.Duration
}

func NewRelayExecutor(
	caller contractCaller.IContractCaller,
	verifier ISignatureVerifier,
	gas IGasPolicy,
	store persistence.ISubmissionStore,
	cfg *ExecutorConfig,
	logger *zap.Logger,
) *RelayExecutor {
	wait := DefaultWalletPropagationWait
	if cfg != nil && cfg.WalletPropagationWait > 0 {
		wait = cfg.WalletPropagationWait
	}
	return &RelayExecutor{
		caller:                caller,
		verifier:              verifier,
		gas:                   gas,
		store:                 store,
		logger:                logger,
		walletPropagationWait: wait,
	}
}

// VoteRequest relays a vote on an existing poll.
type VoteRequest struct {
	// RequestID makes the relay idempotent; generated when empty.
	RequestID string
	Poll      common.Address
	Voter     common.Address
	Option    *big.Int
	Scheme    types.AuthorizationScheme
	// Signature is the user's 0x-prefixed hex signature.
	Signature string
}

// ClaimRequest relays a reward claim from a poll.
type ClaimRequest struct {
	RequestID string
	Poll      common.Address
	Claimer   common.Address
	Scheme    types.AuthorizationScheme
	Signature string
}

// CreateFundedPollRequest relays a poll creation funded from the creator's
// token balance.
type CreateFundedPollRequest struct {
	RequestID  string
	Creator    common.Address
	Title      string
	Options    []string
	Duration   *big.Int
	FundAmount *big.Int
	// FeeOverride, when non-nil, replaces the rate-derived platform fee. The
	// factory enforces its own minimum on-chain.
	FeeOverride *big.Int
	Scheme      types.AuthorizationScheme
	Signature   string
}

// RelayResult is the successful outcome of a relay.
type RelayResult struct {
	RequestID string
	TxHash    common.Hash

	// PollAddress is set for poll creations.
	PollAddress *common.Address
}

// Vote relays a vote: hosted-custody users go through the poll's metaVote,
// smart-wallet users through their wallet's execute.
func (re *RelayExecutor) Vote(ctx context.Context, req *VoteRequest) (*RelayResult, error) {
	requestID := re.ensureRequestID(req.RequestID)
	if result, done, err := re.priorOutcome(requestID); done {
		return result, err
	}

	sig, err := signing.ParseSignature(req.Signature)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	// The contract sees the wallet as the voter on the execute path.
	actor := req.Voter
	if req.Scheme.Kind == types.SchemeSmartWallet {
		actor = req.Scheme.WalletAddress
	}

	return re.relay(ctx, &relayPlan{
		requestID:     requestID,
		operation:     "vote",
		gasOperation:  gasPolicy.OperationSimpleCall,
		confirmations: confirmationsDefault,
		signature:     sig,
		authorization: &types.AuthorizationRequest{
			SignerClaim:    req.Voter,
			TargetContract: req.Poll,
			Scheme:         req.Scheme,
			Action:         types.VoteAction{Poll: req.Poll, Option: req.Option},
			Signature:      sig,
		},
		preflight: func(ctx context.Context) error {
			return re.checkNotVoted(ctx, req.Poll, actor)
		},
		submitHosted: func(ctx context.Context, v uint8, r, s [32]byte, gas types.GasSettings) (*ethereumTypes.Receipt, error) {
			return re.caller.SubmitMetaVote(ctx, req.Poll, req.Voter, req.Option, v, r, s, gas, confirmationsDefault)
		},
		encodeInner: func() (common.Address, []byte, error) {
			data, err := re.caller.EncodeVoteCall(req.Option)
			return req.Poll, data, err
		},
	})
}

// ClaimReward relays a reward claim.
func (re *RelayExecutor) ClaimReward(ctx context.Context, req *ClaimRequest) (*RelayResult, error) {
	requestID := re.ensureRequestID(req.RequestID)
	if result, done, err := re.priorOutcome(requestID); done {
		return result, err
	}

	sig, err := signing.ParseSignature(req.Signature)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	actor := req.Claimer
	if req.Scheme.Kind == types.SchemeSmartWallet {
		actor = req.Scheme.WalletAddress
	}

	return re.relay(ctx, &relayPlan{
		requestID:     requestID,
		operation:     "claimReward",
		gasOperation:  gasPolicy.OperationSimpleCall,
		confirmations: confirmationsDefault,
		signature:     sig,
		authorization: &types.AuthorizationRequest{
			SignerClaim:    req.Claimer,
			TargetContract: req.Poll,
			Scheme:         req.Scheme,
			Action:         types.ClaimAction{Poll: req.Poll},
			Signature:      sig,
		},
		preflight: func(ctx context.Context) error {
			return re.checkClaimEligibility(ctx, req.Poll, actor)
		},
		submitHosted: func(ctx context.Context, v uint8, r, s [32]byte, gas types.GasSettings) (*ethereumTypes.Receipt, error) {
			return re.caller.SubmitMetaClaimReward(ctx, req.Poll, req.Claimer, v, r, s, gas, confirmationsDefault)
		},
		encodeInner: func() (common.Address, []byte, error) {
			data, err := re.caller.EncodeClaimRewardCall()
			return req.Poll, data, err
		},
	})
}

// CreateFundedPoll relays a funded poll creation. On top of the uniform
// algorithm it resolves the platform fee, checks the creator's token
// allowance covers fund + fee before anything is submitted, waits an extra
// confirmation, and extracts the new poll's address from the creation event.
func (re *RelayExecutor) CreateFundedPoll(ctx context.Context, req *CreateFundedPollRequest) (*RelayResult, error) {
	requestID := re.ensureRequestID(req.RequestID)
	if result, done, err := re.priorOutcome(requestID); done {
		return result, err
	}

	sig, err := signing.ParseSignature(req.Signature)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	fee, err := re.resolveFee(ctx, req.FundAmount, req.FeeOverride)
	if err != nil {
		return nil, err
	}

	// The on-chain creator is whoever the factory sees as msg.sender's
	// principal: the custodial address directly, or the smart wallet.
	actor := req.Creator
	if req.Scheme.Kind == types.SchemeSmartWallet {
		actor = req.Scheme.WalletAddress
	}

	params := &contractCaller.CreatePollParams{
		Creator:    actor,
		Title:      req.Title,
		Options:    req.Options,
		Duration:   req.Duration,
		FundAmount: req.FundAmount,
		FeeAmount:  fee,
	}

	return re.relay(ctx, &relayPlan{
		requestID:     requestID,
		operation:     "createFundedPoll",
		gasOperation:  gasPolicy.OperationPollCreation,
		confirmations: confirmationsPollCreation,
		signature:     sig,
		extractPoll:   true,
		authorization: &types.AuthorizationRequest{
			SignerClaim:    req.Creator,
			TargetContract: re.caller.PollFactoryAddress(),
			Scheme:         req.Scheme,
			Action: types.CreateFundedPollAction{
				Title:       req.Title,
				Options:     req.Options,
				Duration:    req.Duration,
				FundAmount:  req.FundAmount,
				FeeOverride: req.FeeOverride,
				FeeAmount:   fee,
			},
			Signature: sig,
		},
		preflight: func(ctx context.Context) error {
			return re.checkAllowance(ctx, actor, req.FundAmount, fee)
		},
		submitHosted: func(ctx context.Context, v uint8, r, s [32]byte, gas types.GasSettings) (*ethereumTypes.Receipt, error) {
			return re.caller.SubmitMetaCreatePollWithFunds(ctx, params, v, r, s, gas, confirmationsPollCreation)
		},
		encodeInner: func() (common.Address, []byte, error) {
			data, err := re.caller.EncodeCreatePollWithFundsCall(params)
			return re.caller.PollFactoryAddress(), data, err
		},
	})
}

// EnsureWallet returns the owner's deployed smart wallet, deploying one if
// none exists. After a fresh deployment it pauses for the configured
// propagation window so a dependent relay doesn't race a not-yet-visible
// wallet.
func (re *RelayExecutor) EnsureWallet(ctx context.Context, owner common.Address) (common.Address, error) {
	wallet, err := re.caller.GetWalletForOwner(ctx, owner)
	if err != nil {
		return common.Address{}, &BlockchainError{Reason: fmt.Sprintf("failed to look up wallet: %v", err), Err: err}
	}
	if wallet != (common.Address{}) {
		return wallet, nil
	}

	re.logger.Sugar().Infow("Deploying smart wallet",
		zap.String("owner", owner.Hex()),
	)

	gas := re.gas.ForOperation(gasPolicy.OperationWalletDeploy)
	if _, err := re.caller.SubmitCreateWallet(ctx, owner, gas, confirmationsDefault); err != nil {
		var revertErr *contractCaller.RevertError
		if errors.As(err, &revertErr) {
			return common.Address{}, classifyRevert(revertErr)
		}
		return common.Address{}, &BlockchainError{Reason: fmt.Sprintf("wallet deployment failed: %v", err), Err: err}
	}

	wallet, err = re.caller.GetWalletForOwner(ctx, owner)
	if err != nil {
		return common.Address{}, &BlockchainError{Reason: fmt.Sprintf("failed to look up wallet after deployment: %v", err), Err: err}
	}
	if wallet == (common.Address{}) {
		return common.Address{}, &BlockchainError{Reason: "wallet not visible after deployment"}
	}

	select {
	case <-ctx.Done():
		return common.Address{}, fmt.Errorf("wallet propagation wait cancelled: %w", ctx.Err())
	case <-time.After(re.walletPropagationWait):
	}
	return wallet, nil
}

// relayPlan is one relay's worth of operation-specific behavior; relay()
// supplies the uniform algorithm around it.
type relayPlan struct {
	requestID     string
	operation     string
	gasOperation  gasPolicy.Operation
	confirmations uint64
	signature     []byte
	authorization *types.AuthorizationRequest

	// preflight runs after verification and before any chain write.
	preflight func(ctx context.Context) error

	// submitHosted submits the direct meta-transaction.
	submitHosted func(ctx context.Context, v uint8, r, s [32]byte, gas types.GasSettings) (*ethereumTypes.Receipt, error)

	// encodeInner builds the target and calldata a smart wallet forwards
	// through execute().
	encodeInner func() (common.Address, []byte, error)

	// extractPoll pulls the created poll's address out of the receipt.
	extractPoll bool
}

func (re *RelayExecutor) relay(ctx context.Context, plan *relayPlan) (*RelayResult, error) {
	verification := re.verifier.Verify(ctx, plan.authorization)
	if !verification.Valid {
		re.logger.Sugar().Warnw("Relay rejected: signature verification failed",
			zap.String("requestId", plan.requestID),
			zap.String("operation", plan.operation),
			zap.String("signerClaim", plan.authorization.SignerClaim.Hex()),
		)
		now := time.Now()
		re.record(&types.RelaySubmission{
			RequestID: plan.requestID,
			Operation: plan.operation,
			Status:    types.SubmissionRejected,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return nil, &AuthorizationError{Reason: "signature verification failed"}
	}

	if plan.preflight != nil {
		if err := plan.preflight(ctx); err != nil {
			return nil, err
		}
	}

	gas := re.gas.ForOperation(plan.gasOperation)
	now := time.Now()
	sub := &types.RelaySubmission{
		RequestID:     plan.requestID,
		Operation:     plan.operation,
		Status:        types.SubmissionPending,
		Confirmations: plan.confirmations,
		GasSettings:   gas,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	re.record(sub)

	var (
		receipt *ethereumTypes.Receipt
		err     error
	)
	switch plan.authorization.Scheme.Kind {
	case types.SchemeHostedCustody:
		v, r, s, splitErr := signing.SplitSignature(plan.signature)
		if splitErr != nil {
			return nil, &ValidationError{Reason: splitErr.Error()}
		}
		receipt, err = plan.submitHosted(ctx, v, r, s, gas)

	case types.SchemeSmartWallet:
		target, data, encodeErr := plan.encodeInner()
		if encodeErr != nil {
			return nil, &ValidationError{Reason: encodeErr.Error()}
		}
		receipt, err = re.caller.SubmitWalletExecute(
			ctx,
			plan.authorization.Scheme.WalletAddress,
			target,
			big.NewInt(0),
			data,
			plan.signature,
			gas,
			plan.confirmations,
		)

	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown authorization scheme %q", plan.authorization.Scheme.Kind)}
	}

	if err != nil {
		var revertErr *contractCaller.RevertError
		if errors.As(err, &revertErr) {
			sub.Status = types.SubmissionReverted
			sub.TxHash = revertErr.TxHash
			sub.UpdatedAt = time.Now()
			re.record(sub)
			return nil, classifyRevert(revertErr)
		}
		// Never broadcast or lost before mining: the record stays pending so
		// the same request ID can be retried by the client.
		return nil, &BlockchainError{Reason: fmt.Sprintf("submission failed: %v", err), Err: err}
	}

	result := &RelayResult{
		RequestID: plan.requestID,
		TxHash:    receipt.TxHash,
	}

	if plan.extractPoll {
		pollAddress, parseErr := re.caller.ParsePollCreated(receipt)
		if parseErr != nil {
			return nil, &BlockchainError{
				Reason: fmt.Sprintf("transaction confirmed but poll address not found: %v", parseErr),
				TxHash: receipt.TxHash,
				Err:    parseErr,
			}
		}
		result.PollAddress = &pollAddress
		sub.PollAddress = &pollAddress
	}

	sub.Status = types.SubmissionConfirmed
	sub.TxHash = receipt.TxHash
	sub.UpdatedAt = time.Now()
	re.record(sub)

	re.logger.Sugar().Infow("Relay confirmed",
		zap.String("requestId", plan.requestID),
		zap.String("operation", plan.operation),
		zap.String("txHash", receipt.TxHash.Hex()),
	)
	return result, nil
}

// resolveFee returns the platform fee for a funded creation: the override
// when the client supplied one, otherwise fundAmount scaled by the factory's
// basis-point rate.
func (re *RelayExecutor) resolveFee(ctx context.Context, fundAmount, feeOverride *big.Int) (*big.Int, error) {
	if feeOverride != nil {
		return new(big.Int).Set(feeOverride), nil
	}
	rate, err := re.caller.GetPlatformFeeRate(ctx)
	if err != nil {
		return nil, &BlockchainError{Reason: fmt.Sprintf("failed to read platform fee rate: %v", err), Err: err}
	}
	fee := new(big.Int).Mul(fundAmount, rate)
	return fee.Div(fee, big.NewInt(feeRateDenominator)), nil
}

// checkNotVoted screens out votes the poll already counted, so an obviously
// doomed metaVote never spends gas. Best effort: a failed read is treated as
// not voted and the contract stays the authority.
func (re *RelayExecutor) checkNotVoted(ctx context.Context, poll, voter common.Address) error {
	voted, err := re.caller.HasVoted(ctx, poll, voter)
	if err != nil {
		re.logger.Sugar().Debugw("Vote state read failed, deferring to the contract",
			zap.String("poll", poll.Hex()),
			zap.String("voter", voter.Hex()),
			zap.Error(err),
		)
		return nil
	}
	if voted {
		return &ValidationError{Reason: "Already voted"}
	}
	return nil
}

// checkClaimEligibility is the claim-side counterpart of checkNotVoted.
func (re *RelayExecutor) checkClaimEligibility(ctx context.Context, poll, claimer common.Address) error {
	eligible, err := re.caller.CanClaimReward(ctx, poll, claimer)
	if err != nil {
		re.logger.Sugar().Debugw("Claim eligibility read failed, deferring to the contract",
			zap.String("poll", poll.Hex()),
			zap.String("claimer", claimer.Hex()),
			zap.Error(err),
		)
		return nil
	}
	if !eligible {
		return &ValidationError{Reason: "Not eligible to claim reward"}
	}
	return nil
}

// checkAllowance rejects a funded creation whose reward-token allowance
// cannot cover fund + fee, before any gas is spent on a doomed factory call.
func (re *RelayExecutor) checkAllowance(ctx context.Context, owner common.Address, fundAmount, fee *big.Int) error {
	allowance, err := re.caller.GetRewardTokenAllowance(ctx, owner)
	if err != nil {
		return &BlockchainError{Reason: fmt.Sprintf("failed to read token allowance: %v", err), Err: err}
	}
	required := new(big.Int).Add(fundAmount, fee)
	if allowance.Cmp(required) < 0 {
		return &ValidationError{
			Reason: fmt.Sprintf("Insufficient allowance: have %s, need %s", allowance.String(), required.String()),
		}
	}
	return nil
}

func (re *RelayExecutor) ensureRequestID(requestID string) string {
	if requestID != "" {
		return requestID
	}
	return uuid.New().String()
}

// priorOutcome enforces idempotency: a request ID whose submission already
// reached a terminal state is never re-executed, its recorded outcome is
// returned instead.
func (re *RelayExecutor) priorOutcome(requestID string) (result *RelayResult, done bool, err error) {
	existing, getErr := re.store.GetSubmission(requestID)
	if getErr != nil {
		re.logger.Sugar().Warnw("Cannot read submission store, proceeding without idempotency",
			zap.String("requestId", requestID),
			zap.Error(getErr),
		)
		return nil, false, nil
	}
	if existing == nil || !existing.Status.Terminal() {
		return nil, false, nil
	}

	switch existing.Status {
	case types.SubmissionConfirmed:
		return &RelayResult{
			RequestID:   existing.RequestID,
			TxHash:      existing.TxHash,
			PollAddress: existing.PollAddress,
		}, true, nil
	case types.SubmissionRejected:
		return nil, true, &AuthorizationError{Reason: fmt.Sprintf("request %s was previously rejected", requestID)}
	default:
		return nil, true, &BlockchainError{
			Reason: fmt.Sprintf("request %s previously reverted", requestID),
			TxHash: existing.TxHash,
		}
	}
}

func (re *RelayExecutor) record(sub *types.RelaySubmission) {
	if err := re.store.SaveSubmission(sub); err != nil {
		re.logger.Sugar().Warnw("Failed to persist relay submission",
			zap.String("requestId", sub.RequestID),
			zap.Error(err),
		)
	}
}
