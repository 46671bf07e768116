package verifier

import (
	"bytes"
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/signing"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

// SignatureVerifier decides whether a relayed request was actually authorized
// by the user it claims to come from. It fails closed: malformed signatures,
// unreachable nodes, and failed nonce or owner reads all yield an invalid
// result instead of an error. Read-only; never writes to the chain.
type SignatureVerifier struct {
	caller contractCaller.IContractCaller
	logger *zap.Logger
}

func NewSignatureVerifier(caller contractCaller.IContractCaller, logger *zap.Logger) *SignatureVerifier {
	return &SignatureVerifier{
		caller: caller,
		logger: logger,
	}
}

// Verify recovers the signer from the request's signature and compares it
// against the expected authority: the claimed signer for hosted-custody
// requests, the wallet contract's owner() for smart-wallet requests. Results
// are never cached since the on-chain nonce advances after each relay.
func (sv *SignatureVerifier) Verify(ctx context.Context, req *types.AuthorizationRequest) *types.VerificationResult {
	if req == nil || len(req.Signature) != signing.SignatureLength {
		return types.Invalid()
	}

	switch req.Scheme.Kind {
	case types.SchemeHostedCustody:
		return sv.verifyHostedCustody(ctx, req)
	case types.SchemeSmartWallet:
		return sv.verifySmartWallet(ctx, req)
	default:
		sv.logger.Sugar().Warnw("Unknown authorization scheme",
			zap.String("scheme", string(req.Scheme.Kind)),
		)
		return types.Invalid()
	}
}

// verifyHostedCustody reconstructs the EIP-712 payload the user's custodial
// key should have signed, using the contract's current nonce, and checks that
// the recovered signer matches the claim.
func (sv *SignatureVerifier) verifyHostedCustody(ctx context.Context, req *types.AuthorizationRequest) *types.VerificationResult {
	typedData, err := sv.typedDataForAction(ctx, req)
	if err != nil {
		sv.logger.Sugar().Warnw("Cannot reconstruct signed payload",
			zap.String("signerClaim", req.SignerClaim.Hex()),
			zap.Error(err),
		)
		return types.Invalid()
	}

	digest, err := signing.TypedDataDigest(typedData)
	if err != nil {
		sv.logger.Sugar().Warnw("Cannot hash typed data", zap.Error(err))
		return types.Invalid()
	}

	recovered, err := signing.RecoverSigner(digest, req.Signature)
	if err != nil {
		sv.logger.Sugar().Debugw("Signature recovery failed", zap.Error(err))
		return types.Invalid()
	}

	if !addressesEqual(recovered, req.SignerClaim) {
		sv.logger.Sugar().Debugw("Recovered signer does not match claim",
			zap.String("recovered", recovered.Hex()),
			zap.String("claimed", req.SignerClaim.Hex()),
		)
		return &types.VerificationResult{Valid: false, RecoveredSigner: &recovered}
	}

	return &types.VerificationResult{Valid: true, RecoveredSigner: &recovered}
}

// verifySmartWallet checks an EIP-191 signature over the call hash against
// the wallet's on-chain owner. The wallet contract re-verifies on execute();
// this pre-check exists to fail fast and avoid burning gas on doomed
// transactions.
func (sv *SignatureVerifier) verifySmartWallet(ctx context.Context, req *types.AuthorizationRequest) *types.VerificationResult {
	wallet := req.Scheme.WalletAddress
	if wallet == (common.Address{}) {
		return types.Invalid()
	}

	owner, err := sv.caller.GetWalletOwner(ctx, wallet)
	if err != nil {
		sv.logger.Sugar().Warnw("Cannot read wallet owner",
			zap.String("wallet", wallet.Hex()),
			zap.Error(err),
		)
		return types.Invalid()
	}

	target, callData, err := sv.innerCallForAction(req)
	if err != nil {
		sv.logger.Sugar().Warnw("Cannot encode inner call", zap.Error(err))
		return types.Invalid()
	}

	callHash := signing.CallHash(target, big.NewInt(0), callData)
	digest := signing.EIP191Digest(callHash)

	recovered, err := signing.RecoverSigner(digest, req.Signature)
	if err != nil {
		sv.logger.Sugar().Debugw("Signature recovery failed", zap.Error(err))
		return types.Invalid()
	}

	if !addressesEqual(recovered, owner) {
		sv.logger.Sugar().Debugw("Recovered signer is not the wallet owner",
			zap.String("recovered", recovered.Hex()),
			zap.String("owner", owner.Hex()),
			zap.String("wallet", wallet.Hex()),
		)
		return &types.VerificationResult{Valid: false, RecoveredSigner: &recovered}
	}

	return &types.VerificationResult{Valid: true, RecoveredSigner: &recovered}
}

// typedDataForAction rebuilds the exact EIP-712 payload for the action using
// a fresh nonce read. Client-supplied nonces are never trusted.
func (sv *SignatureVerifier) typedDataForAction(ctx context.Context, req *types.AuthorizationRequest) (apitypes.TypedData, error) {
	chainID := sv.caller.ChainID()

	switch action := req.Action.(type) {
	case types.VoteAction:
		nonce, err := sv.caller.GetPollNonce(ctx, req.TargetContract, req.SignerClaim)
		if err != nil {
			return apitypes.TypedData{}, err
		}
		return signing.VoteTypedData(chainID, req.TargetContract, req.SignerClaim, action.Option, nonce), nil

	case types.ClaimAction:
		nonce, err := sv.caller.GetPollNonce(ctx, req.TargetContract, req.SignerClaim)
		if err != nil {
			return apitypes.TypedData{}, err
		}
		return signing.ClaimRewardTypedData(chainID, req.TargetContract, req.SignerClaim, nonce), nil

	case types.CreateFundedPollAction:
		if action.FeeAmount == nil {
			return apitypes.TypedData{}, errUnresolvedFee
		}
		nonce, err := sv.caller.GetFactoryNonce(ctx, req.SignerClaim)
		if err != nil {
			return apitypes.TypedData{}, err
		}
		return signing.CreatePollTypedData(chainID, req.TargetContract, req.SignerClaim, action.FundAmount, action.FeeAmount, nonce), nil

	default:
		return apitypes.TypedData{}, errUnknownAction
	}
}

// innerCallForAction encodes the call the smart wallet will forward, which is
// what the owner's EIP-191 signature commits to.
func (sv *SignatureVerifier) innerCallForAction(req *types.AuthorizationRequest) (common.Address, []byte, error) {
	switch action := req.Action.(type) {
	case types.VoteAction:
		data, err := sv.caller.EncodeVoteCall(action.Option)
		return req.TargetContract, data, err

	case types.ClaimAction:
		data, err := sv.caller.EncodeClaimRewardCall()
		return req.TargetContract, data, err

	case types.CreateFundedPollAction:
		if action.FeeAmount == nil {
			return common.Address{}, nil, errUnresolvedFee
		}
		// The wallet is msg.sender to the factory, so it is the creator.
		data, err := sv.caller.EncodeCreatePollWithFundsCall(&contractCaller.CreatePollParams{
			Creator:    req.Scheme.WalletAddress,
			Title:      action.Title,
			Options:    action.Options,
			Duration:   action.Duration,
			FundAmount: action.FundAmount,
			FeeAmount:  action.FeeAmount,
		})
		return req.TargetContract, data, err

	default:
		return common.Address{}, nil, errUnknownAction
	}
}

func addressesEqual(a, b common.Address) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}
