package relay

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/gasPolicy"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/persistence/memory"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

var (
	testPoll    = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testFactory = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	testWallet  = common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")
	testUser    = common.HexToAddress("0xdddddddddddddddddddddddddddddddddddddddd")

	testTxHash = common.HexToHash("0x0101010101010101010101010101010101010101010101010101010101010101")

	// 65 bytes of 0xab, hex-encoded: parses fine, verification outcome is
	// decided by the stub verifier.
	wellFormedSig = "0x" + repeatHex("ab", 65)
)

func repeatHex(b string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += b
	}
	return out
}

type stubVerifier struct {
	valid   bool
	calls   int
	lastReq *types.AuthorizationRequest
}

func (s *stubVerifier) Verify(_ context.Context, req *types.AuthorizationRequest) *types.VerificationResult {
	s.calls++
	s.lastReq = req
	if !s.valid {
		return types.Invalid()
	}
	signer := req.SignerClaim
	return &types.VerificationResult{Valid: true, RecoveredSigner: &signer}
}

type stubGas struct{}

func (stubGas) ForOperation(_ gasPolicy.Operation) types.GasSettings {
	return types.GasSettings{
		MaxPriorityFeePerGas: big.NewInt(30_000_000_000),
		MaxFeePerGas:         big.NewInt(60_000_000_000),
		GasLimit:             300_000,
		Version:              1,
	}
}

// writeCaller counts every chain write, which is how the verify-before-write
// property is asserted.
type writeCaller struct {
	contractCaller.IContractCaller

	writes int

	feeRate    *big.Int
	feeRateErr error
	allowance  *big.Int

	hasVoted      bool
	hasVotedErr   error
	claimEligible bool
	claimErr      error

	lastVoteCheckUser  common.Address
	lastClaimCheckUser common.Address

	submitErr error

	wallets      map[common.Address]common.Address
	walletErr    error
	createdPoll  common.Address
	parseErr     error
	confirmsSeen uint64

	lastExecuteWallet common.Address
	lastExecuteTarget common.Address
	metaVoteCalls     int
	metaClaimCalls    int
	executeCalls      int
}

func okReceipt() *ethereumTypes.Receipt {
	return &ethereumTypes.Receipt{
		TxHash:      testTxHash,
		Status:      ethereumTypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
	}
}

func (w *writeCaller) PollFactoryAddress() common.Address {
	return testFactory
}

func (w *writeCaller) GetPlatformFeeRate(_ context.Context) (*big.Int, error) {
	return w.feeRate, w.feeRateErr
}

func (w *writeCaller) GetRewardTokenAllowance(_ context.Context, _ common.Address) (*big.Int, error) {
	return w.allowance, nil
}

func (w *writeCaller) GetWalletForOwner(_ context.Context, owner common.Address) (common.Address, error) {
	if w.walletErr != nil {
		return common.Address{}, w.walletErr
	}
	return w.wallets[owner], nil
}

func (w *writeCaller) HasVoted(_ context.Context, _ common.Address, user common.Address) (bool, error) {
	w.lastVoteCheckUser = user
	return w.hasVoted, w.hasVotedErr
}

func (w *writeCaller) CanClaimReward(_ context.Context, _ common.Address, user common.Address) (bool, error) {
	w.lastClaimCheckUser = user
	return w.claimEligible, w.claimErr
}

func (w *writeCaller) EncodeVoteCall(option *big.Int) ([]byte, error) {
	return append([]byte{0x01}, common.LeftPadBytes(option.Bytes(), 32)...), nil
}

func (w *writeCaller) EncodeClaimRewardCall() ([]byte, error) {
	return []byte{0x02}, nil
}

func (w *writeCaller) EncodeCreatePollWithFundsCall(params *contractCaller.CreatePollParams) ([]byte, error) {
	return append([]byte{0x03}, params.Creator.Bytes()...), nil
}

func (w *writeCaller) SubmitMetaVote(_ context.Context, _, _ common.Address, _ *big.Int, _ uint8, _, _ [32]byte, _ types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error) {
	w.writes++
	w.metaVoteCalls++
	w.confirmsSeen = confirmations
	if w.submitErr != nil {
		return nil, w.submitErr
	}
	return okReceipt(), nil
}

func (w *writeCaller) SubmitMetaClaimReward(_ context.Context, _, _ common.Address, _ uint8, _, _ [32]byte, _ types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error) {
	w.writes++
	w.metaClaimCalls++
	w.confirmsSeen = confirmations
	if w.submitErr != nil {
		return nil, w.submitErr
	}
	return okReceipt(), nil
}

func (w *writeCaller) SubmitMetaCreatePollWithFunds(_ context.Context, _ *contractCaller.CreatePollParams, _ uint8, _, _ [32]byte, _ types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error) {
	w.writes++
	w.confirmsSeen = confirmations
	if w.submitErr != nil {
		return nil, w.submitErr
	}
	return okReceipt(), nil
}

func (w *writeCaller) SubmitWalletExecute(_ context.Context, wallet, target common.Address, _ *big.Int, _, _ []byte, _ types.GasSettings, confirmations uint64) (*ethereumTypes.Receipt, error) {
	w.writes++
	w.executeCalls++
	w.lastExecuteWallet = wallet
	w.lastExecuteTarget = target
	w.confirmsSeen = confirmations
	if w.submitErr != nil {
		return nil, w.submitErr
	}
	return okReceipt(), nil
}

func (w *writeCaller) SubmitCreateWallet(_ context.Context, owner common.Address, _ types.GasSettings, _ uint64) (*ethereumTypes.Receipt, error) {
	w.writes++
	if w.submitErr != nil {
		return nil, w.submitErr
	}
	if w.wallets == nil {
		w.wallets = make(map[common.Address]common.Address)
	}
	w.wallets[owner] = testWallet
	return okReceipt(), nil
}

func (w *writeCaller) ParsePollCreated(_ *ethereumTypes.Receipt) (common.Address, error) {
	if w.parseErr != nil {
		return common.Address{}, w.parseErr
	}
	return w.createdPoll, nil
}

func newTestExecutor(caller *writeCaller, verifier *stubVerifier) (*RelayExecutor, *memory.MemorySubmissionStore) {
	store := memory.NewMemorySubmissionStore()
	executor := NewRelayExecutor(caller, verifier, stubGas{}, store, &ExecutorConfig{
		WalletPropagationWait: time.Millisecond,
	}, zap.NewNop())
	return executor, store
}

func TestVerifyBeforeWrite(t *testing.T) {
	t.Run("Invalid signature causes zero chain writes", func(t *testing.T) {
		caller := &writeCaller{}
		verifier := &stubVerifier{valid: false}
		executor, store := newTestExecutor(caller, verifier)

		_, err := executor.Vote(context.Background(), &VoteRequest{
			RequestID: "req-1",
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, 1, verifier.calls)
		require.Equal(t, 0, caller.writes)

		sub, getErr := store.GetSubmission("req-1")
		require.NoError(t, getErr)
		require.NotNil(t, sub)
		require.Equal(t, types.SubmissionRejected, sub.Status)
	})

	t.Run("Malformed signature rejected before verifier or chain", func(t *testing.T) {
		caller := &writeCaller{}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		for _, sig := range []string{
			"",
			"0x1234",
			repeatHex("ab", 65),        // no prefix
			"0x" + repeatHex("ab", 64), // wrong length
		} {
			_, err := executor.Vote(context.Background(), &VoteRequest{
				Poll:      testPoll,
				Voter:     testUser,
				Option:    big.NewInt(1),
				Scheme:    types.HostedCustody(),
				Signature: sig,
			})
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
		}
		require.Equal(t, 0, verifier.calls)
		require.Equal(t, 0, caller.writes)
	})
}

func TestVote(t *testing.T) {
	t.Run("Hosted-custody vote submits metaVote", func(t *testing.T) {
		caller := &writeCaller{}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		result, err := executor.Vote(context.Background(), &VoteRequest{
			RequestID: "req-vote",
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, 1, caller.metaVoteCalls)
		require.Equal(t, 0, caller.executeCalls)
		require.Equal(t, uint64(1), caller.confirmsSeen)

		sub, getErr := store.GetSubmission("req-vote")
		require.NoError(t, getErr)
		require.Equal(t, types.SubmissionConfirmed, sub.Status)
		require.Equal(t, testTxHash, sub.TxHash)
	})

	t.Run("Smart-wallet vote goes through execute", func(t *testing.T) {
		caller := &writeCaller{}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		result, err := executor.Vote(context.Background(), &VoteRequest{
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.SmartWallet(testWallet),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, 0, caller.metaVoteCalls)
		require.Equal(t, 1, caller.executeCalls)
		require.Equal(t, testWallet, caller.lastExecuteWallet)
		require.Equal(t, testPoll, caller.lastExecuteTarget)
	})

	t.Run("Known duplicate vote rejected before submission", func(t *testing.T) {
		caller := &writeCaller{hasVoted: true}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		_, err := executor.Vote(context.Background(), &VoteRequest{
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Contains(t, valErr.Reason, "Already voted")
		require.Equal(t, 0, caller.writes)
		require.Equal(t, testUser, caller.lastVoteCheckUser)
	})

	t.Run("Smart-wallet duplicate check uses the wallet address", func(t *testing.T) {
		caller := &writeCaller{hasVoted: true}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		_, err := executor.Vote(context.Background(), &VoteRequest{
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.SmartWallet(testWallet),
			Signature: wellFormedSig,
		})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Equal(t, 0, caller.writes)
		require.Equal(t, testWallet, caller.lastVoteCheckUser)
	})

	t.Run("Vote state read failure defers to the contract", func(t *testing.T) {
		caller := &writeCaller{hasVotedErr: errors.New("node unreachable")}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		result, err := executor.Vote(context.Background(), &VoteRequest{
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, 1, caller.metaVoteCalls)
	})

	t.Run("Recognized revert reason becomes ValidationError", func(t *testing.T) {
		caller := &writeCaller{
			submitErr: &contractCaller.RevertError{TxHash: testTxHash, Reason: "execution reverted: Already voted"},
		}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		_, err := executor.Vote(context.Background(), &VoteRequest{
			RequestID: "req-revert",
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Contains(t, valErr.Reason, "Already voted")

		sub, getErr := store.GetSubmission("req-revert")
		require.NoError(t, getErr)
		require.Equal(t, types.SubmissionReverted, sub.Status)
	})

	t.Run("Unrecognized revert stays BlockchainError", func(t *testing.T) {
		caller := &writeCaller{
			submitErr: &contractCaller.RevertError{TxHash: testTxHash, Reason: "execution reverted: out of gas"},
		}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		_, err := executor.Vote(context.Background(), &VoteRequest{
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		var chainErr *BlockchainError
		require.ErrorAs(t, err, &chainErr)
	})

	t.Run("Submission failure leaves record retryable", func(t *testing.T) {
		caller := &writeCaller{submitErr: errors.New("connection refused")}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		_, err := executor.Vote(context.Background(), &VoteRequest{
			RequestID: "req-retry",
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		var chainErr *BlockchainError
		require.ErrorAs(t, err, &chainErr)

		sub, getErr := store.GetSubmission("req-retry")
		require.NoError(t, getErr)
		require.Equal(t, types.SubmissionPending, sub.Status)
		require.False(t, sub.Status.Terminal())
	})
}

func TestClaimReward(t *testing.T) {
	t.Run("Hosted-custody claim submits metaClaimReward", func(t *testing.T) {
		caller := &writeCaller{claimEligible: true}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		result, err := executor.ClaimReward(context.Background(), &ClaimRequest{
			RequestID: "req-claim",
			Poll:      testPoll,
			Claimer:   testUser,
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, 1, caller.metaClaimCalls)
		require.Equal(t, uint64(1), caller.confirmsSeen)

		sub, getErr := store.GetSubmission("req-claim")
		require.NoError(t, getErr)
		require.Equal(t, types.SubmissionConfirmed, sub.Status)
	})

	t.Run("Ineligible claim rejected before submission", func(t *testing.T) {
		caller := &writeCaller{claimEligible: false}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		_, err := executor.ClaimReward(context.Background(), &ClaimRequest{
			Poll:      testPoll,
			Claimer:   testUser,
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Contains(t, valErr.Reason, "Not eligible")
		require.Equal(t, 0, caller.writes)
		require.Equal(t, testUser, caller.lastClaimCheckUser)
	})

	t.Run("Eligibility read failure defers to the contract", func(t *testing.T) {
		caller := &writeCaller{claimErr: errors.New("node unreachable")}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		result, err := executor.ClaimReward(context.Background(), &ClaimRequest{
			Poll:      testPoll,
			Claimer:   testUser,
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, 1, caller.metaClaimCalls)
	})

	t.Run("Smart-wallet claim checks the wallet and goes through execute", func(t *testing.T) {
		caller := &writeCaller{claimEligible: true}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		result, err := executor.ClaimReward(context.Background(), &ClaimRequest{
			Poll:      testPoll,
			Claimer:   testUser,
			Scheme:    types.SmartWallet(testWallet),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, 1, caller.executeCalls)
		require.Equal(t, testWallet, caller.lastExecuteWallet)
		require.Equal(t, testPoll, caller.lastExecuteTarget)
		require.Equal(t, testWallet, caller.lastClaimCheckUser)
	})
}

func TestCreateFundedPoll(t *testing.T) {
	newRequest := func(feeOverride *big.Int) *CreateFundedPollRequest {
		return &CreateFundedPollRequest{
			Creator:     testUser,
			Title:       "best l2",
			Options:     []string{"optimism", "arbitrum"},
			Duration:    big.NewInt(86400),
			FundAmount:  big.NewInt(100),
			FeeOverride: feeOverride,
			Scheme:      types.HostedCustody(),
			Signature:   wellFormedSig,
		}
	}

	t.Run("Insufficient allowance rejected before submission", func(t *testing.T) {
		// 6% contract rate: required = 100 + 6, allowance only covers 105.
		caller := &writeCaller{
			feeRate:     big.NewInt(600),
			allowance:   big.NewInt(105),
			createdPoll: testPoll,
		}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		_, err := executor.CreateFundedPoll(context.Background(), newRequest(nil))

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Contains(t, valErr.Reason, "Insufficient allowance")
		require.Equal(t, 0, caller.writes)
	})

	t.Run("Fee override lowers the required allowance", func(t *testing.T) {
		// Same allowance of 105 passes when the override sets the fee to 5.
		caller := &writeCaller{
			feeRate:     big.NewInt(600),
			allowance:   big.NewInt(105),
			createdPoll: testPoll,
		}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		result, err := executor.CreateFundedPoll(context.Background(), newRequest(big.NewInt(5)))

		require.NoError(t, err)
		require.NotNil(t, result.PollAddress)
		require.Equal(t, testPoll, *result.PollAddress)
		require.Equal(t, 1, caller.writes)

		// The resolved fee is part of the signed payload the verifier checks.
		action, ok := verifier.lastReq.Action.(types.CreateFundedPollAction)
		require.True(t, ok)
		require.Equal(t, big.NewInt(5), action.FeeAmount)
	})

	t.Run("Waits two confirmations and extracts the poll address", func(t *testing.T) {
		caller := &writeCaller{
			feeRate:     big.NewInt(600),
			allowance:   big.NewInt(1000),
			createdPoll: testPoll,
		}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		result, err := executor.CreateFundedPoll(context.Background(), &CreateFundedPollRequest{
			RequestID:  "req-create",
			Creator:    testUser,
			Title:      "best l2",
			Options:    []string{"optimism", "arbitrum"},
			Duration:   big.NewInt(86400),
			FundAmount: big.NewInt(100),
			Scheme:     types.HostedCustody(),
			Signature:  wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, uint64(2), caller.confirmsSeen)
		require.Equal(t, testPoll, *result.PollAddress)

		sub, getErr := store.GetSubmission("req-create")
		require.NoError(t, getErr)
		require.Equal(t, types.SubmissionConfirmed, sub.Status)
		require.NotNil(t, sub.PollAddress)
		require.Equal(t, testPoll, *sub.PollAddress)
	})

	t.Run("Fee rate read failure is a BlockchainError", func(t *testing.T) {
		caller := &writeCaller{feeRateErr: errors.New("node unreachable")}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		_, err := executor.CreateFundedPoll(context.Background(), newRequest(nil))

		var chainErr *BlockchainError
		require.ErrorAs(t, err, &chainErr)
		require.Equal(t, 0, caller.writes)
		require.Equal(t, 0, verifier.calls)
	})

	t.Run("Smart-wallet creation targets the factory through execute", func(t *testing.T) {
		caller := &writeCaller{
			feeRate:     big.NewInt(600),
			allowance:   big.NewInt(1000),
			createdPoll: testPoll,
		}
		verifier := &stubVerifier{valid: true}
		executor, _ := newTestExecutor(caller, verifier)

		req := newRequest(nil)
		req.Scheme = types.SmartWallet(testWallet)
		_, err := executor.CreateFundedPoll(context.Background(), req)

		require.NoError(t, err)
		require.Equal(t, 1, caller.executeCalls)
		require.Equal(t, testWallet, caller.lastExecuteWallet)
		require.Equal(t, testFactory, caller.lastExecuteTarget)
	})
}

func TestIdempotency(t *testing.T) {
	t.Run("Confirmed request is not re-executed", func(t *testing.T) {
		caller := &writeCaller{}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		pollAddr := testPoll
		require.NoError(t, store.SaveSubmission(&types.RelaySubmission{
			RequestID:   "req-done",
			Operation:   "createFundedPoll",
			TxHash:      testTxHash,
			Status:      types.SubmissionConfirmed,
			PollAddress: &pollAddr,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}))

		result, err := executor.Vote(context.Background(), &VoteRequest{
			RequestID: "req-done",
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, testPoll, *result.PollAddress)
		require.Equal(t, 0, verifier.calls)
		require.Equal(t, 0, caller.writes)
	})

	t.Run("Previously rejected request stays rejected", func(t *testing.T) {
		caller := &writeCaller{}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		require.NoError(t, store.SaveSubmission(&types.RelaySubmission{
			RequestID: "req-rejected",
			Operation: "vote",
			Status:    types.SubmissionRejected,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}))

		_, err := executor.Vote(context.Background(), &VoteRequest{
			RequestID: "req-rejected",
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, 0, caller.writes)
	})

	t.Run("Pending request may be retried", func(t *testing.T) {
		caller := &writeCaller{}
		verifier := &stubVerifier{valid: true}
		executor, store := newTestExecutor(caller, verifier)

		require.NoError(t, store.SaveSubmission(&types.RelaySubmission{
			RequestID: "req-pending",
			Operation: "vote",
			Status:    types.SubmissionPending,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}))

		result, err := executor.Vote(context.Background(), &VoteRequest{
			RequestID: "req-pending",
			Poll:      testPoll,
			Voter:     testUser,
			Option:    big.NewInt(1),
			Scheme:    types.HostedCustody(),
			Signature: wellFormedSig,
		})

		require.NoError(t, err)
		require.Equal(t, testTxHash, result.TxHash)
		require.Equal(t, 1, caller.writes)
	})
}

func TestEnsureWallet(t *testing.T) {
	t.Run("Existing wallet returned without deployment", func(t *testing.T) {
		caller := &writeCaller{
			wallets: map[common.Address]common.Address{testUser: testWallet},
		}
		executor, _ := newTestExecutor(caller, &stubVerifier{valid: true})

		wallet, err := executor.EnsureWallet(context.Background(), testUser)
		require.NoError(t, err)
		require.Equal(t, testWallet, wallet)
		require.Equal(t, 0, caller.writes)
	})

	t.Run("Missing wallet is deployed and returned", func(t *testing.T) {
		caller := &writeCaller{}
		executor, _ := newTestExecutor(caller, &stubVerifier{valid: true})

		wallet, err := executor.EnsureWallet(context.Background(), testUser)
		require.NoError(t, err)
		require.Equal(t, testWallet, wallet)
		require.Equal(t, 1, caller.writes)
	})

	t.Run("Lookup failure is a BlockchainError", func(t *testing.T) {
		caller := &writeCaller{walletErr: errors.New("node unreachable")}
		executor, _ := newTestExecutor(caller, &stubVerifier{valid: true})

		_, err := executor.EnsureWallet(context.Background(), testUser)
		var chainErr *BlockchainError
		require.ErrorAs(t, err, &chainErr)
	})
}
