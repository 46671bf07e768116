package verifier

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/signing"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

var (
	testPoll    = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testFactory = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	testWallet  = common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")
)

// mockCaller stubs the chain reads the verifier performs. Anything not
// overridden panics via the embedded nil interface, which is exactly what a
// read-only component should guarantee.
type mockCaller struct {
	contractCaller.IContractCaller

	chainID *big.Int

	pollNonce    *big.Int
	pollNonceErr error

	factoryNonce    *big.Int
	factoryNonceErr error

	owner    common.Address
	ownerErr error
}

func (m *mockCaller) ChainID() *big.Int {
	return new(big.Int).Set(m.chainID)
}

func (m *mockCaller) GetPollNonce(_ context.Context, _, _ common.Address) (*big.Int, error) {
	return m.pollNonce, m.pollNonceErr
}

func (m *mockCaller) GetFactoryNonce(_ context.Context, _ common.Address) (*big.Int, error) {
	return m.factoryNonce, m.factoryNonceErr
}

func (m *mockCaller) GetWalletOwner(_ context.Context, _ common.Address) (common.Address, error) {
	return m.owner, m.ownerErr
}

func (m *mockCaller) EncodeVoteCall(option *big.Int) ([]byte, error) {
	return append([]byte{0x01}, common.LeftPadBytes(option.Bytes(), 32)...), nil
}

func (m *mockCaller) EncodeClaimRewardCall() ([]byte, error) {
	return []byte{0x02}, nil
}

func (m *mockCaller) EncodeCreatePollWithFundsCall(params *contractCaller.CreatePollParams) ([]byte, error) {
	out := append([]byte{0x03}, params.Creator.Bytes()...)
	out = append(out, common.LeftPadBytes(params.FundAmount.Bytes(), 32)...)
	out = append(out, common.LeftPadBytes(params.FeeAmount.Bytes(), 32)...)
	return out, nil
}

func newTestKey(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, crypto.PubkeyToAddress(key.PublicKey)
}

func signVote(t *testing.T, key *ecdsa.PrivateKey, chainID *big.Int, poll, voter common.Address, option, nonce *big.Int) []byte {
	t.Helper()
	digest, err := signing.TypedDataDigest(signing.VoteTypedData(chainID, poll, voter, option, nonce))
	require.NoError(t, err)
	sig, err := signing.SignDigest(digest, key)
	require.NoError(t, err)
	return sig
}

func TestVerifyHostedCustody(t *testing.T) {
	chainID := big.NewInt(80002)

	t.Run("Valid vote signature verifies", func(t *testing.T) {
		key, voter := newTestKey(t)
		caller := &mockCaller{chainID: chainID, pollNonce: big.NewInt(0)}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signVote(t, key, chainID, testPoll, voter, big.NewInt(1), big.NewInt(0))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    voter,
			TargetContract: testPoll,
			Scheme:         types.HostedCustody(),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.True(t, result.Valid)
		require.NotNil(t, result.RecoveredSigner)
		require.Equal(t, voter, *result.RecoveredSigner)
	})

	t.Run("Signature from a different key fails", func(t *testing.T) {
		_, voter := newTestKey(t)
		otherKey, _ := newTestKey(t)
		caller := &mockCaller{chainID: chainID, pollNonce: big.NewInt(0)}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signVote(t, otherKey, chainID, testPoll, voter, big.NewInt(1), big.NewInt(0))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    voter,
			TargetContract: testPoll,
			Scheme:         types.HostedCustody(),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.False(t, result.Valid)
	})

	t.Run("Option mismatch between signature and request fails", func(t *testing.T) {
		key, voter := newTestKey(t)
		caller := &mockCaller{chainID: chainID, pollNonce: big.NewInt(0)}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		// Signed for option 1, request claims option 2.
		sig := signVote(t, key, chainID, testPoll, voter, big.NewInt(1), big.NewInt(0))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    voter,
			TargetContract: testPoll,
			Scheme:         types.HostedCustody(),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(2)},
			Signature:      sig,
		})

		require.False(t, result.Valid)
	})

	t.Run("Advanced nonce invalidates an old signature", func(t *testing.T) {
		key, voter := newTestKey(t)
		caller := &mockCaller{chainID: chainID, pollNonce: big.NewInt(1)}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signVote(t, key, chainID, testPoll, voter, big.NewInt(1), big.NewInt(0))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    voter,
			TargetContract: testPoll,
			Scheme:         types.HostedCustody(),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.False(t, result.Valid)
	})

	t.Run("Nonce read failure fails closed", func(t *testing.T) {
		key, voter := newTestKey(t)
		caller := &mockCaller{chainID: chainID, pollNonceErr: errors.New("node unreachable")}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signVote(t, key, chainID, testPoll, voter, big.NewInt(1), big.NewInt(0))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    voter,
			TargetContract: testPoll,
			Scheme:         types.HostedCustody(),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.False(t, result.Valid)
		require.Nil(t, result.RecoveredSigner)
	})

	t.Run("Valid claim signature verifies", func(t *testing.T) {
		key, claimer := newTestKey(t)
		caller := &mockCaller{chainID: chainID, pollNonce: big.NewInt(3)}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		digest, err := signing.TypedDataDigest(signing.ClaimRewardTypedData(chainID, testPoll, claimer, big.NewInt(3)))
		require.NoError(t, err)
		sig, err := signing.SignDigest(digest, key)
		require.NoError(t, err)

		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    claimer,
			TargetContract: testPoll,
			Scheme:         types.HostedCustody(),
			Action:         types.ClaimAction{Poll: testPoll},
			Signature:      sig,
		})

		require.True(t, result.Valid)
	})

	t.Run("Valid funded creation signature verifies", func(t *testing.T) {
		key, creator := newTestKey(t)
		caller := &mockCaller{chainID: chainID, factoryNonce: big.NewInt(0)}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		fund := big.NewInt(100)
		fee := big.NewInt(6)
		digest, err := signing.TypedDataDigest(signing.CreatePollTypedData(chainID, testFactory, creator, fund, fee, big.NewInt(0)))
		require.NoError(t, err)
		sig, err := signing.SignDigest(digest, key)
		require.NoError(t, err)

		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    creator,
			TargetContract: testFactory,
			Scheme:         types.HostedCustody(),
			Action: types.CreateFundedPollAction{
				Title:      "best l2",
				Options:    []string{"yes", "no"},
				Duration:   big.NewInt(86400),
				FundAmount: fund,
				FeeAmount:  fee,
			},
			Signature: sig,
		})

		require.True(t, result.Valid)
	})

	t.Run("Funded creation without resolved fee fails closed", func(t *testing.T) {
		key, creator := newTestKey(t)
		caller := &mockCaller{chainID: chainID, factoryNonce: big.NewInt(0)}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		digest, err := signing.TypedDataDigest(signing.CreatePollTypedData(chainID, testFactory, creator, big.NewInt(100), big.NewInt(6), big.NewInt(0)))
		require.NoError(t, err)
		sig, err := signing.SignDigest(digest, key)
		require.NoError(t, err)

		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    creator,
			TargetContract: testFactory,
			Scheme:         types.HostedCustody(),
			Action: types.CreateFundedPollAction{
				FundAmount: big.NewInt(100),
			},
			Signature: sig,
		})

		require.False(t, result.Valid)
	})
}

func TestVerifySmartWallet(t *testing.T) {
	chainID := big.NewInt(80002)

	signInnerCall := func(t *testing.T, key *ecdsa.PrivateKey, caller *mockCaller, target common.Address, option *big.Int) []byte {
		t.Helper()
		data, err := caller.EncodeVoteCall(option)
		require.NoError(t, err)
		digest := signing.EIP191Digest(signing.CallHash(target, big.NewInt(0), data))
		sig, err := signing.SignDigest(digest, key)
		require.NoError(t, err)
		return sig
	}

	t.Run("Owner signature verifies", func(t *testing.T) {
		key, owner := newTestKey(t)
		caller := &mockCaller{chainID: chainID, owner: owner}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signInnerCall(t, key, caller, testPoll, big.NewInt(1))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    owner,
			TargetContract: testPoll,
			Scheme:         types.SmartWallet(testWallet),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.True(t, result.Valid)
		require.Equal(t, owner, *result.RecoveredSigner)
	})

	t.Run("Non-owner signature fails", func(t *testing.T) {
		otherKey, _ := newTestKey(t)
		_, owner := newTestKey(t)
		caller := &mockCaller{chainID: chainID, owner: owner}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signInnerCall(t, otherKey, caller, testPoll, big.NewInt(1))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    owner,
			TargetContract: testPoll,
			Scheme:         types.SmartWallet(testWallet),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.False(t, result.Valid)
	})

	t.Run("Owner read failure fails closed", func(t *testing.T) {
		key, owner := newTestKey(t)
		caller := &mockCaller{chainID: chainID, ownerErr: errors.New("node unreachable")}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signInnerCall(t, key, caller, testPoll, big.NewInt(1))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    owner,
			TargetContract: testPoll,
			Scheme:         types.SmartWallet(testWallet),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.False(t, result.Valid)
		require.Nil(t, result.RecoveredSigner)
	})

	t.Run("Zero wallet address fails closed", func(t *testing.T) {
		key, owner := newTestKey(t)
		caller := &mockCaller{chainID: chainID, owner: owner}
		sv := NewSignatureVerifier(caller, zap.NewNop())

		sig := signInnerCall(t, key, caller, testPoll, big.NewInt(1))
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim:    owner,
			TargetContract: testPoll,
			Scheme:         types.SmartWallet(common.Address{}),
			Action:         types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:      sig,
		})

		require.False(t, result.Valid)
	})
}

func TestVerifyFailsClosed(t *testing.T) {
	sv := NewSignatureVerifier(&mockCaller{chainID: big.NewInt(80002)}, zap.NewNop())

	t.Run("Nil request", func(t *testing.T) {
		require.False(t, sv.Verify(context.Background(), nil).Valid)
	})

	t.Run("Wrong signature length", func(t *testing.T) {
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim: testWallet,
			Scheme:      types.HostedCustody(),
			Action:      types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:   make([]byte, 64),
		})
		require.False(t, result.Valid)
	})

	t.Run("Unknown scheme", func(t *testing.T) {
		result := sv.Verify(context.Background(), &types.AuthorizationRequest{
			SignerClaim: testWallet,
			Scheme:      types.AuthorizationScheme{Kind: "multisig"},
			Action:      types.VoteAction{Poll: testPoll, Option: big.NewInt(1)},
			Signature:   make([]byte, 65),
		})
		require.False(t, result.Valid)
	})
}
