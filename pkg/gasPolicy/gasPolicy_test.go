package gasPolicy

import (
	"context"
	"errors"
	"math/big"
	"testing"

	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/config"
)

type fakeQuoter struct {
	tip     *big.Int
	tipErr  error
	baseFee *big.Int
	headErr error
}

func (f *fakeQuoter) SuggestGasTipCap(_ context.Context) (*big.Int, error) {
	return f.tip, f.tipErr
}

func (f *fakeQuoter) HeaderByNumber(_ context.Context, _ *big.Int) (*ethereumTypes.Header, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &ethereumTypes.Header{BaseFee: f.baseFee}, nil
}

func gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.GWei))
}

func TestRefresh(t *testing.T) {
	t.Run("Network quotes above the floors are used", func(t *testing.T) {
		policy := NewPolicy(&fakeQuoter{tip: gwei(40), baseFee: gwei(100)}, nil, zap.NewNop())

		settings, err := policy.Refresh(context.Background())
		require.NoError(t, err)
		require.Equal(t, gwei(40), settings.MaxPriorityFeePerGas)
		// maxFee = baseFee*2 + tip
		require.Equal(t, gwei(240), settings.MaxFeePerGas)
		require.Equal(t, uint64(1), settings.Version)
	})

	t.Run("Low quotes are floored", func(t *testing.T) {
		policy := NewPolicy(&fakeQuoter{tip: gwei(1), baseFee: big.NewInt(1)}, nil, zap.NewNop())

		settings, err := policy.Refresh(context.Background())
		require.NoError(t, err)
		require.Equal(t, gwei(config.DefaultPriorityFeeFloorGwei), settings.MaxPriorityFeePerGas)
		require.Equal(t, gwei(config.DefaultMaxFeeFloorGwei), settings.MaxFeePerGas)
	})

	t.Run("Tip quote failure falls back to the floor", func(t *testing.T) {
		policy := NewPolicy(&fakeQuoter{tipErr: errors.New("method not supported"), baseFee: gwei(50)}, nil, zap.NewNop())

		settings, err := policy.Refresh(context.Background())
		require.NoError(t, err)
		require.Equal(t, gwei(config.DefaultPriorityFeeFloorGwei), settings.MaxPriorityFeePerGas)
	})

	t.Run("Header failure returns an error", func(t *testing.T) {
		policy := NewPolicy(&fakeQuoter{tip: gwei(40), headErr: errors.New("node unreachable")}, nil, zap.NewNop())

		_, err := policy.Refresh(context.Background())
		require.Error(t, err)
	})

	t.Run("Version increments on every refresh", func(t *testing.T) {
		policy := NewPolicy(&fakeQuoter{tip: gwei(40), baseFee: gwei(100)}, nil, zap.NewNop())

		first, err := policy.Refresh(context.Background())
		require.NoError(t, err)
		second, err := policy.Refresh(context.Background())
		require.NoError(t, err)
		require.Equal(t, first.Version+1, second.Version)
	})

	t.Run("Custom floors are honored", func(t *testing.T) {
		policy := NewPolicy(&fakeQuoter{tip: gwei(1), baseFee: big.NewInt(1)}, &PolicyConfig{
			PriorityFeeFloorGwei: 50,
			MaxFeeFloorGwei:      120,
		}, zap.NewNop())

		settings, err := policy.Refresh(context.Background())
		require.NoError(t, err)
		require.Equal(t, gwei(50), settings.MaxPriorityFeePerGas)
		require.Equal(t, gwei(120), settings.MaxFeePerGas)
	})
}

func TestForOperation(t *testing.T) {
	policy := NewPolicy(&fakeQuoter{tip: gwei(40), baseFee: gwei(100)}, nil, zap.NewNop())

	require.Equal(t, config.GasLimitSimpleCall, policy.ForOperation(OperationSimpleCall).GasLimit)
	require.Equal(t, config.GasLimitWalletDeploy, policy.ForOperation(OperationWalletDeploy).GasLimit)
	require.Equal(t, config.GasLimitPollCreation, policy.ForOperation(OperationPollCreation).GasLimit)
}

func TestCurrentReturnsCopies(t *testing.T) {
	policy := NewPolicy(&fakeQuoter{tip: gwei(40), baseFee: gwei(100)}, nil, zap.NewNop())
	_, err := policy.Refresh(context.Background())
	require.NoError(t, err)

	a := policy.Current()
	a.MaxFeePerGas.SetInt64(1)

	b := policy.Current()
	require.NotEqual(t, big.NewInt(1), b.MaxFeePerGas)
}
