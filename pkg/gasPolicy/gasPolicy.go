package gasPolicy

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/config"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

// Operation selects the gas limit shape for a submission.
type Operation string

const (
	OperationSimpleCall   Operation = "simpleCall"
	OperationWalletDeploy Operation = "walletDeploy"
	OperationPollCreation Operation = "pollCreation"
)

// FeeQuoter is the subset of the eth client the policy queries. Satisfied by
// *ethclient.Client.
type FeeQuoter interface {
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*ethereumTypes.Header, error)
}

type PolicyConfig struct {
	// PriorityFeeFloorGwei is the minimum priority fee regardless of what the
	// network quotes. Public endpoints under-quote often enough that an
	// unfloored transaction can sit pending indefinitely.
	PriorityFeeFloorGwei int64

	// MaxFeeFloorGwei is the minimum max fee per gas.
	MaxFeeFloorGwei int64
}

// Policy maintains the current fee parameters. Refresh replaces the settings
// wholesale; readers get value copies, never shared pointers.
type Policy struct {
	client FeeQuoter
	logger *zap.Logger

	priorityFloor *big.Int
	maxFeeFloor   *big.Int

	mu      sync.RWMutex
	current types.GasSettings
}

func NewPolicy(client FeeQuoter, cfg *PolicyConfig, logger *zap.Logger) *Policy {
	priorityFloorGwei := config.DefaultPriorityFeeFloorGwei
	maxFeeFloorGwei := config.DefaultMaxFeeFloorGwei
	if cfg != nil && cfg.PriorityFeeFloorGwei > 0 {
		priorityFloorGwei = int(cfg.PriorityFeeFloorGwei)
	}
	if cfg != nil && cfg.MaxFeeFloorGwei > 0 {
		maxFeeFloorGwei = int(cfg.MaxFeeFloorGwei)
	}

	priorityFloor := new(big.Int).Mul(big.NewInt(int64(priorityFloorGwei)), big.NewInt(params.GWei))
	maxFeeFloor := new(big.Int).Mul(big.NewInt(int64(maxFeeFloorGwei)), big.NewInt(params.GWei))

	return &Policy{
		client:        client,
		logger:        logger,
		priorityFloor: priorityFloor,
		maxFeeFloor:   maxFeeFloor,
		current: types.GasSettings{
			MaxPriorityFeePerGas: priorityFloor,
			MaxFeePerGas:         maxFeeFloor,
			GasLimit:             config.GasLimitSimpleCall,
			Version:              0,
		},
	}
}

// Refresh queries the network for fee estimates, applies the floors and
// replaces the process-wide settings. Returns the new settings.
func (p *Policy) Refresh(ctx context.Context) (types.GasSettings, error) {
	tip, err := p.client.SuggestGasTipCap(ctx)
	if err != nil {
		// Endpoints that don't support eth_maxPriorityFeePerGas still get the
		// floor, which is a workable fee on every supported chain.
		p.logger.Sugar().Warnw("Refresh: cannot get gas tip cap, using floor",
			zap.Error(err),
		)
		tip = new(big.Int).Set(p.priorityFloor)
	}
	if tip.Cmp(p.priorityFloor) < 0 {
		tip = new(big.Int).Set(p.priorityFloor)
	}

	header, err := p.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return types.GasSettings{}, fmt.Errorf("failed to get latest block header: %w", err)
	}

	// maxFee = baseFee*2 + tip. The 2x buffer absorbs base fee spikes between
	// quote and inclusion.
	maxFee := new(big.Int).Add(
		new(big.Int).Mul(header.BaseFee, big.NewInt(2)),
		tip,
	)
	if maxFee.Cmp(p.maxFeeFloor) < 0 {
		maxFee = new(big.Int).Set(p.maxFeeFloor)
	}

	p.mu.Lock()
	next := types.GasSettings{
		MaxPriorityFeePerGas: tip,
		MaxFeePerGas:         maxFee,
		GasLimit:             config.GasLimitSimpleCall,
		Version:              p.current.Version + 1,
	}
	p.current = next
	p.mu.Unlock()

	p.logger.Sugar().Debugw("Gas settings refreshed",
		zap.String("maxPriorityFeePerGas", tip.String()),
		zap.String("maxFeePerGas", maxFee.String()),
		zap.Uint64("version", next.Version),
	)

	return p.snapshot(next), nil
}

// Current returns a copy of the latest settings.
func (p *Policy) Current() types.GasSettings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot(p.current)
}

// ForOperation returns the current settings with the gas limit sized for the
// given operation shape.
func (p *Policy) ForOperation(op Operation) types.GasSettings {
	settings := p.Current()
	switch op {
	case OperationPollCreation:
		settings.GasLimit = config.GasLimitPollCreation
	case OperationWalletDeploy:
		settings.GasLimit = config.GasLimitWalletDeploy
	default:
		settings.GasLimit = config.GasLimitSimpleCall
	}
	return settings
}

// snapshot deep-copies the big.Int fields so callers can't mutate the shared
// settings through a returned value.
func (p *Policy) snapshot(s types.GasSettings) types.GasSettings {
	return types.GasSettings{
		MaxPriorityFeePerGas: new(big.Int).Set(s.MaxPriorityFeePerGas),
		MaxFeePerGas:         new(big.Int).Set(s.MaxFeePerGas),
		GasLimit:             s.GasLimit,
		Version:              s.Version,
	}
}
