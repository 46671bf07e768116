package platformSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// PrivateKeySigner implements ISigningAuthority with a locally held key.
// The key is loaded lazily on first access and held for the life of the
// process.
type PrivateKeySigner struct {
	cfg     *SignerConfig
	chainID *big.Int
	logger  *zap.Logger

	limiter *rate.Limiter

	initOnce sync.Once
	initErr  error
	key      *ecdsa.PrivateKey
	from     common.Address

	accessCount atomic.Uint64
}

func NewPrivateKeySigner(cfg *SignerConfig, chainID *big.Int, logger *zap.Logger) (*PrivateKeySigner, error) {
	if cfg == nil || cfg.PrivateKey == "" {
		return nil, fmt.Errorf("private key cannot be empty")
	}
	if chainID == nil {
		return nil, fmt.Errorf("chain ID cannot be nil")
	}

	interval := cfg.MinAccessInterval
	if interval == 0 {
		interval = DefaultMinAccessInterval
	}

	return &PrivateKeySigner{
		cfg:     cfg,
		chainID: chainID,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Initialize loads the key material. Repeated calls are no-ops returning the
// cached address.
func (pks *PrivateKeySigner) Initialize(ctx context.Context) (common.Address, error) {
	pks.initOnce.Do(func() {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(pks.cfg.PrivateKey, "0x"))
		if err != nil {
			pks.initErr = fmt.Errorf("failed to parse platform signing key: %w", err)
			return
		}
		pks.key = key
		pks.from = crypto.PubkeyToAddress(key.PublicKey)
		pks.logger.Sugar().Infow("Platform signing key loaded",
			zap.String("address", pks.from.Hex()),
			zap.Uint64("chainId", pks.chainID.Uint64()),
		)
	})
	if pks.initErr != nil {
		return common.Address{}, pks.initErr
	}
	return pks.from, nil
}

func (pks *PrivateKeySigner) FromAddress() common.Address {
	return pks.from
}

// TransactOpts returns signer-bound options for one transaction. The rate
// limiter enforces minimum spacing between accesses; it does not serialize
// the transactions themselves.
func (pks *PrivateKeySigner) TransactOpts(ctx context.Context, operation string) (*bind.TransactOpts, error) {
	if _, err := pks.Initialize(ctx); err != nil {
		return nil, err
	}

	if err := pks.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("signer access wait cancelled: %w", err)
	}

	count := pks.accessCount.Add(1)
	if count%accessLogInterval == 0 {
		pks.logger.Sugar().Infow("Signing authority access",
			zap.Uint64("totalAccesses", count),
			zap.String("operation", operation),
		)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(pks.key, pks.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transact opts: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}
