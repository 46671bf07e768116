package platformSigner

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// ISigningAuthority is the platform-controlled signing key behind every
// relayed transaction. It is an explicit dependency of the contract caller
// and the relay executor, never ambient process state, so tests can
// substitute a fake.
type ISigningAuthority interface {
	// Initialize loads the signing key. Idempotent: repeated calls are no-ops
	// returning the cached address. A missing or malformed key is a
	// startup-blocking error, not a per-request one.
	Initialize(ctx context.Context) (common.Address, error)

	// FromAddress returns the platform's relaying address. Zero until
	// Initialize has succeeded.
	FromAddress() common.Address

	// TransactOpts returns signer-bound transaction options for a named
	// operation. Access is rate limited (cooperative minimum spacing, not
	// mutual exclusion) and triggers lazy initialization.
	TransactOpts(ctx context.Context, operation string) (*bind.TransactOpts, error)
}

type SignerConfig struct {
	// PrivateKey is the platform signing key as a hex string, 0x prefix
	// optional.
	PrivateKey string `json:"privateKey" yaml:"privateKey"`

	// MinAccessInterval is the minimum spacing enforced between successive
	// TransactOpts calls. Zero selects the default.
	MinAccessInterval time.Duration `json:"minAccessInterval" yaml:"minAccessInterval"`
}

// DefaultMinAccessInterval spaces key accesses under burst load. Advisory
// pacing only: concurrent relays may still be in flight simultaneously.
const DefaultMinAccessInterval = 100 * time.Millisecond

// accessLogInterval is how often the access counter is logged.
const accessLogInterval = 50

func NewSigningAuthority(cfg *SignerConfig, chainID *big.Int, logger *zap.Logger) (ISigningAuthority, error) {
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("private key cannot be empty")
	}
	return NewPrivateKeySigner(cfg, chainID, logger)
}
