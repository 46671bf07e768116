package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Environment variable names for the relayer configuration
const (
	EnvRelayerPrivateKey       = "TRUTHPOLL_RELAYER_PRIVATE_KEY"
	EnvRelayerRPCURL           = "TRUTHPOLL_RPC_URL"
	EnvRelayerChainID          = "TRUTHPOLL_CHAIN_ID"
	EnvRelayerRedisURL         = "TRUTHPOLL_REDIS_URL"
	EnvRelayerVerbose          = "TRUTHPOLL_VERBOSE"
	EnvRelayerPollFactory      = "TRUTHPOLL_POLL_FACTORY_ADDRESS"
	EnvRelayerWalletFactory    = "TRUTHPOLL_WALLET_FACTORY_ADDRESS"
	EnvRelayerRewardToken      = "TRUTHPOLL_REWARD_TOKEN_ADDRESS"
	EnvRelayerGasRefreshPeriod = "TRUTHPOLL_GAS_REFRESH_PERIOD"
)

// EIP-712 domain constants. These are part of the wire contract shared with
// the Poll/PollFactory contracts and the frontend signing code: any drift
// silently produces a different digest and every signature fails to verify.
const (
	EIP712DomainName    = "TruthPoll"
	EIP712DomainVersion = "1"
)

type ChainId uint64

const (
	ChainId_PolygonMainnet ChainId = 137
	ChainId_PolygonAmoy    ChainId = 80002
	ChainId_Anvil          ChainId = 31337
)

type ChainName string

const (
	ChainName_PolygonMainnet ChainName = "polygon"
	ChainName_PolygonAmoy    ChainName = "amoy"
	ChainName_Anvil          ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_PolygonMainnet: ChainName_PolygonMainnet,
	ChainId_PolygonAmoy:    ChainName_PolygonAmoy,
	ChainId_Anvil:          ChainName_Anvil,
}

// CoreContractAddresses holds the deployed platform contracts the relayer
// talks to on a given chain.
type CoreContractAddresses struct {
	PollFactory        string
	SmartWalletFactory string
	RewardToken        string
}

var (
	polygonAmoyCoreContracts = &CoreContractAddresses{
		PollFactory:        "0x3F1aE3A3bD1b396D44c1a0E24Bb9AfC6b12a0f8D",
		SmartWalletFactory: "0x92C7c7cE9f0E0cE4f5e73bB0E5A796Ab0BbE6a5B",
		RewardToken:        "0x41E94Eb019C0762f9Bfcf9Fb1E58725BfB0e7582",
	}

	CoreContracts = map[ChainId]*CoreContractAddresses{
		ChainId_PolygonMainnet: {
			PollFactory:        "0x7eB5D7850cB8a2E3C52a21887a8a0a0b64dE9cC2",
			SmartWalletFactory: "0xA1d2E9f0413B6E47cA8C62a3305dF2A07f3a48e3",
			RewardToken:        "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
		},
		ChainId_PolygonAmoy: polygonAmoyCoreContracts,
		ChainId_Anvil:       polygonAmoyCoreContracts, // fork of amoy
	}
)

func GetCoreContractsForChainId(chainId ChainId) (*CoreContractAddresses, error) {
	contracts, ok := CoreContracts[chainId]
	if !ok {
		return nil, fmt.Errorf("unsupported chain ID: %d", chainId)
	}
	return contracts, nil
}

// GetSupportedChainIDsString returns supported chain IDs as strings for CLI help
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (polygon), %d (amoy), %d (anvil)",
		ChainId_PolygonMainnet, ChainId_PolygonAmoy, ChainId_Anvil)
}

// Gas defaults. Public Polygon RPC endpoints regularly under-quote the
// priority fee relative to what actually lands a transaction promptly, so
// quotes are floored rather than trusted.
const (
	DefaultPriorityFeeFloorGwei = 30
	DefaultMaxFeeFloorGwei      = 60

	// Gas limits by operation shape. Funded poll creation deploys a contract
	// and moves tokens in one transaction, simple meta-calls do not.
	GasLimitSimpleCall   = uint64(300_000)
	GasLimitWalletDeploy = uint64(900_000)
	GasLimitPollCreation = uint64(1_500_000)
)

// RelayerConfig is the complete configuration for the relayer process.
type RelayerConfig struct {
	// Platform signing key (hex, 0x-prefix optional). The relayer pays gas
	// for every transaction it submits with this key.
	PrivateKey string `json:"private_key"`

	// Chain configuration
	ChainID   ChainId   `json:"chain_id"`
	ChainName ChainName `json:"chain_name"`
	RpcUrl    string    `json:"rpc_url"`

	// Contract addresses (populated from chain ID unless overridden)
	CoreContracts *CoreContractAddresses `json:"core_contracts,omitempty"`

	// GasRefreshPeriod is how often the gas policy re-queries network fees.
	GasRefreshPeriod time.Duration `json:"gas_refresh_period"`

	// WalletPropagationWait is how long to wait after a smart wallet
	// deployment before relaying a dependent action, to tolerate state
	// propagation lag on the RPC node.
	WalletPropagationWait time.Duration `json:"wallet_propagation_wait"`

	// RedisURL enables the redis-backed submission store when set.
	RedisURL string `json:"redis_url,omitempty"`

	Verbose bool `json:"verbose"`
}

// Validate checks the configuration and fills derived fields.
func (c *RelayerConfig) Validate() error {
	if c.PrivateKey == "" {
		return fmt.Errorf("relayer private key cannot be empty")
	}
	key := c.PrivateKey
	if !strings.HasPrefix(key, "0x") {
		key = "0x" + key
	}
	if len(key) != 66 { // 0x + 64 hex chars
		return fmt.Errorf("relayer private key must be 32 bytes (64 hex chars), got %d chars", len(key)-2)
	}

	if c.RpcUrl == "" {
		return fmt.Errorf("RPC URL cannot be empty")
	}
	if !strings.HasPrefix(c.RpcUrl, "http://") && !strings.HasPrefix(c.RpcUrl, "https://") &&
		!strings.HasPrefix(c.RpcUrl, "ws://") && !strings.HasPrefix(c.RpcUrl, "wss://") {
		return fmt.Errorf("RPC URL must start with http://, https://, ws://, or wss://")
	}

	chainName, exists := ChainIdToName[c.ChainID]
	if !exists {
		return fmt.Errorf("unsupported chain ID %d. Supported: %s", c.ChainID, GetSupportedChainIDsString())
	}
	c.ChainName = chainName

	if c.CoreContracts == nil {
		coreContracts, err := GetCoreContractsForChainId(c.ChainID)
		if err != nil {
			return fmt.Errorf("failed to get core contracts: %w", err)
		}
		c.CoreContracts = coreContracts
	}
	for name, addr := range map[string]string{
		"poll factory":   c.CoreContracts.PollFactory,
		"wallet factory": c.CoreContracts.SmartWalletFactory,
		"reward token":   c.CoreContracts.RewardToken,
	} {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("invalid %s address: %s", name, addr)
		}
	}

	if c.GasRefreshPeriod == 0 {
		c.GasRefreshPeriod = 30 * time.Second
	}
	if c.WalletPropagationWait == 0 {
		c.WalletPropagationWait = 1500 * time.Millisecond
	}

	return nil
}
