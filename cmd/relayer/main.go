package main

import (
	"context"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/config"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller/caller"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/gasPolicy"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/logger"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/persistence"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/persistence/memory"
	redisStore "github.com/Kedawgs/TruthPoll-sub000/pkg/persistence/redis"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/platformSigner"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/relay"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/verifier"
)

func main() {
	// Local development reads secrets from .env; in deployment the variables
	// come from the environment directly.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "relayer",
		Usage: "Relay gasless TruthPoll transactions with the platform key",
		Description: `Verify user signatures (EIP-712 for hosted-custody users, EIP-191 for
smart-wallet users) and submit the corresponding contract calls with the
platform signing key, paying gas on the user's behalf.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "private-key",
				Aliases:  []string{"priv"},
				Usage:    "Platform ECDSA private key (hex string) that pays gas for relayed transactions",
				EnvVars:  []string{config.EnvRelayerPrivateKey},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "rpc-url",
				Aliases:  []string{"rpc"},
				Usage:    "Ethereum RPC URL (e.g., http://localhost:8545, https://polygon-rpc.com)",
				EnvVars:  []string{config.EnvRelayerRPCURL},
				Required: true,
			},
			&cli.Uint64Flag{
				Name:    "chain-id",
				Aliases: []string{"chain"},
				Usage:   fmt.Sprintf("Chain ID: %s", config.GetSupportedChainIDsString()),
				EnvVars: []string{config.EnvRelayerChainID},
				Value:   uint64(config.ChainId_Anvil), // Default to anvil for testing
			},
			&cli.StringFlag{
				Name:    "redis-url",
				Usage:   "Redis address (host:port) for the submission store; in-memory when empty",
				EnvVars: []string{config.EnvRelayerRedisURL},
			},
			&cli.StringFlag{
				Name:    "poll-factory-address",
				Usage:   "Override the PollFactory address for this chain",
				EnvVars: []string{config.EnvRelayerPollFactory},
			},
			&cli.StringFlag{
				Name:    "wallet-factory-address",
				Usage:   "Override the SmartWalletFactory address for this chain",
				EnvVars: []string{config.EnvRelayerWalletFactory},
			},
			&cli.StringFlag{
				Name:    "reward-token-address",
				Usage:   "Override the reward token address for this chain",
				EnvVars: []string{config.EnvRelayerRewardToken},
			},
			&cli.DurationFlag{
				Name:    "gas-refresh-period",
				Usage:   "How often network gas quotes are refreshed",
				EnvVars: []string{config.EnvRelayerGasRefreshPeriod},
				Value:   30 * time.Second,
			},
			&cli.DurationFlag{
				Name:  "wallet-propagation-wait",
				Usage: "Pause after a smart wallet deployment before a dependent relay",
				Value: relay.DefaultWalletPropagationWait,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvRelayerVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "vote",
				Usage: "Relay a signed vote",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "poll", Usage: "Poll contract address", Required: true},
					&cli.StringFlag{Name: "voter", Usage: "Voter address (the claimed signer)", Required: true},
					&cli.Uint64Flag{Name: "option", Usage: "Option index to vote for", Required: true},
					&cli.StringFlag{Name: "wallet", Usage: "Smart wallet address (omit for hosted-custody users)"},
					&cli.StringFlag{Name: "signature", Aliases: []string{"sig"}, Usage: "0x-prefixed user signature", Required: true},
					&cli.StringFlag{Name: "request-id", Usage: "Idempotency key (generated when omitted)"},
				},
				Action: relayVote,
			},
			{
				Name:  "claim-reward",
				Usage: "Relay a signed reward claim",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "poll", Usage: "Poll contract address", Required: true},
					&cli.StringFlag{Name: "claimer", Usage: "Claimer address (the claimed signer)", Required: true},
					&cli.StringFlag{Name: "wallet", Usage: "Smart wallet address (omit for hosted-custody users)"},
					&cli.StringFlag{Name: "signature", Aliases: []string{"sig"}, Usage: "0x-prefixed user signature", Required: true},
					&cli.StringFlag{Name: "request-id", Usage: "Idempotency key (generated when omitted)"},
				},
				Action: relayClaim,
			},
			{
				Name:  "create-poll",
				Usage: "Relay a signed funded poll creation",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "creator", Usage: "Creator address (the claimed signer)", Required: true},
					&cli.StringFlag{Name: "title", Usage: "Poll title", Required: true},
					&cli.StringSliceFlag{Name: "option", Usage: "Poll option (repeat for each)", Required: true},
					&cli.DurationFlag{Name: "duration", Usage: "How long the poll stays open", Value: 24 * time.Hour},
					&cli.StringFlag{Name: "fund-amount", Usage: "Reward pool size in token base units", Required: true},
					&cli.StringFlag{Name: "fee-override", Usage: "Platform fee in token base units (rate-derived when omitted)"},
					&cli.StringFlag{Name: "wallet", Usage: "Smart wallet address (omit for hosted-custody users)"},
					&cli.StringFlag{Name: "signature", Aliases: []string{"sig"}, Usage: "0x-prefixed user signature", Required: true},
					&cli.StringFlag{Name: "request-id", Usage: "Idempotency key (generated when omitted)"},
				},
				Action: relayCreatePoll,
			},
			{
				Name:  "ensure-wallet",
				Usage: "Deploy the owner's smart wallet if it does not exist yet",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "owner", Usage: "Wallet owner address", Required: true},
				},
				Action: ensureWallet,
			},
			{
				Name:   "list-submissions",
				Usage:  "List recorded relay submissions",
				Action: listSubmissions,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// runtime is the assembled relayer stack shared by all subcommands.
type runtime struct {
	cfg      *config.RelayerConfig
	logger   *zap.Logger
	client   *ethclient.Client
	store    persistence.ISubmissionStore
	gas      *gasPolicy.Policy
	executor *relay.RelayExecutor

	stopGasRefresh context.CancelFunc
}

func (rt *runtime) close() {
	if rt.stopGasRefresh != nil {
		rt.stopGasRefresh()
	}
	if rt.store != nil {
		_ = rt.store.Close()
	}
	if rt.client != nil {
		rt.client.Close()
	}
	_ = rt.logger.Sync()
}

func bootstrap(c *cli.Context) (*runtime, error) {
	appLogger, err := logger.NewLogger(&logger.LoggerConfig{
		Debug: c.Bool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cfg := parseRelayerConfig(c)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	appLogger.Sugar().Infow("Relayer configuration",
		"chain_id", cfg.ChainID,
		"chain_name", cfg.ChainName,
		"rpc_url", cfg.RpcUrl,
		"gas_refresh_period", cfg.GasRefreshPeriod,
	)

	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC at %s: %w", cfg.RpcUrl, err)
	}

	chainID, err := client.ChainID(c.Context)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Uint64() != uint64(cfg.ChainID) {
		client.Close()
		return nil, fmt.Errorf("RPC chain ID %d does not match configured chain ID %d", chainID.Uint64(), cfg.ChainID)
	}

	signer, err := platformSigner.NewSigningAuthority(&platformSigner.SignerConfig{
		PrivateKey: cfg.PrivateKey,
	}, chainID, appLogger)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create signing authority: %w", err)
	}

	// A bad platform key must stop the process here, not surface per-request.
	relayerAddress, err := signer.Initialize(c.Context)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to initialize platform signer: %w", err)
	}
	appLogger.Sugar().Infow("Relaying from platform address",
		"address", relayerAddress.Hex(),
	)

	contractCaller, err := caller.NewContractCallerWithContracts(client, signer, cfg.CoreContracts, appLogger)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create contract caller: %w", err)
	}

	var store persistence.ISubmissionStore
	if cfg.RedisURL != "" {
		store, err = redisStore.NewRedisSubmissionStore(&redisStore.RedisConfig{
			Address: cfg.RedisURL,
		}, appLogger)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to create redis submission store: %w", err)
		}
	} else {
		appLogger.Sugar().Warn("No redis configured - submission records will not survive a restart")
		store = memory.NewMemorySubmissionStore()
	}

	gas := gasPolicy.NewPolicy(client, &gasPolicy.PolicyConfig{}, appLogger)
	if _, err := gas.Refresh(c.Context); err != nil {
		appLogger.Sugar().Warnw("Initial gas refresh failed, using floor settings", zap.Error(err))
	}

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(cfg.GasRefreshPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				if _, err := gas.Refresh(refreshCtx); err != nil {
					appLogger.Sugar().Warnw("Gas refresh failed", zap.Error(err))
				}
			}
		}
	}()

	sigVerifier := verifier.NewSignatureVerifier(contractCaller, appLogger)
	executor := relay.NewRelayExecutor(contractCaller, sigVerifier, gas, store, &relay.ExecutorConfig{
		WalletPropagationWait: cfg.WalletPropagationWait,
	}, appLogger)

	return &runtime{
		cfg:            cfg,
		logger:         appLogger,
		client:         client,
		store:          store,
		gas:            gas,
		executor:       executor,
		stopGasRefresh: stopRefresh,
	}, nil
}

func parseRelayerConfig(c *cli.Context) *config.RelayerConfig {
	cfg := &config.RelayerConfig{
		PrivateKey:            c.String("private-key"),
		ChainID:               config.ChainId(c.Uint64("chain-id")),
		RpcUrl:                c.String("rpc-url"),
		RedisURL:              c.String("redis-url"),
		GasRefreshPeriod:      c.Duration("gas-refresh-period"),
		WalletPropagationWait: c.Duration("wallet-propagation-wait"),
		Verbose:               c.Bool("verbose"),
	}

	// Per-address overrides replace the whole registry entry for this run.
	if c.String("poll-factory-address") != "" || c.String("wallet-factory-address") != "" || c.String("reward-token-address") != "" {
		base, err := config.GetCoreContractsForChainId(cfg.ChainID)
		if err != nil {
			base = &config.CoreContractAddresses{}
		}
		contracts := *base
		if v := c.String("poll-factory-address"); v != "" {
			contracts.PollFactory = v
		}
		if v := c.String("wallet-factory-address"); v != "" {
			contracts.SmartWalletFactory = v
		}
		if v := c.String("reward-token-address"); v != "" {
			contracts.RewardToken = v
		}
		cfg.CoreContracts = &contracts
	}

	return cfg
}

func schemeFromFlags(c *cli.Context) types.AuthorizationScheme {
	if wallet := c.String("wallet"); wallet != "" {
		return types.SmartWallet(common.HexToAddress(wallet))
	}
	return types.HostedCustody()
}

func relayVote(c *cli.Context) error {
	rt, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer rt.close()

	result, err := rt.executor.Vote(c.Context, &relay.VoteRequest{
		RequestID: c.String("request-id"),
		Poll:      common.HexToAddress(c.String("poll")),
		Voter:     common.HexToAddress(c.String("voter")),
		Option:    new(big.Int).SetUint64(c.Uint64("option")),
		Scheme:    schemeFromFlags(c),
		Signature: c.String("signature"),
	})
	if err != nil {
		return err
	}

	rt.logger.Sugar().Infow("Vote relayed",
		"request_id", result.RequestID,
		"tx_hash", result.TxHash.Hex(),
	)
	return nil
}

func relayClaim(c *cli.Context) error {
	rt, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer rt.close()

	result, err := rt.executor.ClaimReward(c.Context, &relay.ClaimRequest{
		RequestID: c.String("request-id"),
		Poll:      common.HexToAddress(c.String("poll")),
		Claimer:   common.HexToAddress(c.String("claimer")),
		Scheme:    schemeFromFlags(c),
		Signature: c.String("signature"),
	})
	if err != nil {
		return err
	}

	rt.logger.Sugar().Infow("Reward claim relayed",
		"request_id", result.RequestID,
		"tx_hash", result.TxHash.Hex(),
	)
	return nil
}

func relayCreatePoll(c *cli.Context) error {
	rt, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer rt.close()

	fundAmount, ok := new(big.Int).SetString(c.String("fund-amount"), 10)
	if !ok {
		return fmt.Errorf("invalid fund amount: %s", c.String("fund-amount"))
	}
	var feeOverride *big.Int
	if v := c.String("fee-override"); v != "" {
		feeOverride, ok = new(big.Int).SetString(v, 10)
		if !ok {
			return fmt.Errorf("invalid fee override: %s", v)
		}
	}

	result, err := rt.executor.CreateFundedPoll(c.Context, &relay.CreateFundedPollRequest{
		RequestID:   c.String("request-id"),
		Creator:     common.HexToAddress(c.String("creator")),
		Title:       c.String("title"),
		Options:     c.StringSlice("option"),
		Duration:    new(big.Int).SetInt64(int64(c.Duration("duration").Seconds())),
		FundAmount:  fundAmount,
		FeeOverride: feeOverride,
		Scheme:      schemeFromFlags(c),
		Signature:   c.String("signature"),
	})
	if err != nil {
		return err
	}

	pollAddress := ""
	if result.PollAddress != nil {
		pollAddress = result.PollAddress.Hex()
	}
	rt.logger.Sugar().Infow("Funded poll created",
		"request_id", result.RequestID,
		"tx_hash", result.TxHash.Hex(),
		"poll_address", pollAddress,
	)
	return nil
}

func ensureWallet(c *cli.Context) error {
	rt, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer rt.close()

	wallet, err := rt.executor.EnsureWallet(c.Context, common.HexToAddress(c.String("owner")))
	if err != nil {
		return err
	}

	rt.logger.Sugar().Infow("Smart wallet ready",
		"owner", c.String("owner"),
		"wallet", wallet.Hex(),
	)
	return nil
}

func listSubmissions(c *cli.Context) error {
	rt, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer rt.close()

	submissions, err := rt.store.ListSubmissions()
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	for _, sub := range submissions {
		fmt.Printf("%s  %-20s  %-10s  %s\n", sub.CreatedAt.Format(time.RFC3339), sub.Operation, sub.Status, sub.TxHash.Hex())
	}
	fmt.Printf("%d submissions\n", len(submissions))
	return nil
}
