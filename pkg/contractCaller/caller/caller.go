package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/IERC20"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/Poll"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/PollFactory"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/SmartWallet"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/SmartWalletFactory"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/config"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/platformSigner"
)

type ContractCaller struct {
	ethclient     *ethclient.Client
	signer        platformSigner.ISigningAuthority
	logger        *zap.Logger
	chainID       *big.Int
	coreContracts *config.CoreContractAddresses

	factory       *PollFactory.PollFactory
	walletFactory *SmartWalletFactory.SmartWalletFactory
	rewardToken   *IERC20.IERC20

	// Parsed ABIs for packing smart-wallet inner calls. Polls and wallets are
	// deployed per user, so those bindings are constructed on demand.
	pollAbi    *abi.ABI
	factoryAbi *abi.ABI
}

var _ contractCaller.IContractCaller = (*ContractCaller)(nil)

func NewContractCaller(
	client *ethclient.Client,
	signer platformSigner.ISigningAuthority,
	logger *zap.Logger,
) (*ContractCaller, error) {
	chainId, err := client.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	coreContracts, err := config.GetCoreContractsForChainId(config.ChainId(chainId.Uint64()))
	if err != nil {
		return nil, fmt.Errorf("failed to get core contracts: %w", err)
	}
	return NewContractCallerWithContracts(client, signer, coreContracts, logger)
}

// NewContractCallerWithContracts is used when the deployment addresses come
// from configuration instead of the chain-ID registry, e.g. a local anvil
// deployment.
func NewContractCallerWithContracts(
	client *ethclient.Client,
	signer platformSigner.ISigningAuthority,
	coreContracts *config.CoreContractAddresses,
	logger *zap.Logger,
) (*ContractCaller, error) {
	chainId, err := client.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	logger.Sugar().Infow("Using core contracts",
		zap.Any("coreContracts", coreContracts),
	)

	factory, err := PollFactory.NewPollFactory(common.HexToAddress(coreContracts.PollFactory), client)
	if err != nil {
		return nil, fmt.Errorf("failed to create poll factory contract instance: %w", err)
	}

	walletFactory, err := SmartWalletFactory.NewSmartWalletFactory(common.HexToAddress(coreContracts.SmartWalletFactory), client)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet factory contract instance: %w", err)
	}

	rewardToken, err := IERC20.NewIERC20(common.HexToAddress(coreContracts.RewardToken), client)
	if err != nil {
		return nil, fmt.Errorf("failed to create reward token contract instance: %w", err)
	}

	pollAbi, err := Poll.PollMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse poll ABI: %w", err)
	}
	factoryAbi, err := PollFactory.PollFactoryMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse poll factory ABI: %w", err)
	}

	return &ContractCaller{
		ethclient:     client,
		signer:        signer,
		logger:        logger,
		chainID:       chainId,
		coreContracts: coreContracts,

		factory:       factory,
		walletFactory: walletFactory,
		rewardToken:   rewardToken,

		pollAbi:    pollAbi,
		factoryAbi: factoryAbi,
	}, nil
}

func (cc *ContractCaller) ChainID() *big.Int {
	return new(big.Int).Set(cc.chainID)
}

func (cc *ContractCaller) PollFactoryAddress() common.Address {
	return common.HexToAddress(cc.coreContracts.PollFactory)
}

func (cc *ContractCaller) GetPollNonce(ctx context.Context, poll, user common.Address) (*big.Int, error) {
	pollCaller, err := Poll.NewPollCaller(poll, cc.ethclient)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create poll caller for %s", poll.Hex())
	}
	nonce, err := pollCaller.GetNonce(&bind.CallOpts{Context: ctx}, user)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get poll nonce for %s", user.Hex())
	}
	return nonce, nil
}

func (cc *ContractCaller) GetFactoryNonce(ctx context.Context, user common.Address) (*big.Int, error) {
	nonce, err := cc.factory.GetNonce(&bind.CallOpts{Context: ctx}, user)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get factory nonce for %s", user.Hex())
	}
	return nonce, nil
}

func (cc *ContractCaller) GetWalletOwner(ctx context.Context, wallet common.Address) (common.Address, error) {
	walletCaller, err := SmartWallet.NewSmartWalletCaller(wallet, cc.ethclient)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "failed to create wallet caller for %s", wallet.Hex())
	}
	owner, err := walletCaller.Owner(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "failed to get owner of wallet %s", wallet.Hex())
	}
	return owner, nil
}

func (cc *ContractCaller) GetWalletForOwner(ctx context.Context, owner common.Address) (common.Address, error) {
	wallet, err := cc.walletFactory.GetWallet(&bind.CallOpts{Context: ctx}, owner)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "failed to look up wallet for owner %s", owner.Hex())
	}
	return wallet, nil
}

func (cc *ContractCaller) GetPlatformFeeRate(ctx context.Context) (*big.Int, error) {
	rate, err := cc.factory.PlatformFeeRate(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get platform fee rate")
	}
	return rate, nil
}

func (cc *ContractCaller) GetRewardTokenAllowance(ctx context.Context, owner common.Address) (*big.Int, error) {
	allowance, err := cc.rewardToken.Allowance(&bind.CallOpts{Context: ctx}, owner, cc.PollFactoryAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get reward token allowance for %s", owner.Hex())
	}
	return allowance, nil
}

func (cc *ContractCaller) HasVoted(ctx context.Context, poll, user common.Address) (bool, error) {
	pollCaller, err := Poll.NewPollCaller(poll, cc.ethclient)
	if err != nil {
		return false, errors.Wrapf(err, "failed to create poll caller for %s", poll.Hex())
	}
	voted, err := pollCaller.HasVoted(&bind.CallOpts{Context: ctx}, user)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check vote state for %s", user.Hex())
	}
	return voted, nil
}

func (cc *ContractCaller) CanClaimReward(ctx context.Context, poll, user common.Address) (bool, error) {
	pollCaller, err := Poll.NewPollCaller(poll, cc.ethclient)
	if err != nil {
		return false, errors.Wrapf(err, "failed to create poll caller for %s", poll.Hex())
	}
	eligible, err := pollCaller.CanClaimReward(&bind.CallOpts{Context: ctx}, user)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check claim eligibility for %s", user.Hex())
	}
	return eligible, nil
}

func (cc *ContractCaller) EncodeVoteCall(option *big.Int) ([]byte, error) {
	data, err := cc.pollAbi.Pack("vote", option)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack vote call")
	}
	return data, nil
}

func (cc *ContractCaller) EncodeClaimRewardCall() ([]byte, error) {
	data, err := cc.pollAbi.Pack("claimReward")
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack claimReward call")
	}
	return data, nil
}

func (cc *ContractCaller) EncodeCreatePollWithFundsCall(params *contractCaller.CreatePollParams) ([]byte, error) {
	data, err := cc.factoryAbi.Pack("createPollWithFunds",
		params.Creator,
		params.Title,
		params.Options,
		params.Duration,
		params.FundAmount,
		params.FeeAmount,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack createPollWithFunds call")
	}
	return data, nil
}
