package caller

import (
	"context"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/Poll"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/SmartWallet"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

// confirmationPollInterval is how often the chain head is re-checked while
// waiting for additional confirmations beyond the mined block.
const confirmationPollInterval = 2 * time.Second

func (cc *ContractCaller) buildTransactionOpts(ctx context.Context, operation string, gas types.GasSettings) (*bind.TransactOpts, error) {
	opts, err := cc.signer.TransactOpts(ctx, operation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build transaction options")
	}
	opts.GasTipCap = gas.MaxPriorityFeePerGas
	opts.GasFeeCap = gas.MaxFeePerGas
	opts.GasLimit = gas.GasLimit
	return opts, nil
}

func (cc *ContractCaller) SubmitMetaVote(
	ctx context.Context,
	poll, voter common.Address,
	option *big.Int,
	v uint8, r, s [32]byte,
	gas types.GasSettings,
	confirmations uint64,
) (*ethereumTypes.Receipt, error) {
	pollTransactor, err := Poll.NewPollTransactor(poll, cc.ethclient)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create poll transactor for %s", poll.Hex())
	}

	opts, err := cc.buildTransactionOpts(ctx, "metaVote", gas)
	if err != nil {
		return nil, err
	}

	tx, err := pollTransactor.MetaVote(opts, voter, option, v, r, s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to submit meta vote to poll %s", poll.Hex())
	}
	return cc.waitForReceipt(ctx, tx, confirmations, "metaVote")
}

func (cc *ContractCaller) SubmitMetaClaimReward(
	ctx context.Context,
	poll, claimer common.Address,
	v uint8, r, s [32]byte,
	gas types.GasSettings,
	confirmations uint64,
) (*ethereumTypes.Receipt, error) {
	pollTransactor, err := Poll.NewPollTransactor(poll, cc.ethclient)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create poll transactor for %s", poll.Hex())
	}

	opts, err := cc.buildTransactionOpts(ctx, "metaClaimReward", gas)
	if err != nil {
		return nil, err
	}

	tx, err := pollTransactor.MetaClaimReward(opts, claimer, v, r, s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to submit meta claim to poll %s", poll.Hex())
	}
	return cc.waitForReceipt(ctx, tx, confirmations, "metaClaimReward")
}

func (cc *ContractCaller) SubmitMetaCreatePollWithFunds(
	ctx context.Context,
	params *contractCaller.CreatePollParams,
	v uint8, r, s [32]byte,
	gas types.GasSettings,
	confirmations uint64,
) (*ethereumTypes.Receipt, error) {
	opts, err := cc.buildTransactionOpts(ctx, "metaCreatePollWithFunds", gas)
	if err != nil {
		return nil, err
	}

	tx, err := cc.factory.MetaCreatePollWithFunds(opts,
		params.Creator,
		params.Title,
		params.Options,
		params.Duration,
		params.FundAmount,
		params.FeeAmount,
		v, r, s,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to submit meta poll creation for %s", params.Creator.Hex())
	}
	return cc.waitForReceipt(ctx, tx, confirmations, "metaCreatePollWithFunds")
}

func (cc *ContractCaller) SubmitWalletExecute(
	ctx context.Context,
	wallet, target common.Address,
	value *big.Int,
	data, signature []byte,
	gas types.GasSettings,
	confirmations uint64,
) (*ethereumTypes.Receipt, error) {
	walletTransactor, err := SmartWallet.NewSmartWalletTransactor(wallet, cc.ethclient)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create wallet transactor for %s", wallet.Hex())
	}

	opts, err := cc.buildTransactionOpts(ctx, "walletExecute", gas)
	if err != nil {
		return nil, err
	}

	tx, err := walletTransactor.Execute(opts, target, value, data, signature)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to submit execute through wallet %s", wallet.Hex())
	}
	return cc.waitForReceipt(ctx, tx, confirmations, "walletExecute")
}

func (cc *ContractCaller) SubmitCreateWallet(
	ctx context.Context,
	owner common.Address,
	gas types.GasSettings,
	confirmations uint64,
) (*ethereumTypes.Receipt, error) {
	opts, err := cc.buildTransactionOpts(ctx, "createWallet", gas)
	if err != nil {
		return nil, err
	}

	tx, err := cc.walletFactory.CreateWallet(opts, owner)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to submit wallet creation for %s", owner.Hex())
	}
	return cc.waitForReceipt(ctx, tx, confirmations, "createWallet")
}

// waitForReceipt blocks until the transaction is mined plus any additional
// confirmations, then checks the receipt status. A status-0 receipt comes back
// as a *contractCaller.RevertError with a best-effort reason.
func (cc *ContractCaller) waitForReceipt(
	ctx context.Context,
	tx *ethereumTypes.Transaction,
	confirmations uint64,
	operation string,
) (*ethereumTypes.Receipt, error) {
	cc.logger.Sugar().Infow("Transaction submitted",
		zap.String("operation", operation),
		zap.String("txHash", tx.Hash().Hex()),
		zap.String("from", cc.signer.FromAddress().Hex()),
		zap.String("to", tx.To().Hex()),
	)

	receipt, err := bind.WaitMined(ctx, cc.ethclient, tx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed waiting for transaction %s", tx.Hash().Hex())
	}

	if confirmations > 1 {
		if err := cc.waitForConfirmations(ctx, receipt, confirmations); err != nil {
			return nil, err
		}
	}

	if receipt.Status == ethereumTypes.ReceiptStatusFailed {
		reason := cc.revertReason(ctx, tx, receipt)
		cc.logger.Sugar().Errorw("Transaction reverted",
			zap.String("operation", operation),
			zap.String("txHash", tx.Hash().Hex()),
			zap.String("reason", reason),
		)
		return receipt, &contractCaller.RevertError{TxHash: tx.Hash(), Reason: reason}
	}

	cc.logger.Sugar().Infow("Transaction confirmed",
		zap.String("operation", operation),
		zap.String("txHash", tx.Hash().Hex()),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return receipt, nil
}

func (cc *ContractCaller) waitForConfirmations(ctx context.Context, receipt *ethereumTypes.Receipt, confirmations uint64) error {
	target := receipt.BlockNumber.Uint64() + confirmations - 1

	ticker := time.NewTicker(confirmationPollInterval)
	defer ticker.Stop()

	for {
		head, err := cc.ethclient.BlockNumber(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to get chain head while waiting for confirmations")
		}
		if head >= target {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("confirmation wait cancelled for %s: %w", receipt.TxHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// revertReason re-simulates the failed call at its mined block to pull the
// revert string out of the node error. Nodes that prune state or refuse the
// call just yield an empty reason.
func (cc *ContractCaller) revertReason(ctx context.Context, tx *ethereumTypes.Transaction, receipt *ethereumTypes.Receipt) string {
	msg := ethereum.CallMsg{
		From:  cc.signer.FromAddress(),
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	_, err := cc.ethclient.CallContract(ctx, msg, receipt.BlockNumber)
	if err == nil {
		return ""
	}
	return err.Error()
}

// ParsePollCreated scans a factory receipt for the new poll's address. Funded
// creations emit PollCreatedAndFunded; the unfunded path emits PollCreated.
func (cc *ContractCaller) ParsePollCreated(receipt *ethereumTypes.Receipt) (common.Address, error) {
	for _, log := range receipt.Logs {
		if funded, err := cc.factory.ParsePollCreatedAndFunded(*log); err == nil {
			return funded.PollAddress, nil
		}
		if created, err := cc.factory.ParsePollCreated(*log); err == nil {
			return created.PollAddress, nil
		}
	}
	return common.Address{}, fmt.Errorf("no poll creation event in receipt %s", receipt.TxHash.Hex())
}
