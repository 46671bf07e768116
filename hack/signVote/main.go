package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/bindings/Poll"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/logger"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/signing"
)

// Produces user-side signatures for testing the relayer against a live
// deployment. Set TRUTHPOLL_USER_PRIVATE_KEY to the signing key.
//
//	go run ./hack/signVote --action vote --poll 0x... --option 1 --nonce 0
//	go run ./hack/signVote --action claim --poll 0x... --nonce 3
//	go run ./hack/signVote --action vote --poll 0x... --option 1 --wallet 0x...
func main() {
	l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: false})

	var (
		action  = flag.String("action", "vote", "vote | claim")
		poll    = flag.String("poll", "", "poll contract address")
		option  = flag.Uint64("option", 0, "option index (vote only)")
		nonce   = flag.Uint64("nonce", 0, "current contract nonce for the signer (hosted-custody only)")
		chainId = flag.Uint64("chain-id", 31337, "chain id for the EIP-712 domain")
		wallet  = flag.String("wallet", "", "smart wallet address; switches to the EIP-191 path")
	)
	flag.Parse()

	keyHex := os.Getenv("TRUTHPOLL_USER_PRIVATE_KEY")
	if keyHex == "" {
		l.Sugar().Fatalf("Environment variable TRUTHPOLL_USER_PRIVATE_KEY is not set")
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		l.Sugar().Fatalf("Failed to parse private key: %v", err)
	}
	signer := crypto.PubkeyToAddress(key.PublicKey)

	if *poll == "" || !common.IsHexAddress(*poll) {
		l.Sugar().Fatalf("--poll must be a hex address")
	}
	pollAddr := common.HexToAddress(*poll)

	if *wallet != "" {
		// Smart-wallet path: the owner signs the EIP-191-prefixed call hash of
		// the inner call the wallet will forward.
		pollAbi, err := Poll.PollMetaData.GetAbi()
		if err != nil {
			l.Sugar().Fatalf("Failed to parse poll ABI: %v", err)
		}

		var data []byte
		switch *action {
		case "vote":
			data, err = pollAbi.Pack("vote", new(big.Int).SetUint64(*option))
		case "claim":
			data, err = pollAbi.Pack("claimReward")
		default:
			l.Sugar().Fatalf("Unknown action %q", *action)
		}
		if err != nil {
			l.Sugar().Fatalf("Failed to pack calldata: %v", err)
		}

		callHash := signing.CallHash(pollAddr, big.NewInt(0), data)
		sig, err := signing.SignDigest(signing.EIP191Digest(callHash), key)
		if err != nil {
			l.Sugar().Fatalf("Failed to sign: %v", err)
		}

		fmt.Printf("owner:     %s\n", signer.Hex())
		fmt.Printf("wallet:    %s\n", *wallet)
		fmt.Printf("callHash:  %s\n", callHash.Hex())
		fmt.Printf("signature: %s\n", hexutil.Encode(sig))
		return
	}

	var typedData apitypes.TypedData
	switch *action {
	case "vote":
		typedData = signing.VoteTypedData(
			new(big.Int).SetUint64(*chainId),
			pollAddr,
			signer,
			new(big.Int).SetUint64(*option),
			new(big.Int).SetUint64(*nonce),
		)
	case "claim":
		typedData = signing.ClaimRewardTypedData(
			new(big.Int).SetUint64(*chainId),
			pollAddr,
			signer,
			new(big.Int).SetUint64(*nonce),
		)
	default:
		l.Sugar().Fatalf("Unknown action %q", *action)
	}

	digest, err := signing.TypedDataDigest(typedData)
	if err != nil {
		l.Sugar().Fatalf("Failed to hash typed data: %v", err)
	}
	sig, err := signing.SignDigest(digest, key)
	if err != nil {
		l.Sugar().Fatalf("Failed to sign: %v", err)
	}

	fmt.Printf("signer:    %s\n", signer.Hex())
	fmt.Printf("signature: %s\n", hexutil.Encode(sig))
}
