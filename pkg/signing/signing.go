package signing

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/config"
)

// SignatureLength is the raw length of a secp256k1 signature (r || s || v).
const SignatureLength = 65

// HexSignatureLength is the length of a 0x-prefixed hex-encoded signature.
const HexSignatureLength = 2 + SignatureLength*2

var eip712DomainType = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

func domain(chainID *big.Int, verifyingContract common.Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              config.EIP712DomainName,
		Version:           config.EIP712DomainVersion,
		ChainId:           (*math.HexOrDecimal256)(chainID),
		VerifyingContract: verifyingContract.Hex(),
	}
}

// VoteTypedData builds the EIP-712 payload a hosted-custody user signs to
// authorize a vote. The nonce embedded here must be the poll contract's
// current nonce for the voter or recovery yields a different address.
func VoteTypedData(chainID *big.Int, poll, voter common.Address, option, nonce *big.Int) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": eip712DomainType,
			"Vote": {
				{Name: "voter", Type: "address"},
				{Name: "option", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		PrimaryType: "Vote",
		Domain:      domain(chainID, poll),
		Message: apitypes.TypedDataMessage{
			"voter":  voter.Hex(),
			"option": (*math.HexOrDecimal256)(option),
			"nonce":  (*math.HexOrDecimal256)(nonce),
		},
	}
}

// ClaimRewardTypedData builds the EIP-712 payload authorizing a reward claim.
func ClaimRewardTypedData(chainID *big.Int, poll, claimer common.Address, nonce *big.Int) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": eip712DomainType,
			"ClaimReward": {
				{Name: "claimer", Type: "address"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		PrimaryType: "ClaimReward",
		Domain:      domain(chainID, poll),
		Message: apitypes.TypedDataMessage{
			"claimer": claimer.Hex(),
			"nonce":   (*math.HexOrDecimal256)(nonce),
		},
	}
}

// CreatePollTypedData builds the EIP-712 payload authorizing a funded poll
// creation through the factory. The nonce is the factory's nonce for the
// creator, not a poll nonce.
func CreatePollTypedData(chainID *big.Int, factory, creator common.Address, fundAmount, feeAmount, nonce *big.Int) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": eip712DomainType,
			"CreatePoll": {
				{Name: "creator", Type: "address"},
				{Name: "fundAmount", Type: "uint256"},
				{Name: "feeAmount", Type: "uint256"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		PrimaryType: "CreatePoll",
		Domain:      domain(chainID, factory),
		Message: apitypes.TypedDataMessage{
			"creator":    creator.Hex(),
			"fundAmount": (*math.HexOrDecimal256)(fundAmount),
			"feeAmount":  (*math.HexOrDecimal256)(feeAmount),
			"nonce":      (*math.HexOrDecimal256)(nonce),
		},
	}
}

// TypedDataDigest computes the EIP-712 signing digest
// keccak256(0x1901 || domainSeparator || hashStruct(message)).
func TypedDataDigest(td apitypes.TypedData) ([]byte, error) {
	digest, _, err := apitypes.TypedDataAndHash(td)
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}
	return digest, nil
}

// CallHash computes the smart-wallet call commitment
// keccak256(abi.encodePacked(target, value, keccak256(callData))), matching
// the wallet contract's own digest construction.
func CallHash(target common.Address, value *big.Int, callData []byte) common.Hash {
	if value == nil {
		value = big.NewInt(0)
	}
	buf := make([]byte, 0, 20+32+32)
	buf = append(buf, target.Bytes()...)
	buf = append(buf, common.LeftPadBytes(value.Bytes(), 32)...)
	buf = append(buf, crypto.Keccak256(callData)...)
	return crypto.Keccak256Hash(buf)
}

// EIP191Digest prefixes a call hash per EIP-191 ("\x19Ethereum Signed
// Message:\n32" || hash) and returns the digest actually signed.
func EIP191Digest(callHash common.Hash) []byte {
	return accounts.TextHash(callHash.Bytes())
}

// ParseSignature decodes a 0x-prefixed 65-byte hex signature. Anything else
// is rejected before the chain is ever touched.
func ParseSignature(hexSig string) ([]byte, error) {
	if !strings.HasPrefix(hexSig, "0x") {
		return nil, fmt.Errorf("signature must be 0x-prefixed")
	}
	if len(hexSig) != HexSignatureLength {
		return nil, fmt.Errorf("signature must be %d hex chars, got %d", HexSignatureLength, len(hexSig))
	}
	sig, err := hexutil.Decode(hexSig)
	if err != nil {
		return nil, fmt.Errorf("malformed signature hex: %w", err)
	}
	return sig, nil
}

// SplitSignature decomposes a 65-byte signature into the (v, r, s) form the
// contracts' meta-functions take. v is normalized to 27/28.
func SplitSignature(sig []byte) (v uint8, r [32]byte, s [32]byte, err error) {
	if len(sig) != SignatureLength {
		return 0, r, s, fmt.Errorf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	v = sig[64]
	if v < 27 {
		v += 27
	}
	return v, r, s, nil
}

// RecoverSigner recovers the address that produced sig over digest. Accepts
// v as 0/1 or 27/28.
func RecoverSigner(digest []byte, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	pub, err := crypto.SigToPub(digest, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// SignDigest signs a 32-byte digest and returns the signature with v as
// 27/28, the form the rest of the pipeline expects. Used by the hack tools
// and tests to produce user-side signatures.
func SignDigest(digest []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	if sig[64] < 27 {
		sig[64] += 27
	}
	return sig, nil
}
