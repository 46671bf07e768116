package relay

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/contractCaller"
)

// AuthorizationError means the request failed signature verification, or
// verification could not be completed. Deliberately indistinguishable from
// the outside: "can't verify" must deny exactly like "verified false".
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed: %s", e.Reason)
}

// ValidationError means the request was well-authorized but cannot succeed
// against current chain state: bad input, already voted, poll closed,
// insufficient allowance. The caller can fix these; retrying unchanged won't.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// BlockchainError means the chain interaction itself failed: RPC errors,
// submission failures, and reverts with no recognized cause.
type BlockchainError struct {
	Reason string
	TxHash common.Hash
	Err    error
}

func (e *BlockchainError) Error() string {
	if e.TxHash != (common.Hash{}) {
		return fmt.Sprintf("blockchain error (tx %s): %s", e.TxHash.Hex(), e.Reason)
	}
	return fmt.Sprintf("blockchain error: %s", e.Reason)
}

func (e *BlockchainError) Unwrap() error {
	return e.Err
}

// knownRevertReasons are contract require() messages that indicate a state
// conflict the user can understand, not an infrastructure failure.
var knownRevertReasons = []string{
	"Already voted",
	"Poll is not active",
	"Insufficient reward funds",
	"Insufficient allowance",
}

// classifyRevert turns a mined-but-reverted transaction into the right error
// type: recognized require() messages become ValidationErrors, everything
// else stays a BlockchainError.
func classifyRevert(revertErr *contractCaller.RevertError) error {
	for _, reason := range knownRevertReasons {
		if strings.Contains(revertErr.Reason, reason) {
			return &ValidationError{Reason: reason}
		}
	}
	return &BlockchainError{
		Reason: revertErr.Error(),
		TxHash: revertErr.TxHash,
		Err:    revertErr,
	}
}
