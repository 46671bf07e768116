package verifier

import "errors"

var (
	errUnresolvedFee = errors.New("create poll action has no resolved fee amount")
	errUnknownAction = errors.New("unknown action kind")
)
