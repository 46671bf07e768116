package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

// MarshalSubmission serializes a submission for storage.
func MarshalSubmission(submission *types.RelaySubmission) ([]byte, error) {
	data, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal RelaySubmission: %w", err)
	}
	return data, nil
}

// UnmarshalSubmission deserializes a stored submission.
func UnmarshalSubmission(data []byte) (*types.RelaySubmission, error) {
	var submission types.RelaySubmission
	if err := json.Unmarshal(data, &submission); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RelaySubmission: %w", err)
	}
	return &submission, nil
}
