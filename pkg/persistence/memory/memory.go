package memory

import (
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

// MemorySubmissionStore is an in-memory implementation of ISubmissionStore.
// All data is lost when the process exits; suitable for tests and local
// development against anvil.
//
// Thread-safe using sync.RWMutex. Deep copies data to prevent external
// mutation.
type MemorySubmissionStore struct {
	mu sync.RWMutex

	// requestID -> submission
	submissions map[string]*types.RelaySubmission

	closed bool
}

func NewMemorySubmissionStore() *MemorySubmissionStore {
	return &MemorySubmissionStore{
		submissions: make(map[string]*types.RelaySubmission),
	}
}

func (m *MemorySubmissionStore) SaveSubmission(submission *types.RelaySubmission) error {
	if submission == nil {
		return fmt.Errorf("cannot save nil RelaySubmission")
	}
	if submission.RequestID == "" {
		return fmt.Errorf("cannot save RelaySubmission without a request ID")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("submission store is closed")
	}

	m.submissions[submission.RequestID] = deepCopySubmission(submission)
	return nil
}

func (m *MemorySubmissionStore) GetSubmission(requestID string) (*types.RelaySubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("submission store is closed")
	}

	submission, exists := m.submissions[requestID]
	if !exists {
		return nil, nil
	}
	return deepCopySubmission(submission), nil
}

func (m *MemorySubmissionStore) ListSubmissions() ([]*types.RelaySubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("submission store is closed")
	}

	out := make([]*types.RelaySubmission, 0, len(m.submissions))
	for _, submission := range m.submissions {
		out = append(out, deepCopySubmission(submission))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemorySubmissionStore) DeleteSubmission(requestID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("submission store is closed")
	}

	delete(m.submissions, requestID)
	return nil
}

func (m *MemorySubmissionStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemorySubmissionStore) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return fmt.Errorf("submission store is closed")
	}
	return nil
}

func deepCopySubmission(s *types.RelaySubmission) *types.RelaySubmission {
	out := *s
	out.GasSettings = types.GasSettings{
		MaxPriorityFeePerGas: copyBigInt(s.GasSettings.MaxPriorityFeePerGas),
		MaxFeePerGas:         copyBigInt(s.GasSettings.MaxFeePerGas),
		GasLimit:             s.GasSettings.GasLimit,
		Version:              s.GasSettings.Version,
	}
	if s.PollAddress != nil {
		addr := *s.PollAddress
		out.PollAddress = &addr
	}
	return &out
}

func copyBigInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
