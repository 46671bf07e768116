package persistence

import "github.com/Kedawgs/TruthPoll-sub000/pkg/types"

// ISubmissionStore defines the interface for persisting relay submissions.
// All implementations must be thread-safe as relay operations are concurrent.
//
// The store backs two concerns:
// - Idempotency: a request ID with a terminal submission is never re-executed.
// - Observability: operators can list what the relayer has done and when.
type ISubmissionStore interface {
	// SaveSubmission persists a submission keyed by its request ID,
	// overwriting any previous record for the same ID.
	SaveSubmission(submission *types.RelaySubmission) error

	// GetSubmission retrieves a submission by request ID.
	// Returns nil if none exists, error only on storage failure.
	GetSubmission(requestID string) (*types.RelaySubmission, error)

	// ListSubmissions returns all persisted submissions sorted by creation
	// time (ascending). Returns empty slice if none exist, error only on
	// storage failure.
	ListSubmissions() ([]*types.RelaySubmission, error)

	// DeleteSubmission removes a submission by request ID.
	// Idempotent - returns nil if none exists.
	DeleteSubmission(requestID string) error

	// Close cleanly shuts down the store. Idempotent - safe to call multiple
	// times. After Close(), all other operations return errors.
	Close() error

	// HealthCheck verifies the store is operational. Should be called during
	// startup to fail fast.
	HealthCheck() error
}
