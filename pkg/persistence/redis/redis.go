package redis

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Kedawgs/TruthPoll-sub000/pkg/persistence"
	"github.com/Kedawgs/TruthPoll-sub000/pkg/types"
)

// Key prefixes for namespacing in Redis
const (
	keyPrefixSubmission  = "truthpoll:submission:"
	keySetSubmissions    = "truthpoll:submissions:index"
	keySchemaVersion     = "truthpoll:metadata:schema_version"
	currentSchemaVersion = "v1"
)

// RedisSubmissionStore is a Redis-backed implementation of ISubmissionStore,
// suitable for deployments where the relayer may restart or run replicated:
// idempotency records must survive the process.
type RedisSubmissionStore struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
	mu        sync.RWMutex
	closed    bool
}

// RedisConfig holds the configuration for connecting to Redis
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string
	// Password is the optional Redis password
	Password string
	// DB is the Redis database number (0-15)
	DB int
	// KeyPrefix is an optional custom prefix for all keys, for multi-tenant
	// setups. If empty, keys use the default "truthpoll:" namespace.
	KeyPrefix string
}

// NewRedisSubmissionStore creates a new Redis-backed submission store.
func NewRedisSubmissionStore(cfg *RedisConfig, logger *zap.Logger) (*RedisSubmissionStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	rs := &RedisSubmissionStore{
		client:    client,
		logger:    logger,
		keyPrefix: cfg.KeyPrefix,
	}

	if err := rs.initSchema(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Sugar().Infow("Redis submission store initialized",
		"address", cfg.Address,
		"db", cfg.DB,
	)
	return rs, nil
}

func (r *RedisSubmissionStore) prefixKey(key string) string {
	if r.keyPrefix == "" {
		return key
	}
	return r.keyPrefix + key
}

// initSchema initializes or validates the schema version
func (r *RedisSubmissionStore) initSchema(ctx context.Context) error {
	schemaKey := r.prefixKey(keySchemaVersion)

	existingVersion, err := r.client.Get(ctx, schemaKey).Result()
	if err == redis.Nil {
		return r.client.Set(ctx, schemaKey, currentSchemaVersion, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if existingVersion != currentSchemaVersion {
		return fmt.Errorf("unsupported schema version: %s (expected: %s)", existingVersion, currentSchemaVersion)
	}
	return nil
}

func (r *RedisSubmissionStore) SaveSubmission(submission *types.RelaySubmission) error {
	if submission == nil {
		return fmt.Errorf("cannot save nil RelaySubmission")
	}
	if submission.RequestID == "" {
		return fmt.Errorf("cannot save RelaySubmission without a request ID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("submission store is closed")
	}

	ctx := context.Background()

	data, err := persistence.MarshalSubmission(submission)
	if err != nil {
		return err
	}

	key := r.prefixKey(keyPrefixSubmission + submission.RequestID)
	indexKey := r.prefixKey(keySetSubmissions)
	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, submission.RequestID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save RelaySubmission: %w", err)
	}
	return nil
}

func (r *RedisSubmissionStore) GetSubmission(requestID string) (*types.RelaySubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("submission store is closed")
	}

	ctx := context.Background()
	key := r.prefixKey(keyPrefixSubmission + requestID)

	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Not found is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load RelaySubmission: %w", err)
	}

	return persistence.UnmarshalSubmission(data)
}

func (r *RedisSubmissionStore) ListSubmissions() ([]*types.RelaySubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("submission store is closed")
	}

	ctx := context.Background()
	indexKey := r.prefixKey(keySetSubmissions)

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list submission IDs: %w", err)
	}
	if len(ids) == 0 {
		return []*types.RelaySubmission{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.prefixKey(keyPrefixSubmission + id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}

	var submissions []*types.RelaySubmission
	for i, val := range values {
		if val == nil {
			// Key was in index but doesn't exist - clean up index
			r.client.SRem(ctx, indexKey, ids[i])
			continue
		}

		data, ok := val.(string)
		if !ok {
			r.logger.Sugar().Warnw("Unexpected value type for RelaySubmission", "key", keys[i])
			continue
		}

		submission, err := persistence.UnmarshalSubmission([]byte(data))
		if err != nil {
			r.logger.Sugar().Warnw("Failed to unmarshal RelaySubmission, skipping",
				"key", keys[i], "error", err)
			continue
		}
		submissions = append(submissions, submission)
	}

	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].CreatedAt.Before(submissions[j].CreatedAt)
	})
	return submissions, nil
}

func (r *RedisSubmissionStore) DeleteSubmission(requestID string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("submission store is closed")
	}

	ctx := context.Background()
	key := r.prefixKey(keyPrefixSubmission + requestID)
	indexKey := r.prefixKey(keySetSubmissions)

	pipe := r.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey, requestID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete RelaySubmission: %w", err)
	}
	return nil
}

func (r *RedisSubmissionStore) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.client.Close()
}

func (r *RedisSubmissionStore) HealthCheck() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("submission store is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
