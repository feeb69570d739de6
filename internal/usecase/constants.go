package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// TrialBalanceCacheKey is the Redis key for the cached trial balance report
	TrialBalanceCacheKey = "report:trial_balance"

	// TrialBalanceCacheTTL bounds staleness of the cached trial balance
	TrialBalanceCacheTTL = 30 * time.Second

	// StatementPageSize is the batch size for fetching a party's settlements
	// while assembling a statement; the statement itself is unbounded
	StatementPageSize = 200
)
