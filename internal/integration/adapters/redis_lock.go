// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/crechebooks/reconciliation/internal/application/adapter"
	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
)

const lockAcquireBackoff = 100 * time.Millisecond

// releaseScript deletes the lock key only when it still holds our token, so
// an expired lock taken over by another process is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// redisLocker implements the adapter.ReconciliationLocker interface with a
// Redis SET NX lock. The TTL bounds how long a crashed holder can block the
// period.
type redisLocker struct {
	client  *redis.Client
	ttl     time.Duration
	retries int
}

// NewRedisLocker creates a new redis locker instance.
func NewRedisLocker(client *redis.Client, ttl time.Duration, retries int) adapter.ReconciliationLocker {
	return &redisLocker{
		client:  client,
		ttl:     ttl,
		retries: retries,
	}
}

// Acquire takes the single-writer lock for the reconciliation period,
// retrying briefly when it is held. Failures surface as transient errors so
// callers know a retry may succeed.
func (l *redisLocker) Acquire(ctx context.Context, key adapter.LockKey) (func(), error) {
	lockKey := fmt.Sprintf("reconciliation:lock:%s:%s:%s",
		key.TenantID, key.BankAccountID, key.PeriodStart.Format("2006-01-02"))
	token := uuid.NewString()

	backoff := lockAcquireBackoff
	for attempt := 0; attempt <= l.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, transientLockError(lockKey, ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		acquired, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, transientLockError(lockKey, err)
		}
		if acquired {
			return func() { l.release(lockKey, token) }, nil
		}
	}

	return nil, transientLockError(lockKey, nil)
}

// release runs on its own context: the caller's may already be cancelled by
// the time the deferred release fires.
func (l *redisLocker) release(lockKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err()
}

func transientLockError(lockKey string, cause error) error {
	if cause == nil {
		cause = domainerror.ErrTransientStore
	}
	return domainerror.NewReconciliationError(
		domainerror.ErrCodeLockNotAcquired,
		"could not acquire reconciliation lock",
		domainerror.NewTransientError(cause),
	).WithDetail("lock_key", lockKey)
}
