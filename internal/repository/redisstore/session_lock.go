package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionLockPrefix = "shop-assistant:lock:"

var ErrLockHeld = errors.New("session lock is held by another instance")

// releaseScript deletes the lock only while it still carries our token, so an
// expired holder cannot release a lock that was taken over by another instance.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SessionLock is a SET NX lock shared by every instance using the same Redis.
type SessionLock struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

// NewSessionLock creates the lock. ttl bounds how long a crashed holder blocks
// the conversation; wait bounds how long Acquire retries.
func NewSessionLock(client *redis.Client, ttl, wait time.Duration) *SessionLock {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if wait <= 0 {
		wait = 30 * time.Second
	}
	return &SessionLock{client: client, ttl: ttl, wait: wait}
}

func (l *SessionLock) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	redisKey := sessionLockPrefix + key

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond

	_, err := backoff.Retry(ctx, func() (bool, error) {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return false, backoff.Permanent(fmt.Errorf("redis lock %s: %w", key, err))
		}
		if !ok {
			return false, ErrLockHeld
		}
		return true, nil
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(l.wait))
	if err != nil {
		return nil, err
	}

	return func() {
		// the caller's context may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err()
	}, nil
}
