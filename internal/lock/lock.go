// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package lock provides a Redis-backed mutual exclusion primitive used to
// keep background loops single-flight across service replicas.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/campaignhq/campaign-service/internal/logging"
)

var ErrNotAcquired = errors.New("lock not acquired")

// RedisClientInterface is the slice of go-redis this package needs.
type RedisClientInterface interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Lua compare-and-delete so a slow holder never releases a lock that
// already expired and was re-acquired by another replica.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

type Locker struct {
	client RedisClientInterface
	logger logging.LoggerInterface
}

func NewLocker(client RedisClientInterface, logger logging.LoggerInterface) *Locker {
	l := new(Locker)
	l.client = client
	l.logger = logger
	return l
}

// Acquire takes the named lock for at most ttl. It returns ErrNotAcquired
// when another holder owns the lock, and a release func otherwise.
func (l *Locker) Acquire(ctx context.Context, name string, ttl time.Duration) (func(context.Context), error) {
	token, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate lock token: %w", err)
	}

	key := "lock:" + name
	ok, err := l.client.SetNX(ctx, key, token.String(), ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", name, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	release := func(ctx context.Context) {
		if err := l.client.Eval(ctx, releaseScript, []string{key}, token.String()).Err(); err != nil && !errors.Is(err, redis.Nil) {
			l.logger.Errorf("failed to release lock %s: %v", name, err)
		}
	}

	return release, nil
}
