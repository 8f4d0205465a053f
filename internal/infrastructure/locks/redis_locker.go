package locks

import (
	"context"
	"time"

	"traful_pagos/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"
)

// RedisLocker hands out short-lived distributed locks on store records.
type RedisLocker struct {
	locker *redislock.Client
	ttl    time.Duration
	logg   *logrus.Logger
}

var _ interfaces.IRecordLocker = (*RedisLocker)(nil)

func NewRedisLocker(client redislock.RedisClient, ttl time.Duration, logg *logrus.Logger) *RedisLocker {
	return &RedisLocker{locker: redislock.New(client), ttl: ttl, logg: logg}
}

// Lock blocks (with linear backoff, bounded by the lock TTL) until the key is free.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(context.Context), error) {
	obtainCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	lock, err := l.locker.Obtain(obtainCtx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(100 * time.Millisecond),
	})
	if err != nil {
		l.logg.WithError(err).WithField("key", key).Warn("[lock][redis] obtain failed")
		return nil, err
	}

	return func(ctx context.Context) {
		if err := lock.Release(ctx); err != nil && err != redislock.ErrLockNotHeld {
			l.logg.WithError(err).WithField("key", key).Warn("[lock][redis] release failed")
		}
	}, nil
}
