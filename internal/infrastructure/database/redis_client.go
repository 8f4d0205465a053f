package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis opens the connection used for record locks and checks it with PING.
func ConnectRedis(ctx context.Context, addr, password string, logg *logrus.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logg.WithError(err).WithField("addr", addr).Error("[lock][redis] ping failed")
		_ = rdb.Close()
		return nil, err
	}
	logg.WithField("addr", addr).Info("[lock][redis] connected")
	return rdb, nil
}
