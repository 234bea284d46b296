package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"

	"social-feed-service/configs"
)

func Open(ctx context.Context, cfg *configs.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
