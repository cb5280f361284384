package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_attempts:"

// RedisLimiter backs the attempt counter with Redis INCR + EXPIRE, atomic
// across application instances.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(addr, password string, db int) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisLimiter{client: client}, nil
}

func (l *RedisLimiter) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, keyPrefix+key)
	// NX keeps the original window; the counter dies with it.
	pipe.ExpireNX(ctx, keyPrefix+key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("increment login attempts: %w", err)
	}
	return incr.Val(), nil
}

func (l *RedisLimiter) Count(ctx context.Context, key string) (int64, error) {
	count, err := l.client.Get(ctx, keyPrefix+key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("read login attempts: %w", err)
	}
	return count, nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
