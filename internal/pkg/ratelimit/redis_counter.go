package ratelimit

import (
	"context"
	_ "embed"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	//go:embed lua/incr_expire.lua
	incrExpireScript string

	_ Counter = (*RedisCounter)(nil)
)

// RedisCounter 基于 Redis 的计数器，多实例共享同一个计数
type RedisCounter struct {
	cmd redis.Cmdable
}

func NewRedisCounter(cmd redis.Cmdable) *RedisCounter {
	return &RedisCounter{cmd: cmd}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	seconds := int64(ttl / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	return r.cmd.Eval(ctx, incrExpireScript, []string{key}, seconds).Int64()
}
