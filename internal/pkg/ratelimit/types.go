package ratelimit

import (
	"context"
	"time"
)

// Counter 限流计数器，key 第一次出现时设置过期时间
//
//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/counter.mock.go Counter
type Counter interface {
	// Incr 计数加一并返回加一之后的值
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
