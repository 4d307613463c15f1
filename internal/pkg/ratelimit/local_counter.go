package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

var _ Counter = (*LocalCounter)(nil)

// LocalCounter 进程内计数器，只在单实例部署或者测试的时候使用
type LocalCounter struct {
	mu sync.Mutex
	c  *cache.Cache
}

func NewLocalCounter() *LocalCounter {
	const cleanupInterval = time.Minute
	return &LocalCounter{
		c: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

func (l *LocalCounter) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	// Add + IncrementInt64 两步之间 key 可能恰好过期，加锁保证原子
	l.mu.Lock()
	defer l.mu.Unlock()
	// key 已存在时 Add 返回错误，忽略即可
	_ = l.c.Add(key, int64(0), ttl)
	return l.c.IncrementInt64(key, 1)
}
