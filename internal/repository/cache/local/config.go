package local

import (
	"context"
	"slices"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/repository/cache"
	ca "github.com/patrickmn/go-cache"
)

var _ cache.ConfigCache = (*Cache)(nil)

// Cache 进程内的配置缓存
// 其它实例修改配置时本地缓存不会被通知，所以过期时间要比 redis 短很多
type Cache struct {
	c   *ca.Cache
	ttl time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		c:   ca.New(ttl, 2*ttl),
		ttl: ttl,
	}
}

func (l *Cache) Get(_ context.Context, id int64) (domain.ChannelConfig, error) {
	v, ok := l.c.Get(cache.ConfigKey(id))
	if !ok {
		return domain.ChannelConfig{}, cache.ErrorKeyNotFound
	}
	return v.(domain.ChannelConfig), nil
}

func (l *Cache) Set(_ context.Context, cfg domain.ChannelConfig) error {
	l.c.Set(cache.ConfigKey(cfg.ID), cfg, l.ttl)
	return nil
}

// GetScope 返回副本，调用方修改切片不会影响缓存
func (l *Cache) GetScope(_ context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error) {
	v, ok := l.c.Get(cache.ScopeKey(tenantID, storeID))
	if !ok {
		return nil, cache.ErrorKeyNotFound
	}
	return slices.Clone(v.([]domain.ChannelConfig)), nil
}

func (l *Cache) SetScope(_ context.Context, tenantID, storeID int64, cfgs []domain.ChannelConfig) error {
	cp := make([]domain.ChannelConfig, len(cfgs))
	copy(cp, cfgs)
	l.c.Set(cache.ScopeKey(tenantID, storeID), cp, l.ttl)
	return nil
}

func (l *Cache) Evict(_ context.Context, cfg domain.ChannelConfig) error {
	l.c.Delete(cache.ConfigKey(cfg.ID))
	l.c.Delete(cache.ScopeKey(cfg.TenantID, cfg.StoreID))
	return nil
}
