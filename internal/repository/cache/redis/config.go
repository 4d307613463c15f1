package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/repository/cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ cache.ConfigCache = (*Cache)(nil)

// Cache 多个实例共享的渠道配置缓存，值是 JSON
type Cache struct {
	rdb redis.Cmdable
}

func NewCache(rdb redis.Cmdable) *Cache {
	return &Cache{
		rdb: rdb,
	}
}

func (c *Cache) Get(ctx context.Context, id int64) (domain.ChannelConfig, error) {
	var cfg domain.ChannelConfig
	err := c.get(ctx, cache.ConfigKey(id), &cfg)
	return cfg, err
}

func (c *Cache) Set(ctx context.Context, cfg domain.ChannelConfig) error {
	return c.set(ctx, cache.ConfigKey(cfg.ID), cfg)
}

func (c *Cache) GetScope(ctx context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error) {
	var cfgs []domain.ChannelConfig
	err := c.get(ctx, cache.ScopeKey(tenantID, storeID), &cfgs)
	if err != nil {
		return nil, err
	}
	if cfgs == nil {
		cfgs = []domain.ChannelConfig{}
	}
	return cfgs, nil
}

func (c *Cache) SetScope(ctx context.Context, tenantID, storeID int64, cfgs []domain.ChannelConfig) error {
	if cfgs == nil {
		cfgs = []domain.ChannelConfig{}
	}
	return c.set(ctx, cache.ScopeKey(tenantID, storeID), cfgs)
}

// Evict 一次 DEL 删掉两个 key
func (c *Cache) Evict(ctx context.Context, cfg domain.ChannelConfig) error {
	return c.rdb.Del(ctx, cache.ConfigKey(cfg.ID), cache.ScopeKey(cfg.TenantID, cfg.StoreID)).Err()
}

func (c *Cache) get(ctx context.Context, key string, val any) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cache.ErrorKeyNotFound
		}
		return fmt.Errorf("从redis读取渠道配置失败 key=%s: %w", key, err)
	}
	if err = json.Unmarshal(data, val); err != nil {
		return fmt.Errorf("反序列化渠道配置失败 key=%s: %w", key, err)
	}
	return nil
}

func (c *Cache) set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("序列化渠道配置失败 key=%s: %w", key, err)
	}
	if err = c.rdb.Set(ctx, key, data, cache.DefaultExpiredTime).Err(); err != nil {
		return fmt.Errorf("写入redis渠道配置失败 key=%s: %w", key, err)
	}
	return nil
}
