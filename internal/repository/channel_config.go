package repository

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strconv"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/repository/cache"
	"gitee.com/flycash/message-center/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=./channel_config.go -destination=./mocks/channel_config.mock.go -package=repomocks ChannelConfigRepository
type ChannelConfigRepository interface {
	// FindByScope 租户级和指定门店的全部配置（包括停用的），不做合并，storeID 为 0 时只有租户级
	// 每一层级单独缓存，依次查本地缓存、redis、数据库
	FindByScope(ctx context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error)
	FindByTenant(ctx context.Context, tenantID int64) ([]domain.ChannelConfig, error)
	// GetByID 依次查本地缓存、redis、数据库
	GetByID(ctx context.Context, id int64) (domain.ChannelConfig, error)
	Create(ctx context.Context, cfg domain.ChannelConfig) (domain.ChannelConfig, error)
	Update(ctx context.Context, cfg domain.ChannelConfig) error
	Delete(ctx context.Context, id int64) error
}

type channelConfigRepository struct {
	dao    dao.ChannelConfigDAO
	local  cache.ConfigCache
	redis  cache.ConfigCache
	group  singleflight.Group
	logger *elog.Component
}

func NewChannelConfigRepository(d dao.ChannelConfigDAO, local, redis cache.ConfigCache) ChannelConfigRepository {
	return &channelConfigRepository{
		dao:    d,
		local:  local,
		redis:  redis,
		logger: elog.DefaultLogger,
	}
}

func (r *channelConfigRepository) FindByScope(ctx context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error) {
	res, err := r.findByStore(ctx, tenantID, 0)
	if err != nil || storeID <= 0 {
		return res, err
	}
	storeLevel, err := r.findByStore(ctx, tenantID, storeID)
	if err != nil {
		return nil, err
	}
	return append(res, storeLevel...), nil
}

func (r *channelConfigRepository) findByStore(ctx context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error) {
	cfgs, err := r.local.GetScope(ctx, tenantID, storeID)
	if err == nil {
		return cfgs, nil
	}
	key := "scope:" + strconv.FormatInt(tenantID, 10) + ":" + strconv.FormatInt(storeID, 10)
	val, err, _ := r.group.Do(key, func() (any, error) {
		res, er := r.redis.GetScope(ctx, tenantID, storeID)
		if er == nil {
			_ = r.local.SetScope(ctx, tenantID, storeID, res)
			return res, nil
		}
		if !errors.Is(er, cache.ErrorKeyNotFound) {
			r.logger.Warn("从redis获取渠道配置列表失败",
				elog.Int64("tenantId", tenantID), elog.Int64("storeId", storeID), elog.FieldErr(er))
		}
		entities, er := r.dao.FindByStore(ctx, tenantID, storeID)
		if er != nil {
			return nil, er
		}
		res = r.toDomains(entities)
		if er = r.redis.SetScope(ctx, tenantID, storeID, res); er != nil {
			r.logger.Warn("回写redis渠道配置列表失败",
				elog.Int64("tenantId", tenantID), elog.Int64("storeId", storeID), elog.FieldErr(er))
		}
		_ = r.local.SetScope(ctx, tenantID, storeID, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	// singleflight 共享结果，复制一份再交出去
	return slices.Clone(val.([]domain.ChannelConfig)), nil
}

func (r *channelConfigRepository) FindByTenant(ctx context.Context, tenantID int64) ([]domain.ChannelConfig, error) {
	entities, err := r.dao.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities), nil
}

func (r *channelConfigRepository) GetByID(ctx context.Context, id int64) (domain.ChannelConfig, error) {
	cfg, err := r.local.Get(ctx, id)
	if err == nil {
		return cfg, nil
	}
	// 同一个配置同时只有一个请求回源
	val, err, _ := r.group.Do("id:"+strconv.FormatInt(id, 10), func() (any, error) {
		res, er := r.redis.Get(ctx, id)
		if er == nil {
			_ = r.local.Set(ctx, res)
			return res, nil
		}
		if !errors.Is(er, cache.ErrorKeyNotFound) {
			r.logger.Warn("从redis获取渠道配置失败", elog.Int64("id", id), elog.FieldErr(er))
		}
		entity, er := r.dao.GetByID(ctx, id)
		if er != nil {
			return nil, er
		}
		res = r.toDomain(entity)
		if er = r.redis.Set(ctx, res); er != nil {
			r.logger.Warn("回写redis渠道配置失败", elog.Int64("id", id), elog.FieldErr(er))
		}
		_ = r.local.Set(ctx, res)
		return res, nil
	})
	if err != nil {
		return domain.ChannelConfig{}, err
	}
	return val.(domain.ChannelConfig), nil
}

func (r *channelConfigRepository) Create(ctx context.Context, cfg domain.ChannelConfig) (domain.ChannelConfig, error) {
	entity, err := r.dao.Create(ctx, r.toEntity(cfg))
	if err != nil {
		return domain.ChannelConfig{}, err
	}
	res := r.toDomain(entity)
	r.evict(ctx, res)
	return res, nil
}

// Update 修改前后所在的层级可能不同，两个层级的缓存都要删
func (r *channelConfigRepository) Update(ctx context.Context, cfg domain.ChannelConfig) error {
	old, err := r.dao.GetByID(ctx, cfg.ID)
	if err != nil {
		return err
	}
	if err = r.dao.Update(ctx, r.toEntity(cfg)); err != nil {
		return err
	}
	r.evict(ctx, r.toDomain(old))
	r.evict(ctx, cfg)
	return nil
}

// Delete 配置不存在时直接返回
func (r *channelConfigRepository) Delete(ctx context.Context, id int64) error {
	old, err := r.dao.GetByID(ctx, id)
	if errors.Is(err, errs.ErrConfigNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = r.dao.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, r.toDomain(old))
	return nil
}

func (r *channelConfigRepository) evict(ctx context.Context, cfg domain.ChannelConfig) {
	_ = r.local.Evict(ctx, cfg)
	if err := r.redis.Evict(ctx, cfg); err != nil {
		// 缓存有过期时间兜底
		r.logger.Warn("删除redis渠道配置失败", elog.Int64("id", cfg.ID), elog.FieldErr(err))
	}
}

func (r *channelConfigRepository) toDomains(entities []dao.ChannelConfig) []domain.ChannelConfig {
	return slice.Map(entities, func(_ int, src dao.ChannelConfig) domain.ChannelConfig {
		return r.toDomain(src)
	})
}

func (r *channelConfigRepository) toDomain(entity dao.ChannelConfig) domain.ChannelConfig {
	return domain.ChannelConfig{
		ID:           entity.ID,
		TenantID:     entity.TenantID,
		StoreID:      entity.StoreID,
		ChannelType:  domain.ChannelType(entity.ChannelType),
		ChannelName:  entity.ChannelName,
		BusinessType: entity.BusinessType,
		Priority:     entity.Priority,
		Enabled:      entity.Enabled,
		RateLimit: domain.RateLimitConfig{
			Count:  entity.RateLimitCount,
			Window: entity.RateLimitWindow,
			Unit:   domain.TimeUnit(entity.RateLimitUnit),
		},
		TimeWindow: domain.TimeWindowConfig{
			Enabled:   entity.TimeWindowEnabled,
			StartHour: fromNullInt(entity.StartHour),
			EndHour:   fromNullInt(entity.EndHour),
		},
		Config: entity.Config.String,
		Ctime:  entity.Ctime,
		Utime:  entity.Utime,
	}
}

func (r *channelConfigRepository) toEntity(cfg domain.ChannelConfig) dao.ChannelConfig {
	return dao.ChannelConfig{
		ID:                cfg.ID,
		TenantID:          cfg.TenantID,
		StoreID:           cfg.StoreID,
		ChannelType:       cfg.ChannelType.String(),
		ChannelName:       cfg.ChannelName,
		BusinessType:      cfg.BusinessType,
		Priority:          cfg.Priority,
		Enabled:           cfg.Enabled,
		RateLimitCount:    cfg.RateLimit.Count,
		RateLimitWindow:   cfg.RateLimit.Window,
		RateLimitUnit:     string(cfg.RateLimit.Unit),
		TimeWindowEnabled: cfg.TimeWindow.Enabled,
		StartHour:         toNullInt(cfg.TimeWindow.StartHour),
		EndHour:           toNullInt(cfg.TimeWindow.EndHour),
		Config: sql.NullString{
			String: cfg.Config,
			Valid:  cfg.Config != "",
		},
		Ctime: cfg.Ctime,
		Utime: cfg.Utime,
	}
}

func fromNullInt(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	res := int(v.Int32)
	return &res
}

func toNullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
