package config

import (
	"context"
	"fmt"
	"sort"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/repository"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./service.go -destination=./mocks/config.mock.go -package=configmocks Service
type Service interface {
	// GetEnabledConfigs 租户级和门店级合并后的启用配置
	// 同一个渠道存在门店级配置时，忽略该渠道的租户级配置，门店级配置停用时该渠道在这个门店就不可用
	GetEnabledConfigs(ctx context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error)
	// GetRoutableConfigs 在合并的基础上按业务类型过滤，每个渠道只保留一个配置，按优先级升序
	GetRoutableConfigs(ctx context.Context, tenantID, storeID int64, businessType string) ([]domain.ChannelConfig, error)
	GetByID(ctx context.Context, id int64) (domain.ChannelConfig, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.ChannelConfig, error)
	Create(ctx context.Context, cfg domain.ChannelConfig) (domain.ChannelConfig, error)
	Update(ctx context.Context, cfg domain.ChannelConfig) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository.ChannelConfigRepository
}

func NewService(repo repository.ChannelConfigRepository) Service {
	return &service{repo: repo}
}

func (s *service) GetEnabledConfigs(ctx context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error) {
	configs, err := s.repo.FindByScope(ctx, tenantID, storeID)
	if err != nil {
		return nil, err
	}
	// 先覆盖再过滤，停用的门店级配置也要能盖住租户级配置
	res := slice.FilterDelete(overrideByStore(configs), func(_ int, src domain.ChannelConfig) bool {
		return !src.Enabled
	})
	sortByPriority(res)
	return res, nil
}

func (s *service) GetRoutableConfigs(ctx context.Context, tenantID, storeID int64, businessType string) ([]domain.ChannelConfig, error) {
	configs, err := s.GetEnabledConfigs(ctx, tenantID, storeID)
	if err != nil {
		return nil, err
	}
	configs = slice.FilterDelete(configs, func(_ int, src domain.ChannelConfig) bool {
		return src.BusinessType != "" && src.BusinessType != businessType
	})
	// 每个渠道只保留最匹配的那个：业务类型精确匹配优先，然后看优先级
	best := make(map[domain.ChannelType]domain.ChannelConfig, len(configs))
	for _, cfg := range configs {
		cur, ok := best[cfg.ChannelType]
		if !ok || moreSpecific(cfg, cur) {
			best[cfg.ChannelType] = cfg
		}
	}
	res := make([]domain.ChannelConfig, 0, len(best))
	for _, cfg := range best {
		res = append(res, cfg)
	}
	sortByPriority(res)
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.ChannelConfig, error) {
	if id <= 0 {
		return domain.ChannelConfig{}, fmt.Errorf("%w: id = %d", errs.ErrInvalidParameter, id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByTenant(ctx context.Context, tenantID int64) ([]domain.ChannelConfig, error) {
	if tenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantId = %d", errs.ErrInvalidParameter, tenantID)
	}
	return s.repo.FindByTenant(ctx, tenantID)
}

func (s *service) Create(ctx context.Context, cfg domain.ChannelConfig) (domain.ChannelConfig, error) {
	if err := cfg.Validate(); err != nil {
		return domain.ChannelConfig{}, err
	}
	return s.repo.Create(ctx, cfg)
}

func (s *service) Update(ctx context.Context, cfg domain.ChannelConfig) error {
	if cfg.ID <= 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrInvalidParameter, cfg.ID)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, cfg)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrInvalidParameter, id)
	}
	return s.repo.Delete(ctx, id)
}

// overrideByStore 同一个渠道有门店级配置时丢弃租户级配置
func overrideByStore(configs []domain.ChannelConfig) []domain.ChannelConfig {
	storeLevel := make(map[domain.ChannelType]struct{}, len(configs))
	for _, cfg := range configs {
		if cfg.IsStoreLevel() {
			storeLevel[cfg.ChannelType] = struct{}{}
		}
	}
	return slice.FilterDelete(configs, func(_ int, src domain.ChannelConfig) bool {
		_, ok := storeLevel[src.ChannelType]
		return ok && !src.IsStoreLevel()
	})
}

func moreSpecific(a, b domain.ChannelConfig) bool {
	if (a.BusinessType != "") != (b.BusinessType != "") {
		return a.BusinessType != ""
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ID < b.ID
}

func sortByPriority(configs []domain.ChannelConfig) {
	sort.SliceStable(configs, func(i, j int) bool {
		if configs[i].Priority != configs[j].Priority {
			return configs[i].Priority < configs[j].Priority
		}
		return configs[i].ID < configs[j].ID
	})
}
