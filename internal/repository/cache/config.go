package cache

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"github.com/pkg/errors"
)

const (
	ConfigPrefix = "channel_config"
	// DefaultExpiredTime 配置变更会主动删除缓存，过期时间只是兜底
	DefaultExpiredTime = 10 * time.Minute
)

var ErrorKeyNotFound = errors.New("key not found")

// ConfigCache 渠道配置缓存，缓存两种数据：
// 单个配置，执行器按 ID 查找时使用；
// 某个租户在某一层级（门店ID为0即租户级）下的全部配置，路由时使用。
type ConfigCache interface {
	Get(ctx context.Context, id int64) (domain.ChannelConfig, error)
	Set(ctx context.Context, cfg domain.ChannelConfig) error
	// GetScope 命中时即便是空切片也表示数据库里确实没有配置
	GetScope(ctx context.Context, tenantID, storeID int64) ([]domain.ChannelConfig, error)
	SetScope(ctx context.Context, tenantID, storeID int64, cfgs []domain.ChannelConfig) error
	// Evict 删除配置本身，以及它所在层级的缓存
	Evict(ctx context.Context, cfg domain.ChannelConfig) error
}

func ConfigKey(id int64) string {
	return fmt.Sprintf("%s:id:%d", ConfigPrefix, id)
}

func ScopeKey(tenantID, storeID int64) string {
	return fmt.Sprintf("%s:scope:%d:%d", ConfigPrefix, tenantID, storeID)
}
