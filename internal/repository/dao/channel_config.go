package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ChannelConfig 租户/门店的渠道配置表
type ChannelConfig struct {
	ID                int64          `gorm:"primaryKey;autoIncrement;comment:'渠道配置ID'"`
	TenantID          int64          `gorm:"type:BIGINT;NOT NULL;index:idx_tenant_store,priority:1;comment:'租户ID'"`
	StoreID           int64          `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;index:idx_tenant_store,priority:2;comment:'门店ID，0表示租户级配置'"`
	ChannelType       string         `gorm:"type:VARCHAR(32);NOT NULL;comment:'渠道类型'"`
	ChannelName       string         `gorm:"type:VARCHAR(128);comment:'渠道名称'"`
	BusinessType      string         `gorm:"type:VARCHAR(64);NOT NULL;DEFAULT:'';comment:'业务类型，为空表示对所有业务类型生效'"`
	Priority          int            `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'优先级，越小越优先'"`
	Enabled           bool           `gorm:"NOT NULL;DEFAULT:true;comment:'是否启用'"`
	RateLimitCount    int            `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'窗口内最多发送次数，0表示不限制'"`
	RateLimitWindow   int            `gorm:"type:INT;NOT NULL;DEFAULT:1;comment:'窗口大小'"`
	RateLimitUnit     string         `gorm:"type:ENUM('SECOND','MINUTE','HOUR','DAY');NOT NULL;DEFAULT:'MINUTE';comment:'窗口单位'"`
	TimeWindowEnabled bool           `gorm:"NOT NULL;DEFAULT:false;comment:'是否开启发送时间窗口'"`
	StartHour         sql.NullInt32  `gorm:"type:TINYINT;comment:'允许发送的开始小时'"`
	EndHour           sql.NullInt32  `gorm:"type:TINYINT;comment:'允许发送的结束小时'"`
	Config            sql.NullString `gorm:"type:JSON;comment:'{\"webhook\":\"https://...\",\"secret\":\"SEC...\"}'"`
	Ctime             int64
	Utime             int64
}

// TableName 重命名表
func (ChannelConfig) TableName() string {
	return "msg_channel_config"
}

type ChannelConfigDAO interface {
	// FindByStore 查找某一层级的全部配置（包括停用的），storeID 为 0 即租户级
	FindByStore(ctx context.Context, tenantID, storeID int64) ([]ChannelConfig, error)
	FindByTenant(ctx context.Context, tenantID int64) ([]ChannelConfig, error)
	GetByID(ctx context.Context, id int64) (ChannelConfig, error)
	Create(ctx context.Context, cfg ChannelConfig) (ChannelConfig, error)
	Update(ctx context.Context, cfg ChannelConfig) error
	Delete(ctx context.Context, id int64) error
}

type channelConfigDAO struct {
	db *egorm.Component
}

func NewChannelConfigDAO(db *egorm.Component) ChannelConfigDAO {
	return &channelConfigDAO{db: db}
}

func (c *channelConfigDAO) FindByStore(ctx context.Context, tenantID, storeID int64) ([]ChannelConfig, error) {
	var res []ChannelConfig
	err := c.db.WithContext(ctx).
		Where("tenant_id = ? AND store_id = ?", tenantID, storeID).
		Order("priority ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (c *channelConfigDAO) FindByTenant(ctx context.Context, tenantID int64) ([]ChannelConfig, error) {
	var res []ChannelConfig
	err := c.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (c *channelConfigDAO) GetByID(ctx context.Context, id int64) (ChannelConfig, error) {
	var res ChannelConfig
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ChannelConfig{}, fmt.Errorf("%w: id = %d", errs.ErrConfigNotFound, id)
	}
	return res, err
}

func (c *channelConfigDAO) Create(ctx context.Context, cfg ChannelConfig) (ChannelConfig, error) {
	now := time.Now().UnixMilli()
	cfg.Ctime = now
	cfg.Utime = now
	err := c.db.WithContext(ctx).Create(&cfg).Error
	return cfg, err
}

func (c *channelConfigDAO) Update(ctx context.Context, cfg ChannelConfig) error {
	// 使用 map 更新，避免 false/0 这些零值被忽略
	res := c.db.WithContext(ctx).Model(&ChannelConfig{}).
		Where("id = ?", cfg.ID).
		Updates(map[string]any{
			"tenant_id":           cfg.TenantID,
			"store_id":            cfg.StoreID,
			"channel_type":        cfg.ChannelType,
			"channel_name":        cfg.ChannelName,
			"business_type":       cfg.BusinessType,
			"priority":            cfg.Priority,
			"enabled":             cfg.Enabled,
			"rate_limit_count":    cfg.RateLimitCount,
			"rate_limit_window":   cfg.RateLimitWindow,
			"rate_limit_unit":     cfg.RateLimitUnit,
			"time_window_enabled": cfg.TimeWindowEnabled,
			"start_hour":          cfg.StartHour,
			"end_hour":            cfg.EndHour,
			"config":              cfg.Config,
			"utime":               time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrConfigNotFound, cfg.ID)
	}
	return nil
}

func (c *channelConfigDAO) Delete(ctx context.Context, id int64) error {
	return c.db.WithContext(ctx).Where("id = ?", id).Delete(&ChannelConfig{}).Error
}
