package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/errs"
)

// TimeUnit 频次控制的时间单位
type TimeUnit string

const (
	TimeUnitSecond TimeUnit = "SECOND"
	TimeUnitMinute TimeUnit = "MINUTE"
	TimeUnitHour   TimeUnit = "HOUR"
	TimeUnitDay    TimeUnit = "DAY"
)

// Seconds 一个单位对应的秒数，未知单位按秒处理
func (u TimeUnit) Seconds() int64 {
	switch u {
	case TimeUnitMinute:
		return 60
	case TimeUnitHour:
		return 3600
	case TimeUnitDay:
		return 86400
	default:
		return 1
	}
}

// RateLimitConfig 频次限制配置，Count 小于等于 0 表示不限制
type RateLimitConfig struct {
	Count  int      `json:"count"`
	Window int      `json:"window"`
	Unit   TimeUnit `json:"unit"`
}

func (r RateLimitConfig) Limited() bool {
	return r.Count > 0
}

// TTL 计数器的过期时间
func (r RateLimitConfig) TTL() time.Duration {
	window := r.Window
	if window <= 0 {
		window = 1
	}
	return time.Duration(int64(window)*r.Unit.Seconds()) * time.Second
}

const (
	defaultStartHour = 0
	defaultEndHour   = 23
)

// TimeWindowConfig 允许发送的时间窗口，小时取值 0-23
type TimeWindowConfig struct {
	Enabled   bool `json:"enabled"`
	StartHour *int `json:"startHour,omitempty"`
	EndHour   *int `json:"endHour,omitempty"`
}

// Range 返回允许发送的小时区间，未设置时为 [0, 23]
func (w TimeWindowConfig) Range() (start, end int) {
	start, end = defaultStartHour, defaultEndHour
	if w.StartHour != nil {
		start = *w.StartHour
	}
	if w.EndHour != nil {
		end = *w.EndHour
	}
	return start, end
}

// Contains 判断 hour 是否在时间窗口内，未开启时间窗口时总是返回 true
func (w TimeWindowConfig) Contains(hour int) bool {
	if !w.Enabled {
		return true
	}
	start, end := w.Range()
	return hour >= start && hour <= end
}

// ChannelConfig 租户/门店维度的渠道配置
type ChannelConfig struct {
	ID           int64
	TenantID     int64
	StoreID      int64 // 0 表示租户级配置
	ChannelType  ChannelType
	ChannelName  string
	BusinessType string // 为空表示对所有业务类型生效
	Priority     int
	Enabled      bool
	RateLimit    RateLimitConfig
	TimeWindow   TimeWindowConfig
	Config       string // 渠道自身的配置，JSON格式
	Ctime        int64
	Utime        int64
}

// IsStoreLevel 是否是门店级配置
func (c ChannelConfig) IsStoreLevel() bool {
	return c.StoreID > 0
}

// WebhookConfig 机器人类渠道的配置
type WebhookConfig struct {
	Webhook string `json:"webhook"`
	Secret  string `json:"secret"`
}

// WebhookConfig 解析渠道配置中的 webhook 信息
func (c ChannelConfig) WebhookConfig() (WebhookConfig, error) {
	var wc WebhookConfig
	if c.Config == "" {
		return wc, nil
	}
	err := json.Unmarshal([]byte(c.Config), &wc)
	return wc, err
}

func (c ChannelConfig) Validate() error {
	if c.TenantID <= 0 {
		return fmt.Errorf("%w: TenantID = %d", errs.ErrInvalidParameter, c.TenantID)
	}
	if c.StoreID < 0 {
		return fmt.Errorf("%w: StoreID = %d", errs.ErrInvalidParameter, c.StoreID)
	}
	if !c.ChannelType.IsValid() {
		return fmt.Errorf("%w: ChannelType = %q", errs.ErrInvalidParameter, c.ChannelType)
	}
	start, end := c.TimeWindow.Range()
	if start < 0 || start > 23 || end < 0 || end > 23 {
		return fmt.Errorf("%w: TimeWindow = [%d, %d]", errs.ErrInvalidParameter, start, end)
	}
	if c.RateLimit.Count < 0 || c.RateLimit.Window < 0 {
		return fmt.Errorf("%w: RateLimit = %+v", errs.ErrInvalidParameter, c.RateLimit)
	}
	if c.Config != "" && !json.Valid([]byte(c.Config)) {
		return fmt.Errorf("%w: Config 不是合法的JSON", errs.ErrInvalidParameter)
	}
	return nil
}
