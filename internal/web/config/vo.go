package config

import "gitee.com/flycash/message-center/internal/domain"

type ChannelConfig struct {
	ID           int64                   `json:"id"`
	TenantID     int64                   `json:"tenantId"`
	StoreID      int64                   `json:"storeId"`
	ChannelType  string                  `json:"channelType"`
	ChannelName  string                  `json:"channelName"`
	BusinessType string                  `json:"businessType"`
	Priority     int                     `json:"priority"`
	Enabled      bool                    `json:"enabled"`
	RateLimit    domain.RateLimitConfig  `json:"rateLimit"`
	TimeWindow   domain.TimeWindowConfig `json:"timeWindow"`
	Config       string                  `json:"config"`
	Ctime        int64                   `json:"ctime"`
	Utime        int64                   `json:"utime"`
}

func (c ChannelConfig) toDomain() domain.ChannelConfig {
	return domain.ChannelConfig{
		ID:           c.ID,
		TenantID:     c.TenantID,
		StoreID:      c.StoreID,
		ChannelType:  domain.ChannelType(c.ChannelType),
		ChannelName:  c.ChannelName,
		BusinessType: c.BusinessType,
		Priority:     c.Priority,
		Enabled:      c.Enabled,
		RateLimit:    c.RateLimit,
		TimeWindow:   c.TimeWindow,
		Config:       c.Config,
	}
}

func newChannelConfig(cfg domain.ChannelConfig) ChannelConfig {
	return ChannelConfig{
		ID:           cfg.ID,
		TenantID:     cfg.TenantID,
		StoreID:      cfg.StoreID,
		ChannelType:  cfg.ChannelType.String(),
		ChannelName:  cfg.ChannelName,
		BusinessType: cfg.BusinessType,
		Priority:     cfg.Priority,
		Enabled:      cfg.Enabled,
		RateLimit:    cfg.RateLimit,
		TimeWindow:   cfg.TimeWindow,
		Config:       cfg.Config,
		Ctime:        cfg.Ctime,
		Utime:        cfg.Utime,
	}
}
