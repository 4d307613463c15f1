package pipeline

import (
	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
)

// Status 责任链的执行状态
type Status string

const (
	StatusInit       Status = "INIT"
	StatusProcessing Status = "PROCESSING"
	StatusSuccess    Status = "SUCCESS"
	StatusFailed     Status = "FAILED"
)

// MessageContext 一次责任链执行的上下文，只属于一次请求，不会被并发访问
// 各个字段只允许注释里标明的处理器写入
type MessageContext struct {
	MessageID    string
	TenantID     int64
	StoreID      int64
	BusinessType string
	BusinessData string

	// TargetChannels 调用方指定的目标渠道，由渠道路由和频次控制收窄
	TargetChannels []domain.ChannelType
	// ChannelConfigs 只由渠道路由写入，按优先级升序
	ChannelConfigs []domain.ChannelConfig
	// RenderedMessages 只由模板渲染写入
	RenderedMessages map[domain.ChannelType]string
	// ChannelTasks 只由渠道分发写入
	ChannelTasks []domain.ChannelTask

	// Status ErrorCode ErrorMessage 只由引擎写入
	Status       Status
	ErrorCode    errs.Code
	ErrorMessage string

	attributes map[string]any
}

func NewMessageContext(messageID string, req domain.SendRequest) *MessageContext {
	return &MessageContext{
		MessageID:        messageID,
		TenantID:         req.TenantID,
		StoreID:          req.StoreID,
		BusinessType:     req.BusinessType,
		BusinessData:     req.BusinessData,
		TargetChannels:   req.TargetChannels,
		RenderedMessages: make(map[domain.ChannelType]string),
		Status:           StatusInit,
		attributes:       make(map[string]any),
	}
}

// SetAttribute 处理器之间传递的扩展数据
func (c *MessageContext) SetAttribute(key string, val any) {
	if c.attributes == nil {
		c.attributes = make(map[string]any)
	}
	c.attributes[key] = val
}

func (c *MessageContext) Attribute(key string) (any, bool) {
	val, ok := c.attributes[key]
	return val, ok
}

// ConfigOf 已解析的渠道配置中对应渠道的那一个
func (c *MessageContext) ConfigOf(channel domain.ChannelType) (domain.ChannelConfig, bool) {
	for _, cfg := range c.ChannelConfigs {
		if cfg.ChannelType == channel {
			return cfg, true
		}
	}
	return domain.ChannelConfig{}, false
}
