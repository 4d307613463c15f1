package adapter

import (
	"context"

	"gitee.com/flycash/message-center/internal/domain"
)

// Adapter 渠道适配器，负责把渲染好的内容投递到具体渠道
// 适配器自身不做重试，失败时返回 *errs.ChannelError
//
//go:generate mockgen -source=./types.go -destination=./mocks/adapter.mock.go -package=adaptermocks Adapter
type Adapter interface {
	// Type 适配器对应的渠道类型
	Type() domain.ChannelType
	// Send 发送渠道任务，cfg 是任务对应的渠道配置
	Send(ctx context.Context, task domain.ChannelTask, cfg domain.ChannelConfig) (domain.ChannelSendResult, error)
}
