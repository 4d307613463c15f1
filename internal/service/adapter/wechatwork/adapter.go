package wechatwork

import (
	"context"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/service/adapter/webhook"
	"github.com/gotomicro/ego/core/elog"
)

const channelName = string(domain.ChannelWeChatWork)

// Adapter 企业微信群机器人，webhook 地址里已经带了 key，不需要额外签名
type Adapter struct {
	client *webhook.Client
	logger *elog.Component
}

func NewAdapter(client *webhook.Client) *Adapter {
	return &Adapter{
		client: client,
		logger: elog.DefaultLogger.With(elog.String("channel", channelName)),
	}
}

func (a *Adapter) Type() domain.ChannelType {
	return domain.ChannelWeChatWork
}

func (a *Adapter) Send(ctx context.Context, task domain.ChannelTask, cfg domain.ChannelConfig) (domain.ChannelSendResult, error) {
	wc, err := cfg.WebhookConfig()
	if err != nil {
		return fail(errs.NewChannelError(channelName, errs.KindConfig, "渠道配置解析失败: %s", err.Error()))
	}
	if wc.Webhook == "" {
		return fail(errs.NewChannelError(channelName, errs.KindConfig, "未配置 webhook, configId=%d", cfg.ID))
	}

	resp, err := a.client.SendText(ctx, wc.Webhook, task.RenderedContent)
	if err != nil {
		a.logger.Warn("企业微信消息发送失败", elog.String("messageId", task.MessageID), elog.FieldErr(err))
		return fail(errs.NewChannelError(channelName, errs.KindSend, "%s", err.Error()))
	}
	if !resp.OK() {
		a.logger.Warn("企业微信返回错误码",
			elog.String("messageId", task.MessageID),
			elog.Int("errcode", resp.ErrCode),
			elog.String("errmsg", resp.ErrMsg))
		return fail(errs.NewChannelError(channelName, errs.KindSend, "errcode=%d, errmsg=%s", resp.ErrCode, resp.ErrMsg))
	}
	return domain.ChannelSendResult{Success: true, Message: "企业微信消息发送成功"}, nil
}

func fail(err *errs.ChannelError) (domain.ChannelSendResult, error) {
	return domain.ChannelSendResult{Success: false, Message: err.Error()}, err
}
