package dingtalk

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/service/adapter/webhook"
	"github.com/gotomicro/ego/core/elog"
)

const channelName = string(domain.ChannelDingTalk)

// Adapter 钉钉群机器人
// 配置了 secret 的机器人开启了加签，请求的时候需要在 URL 上带上 timestamp 和 sign
type Adapter struct {
	client *webhook.Client
	now    func() time.Time
	logger *elog.Component
}

func NewAdapter(client *webhook.Client) *Adapter {
	return &Adapter{
		client: client,
		now:    time.Now,
		logger: elog.DefaultLogger.With(elog.String("channel", channelName)),
	}
}

func (a *Adapter) Type() domain.ChannelType {
	return domain.ChannelDingTalk
}

func (a *Adapter) Send(ctx context.Context, task domain.ChannelTask, cfg domain.ChannelConfig) (domain.ChannelSendResult, error) {
	wc, err := cfg.WebhookConfig()
	if err != nil {
		return a.fail(errs.NewChannelError(channelName, errs.KindConfig, "渠道配置解析失败: %s", err.Error()))
	}
	if wc.Webhook == "" {
		return a.fail(errs.NewChannelError(channelName, errs.KindConfig, "未配置 webhook, configId=%d", cfg.ID))
	}

	target := wc.Webhook
	if wc.Secret != "" {
		target, err = signURL(wc.Webhook, wc.Secret, a.now().UnixMilli())
		if err != nil {
			return a.fail(errs.NewChannelError(channelName, errs.KindConfig, "webhook 地址非法: %s", err.Error()))
		}
	}

	resp, err := a.client.SendText(ctx, target, task.RenderedContent)
	if err != nil {
		a.logger.Warn("钉钉消息发送失败", elog.String("messageId", task.MessageID), elog.FieldErr(err))
		return a.fail(errs.NewChannelError(channelName, errs.KindSend, "%s", err.Error()))
	}
	if !resp.OK() {
		a.logger.Warn("钉钉返回错误码",
			elog.String("messageId", task.MessageID),
			elog.Int("errcode", resp.ErrCode),
			elog.String("errmsg", resp.ErrMsg))
		return a.fail(errs.NewChannelError(channelName, errs.KindSend, "errcode=%d, errmsg=%s", resp.ErrCode, resp.ErrMsg))
	}
	return domain.ChannelSendResult{Success: true, Message: "钉钉消息发送成功"}, nil
}

func (a *Adapter) fail(err *errs.ChannelError) (domain.ChannelSendResult, error) {
	return domain.ChannelSendResult{Success: false, Message: err.Error()}, err
}

// Sign 钉钉加签：把 timestamp+"\n"+secret 作为签名字符串，用 secret 计算 HmacSHA256 后做 Base64
func Sign(timestamp int64, secret string) string {
	stringToSign := fmt.Sprintf("%d\n%s", timestamp, secret)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// signURL 在 webhook 上追加 timestamp 和 sign，sign 需要 urlEncode
func signURL(webhookURL, secret string, timestamp int64) (string, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("timestamp", strconv.FormatInt(timestamp, 10))
	q.Set("sign", Sign(timestamp, secret))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
