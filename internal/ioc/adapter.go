package ioc

import (
	"net/http"
	"time"

	"gitee.com/flycash/message-center/internal/service/adapter"
	"gitee.com/flycash/message-center/internal/service/adapter/dingtalk"
	"gitee.com/flycash/message-center/internal/service/adapter/local"
	"gitee.com/flycash/message-center/internal/service/adapter/metrics"
	"gitee.com/flycash/message-center/internal/service/adapter/tracing"
	"gitee.com/flycash/message-center/internal/service/adapter/webhook"
	"gitee.com/flycash/message-center/internal/service/adapter/wechatwork"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const defaultAdapterTimeout = 5 * time.Second

// InitAdapterRegistry 每个渠道都包上 监控 和 链路追踪
func InitAdapterRegistry() *adapter.Registry {
	timeout := econf.GetDuration("adapter.timeout")
	if timeout <= 0 {
		timeout = defaultAdapterTimeout
	}
	client := webhook.NewClient(&http.Client{Timeout: timeout})
	registry := adapter.NewRegistry(
		decorate(local.NewAdapter()),
		decorate(dingtalk.NewAdapter(client)),
		decorate(wechatwork.NewAdapter(client)),
	)
	elog.DefaultLogger.Info("渠道适配器初始化完成",
		elog.Any("channels", registry.Types()),
		elog.Duration("timeout", timeout))
	return registry
}

func decorate(a adapter.Adapter) adapter.Adapter {
	return tracing.NewAdapter(metrics.NewAdapter(a))
}
