package pipeline

import (
	"context"
	"time"

	"gitee.com/flycash/message-center/internal/errs"
	configsvc "gitee.com/flycash/message-center/internal/service/config"
)

// TimeWindowHandler 检查当前时间是否在渠道允许发送的时间窗口内
// 只要有一个开启了时间窗口的渠道不满足，整条消息都不发送
type TimeWindowHandler struct {
	configSvc configsvc.Service
	now       func() time.Time
}

func NewTimeWindowHandler(configSvc configsvc.Service) *TimeWindowHandler {
	return &TimeWindowHandler{
		configSvc: configSvc,
		now:       time.Now,
	}
}

func (h *TimeWindowHandler) Name() string {
	return "时间窗口处理器"
}

func (h *TimeWindowHandler) Order() int {
	return OrderTimeWindow
}

func (h *TimeWindowHandler) Supports(_ *MessageContext) bool {
	return true
}

func (h *TimeWindowHandler) Handle(ctx context.Context, mctx *MessageContext) (Result, error) {
	configs, err := h.configSvc.GetEnabledConfigs(ctx, mctx.TenantID, mctx.StoreID)
	if err != nil {
		return Result{}, err
	}
	if len(configs) == 0 {
		return Fail(errs.CodeNoChannel, "未配置可用的发送渠道"), nil
	}

	hour := h.now().Hour()
	for _, cfg := range configs {
		if !cfg.Enabled || cfg.TimeWindow.Contains(hour) {
			continue
		}
		start, end := cfg.TimeWindow.Range()
		return Fail(errs.CodeNotInTimeWindow,
			"当前时间不在允许发送的时间窗口内，允许时间：%02d:00-%02d:00", start, end), nil
	}
	return Next(), nil
}
