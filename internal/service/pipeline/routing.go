package pipeline

import (
	"context"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	configsvc "gitee.com/flycash/message-center/internal/service/config"
	"github.com/ecodeclub/ekit/slice"
)

// ChannelRoutingHandler 根据租户/门店/业务类型的配置确定目标渠道
type ChannelRoutingHandler struct {
	configSvc configsvc.Service
}

func NewChannelRoutingHandler(configSvc configsvc.Service) *ChannelRoutingHandler {
	return &ChannelRoutingHandler{configSvc: configSvc}
}

func (h *ChannelRoutingHandler) Name() string {
	return "渠道路由处理器"
}

func (h *ChannelRoutingHandler) Order() int {
	return OrderChannelRouting
}

func (h *ChannelRoutingHandler) Supports(_ *MessageContext) bool {
	return true
}

func (h *ChannelRoutingHandler) Handle(ctx context.Context, mctx *MessageContext) (Result, error) {
	configs, err := h.configSvc.GetRoutableConfigs(ctx, mctx.TenantID, mctx.StoreID, mctx.BusinessType)
	if err != nil {
		return Result{}, err
	}
	if len(configs) == 0 {
		return Fail(errs.CodeNoChannel, "未配置可用的发送渠道"), nil
	}

	configs = slice.FilterDelete(configs, func(_ int, src domain.ChannelConfig) bool {
		return !src.Enabled
	})
	if len(configs) == 0 {
		return Fail(errs.CodeNoChannel, "未配置可用的发送渠道"), nil
	}

	if len(mctx.TargetChannels) > 0 {
		configs = slice.FilterDelete(configs, func(_ int, src domain.ChannelConfig) bool {
			return !slice.Contains(mctx.TargetChannels, src.ChannelType)
		})
		if len(configs) == 0 {
			return Fail(errs.CodeNoChannel, "未找到匹配的发送渠道"), nil
		}
	}

	mctx.ChannelConfigs = configs
	// 后面的处理器只处理真正路由到的渠道
	mctx.TargetChannels = slice.Map(configs, func(_ int, src domain.ChannelConfig) domain.ChannelType {
		return src.ChannelType
	})
	return Next(), nil
}
