package pipeline

import (
	"context"
	"errors"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	templatesvc "gitee.com/flycash/message-center/internal/service/template"
	"github.com/gotomicro/ego/core/elog"
)

// TemplateRenderingHandler 为每个目标渠道渲染消息内容
// 渲染不会失败：没有模板或者数据不是 JSON 对象时使用原始业务数据
type TemplateRenderingHandler struct {
	templateSvc templatesvc.Service
	logger      *elog.Component
}

func NewTemplateRenderingHandler(templateSvc templatesvc.Service) *TemplateRenderingHandler {
	return &TemplateRenderingHandler{
		templateSvc: templateSvc,
		logger:      elog.DefaultLogger,
	}
}

func (h *TemplateRenderingHandler) Name() string {
	return "模板渲染处理器"
}

func (h *TemplateRenderingHandler) Order() int {
	return OrderTemplateRendering
}

func (h *TemplateRenderingHandler) Supports(mctx *MessageContext) bool {
	return len(mctx.TargetChannels) > 0
}

func (h *TemplateRenderingHandler) Handle(ctx context.Context, mctx *MessageContext) (Result, error) {
	if mctx.RenderedMessages == nil {
		mctx.RenderedMessages = make(map[domain.ChannelType]string, len(mctx.TargetChannels))
	}
	for _, channel := range mctx.TargetChannels {
		tmpl, err := h.templateSvc.GetTemplate(ctx, mctx.TenantID, mctx.BusinessType, channel)
		if err != nil && !errors.Is(err, errs.ErrTemplateNotFound) {
			h.logger.Warn("查询模板失败，使用原始业务数据",
				elog.String("messageId", mctx.MessageID),
				elog.String("channel", channel.String()),
				elog.FieldErr(err))
		}
		// 查询失败时 tmpl 是零值，Render 会直接返回原始数据
		mctx.RenderedMessages[channel] = h.templateSvc.Render(tmpl, mctx.BusinessData)
	}
	return Next(), nil
}
