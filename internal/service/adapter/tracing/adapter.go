package tracing

import (
	"context"
	"strconv"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/service/adapter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Adapter 为渠道适配器添加链路追踪的装饰器
type Adapter struct {
	adapter adapter.Adapter
	tracer  trace.Tracer
}

// NewAdapter 创建一个带有链路追踪的适配器
func NewAdapter(a adapter.Adapter) *Adapter {
	return &Adapter{
		adapter: a,
		tracer:  otel.Tracer("message-center/adapter"),
	}
}

func (a *Adapter) Type() domain.ChannelType {
	return a.adapter.Type()
}

func (a *Adapter) Send(ctx context.Context, task domain.ChannelTask, cfg domain.ChannelConfig) (domain.ChannelSendResult, error) {
	ctx, span := a.tracer.Start(ctx, "Adapter.Send",
		trace.WithAttributes(
			attribute.String("message.id", task.MessageID),
			attribute.String("task.id", strconv.FormatInt(task.ID, 10)),
			attribute.String("task.channel", string(task.ChannelType)),
			attribute.Int("task.retryCount", task.RetryCount),
			attribute.String("config.id", strconv.FormatInt(cfg.ID, 10)),
		))
	defer span.End()

	res, err := a.adapter.Send(ctx, task, cfg)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("task.errorCode", string(errs.CodeOf(err))))
	} else {
		span.SetAttributes(attribute.Bool("task.success", res.Success))
	}

	return res, err
}
