package pipeline

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/service/executor"
	"github.com/sony/sonyflake"
)

// ChannelDispatchHandler 为每个渠道配置创建任务并交给执行器，不等待发送结果
type ChannelDispatchHandler struct {
	idGenerator *sonyflake.Sonyflake
	executor    executor.Executor
	now         func() time.Time
}

func NewChannelDispatchHandler(idGenerator *sonyflake.Sonyflake, exec executor.Executor) *ChannelDispatchHandler {
	return &ChannelDispatchHandler{
		idGenerator: idGenerator,
		executor:    exec,
		now:         time.Now,
	}
}

func (h *ChannelDispatchHandler) Name() string {
	return "渠道分发处理器"
}

func (h *ChannelDispatchHandler) Order() int {
	return OrderChannelDispatch
}

func (h *ChannelDispatchHandler) Supports(mctx *MessageContext) bool {
	return len(mctx.ChannelConfigs) > 0
}

func (h *ChannelDispatchHandler) Handle(ctx context.Context, mctx *MessageContext) (Result, error) {
	now := h.now().UnixMilli()
	tasks := make([]domain.ChannelTask, 0, len(mctx.ChannelConfigs))
	for _, cfg := range mctx.ChannelConfigs {
		id, err := h.idGenerator.NextID()
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", errs.ErrTaskIDGenerateFailed, err)
		}
		content, ok := mctx.RenderedMessages[cfg.ChannelType]
		if !ok {
			content = mctx.BusinessData
		}
		task := domain.NewChannelTask(int64(id), mctx.MessageID, cfg, content)
		task.Ctime = now
		task.Utime = now
		tasks = append(tasks, task)
	}

	mctx.ChannelTasks = tasks
	h.executor.Submit(ctx, tasks)
	return Next(), nil
}
