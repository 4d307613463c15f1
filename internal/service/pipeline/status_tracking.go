package pipeline

import (
	"context"

	"gitee.com/flycash/message-center/internal/repository"
)

// StatusTrackingHandler 把消息标记为处理中并落库初始任务
// 执行器可能已经先写入了任务的最新状态，这里只插入不存在的任务
type StatusTrackingHandler struct {
	messageRepo repository.MessageRepository
	taskRepo    repository.ChannelTaskRepository
}

func NewStatusTrackingHandler(messageRepo repository.MessageRepository, taskRepo repository.ChannelTaskRepository) *StatusTrackingHandler {
	return &StatusTrackingHandler{
		messageRepo: messageRepo,
		taskRepo:    taskRepo,
	}
}

func (h *StatusTrackingHandler) Name() string {
	return "状态追踪处理器"
}

func (h *StatusTrackingHandler) Order() int {
	return OrderStatusTracking
}

func (h *StatusTrackingHandler) Supports(mctx *MessageContext) bool {
	return len(mctx.ChannelTasks) > 0
}

func (h *StatusTrackingHandler) Handle(ctx context.Context, mctx *MessageContext) (Result, error) {
	if err := h.messageRepo.MarkProcessing(ctx, mctx.MessageID, len(mctx.ChannelTasks)); err != nil {
		return Result{}, err
	}
	if err := h.taskRepo.CreateIfAbsent(ctx, mctx.ChannelTasks); err != nil {
		return Result{}, err
	}
	return Next(), nil
}
