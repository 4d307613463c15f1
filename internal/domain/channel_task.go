package domain

import (
	"time"

	"gitee.com/flycash/message-center/internal/pkg/retry"
)

// TaskStatus 渠道任务状态
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"   // 已创建，等待发送
	TaskStatusSending   TaskStatus = "SENDING"   // 发送中
	TaskStatusSuccess   TaskStatus = "SUCCESS"   // 发送成功
	TaskStatusFailed    TaskStatus = "FAILED"    // 发送失败，且已达到最大重试次数
	TaskStatusRetry     TaskStatus = "RETRY"     // 发送失败，等待重试
	TaskStatusCancelled TaskStatus = "CANCELLED" // 已取消
)

func (s TaskStatus) String() string {
	return string(s)
}

// IsTerminal 终态的任务不会再被执行
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusSuccess || s == TaskStatusFailed || s == TaskStatusCancelled
}

// DefaultMaxRetry 渠道任务默认的最大重试次数
const DefaultMaxRetry = 3

const resultMessageSucceeded = "发送成功"

// ChannelTask 一次 消息-渠道 的投递单元
type ChannelTask struct {
	ID              int64
	MessageID       string
	ChannelType     ChannelType
	ChannelConfigID int64
	RenderedContent string
	Status          TaskStatus
	RetryCount      int
	MaxRetry        int
	NextRetryTime   int64 // 毫秒，0 表示不需要重试
	ResultMessage   string
	Ctime           int64
	Utime           int64
	FinishTime      int64
}

// NewChannelTask 创建一个待发送的渠道任务
func NewChannelTask(id int64, messageID string, cfg ChannelConfig, content string) ChannelTask {
	return ChannelTask{
		ID:              id,
		MessageID:       messageID,
		ChannelType:     cfg.ChannelType,
		ChannelConfigID: cfg.ID,
		RenderedContent: content,
		Status:          TaskStatusPending,
		RetryCount:      0,
		MaxRetry:        DefaultMaxRetry,
	}
}

// Sendable 只有 PENDING 和 RETRY 的任务可以进入发送中
func (t *ChannelTask) Sendable() bool {
	return t.Status == TaskStatusPending || t.Status == TaskStatusRetry
}

func (t *ChannelTask) MarkSending(now time.Time) {
	t.Status = TaskStatusSending
	t.Utime = now.UnixMilli()
}

func (t *ChannelTask) MarkSucceeded(msg string, now time.Time) {
	if msg == "" {
		msg = resultMessageSucceeded
	}
	t.Status = TaskStatusSuccess
	t.ResultMessage = msg
	t.NextRetryTime = 0
	t.FinishTime = now.UnixMilli()
	t.Utime = now.UnixMilli()
}

// MarkFailed 记录一次发送失败
// 还有重试次数的时候转入 RETRY，并按照指数退避计算下一次重试时间，否则转入 FAILED
func (t *ChannelTask) MarkFailed(msg string, now time.Time) {
	t.ResultMessage = msg
	t.Utime = now.UnixMilli()
	if t.RetryCount < t.MaxRetry {
		t.Status = TaskStatusRetry
		t.RetryCount++
		t.NextRetryTime = retry.NextRetryTime(now, t.RetryCount).UnixMilli()
		return
	}
	t.Status = TaskStatusFailed
	t.NextRetryTime = 0
	t.FinishTime = now.UnixMilli()
}

// ChannelSendResult 渠道适配器的发送结果
type ChannelSendResult struct {
	Success bool
	Message string
}
