package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitee.com/flycash/message-center/internal/errs"
)

// MessageStatus 消息状态
type MessageStatus string

const (
	MessageStatusPending        MessageStatus = "PENDING"         // 已接收，等待处理
	MessageStatusProcessing     MessageStatus = "PROCESSING"      // 处理中
	MessageStatusSuccess        MessageStatus = "SUCCESS"         // 全部渠道成功
	MessageStatusPartialSuccess MessageStatus = "PARTIAL_SUCCESS" // 部分渠道成功
	MessageStatusFailed         MessageStatus = "FAILED"          // 全部渠道失败
)

func (s MessageStatus) String() string {
	return string(s)
}

// Message 消息领域模型
type Message struct {
	ID              int64
	MessageID       string // 全局唯一的消息ID
	TenantID        int64
	StoreID         int64 // 0 表示租户级
	BusinessType    string
	BusinessData    string // 原始业务数据(JSON)
	TargetChannels  []ChannelType
	Status          MessageStatus
	TotalChannels   int
	SuccessChannels int
	FailedChannels  int
	Ctime           int64
	Utime           int64
	FinishTime      int64
}

// DeriveMessageStatus 根据渠道任务的汇总结果计算消息的最终状态
func DeriveMessageStatus(successChannels, failedChannels int) MessageStatus {
	switch {
	case failedChannels == 0:
		return MessageStatusSuccess
	case successChannels == 0:
		return MessageStatusFailed
	default:
		return MessageStatusPartialSuccess
	}
}

// SendRequest 消息发送请求
type SendRequest struct {
	TenantID       int64         `json:"tenantId"`
	StoreID        int64         `json:"storeId"`
	BusinessType   string        `json:"businessType"`
	BusinessData   string        `json:"businessData"`
	TargetChannels []ChannelType `json:"targetChannels"`
}

// Validate 校验发送请求的必填字段
func (r SendRequest) Validate() error {
	if r.TenantID <= 0 {
		return fmt.Errorf("%w: 租户ID不能为空", errs.ErrInvalidParameter)
	}
	if strings.TrimSpace(r.BusinessType) == "" {
		return fmt.Errorf("%w: 业务类型不能为空", errs.ErrInvalidParameter)
	}
	if strings.TrimSpace(r.BusinessData) == "" {
		return fmt.Errorf("%w: 业务数据不能为空", errs.ErrInvalidParameter)
	}
	if !json.Valid([]byte(r.BusinessData)) {
		return fmt.Errorf("%w: 业务数据必须是有效的JSON格式", errs.ErrInvalidParameter)
	}
	return nil
}

// SendResult 单条消息的发送结果，只代表责任链是否受理
type SendResult struct {
	Success      bool      `json:"success"`
	MessageID    string    `json:"messageId"`
	ErrorCode    errs.Code `json:"errorCode,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// BatchSendResult 批量发送结果
type BatchSendResult struct {
	TotalCount   int          `json:"totalCount"`
	SuccessCount int          `json:"successCount"`
	FailedCount  int          `json:"failedCount"`
	Results      []SendResult `json:"results"`
}
