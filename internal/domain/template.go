package domain

import (
	"fmt"
	"strings"

	"gitee.com/flycash/message-center/internal/errs"
)

// MessageType 消息类型
type MessageType string

const (
	MessageTypeText     MessageType = "TEXT"
	MessageTypeMarkdown MessageType = "MARKDOWN"
	MessageTypeCard     MessageType = "CARD"
	MessageTypeLink     MessageType = "LINK"
)

// MessageTemplate 消息模板，内容中使用 ${name} 占位符
type MessageTemplate struct {
	ID           int64
	TenantID     int64
	BusinessType string
	ChannelType  ChannelType
	MessageType  MessageType
	TemplateName string
	Content      string
	Enabled      bool
	Ctime        int64
	Utime        int64
}

// Usable 模板是否可以用来渲染
func (t MessageTemplate) Usable() bool {
	return t.Enabled && strings.TrimSpace(t.Content) != ""
}

func (t MessageTemplate) Validate() error {
	if t.TenantID <= 0 {
		return fmt.Errorf("%w: TenantID = %d", errs.ErrInvalidParameter, t.TenantID)
	}
	if strings.TrimSpace(t.BusinessType) == "" {
		return fmt.Errorf("%w: BusinessType = %q", errs.ErrInvalidParameter, t.BusinessType)
	}
	if !t.ChannelType.IsValid() {
		return fmt.Errorf("%w: ChannelType = %q", errs.ErrInvalidParameter, t.ChannelType)
	}
	if strings.TrimSpace(t.Content) == "" {
		return fmt.Errorf("%w: Content 不能为空", errs.ErrInvalidParameter)
	}
	return nil
}
