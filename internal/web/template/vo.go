package template

import "gitee.com/flycash/message-center/internal/domain"

type MessageTemplate struct {
	ID           int64  `json:"id"`
	TenantID     int64  `json:"tenantId"`
	BusinessType string `json:"businessType"`
	ChannelType  string `json:"channelType"`
	MessageType  string `json:"messageType"`
	TemplateName string `json:"templateName"`
	Content      string `json:"content"`
	Enabled      bool   `json:"enabled"`
	Ctime        int64  `json:"ctime"`
	Utime        int64  `json:"utime"`
}

func (t MessageTemplate) toDomain() domain.MessageTemplate {
	messageType := domain.MessageType(t.MessageType)
	if messageType == "" {
		messageType = domain.MessageTypeText
	}
	return domain.MessageTemplate{
		ID:           t.ID,
		TenantID:     t.TenantID,
		BusinessType: t.BusinessType,
		ChannelType:  domain.ChannelType(t.ChannelType),
		MessageType:  messageType,
		TemplateName: t.TemplateName,
		Content:      t.Content,
		Enabled:      t.Enabled,
	}
}

func newMessageTemplate(tmpl domain.MessageTemplate) MessageTemplate {
	return MessageTemplate{
		ID:           tmpl.ID,
		TenantID:     tmpl.TenantID,
		BusinessType: tmpl.BusinessType,
		ChannelType:  tmpl.ChannelType.String(),
		MessageType:  string(tmpl.MessageType),
		TemplateName: tmpl.TemplateName,
		Content:      tmpl.Content,
		Enabled:      tmpl.Enabled,
		Ctime:        tmpl.Ctime,
		Utime:        tmpl.Utime,
	}
}
