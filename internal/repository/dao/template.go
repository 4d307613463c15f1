package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/errs"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// MessageTemplate 消息模板表
type MessageTemplate struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;comment:'模板ID'"`
	TenantID     int64  `gorm:"type:BIGINT;NOT NULL;index:idx_tenant_biz_channel,priority:1;comment:'租户ID'"`
	BusinessType string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_tenant_biz_channel,priority:2;comment:'业务类型'"`
	ChannelType  string `gorm:"type:VARCHAR(32);NOT NULL;index:idx_tenant_biz_channel,priority:3;comment:'渠道类型'"`
	MessageType  string `gorm:"type:ENUM('TEXT','MARKDOWN','CARD','LINK');NOT NULL;DEFAULT:'TEXT';comment:'消息类型'"`
	TemplateName string `gorm:"type:VARCHAR(128);NOT NULL;comment:'模板名称'"`
	Content      string `gorm:"type:TEXT;NOT NULL;comment:'模板内容，使用${name}占位符'"`
	Enabled      bool   `gorm:"NOT NULL;DEFAULT:true;comment:'是否启用'"`
	Ctime        int64
	Utime        int64
}

// TableName 重命名表
func (MessageTemplate) TableName() string {
	return "msg_template"
}

type MessageTemplateDAO interface {
	// FindEnabled 查找启用的模板，有多个时取最近更新的那个
	FindEnabled(ctx context.Context, tenantID int64, businessType, channelType string) (MessageTemplate, error)
	FindByTenant(ctx context.Context, tenantID int64) ([]MessageTemplate, error)
	GetByID(ctx context.Context, id int64) (MessageTemplate, error)
	Create(ctx context.Context, tmpl MessageTemplate) (MessageTemplate, error)
	Update(ctx context.Context, tmpl MessageTemplate) error
	Delete(ctx context.Context, id int64) error
}

type messageTemplateDAO struct {
	db *egorm.Component
}

func NewMessageTemplateDAO(db *egorm.Component) MessageTemplateDAO {
	return &messageTemplateDAO{db: db}
}

func (m *messageTemplateDAO) FindEnabled(ctx context.Context, tenantID int64, businessType, channelType string) (MessageTemplate, error) {
	var res MessageTemplate
	err := m.db.WithContext(ctx).
		Where("tenant_id = ? AND business_type = ? AND channel_type = ? AND enabled = ?",
			tenantID, businessType, channelType, true).
		Order("utime DESC").
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return MessageTemplate{}, fmt.Errorf("%w: tenantId = %d, businessType = %s, channel = %s",
			errs.ErrTemplateNotFound, tenantID, businessType, channelType)
	}
	return res, err
}

func (m *messageTemplateDAO) FindByTenant(ctx context.Context, tenantID int64) ([]MessageTemplate, error) {
	var res []MessageTemplate
	err := m.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (m *messageTemplateDAO) GetByID(ctx context.Context, id int64) (MessageTemplate, error) {
	var res MessageTemplate
	err := m.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return MessageTemplate{}, fmt.Errorf("%w: id = %d", errs.ErrTemplateNotFound, id)
	}
	return res, err
}

func (m *messageTemplateDAO) Create(ctx context.Context, tmpl MessageTemplate) (MessageTemplate, error) {
	now := time.Now().UnixMilli()
	tmpl.Ctime = now
	tmpl.Utime = now
	err := m.db.WithContext(ctx).Create(&tmpl).Error
	return tmpl, err
}

func (m *messageTemplateDAO) Update(ctx context.Context, tmpl MessageTemplate) error {
	res := m.db.WithContext(ctx).Model(&MessageTemplate{}).
		Where("id = ?", tmpl.ID).
		Updates(map[string]any{
			"business_type": tmpl.BusinessType,
			"channel_type":  tmpl.ChannelType,
			"message_type":  tmpl.MessageType,
			"template_name": tmpl.TemplateName,
			"content":       tmpl.Content,
			"enabled":       tmpl.Enabled,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrTemplateNotFound, tmpl.ID)
	}
	return nil
}

func (m *messageTemplateDAO) Delete(ctx context.Context, id int64) error {
	return m.db.WithContext(ctx).Where("id = ?", id).Delete(&MessageTemplate{}).Error
}
