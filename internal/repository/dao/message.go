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

// Message 消息记录表
type Message struct {
	ID              int64  `gorm:"primaryKey;autoIncrement;comment:'自增主键'"`
	MessageID       string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uk_message_id;comment:'全局唯一的消息ID'"`
	TenantID        int64  `gorm:"type:BIGINT;NOT NULL;index:idx_tenant_store,priority:1;comment:'租户ID'"`
	StoreID         int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;index:idx_tenant_store,priority:2;comment:'门店ID，0表示租户级'"`
	BusinessType    string `gorm:"type:VARCHAR(64);NOT NULL;comment:'业务类型'"`
	BusinessData    string `gorm:"type:TEXT;comment:'原始业务数据(JSON)'"`
	TargetChannels  string `gorm:"type:VARCHAR(256);comment:'目标渠道，逗号分隔'"`
	Status          string `gorm:"type:ENUM('PENDING','PROCESSING','SUCCESS','PARTIAL_SUCCESS','FAILED');NOT NULL;DEFAULT:'PENDING';index:idx_status;comment:'消息状态'"`
	TotalChannels   int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'渠道总数'"`
	SuccessChannels int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'发送成功的渠道数'"`
	FailedChannels  int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'发送失败的渠道数'"`
	Ctime           int64
	Utime           int64
	FinishTime      int64 `gorm:"comment:'全部渠道结束的时间'"`
}

// TableName 重命名表
func (Message) TableName() string {
	return "msg_message"
}

type MessageDAO interface {
	Create(ctx context.Context, msg Message) (Message, error)
	GetByMessageID(ctx context.Context, messageID string) (Message, error)
	// MarkProcessing 消息进入处理中，同时记录渠道总数
	MarkProcessing(ctx context.Context, messageID string, totalChannels int) error
	// Complete 写入最终状态和渠道总数、成功/失败渠道数
	Complete(ctx context.Context, msg Message) error
	// FindByStatus 按主键升序分页查找，minID 为上一页最后一条记录的主键
	FindByStatus(ctx context.Context, status string, minID int64, limit int) ([]Message, error)
}

type messageDAO struct {
	db *egorm.Component
}

func NewMessageDAO(db *egorm.Component) MessageDAO {
	return &messageDAO{db: db}
}

func (m *messageDAO) Create(ctx context.Context, msg Message) (Message, error) {
	now := time.Now().UnixMilli()
	msg.Ctime = now
	msg.Utime = now
	err := m.db.WithContext(ctx).Create(&msg).Error
	if err != nil {
		return Message{}, fmt.Errorf("%w: %w", errs.ErrCreateMessageFailed, err)
	}
	return msg, nil
}

func (m *messageDAO) GetByMessageID(ctx context.Context, messageID string) (Message, error) {
	var msg Message
	err := m.db.WithContext(ctx).Where("message_id = ?", messageID).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Message{}, fmt.Errorf("%w: messageId = %s", errs.ErrMessageNotFound, messageID)
	}
	return msg, err
}

func (m *messageDAO) MarkProcessing(ctx context.Context, messageID string, totalChannels int) error {
	res := m.db.WithContext(ctx).Model(&Message{}).
		Where("message_id = ?", messageID).
		Updates(map[string]any{
			"status":         "PROCESSING",
			"total_channels": totalChannels,
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: messageId = %s", errs.ErrMessageNotFound, messageID)
	}
	return nil
}

func (m *messageDAO) Complete(ctx context.Context, msg Message) error {
	return m.db.WithContext(ctx).Model(&Message{}).
		Where("message_id = ?", msg.MessageID).
		Updates(map[string]any{
			"status":           msg.Status,
			"total_channels":   msg.TotalChannels,
			"success_channels": msg.SuccessChannels,
			"failed_channels":  msg.FailedChannels,
			"finish_time":      msg.FinishTime,
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func (m *messageDAO) FindByStatus(ctx context.Context, status string, minID int64, limit int) ([]Message, error) {
	var res []Message
	err := m.db.WithContext(ctx).
		Where("status = ? AND id > ?", status, minID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
