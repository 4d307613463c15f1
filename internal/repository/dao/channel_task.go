package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

// ChannelTask 渠道发送任务表，一个消息的每个渠道一条记录
type ChannelTask struct {
	ID              int64  `gorm:"primaryKey;comment:'雪花算法ID'"`
	MessageID       string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_message_id;comment:'所属消息ID'"`
	ChannelType     string `gorm:"type:VARCHAR(32);NOT NULL;comment:'渠道类型'"`
	ChannelConfigID int64  `gorm:"type:BIGINT;NOT NULL;comment:'使用的渠道配置ID'"`
	RenderedContent string `gorm:"type:TEXT;comment:'渲染后的消息内容'"`
	Status          string `gorm:"type:ENUM('PENDING','SENDING','SUCCESS','FAILED','RETRY','CANCELLED');NOT NULL;DEFAULT:'PENDING';index:idx_status_next_retry,priority:1;comment:'任务状态'"`
	RetryCount      int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'已重试次数'"`
	MaxRetry        int    `gorm:"type:INT;NOT NULL;DEFAULT:3;comment:'最大重试次数'"`
	NextRetryTime   int64  `gorm:"type:BIGINT;NOT NULL;DEFAULT:0;index:idx_status_next_retry,priority:2;comment:'下一次重试时间，外部扫描使用'"`
	ResultMessage   string `gorm:"type:VARCHAR(1024);comment:'最近一次发送的结果'"`
	Ctime           int64
	Utime           int64
	FinishTime      int64
}

// TableName 重命名表
func (ChannelTask) TableName() string {
	return "msg_channel_task"
}

type ChannelTaskDAO interface {
	// BatchCreateIfAbsent 批量插入，已存在的记录保持不变
	BatchCreateIfAbsent(ctx context.Context, tasks []ChannelTask) error
	// Save 插入或者整行覆盖，后写入的为准
	Save(ctx context.Context, task ChannelTask) error
	FindByMessageID(ctx context.Context, messageID string) ([]ChannelTask, error)
}

type channelTaskDAO struct {
	db *egorm.Component
}

func NewChannelTaskDAO(db *egorm.Component) ChannelTaskDAO {
	return &channelTaskDAO{db: db}
}

func (c *channelTaskDAO) BatchCreateIfAbsent(ctx context.Context, tasks []ChannelTask) error {
	if len(tasks) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range tasks {
		tasks[i].Ctime = now
		tasks[i].Utime = now
	}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&tasks).Error
}

func (c *channelTaskDAO) Save(ctx context.Context, task ChannelTask) error {
	now := time.Now().UnixMilli()
	task.Ctime = now
	task.Utime = now
	return c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(taskUpdateColumns),
	}).Create(&task).Error
}

var taskUpdateColumns = []string{
	"status",
	"retry_count",
	"max_retry",
	"next_retry_time",
	"result_message",
	"rendered_content",
	"utime",
	"finish_time",
}

func (c *channelTaskDAO) FindByMessageID(ctx context.Context, messageID string) ([]ChannelTask, error) {
	var res []ChannelTask
	err := c.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}
