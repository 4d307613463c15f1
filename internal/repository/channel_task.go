package repository

import (
	"context"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./channel_task.go -destination=./mocks/channel_task.mock.go -package=repomocks ChannelTaskRepository
type ChannelTaskRepository interface {
	// CreateIfAbsent 插入 PENDING 任务，执行器已经写入的任务不会被覆盖
	CreateIfAbsent(ctx context.Context, tasks []domain.ChannelTask) error
	// Save 写入任务的最新状态
	Save(ctx context.Context, task domain.ChannelTask) error
	FindByMessageID(ctx context.Context, messageID string) ([]domain.ChannelTask, error)
}

type channelTaskRepository struct {
	dao dao.ChannelTaskDAO
}

func NewChannelTaskRepository(d dao.ChannelTaskDAO) ChannelTaskRepository {
	return &channelTaskRepository{dao: d}
}

func (r *channelTaskRepository) CreateIfAbsent(ctx context.Context, tasks []domain.ChannelTask) error {
	return r.dao.BatchCreateIfAbsent(ctx, slice.Map(tasks, func(_ int, src domain.ChannelTask) dao.ChannelTask {
		return r.toEntity(src)
	}))
}

func (r *channelTaskRepository) Save(ctx context.Context, task domain.ChannelTask) error {
	return r.dao.Save(ctx, r.toEntity(task))
}

func (r *channelTaskRepository) FindByMessageID(ctx context.Context, messageID string) ([]domain.ChannelTask, error) {
	entities, err := r.dao.FindByMessageID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.ChannelTask) domain.ChannelTask {
		return r.toDomain(src)
	}), nil
}

func (r *channelTaskRepository) toEntity(task domain.ChannelTask) dao.ChannelTask {
	return dao.ChannelTask{
		ID:              task.ID,
		MessageID:       task.MessageID,
		ChannelType:     task.ChannelType.String(),
		ChannelConfigID: task.ChannelConfigID,
		RenderedContent: task.RenderedContent,
		Status:          string(task.Status),
		RetryCount:      task.RetryCount,
		MaxRetry:        task.MaxRetry,
		NextRetryTime:   task.NextRetryTime,
		ResultMessage:   task.ResultMessage,
		Ctime:           task.Ctime,
		Utime:           task.Utime,
		FinishTime:      task.FinishTime,
	}
}

func (r *channelTaskRepository) toDomain(entity dao.ChannelTask) domain.ChannelTask {
	return domain.ChannelTask{
		ID:              entity.ID,
		MessageID:       entity.MessageID,
		ChannelType:     domain.ChannelType(entity.ChannelType),
		ChannelConfigID: entity.ChannelConfigID,
		RenderedContent: entity.RenderedContent,
		Status:          domain.TaskStatus(entity.Status),
		RetryCount:      entity.RetryCount,
		MaxRetry:        entity.MaxRetry,
		NextRetryTime:   entity.NextRetryTime,
		ResultMessage:   entity.ResultMessage,
		Ctime:           entity.Ctime,
		Utime:           entity.Utime,
		FinishTime:      entity.FinishTime,
	}
}
