package repository

import (
	"context"
	"strings"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./message.go -destination=./mocks/message.mock.go -package=repomocks MessageRepository
type MessageRepository interface {
	Create(ctx context.Context, msg domain.Message) (domain.Message, error)
	GetByMessageID(ctx context.Context, messageID string) (domain.Message, error)
	MarkProcessing(ctx context.Context, messageID string, totalChannels int) error
	Complete(ctx context.Context, msg domain.Message) error
	FindProcessing(ctx context.Context, minID int64, limit int) ([]domain.Message, error)
}

type messageRepository struct {
	dao dao.MessageDAO
}

func NewMessageRepository(d dao.MessageDAO) MessageRepository {
	return &messageRepository{dao: d}
}

func (r *messageRepository) Create(ctx context.Context, msg domain.Message) (domain.Message, error) {
	entity, err := r.dao.Create(ctx, r.toEntity(msg))
	if err != nil {
		return domain.Message{}, err
	}
	return r.toDomain(entity), nil
}

func (r *messageRepository) GetByMessageID(ctx context.Context, messageID string) (domain.Message, error) {
	entity, err := r.dao.GetByMessageID(ctx, messageID)
	if err != nil {
		return domain.Message{}, err
	}
	return r.toDomain(entity), nil
}

func (r *messageRepository) MarkProcessing(ctx context.Context, messageID string, totalChannels int) error {
	return r.dao.MarkProcessing(ctx, messageID, totalChannels)
}

func (r *messageRepository) Complete(ctx context.Context, msg domain.Message) error {
	return r.dao.Complete(ctx, r.toEntity(msg))
}

func (r *messageRepository) FindProcessing(ctx context.Context, minID int64, limit int) ([]domain.Message, error) {
	entities, err := r.dao.FindByStatus(ctx, domain.MessageStatusProcessing.String(), minID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Message) domain.Message {
		return r.toDomain(src)
	}), nil
}

func (r *messageRepository) toEntity(msg domain.Message) dao.Message {
	channels := slice.Map(msg.TargetChannels, func(_ int, src domain.ChannelType) string {
		return src.String()
	})
	return dao.Message{
		ID:              msg.ID,
		MessageID:       msg.MessageID,
		TenantID:        msg.TenantID,
		StoreID:         msg.StoreID,
		BusinessType:    msg.BusinessType,
		BusinessData:    msg.BusinessData,
		TargetChannels:  strings.Join(channels, ","),
		Status:          msg.Status.String(),
		TotalChannels:   msg.TotalChannels,
		SuccessChannels: msg.SuccessChannels,
		FailedChannels:  msg.FailedChannels,
		Ctime:           msg.Ctime,
		Utime:           msg.Utime,
		FinishTime:      msg.FinishTime,
	}
}

func (r *messageRepository) toDomain(entity dao.Message) domain.Message {
	var channels []domain.ChannelType
	if entity.TargetChannels != "" {
		channels = slice.Map(strings.Split(entity.TargetChannels, ","), func(_ int, src string) domain.ChannelType {
			return domain.ChannelType(src)
		})
	}
	return domain.Message{
		ID:              entity.ID,
		MessageID:       entity.MessageID,
		TenantID:        entity.TenantID,
		StoreID:         entity.StoreID,
		BusinessType:    entity.BusinessType,
		BusinessData:    entity.BusinessData,
		TargetChannels:  channels,
		Status:          domain.MessageStatus(entity.Status),
		TotalChannels:   entity.TotalChannels,
		SuccessChannels: entity.SuccessChannels,
		FailedChannels:  entity.FailedChannels,
		Ctime:           entity.Ctime,
		Utime:           entity.Utime,
		FinishTime:      entity.FinishTime,
	}
}
