package repository

import (
	"context"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./template.go -destination=./mocks/template.mock.go -package=repomocks MessageTemplateRepository
type MessageTemplateRepository interface {
	FindEnabled(ctx context.Context, tenantID int64, businessType string, channel domain.ChannelType) (domain.MessageTemplate, error)
	FindByTenant(ctx context.Context, tenantID int64) ([]domain.MessageTemplate, error)
	GetByID(ctx context.Context, id int64) (domain.MessageTemplate, error)
	Create(ctx context.Context, tmpl domain.MessageTemplate) (domain.MessageTemplate, error)
	Update(ctx context.Context, tmpl domain.MessageTemplate) error
	Delete(ctx context.Context, id int64) error
}

type messageTemplateRepository struct {
	dao dao.MessageTemplateDAO
}

func NewMessageTemplateRepository(d dao.MessageTemplateDAO) MessageTemplateRepository {
	return &messageTemplateRepository{dao: d}
}

func (r *messageTemplateRepository) FindEnabled(ctx context.Context, tenantID int64, businessType string, channel domain.ChannelType) (domain.MessageTemplate, error) {
	entity, err := r.dao.FindEnabled(ctx, tenantID, businessType, channel.String())
	if err != nil {
		return domain.MessageTemplate{}, err
	}
	return r.toDomain(entity), nil
}

func (r *messageTemplateRepository) FindByTenant(ctx context.Context, tenantID int64) ([]domain.MessageTemplate, error) {
	entities, err := r.dao.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.MessageTemplate) domain.MessageTemplate {
		return r.toDomain(src)
	}), nil
}

func (r *messageTemplateRepository) GetByID(ctx context.Context, id int64) (domain.MessageTemplate, error) {
	entity, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.MessageTemplate{}, err
	}
	return r.toDomain(entity), nil
}

func (r *messageTemplateRepository) Create(ctx context.Context, tmpl domain.MessageTemplate) (domain.MessageTemplate, error) {
	entity, err := r.dao.Create(ctx, r.toEntity(tmpl))
	if err != nil {
		return domain.MessageTemplate{}, err
	}
	return r.toDomain(entity), nil
}

func (r *messageTemplateRepository) Update(ctx context.Context, tmpl domain.MessageTemplate) error {
	return r.dao.Update(ctx, r.toEntity(tmpl))
}

func (r *messageTemplateRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *messageTemplateRepository) toEntity(tmpl domain.MessageTemplate) dao.MessageTemplate {
	return dao.MessageTemplate{
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

func (r *messageTemplateRepository) toDomain(entity dao.MessageTemplate) domain.MessageTemplate {
	return domain.MessageTemplate{
		ID:           entity.ID,
		TenantID:     entity.TenantID,
		BusinessType: entity.BusinessType,
		ChannelType:  domain.ChannelType(entity.ChannelType),
		MessageType:  domain.MessageType(entity.MessageType),
		TemplateName: entity.TemplateName,
		Content:      entity.Content,
		Enabled:      entity.Enabled,
		Ctime:        entity.Ctime,
		Utime:        entity.Utime,
	}
}
