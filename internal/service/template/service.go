package template

import (
	"context"
	"fmt"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/pkg/placeholder"
	"gitee.com/flycash/message-center/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -destination=./mocks/template.mock.go -package=templatemocks Service
type Service interface {
	// GetTemplate 获取启用的模板，找不到时返回 errs.ErrTemplateNotFound
	GetTemplate(ctx context.Context, tenantID int64, businessType string, channel domain.ChannelType) (domain.MessageTemplate, error)
	// Render 用业务数据渲染模板
	// 模板不可用或者业务数据不是 JSON 对象时，直接返回原始业务数据
	Render(tmpl domain.MessageTemplate, businessData string) string

	GetByID(ctx context.Context, id int64) (domain.MessageTemplate, error)
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.MessageTemplate, error)
	Create(ctx context.Context, tmpl domain.MessageTemplate) (domain.MessageTemplate, error)
	Update(ctx context.Context, tmpl domain.MessageTemplate) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   repository.MessageTemplateRepository
	logger *elog.Component
}

func NewService(repo repository.MessageTemplateRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) GetTemplate(ctx context.Context, tenantID int64, businessType string, channel domain.ChannelType) (domain.MessageTemplate, error) {
	return s.repo.FindEnabled(ctx, tenantID, businessType, channel)
}

func (s *service) Render(tmpl domain.MessageTemplate, businessData string) string {
	if !tmpl.Usable() {
		return businessData
	}
	res, err := placeholder.RenderJSON(tmpl.Content, businessData)
	if err != nil {
		s.logger.Warn("业务数据不是JSON对象，使用原始数据",
			elog.Int64("templateId", tmpl.ID), elog.FieldErr(err))
		return businessData
	}
	return res
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.MessageTemplate, error) {
	if id <= 0 {
		return domain.MessageTemplate{}, fmt.Errorf("%w: id = %d", errs.ErrInvalidParameter, id)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByTenant(ctx context.Context, tenantID int64) ([]domain.MessageTemplate, error) {
	if tenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantId = %d", errs.ErrInvalidParameter, tenantID)
	}
	return s.repo.FindByTenant(ctx, tenantID)
}

func (s *service) Create(ctx context.Context, tmpl domain.MessageTemplate) (domain.MessageTemplate, error) {
	if tmpl.MessageType == "" {
		tmpl.MessageType = domain.MessageTypeText
	}
	if err := tmpl.Validate(); err != nil {
		return domain.MessageTemplate{}, err
	}
	return s.repo.Create(ctx, tmpl)
}

func (s *service) Update(ctx context.Context, tmpl domain.MessageTemplate) error {
	if tmpl.ID <= 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrInvalidParameter, tmpl.ID)
	}
	if tmpl.MessageType == "" {
		tmpl.MessageType = domain.MessageTypeText
	}
	if err := tmpl.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, tmpl)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id = %d", errs.ErrInvalidParameter, id)
	}
	return s.repo.Delete(ctx, id)
}
