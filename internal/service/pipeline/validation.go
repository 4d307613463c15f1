package pipeline

import (
	"context"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
)

// ValidationHandler 校验必填字段和业务数据格式
type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

func (h *ValidationHandler) Name() string {
	return "消息验证处理器"
}

func (h *ValidationHandler) Order() int {
	return OrderValidation
}

func (h *ValidationHandler) Supports(_ *MessageContext) bool {
	return true
}

func (h *ValidationHandler) Handle(_ context.Context, mctx *MessageContext) (Result, error) {
	req := domain.SendRequest{
		TenantID:     mctx.TenantID,
		StoreID:      mctx.StoreID,
		BusinessType: mctx.BusinessType,
		BusinessData: mctx.BusinessData,
	}
	if err := req.Validate(); err != nil {
		return Fail(errs.CodeValidation, "%s", err.Error()), nil
	}
	return Next(), nil
}
