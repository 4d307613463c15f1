package pipeline

import (
	"testing"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationHandler_Handle(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		req      domain.SendRequest
		wantCode errs.Code
	}{
		{
			name: "合法",
			req:  domain.SendRequest{TenantID: 1001, BusinessType: "ORDER_NOTIFY", BusinessData: `{"orderId":"ORD123"}`},
		},
		{
			name:     "缺少租户",
			req:      domain.SendRequest{BusinessType: "ORDER_NOTIFY", BusinessData: `{}`},
			wantCode: errs.CodeValidation,
		},
		{
			name:     "业务类型为空白",
			req:      domain.SendRequest{TenantID: 1001, BusinessType: "  ", BusinessData: `{}`},
			wantCode: errs.CodeValidation,
		},
		{
			name:     "缺少业务数据",
			req:      domain.SendRequest{TenantID: 1001, BusinessType: "ORDER_NOTIFY"},
			wantCode: errs.CodeValidation,
		},
		{
			name:     "业务数据不是JSON",
			req:      domain.SendRequest{TenantID: 1001, BusinessType: "ORDER_NOTIFY", BusinessData: "{orderId"},
			wantCode: errs.CodeValidation,
		},
		{
			name: "JSON数组也是合法的JSON",
			req:  domain.SendRequest{TenantID: 1001, BusinessType: "ORDER_NOTIFY", BusinessData: `[1,2]`},
		},
	}
	h := NewValidationHandler()
	assert.True(t, h.Supports(&MessageContext{}))
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := h.Handle(t.Context(), NewMessageContext("MSG1", tc.req))
			require.NoError(t, err)
			if tc.wantCode == "" {
				assert.Equal(t, Next(), res)
				return
			}
			assert.False(t, res.Continue)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.NotEmpty(t, res.Message)
		})
	}
}
