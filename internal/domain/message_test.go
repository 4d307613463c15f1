package domain

import (
	"testing"

	"gitee.com/flycash/message-center/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestDeriveMessageStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		success int
		failed  int
		want    MessageStatus
	}{
		{name: "全部成功", success: 3, failed: 0, want: MessageStatusSuccess},
		{name: "全部失败", success: 0, failed: 2, want: MessageStatusFailed},
		{name: "部分成功", success: 2, failed: 1, want: MessageStatusPartialSuccess},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DeriveMessageStatus(tc.success, tc.failed))
		})
	}
}

func TestSendRequest_Validate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		req     SendRequest
		wantErr error
	}{
		{
			name: "合法请求",
			req:  SendRequest{TenantID: 1001, BusinessType: "ORDER_NOTIFY", BusinessData: `{"orderId":"ORD123"}`},
		},
		{
			name:    "缺少租户",
			req:     SendRequest{BusinessType: "ORDER_NOTIFY", BusinessData: `{}`},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "业务类型为空白",
			req:     SendRequest{TenantID: 1, BusinessType: "  ", BusinessData: `{}`},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "业务数据不是JSON",
			req:     SendRequest{TenantID: 1, BusinessType: "A", BusinessData: `not json`},
			wantErr: errs.ErrInvalidParameter,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tc.req.Validate(), tc.wantErr)
		})
	}
}
