package pipeline

import (
	"errors"
	"testing"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	configmocks "gitee.com/flycash/message-center/internal/service/config/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func hourPtr(h int) *int {
	return &h
}

func TestTimeWindowHandler_Handle(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		configs  []domain.ChannelConfig
		svcErr   error
		wantCode errs.Code
		wantMsg  string
		wantErr  error
	}{
		{
			name: "在时间窗口内",
			configs: []domain.ChannelConfig{
				{ID: 1, Enabled: true, TimeWindow: domain.TimeWindowConfig{Enabled: true, StartHour: hourPtr(8), EndHour: hourPtr(22)}},
				{ID: 2, Enabled: true},
			},
		},
		{
			name: "边界值包含在内",
			configs: []domain.ChannelConfig{
				{ID: 1, Enabled: true, TimeWindow: domain.TimeWindowConfig{Enabled: true, StartHour: hourPtr(10), EndHour: hourPtr(10)}},
			},
		},
		{
			name: "未设置起止时间按全天处理",
			configs: []domain.ChannelConfig{
				{ID: 1, Enabled: true, TimeWindow: domain.TimeWindowConfig{Enabled: true}},
			},
		},
		{
			name: "不在时间窗口内",
			configs: []domain.ChannelConfig{
				{ID: 1, Enabled: true},
				{ID: 2, Enabled: true, TimeWindow: domain.TimeWindowConfig{Enabled: true, StartHour: hourPtr(12), EndHour: hourPtr(18)}},
			},
			wantCode: errs.CodeNotInTimeWindow,
			wantMsg:  "当前时间不在允许发送的时间窗口内，允许时间：12:00-18:00",
		},
		{
			name: "只设置了结束时间",
			configs: []domain.ChannelConfig{
				{ID: 1, Enabled: true, TimeWindow: domain.TimeWindowConfig{Enabled: true, EndHour: hourPtr(9)}},
			},
			wantCode: errs.CodeNotInTimeWindow,
			wantMsg:  "当前时间不在允许发送的时间窗口内，允许时间：00:00-09:00",
		},
		{
			name:     "没有可用渠道",
			wantCode: errs.CodeNoChannel,
			wantMsg:  "未配置可用的发送渠道",
		},
		{
			name:    "查询失败",
			svcErr:  errors.New("mock db error"),
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := configmocks.NewMockService(ctrl)
			svc.EXPECT().GetEnabledConfigs(gomock.Any(), int64(1001), int64(2001)).Return(tc.configs, tc.svcErr)

			h := NewTimeWindowHandler(svc)
			h.now = func() time.Time {
				return time.Date(2025, 6, 1, 10, 30, 0, 0, time.Local)
			}
			res, err := h.Handle(t.Context(), &MessageContext{TenantID: 1001, StoreID: 2001})
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			if tc.wantCode == "" {
				assert.Equal(t, Next(), res)
				return
			}
			assert.False(t, res.Continue)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Message)
		})
	}
}
