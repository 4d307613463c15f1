package config

import (
	"errors"
	"testing"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	repomocks "gitee.com/flycash/message-center/internal/repository/mocks"
	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_GetEnabledConfigs(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		configs []domain.ChannelConfig
		repoErr error
		wantIDs []int64
		wantErr error
	}{
		{
			name: "门店级覆盖同渠道的租户级",
			configs: []domain.ChannelConfig{
				{ID: 1, TenantID: 1001, ChannelType: domain.ChannelLocal, Priority: 2, Enabled: true},
				{ID: 2, TenantID: 1001, ChannelType: domain.ChannelDingTalk, Priority: 1, Enabled: true},
				{ID: 3, TenantID: 1001, StoreID: 2001, ChannelType: domain.ChannelDingTalk, Priority: 3, Enabled: true},
			},
			wantIDs: []int64{1, 3},
		},
		{
			name: "只有租户级",
			configs: []domain.ChannelConfig{
				{ID: 5, TenantID: 1001, ChannelType: domain.ChannelWeChatWork, Priority: 9, Enabled: true},
				{ID: 4, TenantID: 1001, ChannelType: domain.ChannelLocal, Priority: 1, Enabled: true},
			},
			wantIDs: []int64{4, 5},
		},
		{
			name: "停用的门店级配置覆盖启用的租户级配置",
			configs: []domain.ChannelConfig{
				{ID: 1, TenantID: 1001, ChannelType: domain.ChannelLocal, Priority: 2, Enabled: true},
				{ID: 2, TenantID: 1001, ChannelType: domain.ChannelDingTalk, Priority: 1, Enabled: true},
				{ID: 3, TenantID: 1001, StoreID: 2001, ChannelType: domain.ChannelDingTalk, Priority: 3, Enabled: false},
			},
			wantIDs: []int64{1},
		},
		{
			name: "门店唯一的配置被停用",
			configs: []domain.ChannelConfig{
				{ID: 2, TenantID: 1001, ChannelType: domain.ChannelDingTalk, Priority: 1, Enabled: true},
				{ID: 3, TenantID: 1001, StoreID: 2001, ChannelType: domain.ChannelDingTalk, Priority: 3, Enabled: false},
			},
			wantIDs: []int64{},
		},
		{
			name: "停用的租户级配置被过滤",
			configs: []domain.ChannelConfig{
				{ID: 1, TenantID: 1001, ChannelType: domain.ChannelLocal, Priority: 2, Enabled: false},
				{ID: 4, TenantID: 1001, ChannelType: domain.ChannelWeChatWork, Priority: 1, Enabled: true},
			},
			wantIDs: []int64{4},
		},
		{
			name:    "没有配置",
			wantIDs: []int64{},
		},
		{
			name:    "查询失败",
			repoErr: errors.New("mock db error"),
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockChannelConfigRepository(ctrl)
			repo.EXPECT().FindByScope(gomock.Any(), int64(1001), int64(2001)).Return(tc.configs, tc.repoErr)

			res, err := NewService(repo).GetEnabledConfigs(t.Context(), 1001, 2001)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, ids(res))
		})
	}
}

func TestService_GetRoutableConfigs(t *testing.T) {
	t.Parallel()
	configs := []domain.ChannelConfig{
		{ID: 1, TenantID: 1001, ChannelType: domain.ChannelLocal, Priority: 5, Enabled: true},
		{ID: 2, TenantID: 1001, ChannelType: domain.ChannelLocal, BusinessType: "ORDER_NOTIFY", Priority: 6, Enabled: true},
		{ID: 3, TenantID: 1001, ChannelType: domain.ChannelDingTalk, BusinessType: "REFUND_NOTIFY", Priority: 1, Enabled: true},
		{ID: 4, TenantID: 1001, ChannelType: domain.ChannelWeChatWork, Priority: 3, Enabled: true},
		{ID: 5, TenantID: 1001, ChannelType: domain.ChannelWeChatWork, Priority: 2, Enabled: true},
	}
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockChannelConfigRepository(ctrl)
	repo.EXPECT().FindByScope(gomock.Any(), int64(1001), int64(0)).Return(configs, nil)

	res, err := NewService(repo).GetRoutableConfigs(t.Context(), 1001, 0, "ORDER_NOTIFY")
	require.NoError(t, err)
	// 钉钉只配置给了退款通知；本地消息取业务类型精确匹配的；企业微信取优先级高的
	assert.Equal(t, []int64{5, 2}, ids(res))
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockChannelConfigRepository(ctrl)
	svc := NewService(repo)

	_, err := svc.Create(t.Context(), domain.ChannelConfig{TenantID: 1001, ChannelType: "SMS"})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	cfg := domain.ChannelConfig{TenantID: 1001, ChannelType: domain.ChannelLocal, Enabled: true}
	repo.EXPECT().Create(gomock.Any(), cfg).Return(domain.ChannelConfig{ID: 9, TenantID: 1001, ChannelType: domain.ChannelLocal, Enabled: true}, nil)
	created, err := svc.Create(t.Context(), cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
}

func TestService_InvalidID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := NewService(repomocks.NewMockChannelConfigRepository(ctrl))

	_, err := svc.GetByID(t.Context(), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	assert.ErrorIs(t, svc.Delete(t.Context(), -1), errs.ErrInvalidParameter)
	assert.ErrorIs(t, svc.Update(t.Context(), domain.ChannelConfig{}), errs.ErrInvalidParameter)
	_, err = svc.ListByTenant(t.Context(), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func ids(configs []domain.ChannelConfig) []int64 {
	return slice.Map(configs, func(_ int, src domain.ChannelConfig) int64 {
		return src.ID
	})
}
