package metrics

import (
	"errors"
	"testing"

	"gitee.com/flycash/message-center/internal/domain"
	adaptermocks "gitee.com/flycash/message-center/internal/service/adapter/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAdapter_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := adaptermocks.NewMockAdapter(ctrl)
	mockAdapter.EXPECT().Type().Return(domain.ChannelDingTalk).AnyTimes()
	gomock.InOrder(
		mockAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ChannelSendResult{Success: true}, nil),
		mockAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ChannelSendResult{}, errors.New("mock error")),
	)

	a := NewAdapter(mockAdapter)
	// 重复创建不会 panic，并且复用同一组指标
	b := NewAdapter(mockAdapter)
	assert.Same(t, a.sendCounter, b.sendCounter)
	assert.Equal(t, domain.ChannelDingTalk, a.Type())

	channel := domain.ChannelDingTalk.String()
	total := testutil.ToFloat64(a.sendCounter.WithLabelValues(channel))
	succeeded := testutil.ToFloat64(a.sendStatusCounter.WithLabelValues(channel, statusSuccess))
	failed := testutil.ToFloat64(a.sendStatusCounter.WithLabelValues(channel, statusFailed))

	res, err := a.Send(t.Context(), domain.ChannelTask{}, domain.ChannelConfig{})
	assert.NoError(t, err)
	assert.True(t, res.Success)
	_, err = a.Send(t.Context(), domain.ChannelTask{}, domain.ChannelConfig{})
	assert.Error(t, err)

	assert.Equal(t, total+2, testutil.ToFloat64(a.sendCounter.WithLabelValues(channel)))
	assert.Equal(t, succeeded+1, testutil.ToFloat64(a.sendStatusCounter.WithLabelValues(channel, statusSuccess)))
	assert.Equal(t, failed+1, testutil.ToFloat64(a.sendStatusCounter.WithLabelValues(channel, statusFailed)))
}
