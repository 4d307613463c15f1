package ratelimit

import (
	"testing"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBucket(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 15, 10, 30, 45, 0, time.Local)
	testCases := []struct {
		name   string
		unit   domain.TimeUnit
		window int
		want   string
	}{
		{name: "秒", unit: domain.TimeUnitSecond, window: 10, want: "202501151030_40"},
		{name: "秒-窗口为60", unit: domain.TimeUnitSecond, window: 60, want: "202501151030_0"},
		{name: "秒-窗口为0", unit: domain.TimeUnitSecond, window: 0, want: "202501151030_45"},
		{name: "分钟", unit: domain.TimeUnitMinute, window: 5, want: "202501151030"},
		{name: "小时", unit: domain.TimeUnitHour, window: 1, want: "2025011510"},
		{name: "天", unit: domain.TimeUnitDay, window: 1, want: "20250115"},
		{name: "未知单位按分钟", unit: "WEEK", window: 1, want: "202501151030"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Bucket(tc.unit, tc.window, now))
		})
	}
}

func TestKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "rate_limit:DINGTALK:1001:null:202501151030",
		Key(domain.ChannelDingTalk, 1001, 0, "202501151030"))
	assert.Equal(t, "rate_limit:WECHAT_WORK:1001:2001:2025011510",
		Key(domain.ChannelWeChatWork, 1001, 2001, "2025011510"))
}
