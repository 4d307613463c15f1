package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetry(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "固定间隔",
			cfg: Config{
				Type:          "fixed",
				FixedInterval: &FixedIntervalConfig{MaxRetries: 3, Interval: 10},
			},
		},
		{
			name: "指数退避",
			cfg: Config{
				Type: "exponential",
				ExponentialBackoff: &ExponentialBackoffConfig{
					InitialInterval: 10,
					MaxInterval:     100,
					MaxRetries:      3,
				},
			},
		},
		{
			name:    "缺少配置",
			cfg:     Config{Type: "fixed"},
			wantErr: true,
		},
		{
			name:    "未知类型",
			cfg:     Config{Type: "unknown"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewRetry(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, ok := s.Next()
			assert.True(t, ok)
		})
	}
}

func TestNextRetryTime(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
	assert.Equal(t, now.Add(2*time.Minute), NextRetryTime(now, 1))
	assert.Equal(t, now.Add(4*time.Minute), NextRetryTime(now, 2))
	assert.Equal(t, now.Add(8*time.Minute), NextRetryTime(now, 3))
	assert.Equal(t, now.Add(time.Minute), NextRetryTime(now, -1))
}
