package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCounter_Incr(t *testing.T) {
	t.Parallel()
	c := NewLocalCounter()
	ctx := t.Context()

	for i := int64(1); i <= 3; i++ {
		cnt, err := c.Incr(ctx, "k1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, cnt)
	}

	// 不同 key 互不影响
	cnt, err := c.Incr(ctx, "k2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func TestLocalCounter_Expire(t *testing.T) {
	t.Parallel()
	c := NewLocalCounter()
	ctx := t.Context()

	cnt, err := c.Incr(ctx, "k", 50*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	time.Sleep(100 * time.Millisecond)
	cnt, err = c.Incr(ctx, "k", 50*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt, "过期之后重新计数")
}

func TestLocalCounter_Concurrent(t *testing.T) {
	t.Parallel()
	c := NewLocalCounter()
	var wg sync.WaitGroup
	const n = 100
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Incr(t.Context(), "k", time.Minute)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	cnt, err := c.Incr(t.Context(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(n+1), cnt)
}
