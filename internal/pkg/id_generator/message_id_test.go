package id

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageIDGenerator_Generate(t *testing.T) {
	t.Parallel()
	g := NewMessageIDGenerator()
	g.now = func() time.Time {
		return time.Date(2025, 1, 15, 10, 30, 45, 123*int(time.Millisecond), time.Local)
	}

	pattern := regexp.MustCompile(`^MSG\d{17}[0-9A-F]{8}$`)
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		mid, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, mid)
		assert.Equal(t, "MSG20250115103045123", mid[:20])
		seen[mid] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestNewTaskIDGenerator(t *testing.T) {
	t.Parallel()
	g := NewTaskIDGenerator(1)
	require.NotNil(t, g)
	prev := uint64(0)
	for i := 0; i < 10; i++ {
		next, err := g.NextID()
		require.NoError(t, err)
		assert.Greater(t, next, prev)
		prev = next
	}
}
