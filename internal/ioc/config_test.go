package ioc

import (
	"os"
	"testing"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/pkg/ratelimit"
	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func loadConfig(t *testing.T) {
	t.Helper()
	f, err := os.Open("../../config/config.yaml")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, econf.LoadFromReader(f, yaml.Unmarshal))
}

// 不要并行，econf 是全局的
func TestConfig(t *testing.T) {
	loadConfig(t)

	assert.NotEmpty(t, econf.GetString("mysql.dsn"))
	assert.Equal(t, "localhost:6379", econf.GetString("redis.addr"))
	assert.Equal(t, 8080, econf.GetInt("server.http.port"))
	assert.Equal(t, 10, econf.GetInt("message.batchConcurrency"))
	assert.Equal(t, 100, econf.GetInt("completion.batchSize"))
	assert.Equal(t, 5*time.Second, econf.GetDuration("adapter.timeout"))
	assert.Equal(t, time.Minute, econf.GetDuration("cache.localTTL"))
	assert.Equal(t, "redis", econf.GetString("ratelimit.backend"))
	assert.NotEmpty(t, econf.GetString("trace.zipkin.endpoint"))

	pool := InitPool()
	require.NotNil(t, pool)
	require.NoError(t, pool.Shutdown(t.Context()))

	assert.NotNil(t, InitTaskIDGenerator())
	assert.NotNil(t, InitMessageIDGenerator())
}

func TestInitCounter_Local(t *testing.T) {
	loadConfig(t)
	econf.Set("ratelimit.backend", "local")
	defer econf.Set("ratelimit.backend", "redis")

	// local 模式下不会用到 redis
	counter := InitCounter(nil)
	_, ok := counter.(*ratelimit.LocalCounter)
	assert.True(t, ok)
}

func TestInitAdapterRegistry(t *testing.T) {
	loadConfig(t)

	registry := InitAdapterRegistry()
	assert.ElementsMatch(t, []domain.ChannelType{
		domain.ChannelLocal,
		domain.ChannelDingTalk,
		domain.ChannelWeChatWork,
	}, registry.Types())
}
