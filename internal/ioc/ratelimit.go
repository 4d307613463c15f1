package ioc

import (
	"gitee.com/flycash/message-center/internal/pkg/ratelimit"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/redis/go-redis/v9"
)

// InitCounter 默认使用 redis 计数，多个实例共享同一个窗口
// local 只适合单实例部署或者本地调试
func InitCounter(rdb redis.Cmdable) ratelimit.Counter {
	backend := econf.GetString("ratelimit.backend")
	if backend == "local" {
		elog.DefaultLogger.Warn("频次控制使用本地计数器，多实例之间不共享计数")
		return ratelimit.NewLocalCounter()
	}
	return ratelimit.NewRedisCounter(rdb)
}
