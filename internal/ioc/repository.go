package ioc

import (
	"time"

	"gitee.com/flycash/message-center/internal/repository"
	"gitee.com/flycash/message-center/internal/repository/cache/local"
	rediscache "gitee.com/flycash/message-center/internal/repository/cache/redis"
	"gitee.com/flycash/message-center/internal/repository/dao"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

const defaultLocalCacheTTL = time.Minute

// InitChannelConfigRepository 两级缓存的类型一样，只能在这里手动组装
func InitChannelConfigRepository(d dao.ChannelConfigDAO, rdb redis.Cmdable) repository.ChannelConfigRepository {
	ttl := econf.GetDuration("cache.localTTL")
	if ttl <= 0 {
		ttl = defaultLocalCacheTTL
	}
	return repository.NewChannelConfigRepository(d, local.NewCache(ttl), rediscache.NewCache(rdb))
}
