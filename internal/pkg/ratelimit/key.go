package ratelimit

import (
	"fmt"
	"strconv"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
)

const keyPrefix = "rate_limit"

// Key 计数器的 key，门店为空时使用 null 占位
// 格式 rate_limit:{channelType}:{tenantId}:{storeId}:{timeBucket}
func Key(channel domain.ChannelType, tenantID, storeID int64, bucket string) string {
	store := "null"
	if storeID > 0 {
		store = strconv.FormatInt(storeID, 10)
	}
	return fmt.Sprintf("%s:%s:%d:%s:%s", keyPrefix, channel, tenantID, store, bucket)
}

// Bucket 计算 now 所在的时间桶
//   - SECOND: yyyyMMddHHmm_{窗口起始秒}
//   - MINUTE: yyyyMMddHHmm
//   - HOUR:   yyyyMMddHH
//   - DAY:    yyyyMMdd
//
// 未知单位按分钟处理
func Bucket(unit domain.TimeUnit, window int, now time.Time) string {
	switch unit {
	case domain.TimeUnitSecond:
		if window <= 0 {
			window = 1
		}
		return fmt.Sprintf("%s_%d", now.Format("200601021504"), now.Second()/window*window)
	case domain.TimeUnitHour:
		return now.Format("2006010215")
	case domain.TimeUnitDay:
		return now.Format("20060102")
	default:
		return now.Format("200601021504")
	}
}
