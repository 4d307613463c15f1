package pipeline

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/pkg/ratelimit"
)

// AttrRateLimitCounts 频次控制后各渠道在当前时间桶内的计数，值类型 map[domain.ChannelType]int64
const AttrRateLimitCounts = "rate_limit.counts"

// RateLimitHandler 按 渠道+租户+门店+时间桶 计数，超过限制时整条消息被拒绝
type RateLimitHandler struct {
	counter ratelimit.Counter
	now     func() time.Time
}

func NewRateLimitHandler(counter ratelimit.Counter) *RateLimitHandler {
	return &RateLimitHandler{
		counter: counter,
		now:     time.Now,
	}
}

func (h *RateLimitHandler) Name() string {
	return "频次控制处理器"
}

func (h *RateLimitHandler) Order() int {
	return OrderRateLimit
}

func (h *RateLimitHandler) Supports(mctx *MessageContext) bool {
	return len(mctx.ChannelConfigs) > 0
}

// RateLimitCounts 频次控制阶段记录的各渠道计数，没有经过频次控制时返回 nil
func (c *MessageContext) RateLimitCounts() map[domain.ChannelType]int64 {
	val, ok := c.Attribute(AttrRateLimitCounts)
	if !ok {
		return nil
	}
	counts, _ := val.(map[domain.ChannelType]int64)
	return counts
}

func (h *RateLimitHandler) Handle(ctx context.Context, mctx *MessageContext) (Result, error) {
	now := h.now()
	allowed := make([]domain.ChannelType, 0, len(mctx.TargetChannels))
	counts := make(map[domain.ChannelType]int64, len(mctx.TargetChannels))
	for _, channel := range mctx.TargetChannels {
		cfg, _ := mctx.ConfigOf(channel)
		limit := cfg.RateLimit
		if !limit.Limited() {
			allowed = append(allowed, channel)
			continue
		}

		key := ratelimit.Key(channel, mctx.TenantID, mctx.StoreID, ratelimit.Bucket(limit.Unit, limit.Window, now))
		cnt, err := h.counter.Incr(ctx, key, limit.TTL())
		if err != nil {
			return Result{}, fmt.Errorf("频次计数失败 key=%s: %w", key, err)
		}
		counts[channel] = cnt
		if cnt > int64(limit.Count) {
			mctx.SetAttribute(AttrRateLimitCounts, counts)
			return Fail(errs.CodeRateLimited,
				"渠道%s触发频次限制，当前窗口已发送%d条，限制%d条", channel, cnt, limit.Count), nil
		}
		allowed = append(allowed, channel)
	}
	mctx.SetAttribute(AttrRateLimitCounts, counts)

	if len(allowed) == 0 {
		return Fail(errs.CodeRateLimited, "所有渠道均触发频次限制，消息发送失败"), nil
	}
	mctx.TargetChannels = allowed
	return Next(), nil
}
