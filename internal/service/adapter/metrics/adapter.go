// Package metrics 为渠道适配器添加指标收集的装饰器
package metrics

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/service/adapter"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Adapter 为渠道适配器添加指标收集的装饰器
type Adapter struct {
	adapter             adapter.Adapter
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
}

// NewAdapter 创建一个带有指标收集的适配器
// 多个适配器共用同一组指标，用 channel 标签区分
func NewAdapter(a adapter.Adapter) *Adapter {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "channel_adapter_send_duration_seconds",
			Help:       "渠道发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"channel", "status"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "channel_adapter_send_total",
			Help: "渠道发送总数",
		},
		[]string{"channel"},
	)

	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "channel_adapter_send_status_total",
			Help: "渠道发送状态统计",
		},
		[]string{"channel", "status"},
	)

	return &Adapter{
		adapter:             a,
		sendDurationSummary: register(sendDurationSummary),
		sendCounter:         register(sendCounter),
		sendStatusCounter:   register(sendStatusCounter),
	}
}

// register 已经注册过的指标直接复用
func register[T prometheus.Collector](c T) T {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

func (a *Adapter) Type() domain.ChannelType {
	return a.adapter.Type()
}

// Send 发送并记录指标
func (a *Adapter) Send(ctx context.Context, task domain.ChannelTask, cfg domain.ChannelConfig) (domain.ChannelSendResult, error) {
	channel := a.adapter.Type().String()
	startTime := time.Now()

	a.sendCounter.WithLabelValues(channel).Inc()

	res, err := a.adapter.Send(ctx, task, cfg)

	duration := time.Since(startTime).Seconds()
	status := statusSuccess
	if err != nil || !res.Success {
		status = statusFailed
	}
	a.sendStatusCounter.WithLabelValues(channel, status).Inc()
	a.sendDurationSummary.WithLabelValues(channel, status).Observe(duration)

	return res, err
}
