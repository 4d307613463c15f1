// Package redisx 给 Redis 客户端加上监控和链路追踪
package redisx

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var _ redis.Hook = (*Hook)(nil)

// Hook 统计命令耗时、成功率，并为每条命令创建一个 span
type Hook struct {
	counter  *prometheus.CounterVec
	duration *prometheus.SummaryVec
	tracer   trace.Tracer
}

func NewHook(namespace string) *Hook {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redis_commands_total",
		Help:      "Redis 命令执行次数",
	}, []string{"command", "status"})
	duration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  namespace,
		Name:       "redis_command_duration_seconds",
		Help:       "Redis 命令执行耗时",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
	}, []string{"command"})
	return &Hook{
		counter:  register(counter),
		duration: register(duration),
		tracer:   otel.Tracer("gitee.com/flycash/message-center/redis"),
	}
}

// register 重复注册时复用已经注册的指标
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

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		name := cmd.Name()
		ctx, span := h.tracer.Start(ctx, "redis."+name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("db.system", "redis")))
		defer span.End()

		start := time.Now()
		err := next(ctx, cmd)
		h.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		h.counter.WithLabelValues(name, status(err)).Inc()
		if err != nil && !errors.Is(err, redis.Nil) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		ctx, span := h.tracer.Start(ctx, "redis.pipeline",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.Int("redis.cmd_count", len(cmds))))
		defer span.End()

		start := time.Now()
		err := next(ctx, cmds)
		h.duration.WithLabelValues("pipeline").Observe(time.Since(start).Seconds())
		if err == nil {
			for _, cmd := range cmds {
				if cmdErr := cmd.Err(); cmdErr != nil && !errors.Is(cmdErr, redis.Nil) {
					err = cmdErr
					break
				}
			}
		}
		h.counter.WithLabelValues("pipeline", status(err)).Inc()
		return err
	}
}

func status(err error) string {
	if err != nil && !errors.Is(err, redis.Nil) {
		return statusError
	}
	return statusSuccess
}

// WithHook 为Redis客户端添加指标收集和链路追踪
func WithHook(client *redis.Client, namespace string) *redis.Client {
	client.AddHook(NewHook(namespace))
	return client
}
