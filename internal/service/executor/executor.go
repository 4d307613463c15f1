package executor

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/repository"
	"gitee.com/flycash/message-center/internal/service/adapter"
	configsvc "gitee.com/flycash/message-center/internal/service/config"
	"github.com/gotomicro/ego/core/elog"
)

const defaultFailedMessage = "发送失败"

// Executor 渠道任务执行器
//
//go:generate mockgen -source=./executor.go -destination=./mocks/executor.mock.go -package=executormocks Executor
type Executor interface {
	// Submit 异步执行一批任务，立刻返回，执行结果只体现在持久化的任务状态里
	Submit(ctx context.Context, tasks []domain.ChannelTask)
	// Execute 同步执行单个任务并返回最终状态，外部的重试扫描也走这个入口
	Execute(ctx context.Context, task domain.ChannelTask) domain.ChannelTask
}

type executor struct {
	pool      *Pool
	configSvc configsvc.Service
	registry  *adapter.Registry
	repo      repository.ChannelTaskRepository
	now       func() time.Time
	logger    *elog.Component
}

func NewExecutor(
	pool *Pool,
	configSvc configsvc.Service,
	registry *adapter.Registry,
	repo repository.ChannelTaskRepository,
) Executor {
	return &executor{
		pool:      pool,
		configSvc: configSvc,
		registry:  registry,
		repo:      repo,
		now:       time.Now,
		logger:    elog.DefaultLogger,
	}
}

func (e *executor) Submit(ctx context.Context, tasks []domain.ChannelTask) {
	// 任务的生命周期和请求无关
	ctx = context.WithoutCancel(ctx)
	for i := range tasks {
		task := tasks[i]
		e.pool.Go(func() {
			e.Execute(ctx, task)
		})
	}
}

func (e *executor) Execute(ctx context.Context, task domain.ChannelTask) domain.ChannelTask {
	if !task.Sendable() {
		e.logger.Info("任务不可发送，跳过",
			elog.Int64("taskId", task.ID),
			elog.String("status", task.Status.String()))
		return task
	}

	task.MarkSending(e.now())
	e.save(ctx, task)

	res, err := e.send(ctx, task)
	if err == nil && res.Success {
		task.MarkSucceeded(res.Message, e.now())
	} else {
		task.MarkFailed(failedMessage(res, err), e.now())
		e.logger.Warn("渠道任务发送失败",
			elog.Int64("taskId", task.ID),
			elog.String("messageId", task.MessageID),
			elog.String("channel", task.ChannelType.String()),
			elog.String("status", task.Status.String()),
			elog.Int("retryCount", task.RetryCount),
			elog.FieldErr(err))
	}
	e.save(ctx, task)
	return task
}

// send 查找配置和适配器并发送，适配器的 panic 也按发送失败处理
func (e *executor) send(ctx context.Context, task domain.ChannelTask) (res domain.ChannelSendResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = domain.ChannelSendResult{}
			err = fmt.Errorf("渠道发送 panic: %v", r)
		}
	}()
	cfg, err := e.configSvc.GetByID(ctx, task.ChannelConfigID)
	if err != nil {
		return domain.ChannelSendResult{}, fmt.Errorf("获取渠道配置失败: %w", err)
	}
	a, err := e.registry.Get(task.ChannelType)
	if err != nil {
		return domain.ChannelSendResult{}, err
	}
	return a.Send(ctx, task, cfg)
}

// save 持久化失败只记录日志，后写覆盖先写
func (e *executor) save(ctx context.Context, task domain.ChannelTask) {
	if err := e.repo.Save(ctx, task); err != nil {
		e.logger.Error("保存渠道任务失败",
			elog.Int64("taskId", task.ID),
			elog.String("status", task.Status.String()),
			elog.FieldErr(err))
	}
}

func failedMessage(res domain.ChannelSendResult, err error) string {
	if err != nil {
		return err.Error()
	}
	if res.Message != "" {
		return res.Message
	}
	return defaultFailedMessage
}
