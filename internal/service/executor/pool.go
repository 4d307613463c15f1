package executor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/ekit/bean/option"
	"github.com/ecodeclub/ekit/pool"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultWorkers       = 8
	defaultSubmitTimeout = 10 * time.Millisecond
)

// Pool 在 ekit 按需阻塞协程池上加了一层 caller-runs 语义：
// 在 submitTimeout 内没能放进队列（队列满）或者协程池已经关闭，任务就在调用方的协程里执行，不会丢任务
type Pool struct {
	tp            *pool.OnDemandBlockTaskPool
	submitTimeout time.Duration
	closed        atomic.Bool
	logger        *elog.Component
}

// NewPool workers 是常驻协程数，queueSize 是等待队列长度
// opts 可以用 pool.WithCoreGo / pool.WithMaxGo 等选项让协程数按需扩展
func NewPool(workers, queueSize int, opts ...option.Option[pool.OnDemandBlockTaskPool]) (*Pool, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	tp, err := pool.NewOnDemandBlockTaskPool(workers, queueSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("创建投递协程池失败: %w", err)
	}
	if err = tp.Start(); err != nil {
		return nil, fmt.Errorf("启动投递协程池失败: %w", err)
	}
	return &Pool{
		tp:            tp,
		submitTimeout: defaultSubmitTimeout,
		logger:        elog.DefaultLogger,
	}, nil
}

// Go 提交任务
func (p *Pool) Go(fn func()) {
	if p.closed.Load() {
		p.run(fn)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.submitTimeout)
	defer cancel()
	err := p.tp.Submit(ctx, pool.TaskFunc(func(_ context.Context) error {
		p.run(fn)
		return nil
	}))
	if err != nil {
		// Submit 返回错误时任务一定没有进入队列
		p.logger.Warn("任务没能进入执行队列，由调用方执行", elog.FieldErr(err))
		p.run(fn)
	}
}

// run 自己兜住 panic，ekit 会吞掉任务返回的错误
func (p *Pool) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("任务执行 panic", elog.Any("panic", r))
		}
	}()
	fn()
}

// Shutdown 不再接收新任务，等待队列中的任务执行完毕
func (p *Pool) Shutdown(ctx context.Context) error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	done, err := p.tp.Shutdown()
	if err != nil {
		return fmt.Errorf("关闭投递协程池失败: %w", err)
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("等待执行队列清空超时: %w", ctx.Err())
	}
}
