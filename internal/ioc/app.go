package ioc

import (
	"context"

	"gitee.com/flycash/message-center/internal/service/executor"
	"github.com/gotomicro/ego/server/egin"
)

// Task 后台任务，Start 会阻塞直到 ctx 被取消
type Task interface {
	Start(ctx context.Context)
}

type App struct {
	Web   *egin.Component
	Tasks []Task
	// 退出时要等队列里的投递任务执行完
	Pool  *executor.Pool
}

func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		go func(t Task) {
			t.Start(ctx)
		}(t)
	}
}
