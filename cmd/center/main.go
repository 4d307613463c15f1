package main

import (
	"context"
	"time"

	"gitee.com/flycash/message-center/cmd/center/ioc"
	prodioc "gitee.com/flycash/message-center/internal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// ego.New 会加载配置，所有初始化都要放在它后面
	egoApp := ego.New()

	tp := prodioc.InitZipkinTracer()
	app := ioc.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	app.StartTasks(ctx)

	err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
	).Run()
	if err != nil {
		elog.Error("服务异常退出", elog.FieldErr(err))
	}

	// 先停后台任务，再等渠道投递收尾
	cancel()
	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()
	if err = app.Pool.Shutdown(stopCtx); err != nil {
		elog.Error("关闭投递线程池超时", elog.FieldErr(err))
	}
	if err = tp.Shutdown(stopCtx); err != nil {
		elog.Error("Shutdown zipkinTracer", elog.FieldErr(err))
	}
}
