//go:build wireinject

package ioc

import (
	"gitee.com/flycash/message-center/internal/ioc"
	"gitee.com/flycash/message-center/internal/repository"
	"gitee.com/flycash/message-center/internal/repository/dao"
	configsvc "gitee.com/flycash/message-center/internal/service/config"
	"gitee.com/flycash/message-center/internal/service/executor"
	templatesvc "gitee.com/flycash/message-center/internal/service/template"
	configweb "gitee.com/flycash/message-center/internal/web/config"
	messageweb "gitee.com/flycash/message-center/internal/web/message"
	templateweb "gitee.com/flycash/message-center/internal/web/template"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitRedisClient,
		ioc.InitRedisCmd,
		ioc.InitDistributedLock,
		ioc.InitMessageIDGenerator,
		ioc.InitTaskIDGenerator,
		ioc.InitCounter,
	)
	configSvcSet = wire.NewSet(
		configsvc.NewService,
		ioc.InitChannelConfigRepository,
		dao.NewChannelConfigDAO,
	)
	templateSvcSet = wire.NewSet(
		templatesvc.NewService,
		repository.NewMessageTemplateRepository,
		dao.NewMessageTemplateDAO,
	)
	executorSet = wire.NewSet(
		ioc.InitPool,
		ioc.InitAdapterRegistry,
		executor.NewExecutor,
	)
	messageSvcSet = wire.NewSet(
		ioc.InitEngine,
		ioc.InitMessageService,
		ioc.InitCompletionTask,
		repository.NewMessageRepository,
		dao.NewMessageDAO,
		repository.NewChannelTaskRepository,
		dao.NewChannelTaskDAO,
	)
	webSet = wire.NewSet(
		messageweb.NewHandler,
		configweb.NewHandler,
		templateweb.NewHandler,
		ioc.InitWeb,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		// 基础设施
		BaseSet,

		// 渠道配置和模板
		configSvcSet,
		templateSvcSet,

		// 责任链和异步投递
		executorSet,
		messageSvcSet,

		// HTTP 服务和后台任务
		webSet,
		ioc.InitTasks,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
