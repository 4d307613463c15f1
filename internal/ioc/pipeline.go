package ioc

import (
	"gitee.com/flycash/message-center/internal/pkg/ratelimit"
	"gitee.com/flycash/message-center/internal/repository"
	configsvc "gitee.com/flycash/message-center/internal/service/config"
	"gitee.com/flycash/message-center/internal/service/executor"
	"gitee.com/flycash/message-center/internal/service/pipeline"
	templatesvc "gitee.com/flycash/message-center/internal/service/template"
	"github.com/sony/sonyflake"
)

func InitEngine(
	configSvc configsvc.Service,
	templateSvc templatesvc.Service,
	counter ratelimit.Counter,
	idGenerator *sonyflake.Sonyflake,
	exec executor.Executor,
	messageRepo repository.MessageRepository,
	taskRepo repository.ChannelTaskRepository,
) *pipeline.Engine {
	return pipeline.NewEngine(
		pipeline.NewValidationHandler(),
		pipeline.NewTimeWindowHandler(configSvc),
		pipeline.NewChannelRoutingHandler(configSvc),
		pipeline.NewRateLimitHandler(counter),
		pipeline.NewTemplateRenderingHandler(templateSvc),
		pipeline.NewChannelDispatchHandler(idGenerator, exec),
		pipeline.NewStatusTrackingHandler(messageRepo, taskRepo),
	)
}
