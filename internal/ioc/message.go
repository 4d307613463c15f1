package ioc

import (
	"gitee.com/flycash/message-center/internal/repository"
	"gitee.com/flycash/message-center/internal/service/message"
	"gitee.com/flycash/message-center/internal/service/pipeline"
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
)

func InitMessageService(
	engine *pipeline.Engine,
	idGenerator message.IDGenerator,
	messageRepo repository.MessageRepository,
	taskRepo repository.ChannelTaskRepository,
) message.Service {
	return message.NewService(engine, idGenerator, messageRepo, taskRepo,
		econf.GetInt("message.batchConcurrency"))
}

func InitCompletionTask(dclient dlock.Client, svc message.Service, repo repository.MessageRepository) *message.CompletionTask {
	return message.NewCompletionTask(dclient, svc, repo,
		econf.GetInt("completion.batchSize"),
		econf.GetDuration("completion.interval"))
}

func InitTasks(t1 *message.CompletionTask) []Task {
	return []Task{
		t1,
	}
}
