package message

import (
	"context"
	"fmt"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/repository"
	"gitee.com/flycash/message-center/internal/service/pipeline"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 10

// IDGenerator 对外消息ID的生成器
type IDGenerator interface {
	Generate() (string, error)
}

//go:generate mockgen -source=./service.go -destination=./mocks/message.mock.go -package=messagemocks Service
type Service interface {
	// Send 受理一条消息：落库后同步执行责任链，渠道投递是异步的
	Send(ctx context.Context, req domain.SendRequest) domain.SendResult
	// BatchSend 逐条走 Send，单条失败不影响其他消息
	BatchSend(ctx context.Context, reqs []domain.SendRequest) domain.BatchSendResult
	// CompleteMessage 所有渠道任务都结束后，汇总成功失败数并写入消息的最终状态
	CompleteMessage(ctx context.Context, messageID string) (domain.Message, error)
	GetMessage(ctx context.Context, messageID string) (domain.Message, error)
	ListTasks(ctx context.Context, messageID string) ([]domain.ChannelTask, error)
}

type service struct {
	engine           *pipeline.Engine
	idGenerator      IDGenerator
	messageRepo      repository.MessageRepository
	taskRepo         repository.ChannelTaskRepository
	batchConcurrency int
	now              func() time.Time
	logger           *elog.Component
}

func NewService(
	engine *pipeline.Engine,
	idGenerator IDGenerator,
	messageRepo repository.MessageRepository,
	taskRepo repository.ChannelTaskRepository,
	batchConcurrency int,
) Service {
	if batchConcurrency <= 0 {
		batchConcurrency = defaultBatchConcurrency
	}
	return &service{
		engine:           engine,
		idGenerator:      idGenerator,
		messageRepo:      messageRepo,
		taskRepo:         taskRepo,
		batchConcurrency: batchConcurrency,
		now:              time.Now,
		logger:           elog.DefaultLogger,
	}
}

func (s *service) Send(ctx context.Context, req domain.SendRequest) domain.SendResult {
	// 请求本身不合法就不落库了，免得留下脏数据
	if err := req.Validate(); err != nil {
		return failedResult("", errs.CodeValidation, err.Error())
	}

	messageID, err := s.idGenerator.Generate()
	if err != nil {
		s.logger.Error("生成消息ID失败", elog.FieldErr(err))
		return failedResult("", errs.CodeSystem,
			fmt.Errorf("%w: %w", errs.ErrMessageIDGenerateFailed, err).Error())
	}

	now := s.now().UnixMilli()
	_, err = s.messageRepo.Create(ctx, domain.Message{
		MessageID:      messageID,
		TenantID:       req.TenantID,
		StoreID:        req.StoreID,
		BusinessType:   req.BusinessType,
		BusinessData:   req.BusinessData,
		TargetChannels: req.TargetChannels,
		Status:         domain.MessageStatusPending,
		TotalChannels:  len(req.TargetChannels),
		Ctime:          now,
		Utime:          now,
	})
	if err != nil {
		s.logger.Error("创建消息失败", elog.String("messageId", messageID), elog.FieldErr(err))
		return failedResult("", errs.CodeSystem,
			fmt.Errorf("%w: %w", errs.ErrCreateMessageFailed, err).Error())
	}

	mctx := pipeline.NewMessageContext(messageID, req)
	res := s.engine.Execute(ctx, mctx)
	if !res.Success {
		s.logger.Warn("消息处理失败",
			elog.String("messageId", messageID),
			elog.String("code", string(res.Code)),
			elog.String("reason", res.ErrorMessage),
			elog.Any("rateLimitCounts", mctx.RateLimitCounts()))
		return failedResult(messageID, res.Code, res.ErrorMessage)
	}
	return domain.SendResult{Success: true, MessageID: messageID}
}

func (s *service) BatchSend(ctx context.Context, reqs []domain.SendRequest) domain.BatchSendResult {
	results := make([]domain.SendResult, len(reqs))
	var eg errgroup.Group
	eg.SetLimit(s.batchConcurrency)
	for i := range reqs {
		eg.Go(func() error {
			results[i] = s.Send(ctx, reqs[i])
			return nil
		})
	}
	// Send 不返回 error，这里只是等待全部完成
	_ = eg.Wait()

	res := domain.BatchSendResult{TotalCount: len(reqs), Results: results}
	for _, r := range results {
		if r.Success {
			res.SuccessCount++
		} else {
			res.FailedCount++
		}
	}
	return res
}

func (s *service) CompleteMessage(ctx context.Context, messageID string) (domain.Message, error) {
	msg, err := s.messageRepo.GetByMessageID(ctx, messageID)
	if err != nil {
		return domain.Message{}, err
	}
	tasks, err := s.taskRepo.FindByMessageID(ctx, messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if len(tasks) == 0 {
		return domain.Message{}, fmt.Errorf("%w: messageId = %s 没有渠道任务", errs.ErrMessageNotFinished, messageID)
	}

	success, failed := 0, 0
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusSuccess:
			success++
		case domain.TaskStatusFailed, domain.TaskStatusCancelled:
			failed++
		default:
			return domain.Message{}, fmt.Errorf("%w: messageId = %s, taskId = %d, status = %s",
				errs.ErrMessageNotFinished, messageID, task.ID, task.Status)
		}
	}

	now := s.now().UnixMilli()
	msg.TotalChannels = len(tasks)
	msg.SuccessChannels = success
	msg.FailedChannels = failed
	msg.Status = domain.DeriveMessageStatus(success, failed)
	msg.FinishTime = now
	msg.Utime = now
	if err = s.messageRepo.Complete(ctx, msg); err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

func (s *service) GetMessage(ctx context.Context, messageID string) (domain.Message, error) {
	if messageID == "" {
		return domain.Message{}, fmt.Errorf("%w: messageId 不能为空", errs.ErrInvalidParameter)
	}
	return s.messageRepo.GetByMessageID(ctx, messageID)
}

func (s *service) ListTasks(ctx context.Context, messageID string) ([]domain.ChannelTask, error) {
	if messageID == "" {
		return nil, fmt.Errorf("%w: messageId 不能为空", errs.ErrInvalidParameter)
	}
	return s.taskRepo.FindByMessageID(ctx, messageID)
}

func failedResult(messageID string, code errs.Code, msg string) domain.SendResult {
	return domain.SendResult{
		Success:      false,
		MessageID:    messageID,
		ErrorCode:    code,
		ErrorMessage: msg,
	}
}
