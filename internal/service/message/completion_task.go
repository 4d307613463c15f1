package message

import (
	"context"
	"errors"
	"time"

	"gitee.com/flycash/message-center/internal/errs"
	"gitee.com/flycash/message-center/internal/pkg/loopjob"
	"gitee.com/flycash/message-center/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"
	"github.com/meoying/dlock-go"
)

const (
	completionKey              = "message_center_completion"
	defaultCompletionBatchSize = 100
	defaultCompletionInterval  = time.Second * 5
)

// CompletionTask 扫描处理中的消息，渠道任务都结束了就写入最终状态
type CompletionTask struct {
	dclient   dlock.Client
	svc       Service
	repo      repository.MessageRepository
	batchSize int
	interval  time.Duration
	logger    *elog.Component
}

func NewCompletionTask(dclient dlock.Client, svc Service, repo repository.MessageRepository,
	batchSize int, interval time.Duration,
) *CompletionTask {
	if batchSize <= 0 {
		batchSize = defaultCompletionBatchSize
	}
	if interval <= 0 {
		interval = defaultCompletionInterval
	}
	return &CompletionTask{
		dclient:   dclient,
		svc:       svc,
		repo:      repo,
		batchSize: batchSize,
		interval:  interval,
		logger:    elog.DefaultLogger.With(elog.String("task", completionKey)),
	}
}

func (c *CompletionTask) Start(ctx context.Context) {
	lj := loopjob.NewInfiniteLoop(c.dclient, c.OneLoop, completionKey, c.interval)
	lj.Run(ctx)
}

// OneLoop 按 ID 翻页扫完一轮，单条消息失败不影响其他消息
func (c *CompletionTask) OneLoop(ctx context.Context) error {
	var (
		minID  int64
		result error
	)
	for {
		msgs, err := c.repo.FindProcessing(ctx, minID, c.batchSize)
		if err != nil {
			return multierror.Append(result, err).ErrorOrNil()
		}
		for _, msg := range msgs {
			done, er := c.svc.CompleteMessage(ctx, msg.MessageID)
			if errors.Is(er, errs.ErrMessageNotFinished) {
				continue
			}
			if er != nil {
				result = multierror.Append(result, er)
				continue
			}
			c.logger.Info("消息处理完成",
				elog.String("messageId", done.MessageID),
				elog.String("status", done.Status.String()))
		}
		if len(msgs) < c.batchSize {
			return result
		}
		minID = msgs[len(msgs)-1].ID
	}
}
