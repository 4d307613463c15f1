package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gitee.com/flycash/message-center/internal/errs"
	"github.com/gotomicro/ego/core/elog"
)

// Engine 按顺序执行处理器
type Engine struct {
	handlers []Handler
	now      func() time.Time
	logger   *elog.Component
}

func NewEngine(handlers ...Handler) *Engine {
	hs := make([]Handler, len(handlers))
	copy(hs, handlers)
	sort.SliceStable(hs, func(i, j int) bool {
		return hs[i].Order() < hs[j].Order()
	})
	return &Engine{
		handlers: hs,
		now:      time.Now,
		logger:   elog.DefaultLogger,
	}
}

func (e *Engine) Execute(ctx context.Context, mctx *MessageContext) ChainResult {
	res := ChainResult{
		Success:        true,
		StartTime:      e.now().UnixMilli(),
		HandlerResults: make(map[string]Result, len(e.handlers)),
	}
	mctx.Status = StatusProcessing

	for _, h := range e.handlers {
		supported, r, err := e.run(ctx, h, mctx)
		if !supported {
			continue
		}
		if err != nil {
			e.logger.Error("处理器执行异常",
				elog.String("handler", h.Name()),
				elog.String("messageId", mctx.MessageID),
				elog.FieldErr(err))
			r = Fail(errs.CodeSystem, "处理器[%s]执行异常: %s", h.Name(), err.Error())
		}
		res.HandlerResults[h.Name()] = r
		if !r.Continue {
			res.Success = false
			res.Code = r.Code
			res.ErrorMessage = r.Message
			break
		}
	}

	res.EndTime = e.now().UnixMilli()
	if res.Success {
		mctx.Status = StatusSuccess
	} else {
		mctx.Status = StatusFailed
		mctx.ErrorCode = res.Code
		mctx.ErrorMessage = res.ErrorMessage
	}
	return res
}

// run 执行单个处理器，panic 转换成 error
func (e *Engine) run(ctx context.Context, h Handler, mctx *MessageContext) (supported bool, r Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			supported = true
			r = Result{}
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	if !h.Supports(mctx) {
		return false, Result{}, nil
	}
	r, err = h.Handle(ctx, mctx)
	return true, r, err
}
