package pipeline

import (
	"fmt"

	"gitee.com/flycash/message-center/internal/errs"
)

// Result 单个处理器的执行结果
// Continue 为 false 时责任链立刻终止，不管 Success 是什么
type Result struct {
	Continue bool
	Success  bool
	Code     errs.Code
	Message  string
}

// Next 处理成功，继续执行后面的处理器
func Next() Result {
	return Result{Continue: true, Success: true}
}

// Fail 处理失败并终止责任链
func Fail(code errs.Code, format string, args ...any) Result {
	return Result{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ChainResult 整条责任链的执行结果
type ChainResult struct {
	Success      bool
	Code         errs.Code
	ErrorMessage string
	StartTime    int64
	EndTime      int64
	// HandlerResults 处理器名称 -> 执行结果，跳过的处理器不会出现
	HandlerResults map[string]Result
}
