package errs

import (
	"errors"
	"fmt"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter        = errors.New("参数错误")
	ErrMessageNotFound         = errors.New("消息记录不存在")
	ErrMessageNotFinished      = errors.New("消息仍有渠道任务未结束")
	ErrCreateMessageFailed     = errors.New("创建消息失败")
	ErrMessageIDGenerateFailed = errors.New("消息ID生成失败")
	ErrTaskIDGenerateFailed    = errors.New("渠道任务ID生成失败")

	ErrConfigNotFound   = errors.New("渠道配置不存在")
	ErrTemplateNotFound = errors.New("消息模板不存在")
	ErrAdapterNotFound  = errors.New("不支持的渠道类型")
)

// Code 责任链和渠道发送的错误码
type Code string

const (
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeNoChannel       Code = "NO_CHANNEL"
	CodeNotInTimeWindow Code = "NOT_IN_TIME_WINDOW"
	CodeRateLimited     Code = "RATE_LIMITED"
	CodeSystem          Code = "SYSTEM_ERROR"
)

// ChannelErrorKind 渠道错误的种类，会拼接在渠道类型后面组成错误码
type ChannelErrorKind string

const (
	KindConfig ChannelErrorKind = "CONFIG_ERROR"
	KindSend   ChannelErrorKind = "SEND_ERROR"
)

// ChannelError 渠道适配器返回的错误，错误码形如 DINGTALK_SEND_ERROR
type ChannelError struct {
	Channel string
	Kind    ChannelErrorKind
	Msg     string
}

func NewChannelError(channel string, kind ChannelErrorKind, format string, args ...any) *ChannelError {
	return &ChannelError{
		Channel: channel,
		Kind:    kind,
		Msg:     fmt.Sprintf(format, args...),
	}
}

func (e *ChannelError) Code() Code {
	return Code(e.Channel + "_" + string(e.Kind))
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code(), e.Msg)
}

// CodeOf 取出错误码，非渠道错误统一视为系统错误
func CodeOf(err error) Code {
	var ce *ChannelError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return CodeSystem
}
