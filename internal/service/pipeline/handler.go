package pipeline

import "context"

// 各处理器的执行顺序
const (
	OrderValidation        = 100
	OrderTimeWindow        = 200
	OrderChannelRouting    = 300
	OrderRateLimit         = 400
	OrderTemplateRendering = 500
	OrderChannelDispatch   = 600
	OrderStatusTracking    = 700
)

// Handler 责任链上的处理器
// 处理器不能保存单次请求的状态，所有修改都落在 MessageContext 上
type Handler interface {
	Name() string
	Order() int
	// Supports 返回 false 时跳过该处理器
	Supports(mctx *MessageContext) bool
	// Handle 返回的 error 表示非预期的错误，会被转换成 SYSTEM_ERROR
	Handle(ctx context.Context, mctx *MessageContext) (Result, error)
}
