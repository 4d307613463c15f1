package message

import (
	"gitee.com/flycash/message-center/internal/domain"
	msgsvc "gitee.com/flycash/message-center/internal/service/message"
	"gitee.com/flycash/message-center/internal/web"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc msgsvc.Service
}

func NewHandler(svc msgsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/messages")
	g.POST("", h.Send)
	g.POST("/batch", h.BatchSend)
	g.GET("/:messageId", h.GetMessage)
	g.GET("/:messageId/tasks", h.ListTasks)
}

func (h *Handler) Send(ctx *gin.Context) {
	var req SendReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		web.InvalidParam(ctx, "请求体不是合法的JSON")
		return
	}
	// 受理失败也是正常的业务结果，放在 data 里返回
	web.OK(ctx, h.svc.Send(ctx.Request.Context(), req.toDomain()))
}

func (h *Handler) BatchSend(ctx *gin.Context) {
	var req BatchSendReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		web.InvalidParam(ctx, "请求体不是合法的JSON")
		return
	}
	if len(req.Messages) == 0 {
		web.InvalidParam(ctx, "消息列表不能为空")
		return
	}
	reqs := slice.Map(req.Messages, func(_ int, src SendReq) domain.SendRequest {
		return src.toDomain()
	})
	web.OK(ctx, h.svc.BatchSend(ctx.Request.Context(), reqs))
}

func (h *Handler) GetMessage(ctx *gin.Context) {
	msg, err := h.svc.GetMessage(ctx.Request.Context(), ctx.Param("messageId"))
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, newMessage(msg))
}

func (h *Handler) ListTasks(ctx *gin.Context) {
	tasks, err := h.svc.ListTasks(ctx.Request.Context(), ctx.Param("messageId"))
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, slice.Map(tasks, func(_ int, src domain.ChannelTask) ChannelTask {
		return newChannelTask(src)
	}))
}
