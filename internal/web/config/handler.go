package config

import (
	"gitee.com/flycash/message-center/internal/domain"
	configsvc "gitee.com/flycash/message-center/internal/service/config"
	"gitee.com/flycash/message-center/internal/web"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

// Handler 渠道配置的管理接口
type Handler struct {
	svc configsvc.Service
}

func NewHandler(svc configsvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/channel-configs")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req ChannelConfig
	if err := ctx.ShouldBindJSON(&req); err != nil {
		web.InvalidParam(ctx, "请求体不是合法的JSON")
		return
	}
	cfg := req.toDomain()
	cfg.ID = 0
	created, err := h.svc.Create(ctx.Request.Context(), cfg)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, newChannelConfig(created))
}

func (h *Handler) List(ctx *gin.Context) {
	tenantID, ok := web.QueryInt64(ctx, "tenantId")
	if !ok {
		return
	}
	configs, err := h.svc.ListByTenant(ctx.Request.Context(), tenantID)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, slice.Map(configs, func(_ int, src domain.ChannelConfig) ChannelConfig {
		return newChannelConfig(src)
	}))
}

func (h *Handler) Get(ctx *gin.Context) {
	id, ok := web.PathID(ctx)
	if !ok {
		return
	}
	cfg, err := h.svc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, newChannelConfig(cfg))
}

func (h *Handler) Update(ctx *gin.Context) {
	id, ok := web.PathID(ctx)
	if !ok {
		return
	}
	var req ChannelConfig
	if err := ctx.ShouldBindJSON(&req); err != nil {
		web.InvalidParam(ctx, "请求体不是合法的JSON")
		return
	}
	cfg := req.toDomain()
	cfg.ID = id
	if err := h.svc.Update(ctx.Request.Context(), cfg); err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, nil)
}

func (h *Handler) Delete(ctx *gin.Context) {
	id, ok := web.PathID(ctx)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, nil)
}
