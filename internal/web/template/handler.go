package template

import (
	"gitee.com/flycash/message-center/internal/domain"
	templatesvc "gitee.com/flycash/message-center/internal/service/template"
	"gitee.com/flycash/message-center/internal/web"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc templatesvc.Service
}

func NewHandler(svc templatesvc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/templates")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(ctx *gin.Context) {
	var req MessageTemplate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		web.InvalidParam(ctx, "请求体不是合法的JSON")
		return
	}
	tmpl := req.toDomain()
	tmpl.ID = 0
	created, err := h.svc.Create(ctx.Request.Context(), tmpl)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, newMessageTemplate(created))
}

func (h *Handler) List(ctx *gin.Context) {
	tenantID, ok := web.QueryInt64(ctx, "tenantId")
	if !ok {
		return
	}
	tmpls, err := h.svc.ListByTenant(ctx.Request.Context(), tenantID)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, slice.Map(tmpls, func(_ int, src domain.MessageTemplate) MessageTemplate {
		return newMessageTemplate(src)
	}))
}

func (h *Handler) Get(ctx *gin.Context) {
	id, ok := web.PathID(ctx)
	if !ok {
		return
	}
	tmpl, err := h.svc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		web.Error(ctx, err)
		return
	}
	web.OK(ctx, newMessageTemplate(tmpl))
}

func (h *Handler) Update(ctx *gin.Context) {
	id, ok := web.PathID(ctx)
	if !ok {
		return
	}
	var req MessageTemplate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		web.InvalidParam(ctx, "请求体不是合法的JSON")
		return
	}
	tmpl := req.toDomain()
	tmpl.ID = id
	if err := h.svc.Update(ctx.Request.Context(), tmpl); err != nil {
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
