package web

import (
	"errors"
	"net/http"
	"strconv"

	"gitee.com/flycash/message-center/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 响应体中的业务码，HTTP 状态码统一是 200
const (
	CodeOK           = 0
	CodeInvalidParam = 400
	CodeNotFound     = 404
	CodeSystem       = 500
)

// Result 统一的响应体
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func OK(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, Result{Code: CodeOK, Msg: "OK", Data: data})
}

func InvalidParam(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusOK, Result{Code: CodeInvalidParam, Msg: msg})
}

// Error 按错误类型转换成业务码，系统错误不把细节暴露给调用方
func Error(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		ctx.JSON(http.StatusOK, Result{Code: CodeInvalidParam, Msg: err.Error()})
	case errors.Is(err, errs.ErrMessageNotFound),
		errors.Is(err, errs.ErrConfigNotFound),
		errors.Is(err, errs.ErrTemplateNotFound):
		ctx.JSON(http.StatusOK, Result{Code: CodeNotFound, Msg: err.Error()})
	default:
		elog.DefaultLogger.Error("请求处理失败",
			elog.String("path", ctx.FullPath()),
			elog.FieldErr(err))
		ctx.JSON(http.StatusOK, Result{Code: CodeSystem, Msg: "系统错误"})
	}
}

// PathID 读取路径中的数字 ID
func PathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		InvalidParam(ctx, "id 不合法")
		return 0, false
	}
	return id, true
}

// QueryInt64 读取可选的数字查询参数，没有传时返回 0
func QueryInt64(ctx *gin.Context, key string) (int64, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return 0, true
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		InvalidParam(ctx, key+" 不合法")
		return 0, false
	}
	return val, true
}
