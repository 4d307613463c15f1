package ioc

import (
	configweb "gitee.com/flycash/message-center/internal/web/config"
	messageweb "gitee.com/flycash/message-center/internal/web/message"
	templateweb "gitee.com/flycash/message-center/internal/web/template"
	"github.com/gotomicro/ego/server/egin"
)

func InitWeb(
	messageHdl *messageweb.Handler,
	configHdl *configweb.Handler,
	templateHdl *templateweb.Handler,
) *egin.Component {
	server := egin.Load("server.http").Build()
	messageHdl.PublicRoutes(server.Engine)
	configHdl.PublicRoutes(server.Engine)
	templateHdl.PublicRoutes(server.Engine)
	return server
}
