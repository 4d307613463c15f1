package ioc

import (
	id "gitee.com/flycash/message-center/internal/pkg/id_generator"
	"gitee.com/flycash/message-center/internal/service/message"
	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitMessageIDGenerator() message.IDGenerator {
	return id.NewMessageIDGenerator()
}

// InitTaskIDGenerator 多实例部署时每个实例的 app.machineId 必须不同
func InitTaskIDGenerator() *sonyflake.Sonyflake {
	machineID := econf.GetInt("app.machineId")
	g := id.NewTaskIDGenerator(uint16(machineID))
	if g == nil {
		panic("初始化渠道任务ID生成器失败")
	}
	return g
}
