package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/sony/sonyflake"
)

const messageIDPrefix = "MSG"

// MessageIDGenerator 生成对外暴露的消息ID
// 格式：MSG + yyyyMMddHHmmssSSS + 8位大写十六进制随机串
type MessageIDGenerator struct {
	now func() time.Time
}

func NewMessageIDGenerator() *MessageIDGenerator {
	return &MessageIDGenerator{now: time.Now}
}

func (g *MessageIDGenerator) Generate() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	now := g.now()
	suffix := strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")[:8])
	return fmt.Sprintf("%s%s%03d%s", messageIDPrefix,
		now.Format("20060102150405"), now.Nanosecond()/int(time.Millisecond), suffix), nil
}

// NewTaskIDGenerator 渠道任务和落库记录使用的数字ID
func NewTaskIDGenerator(machineID uint16) *sonyflake.Sonyflake {
	return sonyflake.NewSonyflake(sonyflake.Settings{
		// 基准时间 - 2024年1月1日
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) {
			return machineID, nil
		},
	})
}
