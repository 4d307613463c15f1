package message

import (
	"gitee.com/flycash/message-center/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type SendReq struct {
	TenantID       int64    `json:"tenantId"`
	StoreID        int64    `json:"storeId"`
	BusinessType   string   `json:"businessType"`
	BusinessData   string   `json:"businessData"`
	TargetChannels []string `json:"targetChannels"`
}

func (r SendReq) toDomain() domain.SendRequest {
	return domain.SendRequest{
		TenantID:     r.TenantID,
		StoreID:      r.StoreID,
		BusinessType: r.BusinessType,
		BusinessData: r.BusinessData,
		TargetChannels: slice.Map(r.TargetChannels, func(_ int, src string) domain.ChannelType {
			return domain.ChannelType(src)
		}),
	}
}

type BatchSendReq struct {
	Messages []SendReq `json:"messages"`
}

type Message struct {
	MessageID       string   `json:"messageId"`
	TenantID        int64    `json:"tenantId"`
	StoreID         int64    `json:"storeId"`
	BusinessType    string   `json:"businessType"`
	BusinessData    string   `json:"businessData"`
	TargetChannels  []string `json:"targetChannels"`
	Status          string   `json:"status"`
	TotalChannels   int      `json:"totalChannels"`
	SuccessChannels int      `json:"successChannels"`
	FailedChannels  int      `json:"failedChannels"`
	Ctime           int64    `json:"ctime"`
	Utime           int64    `json:"utime"`
	FinishTime      int64    `json:"finishTime"`
}

func newMessage(msg domain.Message) Message {
	return Message{
		MessageID:    msg.MessageID,
		TenantID:     msg.TenantID,
		StoreID:      msg.StoreID,
		BusinessType: msg.BusinessType,
		BusinessData: msg.BusinessData,
		TargetChannels: slice.Map(msg.TargetChannels, func(_ int, src domain.ChannelType) string {
			return src.String()
		}),
		Status:          msg.Status.String(),
		TotalChannels:   msg.TotalChannels,
		SuccessChannels: msg.SuccessChannels,
		FailedChannels:  msg.FailedChannels,
		Ctime:           msg.Ctime,
		Utime:           msg.Utime,
		FinishTime:      msg.FinishTime,
	}
}

type ChannelTask struct {
	ID              int64  `json:"id"`
	MessageID       string `json:"messageId"`
	ChannelType     string `json:"channelType"`
	ChannelConfigID int64  `json:"channelConfigId"`
	RenderedContent string `json:"renderedContent"`
	Status          string `json:"status"`
	RetryCount      int    `json:"retryCount"`
	MaxRetry        int    `json:"maxRetry"`
	NextRetryTime   int64  `json:"nextRetryTime"`
	ResultMessage   string `json:"resultMessage"`
	Ctime           int64  `json:"ctime"`
	Utime           int64  `json:"utime"`
	FinishTime      int64  `json:"finishTime"`
}

func newChannelTask(task domain.ChannelTask) ChannelTask {
	return ChannelTask{
		ID:              task.ID,
		MessageID:       task.MessageID,
		ChannelType:     task.ChannelType.String(),
		ChannelConfigID: task.ChannelConfigID,
		RenderedContent: task.RenderedContent,
		Status:          task.Status.String(),
		RetryCount:      task.RetryCount,
		MaxRetry:        task.MaxRetry,
		NextRetryTime:   task.NextRetryTime,
		ResultMessage:   task.ResultMessage,
		Ctime:           task.Ctime,
		Utime:           task.Utime,
		FinishTime:      task.FinishTime,
	}
}
