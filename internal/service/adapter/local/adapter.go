// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package local

import (
	"context"

	"gitee.com/flycash/message-center/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// 本地渠道，只把消息输出到日志里，一般用于站内信落库前的调试

const resultMessage = "本地消息发送成功"

type Adapter struct {
	logger *elog.Component
}

func NewAdapter() *Adapter {
	return &Adapter{
		logger: elog.DefaultLogger,
	}
}

func (a *Adapter) Type() domain.ChannelType {
	return domain.ChannelLocal
}

func (a *Adapter) Send(_ context.Context, task domain.ChannelTask, cfg domain.ChannelConfig) (domain.ChannelSendResult, error) {
	a.logger.Info("发送本地消息",
		elog.String("messageId", task.MessageID),
		elog.Int64("taskId", task.ID),
		elog.Int64("configId", cfg.ID),
		elog.String("content", task.RenderedContent))
	return domain.ChannelSendResult{Success: true, Message: resultMessage}, nil
}
