package domain

// ChannelType 通知渠道
type ChannelType string

const (
	ChannelLocal      ChannelType = "LOCAL"       // 本地消息
	ChannelDingTalk   ChannelType = "DINGTALK"    // 钉钉机器人
	ChannelWeChatWork ChannelType = "WECHAT_WORK" // 企业微信群机器人
)

func (c ChannelType) String() string {
	return string(c)
}

func (c ChannelType) IsValid() bool {
	switch c {
	case ChannelLocal, ChannelDingTalk, ChannelWeChatWork:
		return true
	default:
		return false
	}
}
