// Package webhook 群机器人类渠道共用的 webhook 客户端
// 钉钉和企业微信的文本消息格式、返回格式是一样的
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const msgTypeText = "text"

type TextMessage struct {
	MsgType string      `json:"msgtype"`
	Text    TextContent `json:"text"`
}

type TextContent struct {
	Content string `json:"content"`
}

// Response 机器人接口的返回，ErrCode 为 0 表示成功
type Response struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func (r Response) OK() bool {
	return r.ErrCode == 0
}

type Client struct {
	client *http.Client
}

func NewClient(client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{client: client}
}

// SendText 发送文本消息
// 网络错误、非 200 状态码、无法解析的响应都会返回 error，业务错误码由调用方通过 Response 判断
func (c *Client) SendText(ctx context.Context, url, content string) (Response, error) {
	payload, err := json.Marshal(TextMessage{
		MsgType: msgTypeText,
		Text:    TextContent{Content: content},
	})
	if err != nil {
		return Response{}, fmt.Errorf("序列化消息失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("请求 webhook 失败: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("读取响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("webhook 返回状态码 %d: %s", resp.StatusCode, string(body))
	}

	var res Response
	if err = json.Unmarshal(body, &res); err != nil {
		return Response{}, fmt.Errorf("解析响应失败: %w", err)
	}
	return res, nil
}
