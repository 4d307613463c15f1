package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJSON(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		content string
		data    string
		want    string
		wantErr bool
	}{
		{
			name:    "订单通知",
			content: "您有一笔新订单：${orderId}，客户：${customerName}，金额：${amount}元",
			data:    `{"orderId":"ORD123456","customerName":"张三","amount":199.0}`,
			want:    "您有一笔新订单：ORD123456，客户：张三，金额：199.0元",
		},
		{
			name:    "缺失的变量保持原样",
			content: "订单 ${orderId} 由 ${operator} 处理",
			data:    `{"orderId":"A1"}`,
			want:    "订单 A1 由 ${operator} 处理",
		},
		{
			name:    "布尔、null和嵌套对象",
			content: "${paid}|${remark}|${items}",
			data:    `{"paid":true,"remark":null,"items":[{"sku":"<a>"}]}`,
			want:    `true|null|[{"sku":"<a>"}]`,
		},
		{
			name:    "同一个变量出现多次",
			content: "${n}-${n}",
			data:    `{"n":10}`,
			want:    "10-10",
		},
		{
			name:    "没有占位符",
			content: "纯文本",
			data:    `{"n":10}`,
			want:    "纯文本",
		},
		{
			name:    "非法JSON",
			content: "${n}",
			data:    `not json`,
			wantErr: true,
		},
		{
			name:    "JSON数组",
			content: "${n}",
			data:    `[1,2]`,
			wantErr: true,
		},
		{
			name:    "JSON null",
			content: "${n}",
			data:    `null`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := RenderJSON(tc.content, tc.data)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
