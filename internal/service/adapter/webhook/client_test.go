package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendText(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		status   int
		body     string
		wantResp Response
		wantErr  bool
	}{
		{
			name:     "成功",
			status:   http.StatusOK,
			body:     `{"errcode":0,"errmsg":"ok"}`,
			wantResp: Response{ErrCode: 0, ErrMsg: "ok"},
		},
		{
			name:     "业务错误码",
			status:   http.StatusOK,
			body:     `{"errcode":310000,"errmsg":"sign not match"}`,
			wantResp: Response{ErrCode: 310000, ErrMsg: "sign not match"},
		},
		{
			name:    "状态码不是200",
			status:  http.StatusBadGateway,
			body:    "bad gateway",
			wantErr: true,
		},
		{
			name:    "响应无法解析",
			status:  http.StatusOK,
			body:    "<html></html>",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got TextMessage
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				body, _ := io.ReadAll(r.Body)
				assert.NoError(t, json.Unmarshal(body, &got))
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			resp, err := NewClient(server.Client()).SendText(t.Context(), server.URL, "hello")
			assert.Equal(t, TextMessage{MsgType: "text", Text: TextContent{Content: "hello"}}, got)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResp, resp)
			assert.Equal(t, tc.wantResp.ErrCode == 0, resp.OK())
		})
	}
}

func TestClient_SendText_Unreachable(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(nil).SendText(t.Context(), url, "hello")
	assert.Error(t, err)
}
