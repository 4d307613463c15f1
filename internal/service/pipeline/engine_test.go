package pipeline

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	"github.com/stretchr/testify/assert"
)

type fakeHandler struct {
	name      string
	order     int
	supported bool
	result    Result
	err       error
	panicVal  any
	called    *[]string
}

func (f *fakeHandler) Name() string {
	return f.name
}

func (f *fakeHandler) Order() int {
	return f.order
}

func (f *fakeHandler) Supports(_ *MessageContext) bool {
	return f.supported
}

func (f *fakeHandler) Handle(_ context.Context, _ *MessageContext) (Result, error) {
	*f.called = append(*f.called, f.name)
	if f.panicVal != nil {
		panic(f.panicVal)
	}
	return f.result, f.err
}

func TestEngine_Execute(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		handlers    func(called *[]string) []Handler
		wantCalled  []string
		wantSuccess bool
		wantCode    errs.Code
		wantStatus  Status
		wantResults []string
	}{
		{
			name: "按顺序执行并跳过不支持的处理器",
			handlers: func(called *[]string) []Handler {
				return []Handler{
					&fakeHandler{name: "c", order: 300, supported: true, result: Next(), called: called},
					&fakeHandler{name: "a", order: 100, supported: true, result: Next(), called: called},
					&fakeHandler{name: "b", order: 200, supported: false, result: Next(), called: called},
				}
			},
			wantCalled:  []string{"a", "c"},
			wantSuccess: true,
			wantStatus:  StatusSuccess,
			wantResults: []string{"a", "c"},
		},
		{
			name: "失败时终止",
			handlers: func(called *[]string) []Handler {
				return []Handler{
					&fakeHandler{name: "a", order: 100, supported: true, result: Next(), called: called},
					&fakeHandler{name: "b", order: 200, supported: true, result: Fail(errs.CodeNoChannel, "no channel"), called: called},
					&fakeHandler{name: "c", order: 300, supported: true, result: Next(), called: called},
				}
			},
			wantCalled:  []string{"a", "b"},
			wantCode:    errs.CodeNoChannel,
			wantStatus:  StatusFailed,
			wantResults: []string{"a", "b"},
		},
		{
			name: "成功但不继续也会终止",
			handlers: func(called *[]string) []Handler {
				return []Handler{
					&fakeHandler{name: "a", order: 100, supported: true, result: Result{Success: true}, called: called},
					&fakeHandler{name: "b", order: 200, supported: true, result: Next(), called: called},
				}
			},
			wantCalled:  []string{"a"},
			wantStatus:  StatusFailed,
			wantResults: []string{"a"},
		},
		{
			name: "返回error转换成系统错误",
			handlers: func(called *[]string) []Handler {
				return []Handler{
					&fakeHandler{name: "a", order: 100, supported: true, err: errors.New("mock db error"), called: called},
					&fakeHandler{name: "b", order: 200, supported: true, result: Next(), called: called},
				}
			},
			wantCalled:  []string{"a"},
			wantCode:    errs.CodeSystem,
			wantStatus:  StatusFailed,
			wantResults: []string{"a"},
		},
		{
			name: "panic转换成系统错误",
			handlers: func(called *[]string) []Handler {
				return []Handler{
					&fakeHandler{name: "a", order: 100, supported: true, panicVal: "boom", called: called},
					&fakeHandler{name: "b", order: 200, supported: true, result: Next(), called: called},
				}
			},
			wantCalled:  []string{"a"},
			wantCode:    errs.CodeSystem,
			wantStatus:  StatusFailed,
			wantResults: []string{"a"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var called []string
			engine := NewEngine(tc.handlers(&called)...)
			mctx := NewMessageContext("MSG1", domain.SendRequest{TenantID: 1001})

			res := engine.Execute(t.Context(), mctx)
			assert.Equal(t, tc.wantCalled, called)
			assert.Equal(t, tc.wantSuccess, res.Success)
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantStatus, mctx.Status)
			assert.Equal(t, tc.wantCode, mctx.ErrorCode)
			assert.LessOrEqual(t, res.StartTime, res.EndTime)
			names := make([]string, 0, len(res.HandlerResults))
			for name := range res.HandlerResults {
				names = append(names, name)
			}
			assert.ElementsMatch(t, tc.wantResults, names)
		})
	}
}

func TestEngine_ExecuteErrorMessage(t *testing.T) {
	t.Parallel()
	var called []string
	engine := NewEngine(&fakeHandler{name: "a", order: 100, supported: true, panicVal: "boom", called: &called})
	res := engine.Execute(t.Context(), NewMessageContext("MSG1", domain.SendRequest{}))
	assert.Equal(t, "处理器[a]执行异常: panic: boom", res.ErrorMessage)
}

func TestMessageContext_Attribute(t *testing.T) {
	t.Parallel()
	mctx := &MessageContext{}
	_, ok := mctx.Attribute("k")
	assert.False(t, ok)
	mctx.SetAttribute("k", 1)
	val, ok := mctx.Attribute("k")
	assert.True(t, ok)
	assert.Equal(t, 1, val)
}
