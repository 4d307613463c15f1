package executor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	repomocks "gitee.com/flycash/message-center/internal/repository/mocks"
	"gitee.com/flycash/message-center/internal/service/adapter"
	adaptermocks "gitee.com/flycash/message-center/internal/service/adapter/mocks"
	configmocks "gitee.com/flycash/message-center/internal/service/config/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestExecutorSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExecutorTestSuite))
}

type ExecutorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	configSvc   *configmocks.MockService
	repo        *repomocks.MockChannelTaskRepository
	dingAdapter *adaptermocks.MockAdapter
	pool        *Pool
	executor    *executor
	now         time.Time

	mu    sync.Mutex
	saved []domain.ChannelTask
}

func (s *ExecutorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.configSvc = configmocks.NewMockService(s.ctrl)
	s.repo = repomocks.NewMockChannelTaskRepository(s.ctrl)
	s.dingAdapter = adaptermocks.NewMockAdapter(s.ctrl)
	s.dingAdapter.EXPECT().Type().Return(domain.ChannelDingTalk).AnyTimes()
	p, err := NewPool(2, 10)
	s.Require().NoError(err)
	s.pool = p
	s.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	s.saved = nil

	e := NewExecutor(s.pool, s.configSvc, adapter.NewRegistry(s.dingAdapter), s.repo).(*executor)
	e.now = func() time.Time { return s.now }
	s.executor = e

	s.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, task domain.ChannelTask) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.saved = append(s.saved, task)
			return nil
		}).AnyTimes()
}

func (s *ExecutorTestSuite) TearDownTest() {
	_ = s.pool.Shutdown(context.Background())
	s.ctrl.Finish()
}

func (s *ExecutorTestSuite) savedStatuses(taskID int64) []domain.TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.TaskStatus
	for _, t := range s.saved {
		if t.ID == taskID {
			res = append(res, t.Status)
		}
	}
	return res
}

func (s *ExecutorTestSuite) pendingTask(id int64, channel domain.ChannelType) domain.ChannelTask {
	return domain.NewChannelTask(id, "MSG20250601100000000ABCDEF12", domain.ChannelConfig{
		ID:          100 + id,
		ChannelType: channel,
	}, "您的订单已发货")
}

func (s *ExecutorTestSuite) TestExecute_Success() {
	t := s.T()
	task := s.pendingTask(1, domain.ChannelDingTalk)
	cfg := domain.ChannelConfig{ID: 101, ChannelType: domain.ChannelDingTalk}
	s.configSvc.EXPECT().GetByID(gomock.Any(), int64(101)).Return(cfg, nil)
	s.dingAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), cfg).
		DoAndReturn(func(_ context.Context, task domain.ChannelTask, _ domain.ChannelConfig) (domain.ChannelSendResult, error) {
			// 发送前已经是发送中
			assert.Equal(t, domain.TaskStatusSending, task.Status)
			return domain.ChannelSendResult{Success: true, Message: "ok"}, nil
		})

	res := s.executor.Execute(t.Context(), task)
	assert.Equal(t, domain.TaskStatusSuccess, res.Status)
	assert.Equal(t, "ok", res.ResultMessage)
	assert.Equal(t, s.now.UnixMilli(), res.FinishTime)
	assert.Equal(t, []domain.TaskStatus{domain.TaskStatusSending, domain.TaskStatusSuccess}, s.savedStatuses(1))
}

func (s *ExecutorTestSuite) TestExecute_Failed() {
	testCases := []struct {
		name      string
		task      func() domain.ChannelTask
		mock      func()
		wantState domain.TaskStatus
		wantRetry int
		wantNext  int64
		wantMsg   string
	}{
		{
			name: "渠道返回错误，进入重试",
			task: func() domain.ChannelTask {
				return s.pendingTask(2, domain.ChannelDingTalk)
			},
			mock: func() {
				s.configSvc.EXPECT().GetByID(gomock.Any(), int64(102)).Return(domain.ChannelConfig{ID: 102}, nil)
				err := errs.NewChannelError("DINGTALK", errs.KindSend, "errcode=%d", 310000)
				s.dingAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.ChannelSendResult{Message: err.Error()}, err)
			},
			wantState: domain.TaskStatusRetry,
			wantRetry: 1,
			wantNext:  s.now.Add(2 * time.Minute).UnixMilli(),
			wantMsg:   "DINGTALK_SEND_ERROR: errcode=310000",
		},
		{
			name: "发送结果失败但没有错误",
			task: func() domain.ChannelTask {
				return s.pendingTask(3, domain.ChannelDingTalk)
			},
			mock: func() {
				s.configSvc.EXPECT().GetByID(gomock.Any(), int64(103)).Return(domain.ChannelConfig{ID: 103}, nil)
				s.dingAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.ChannelSendResult{}, nil)
			},
			wantState: domain.TaskStatusRetry,
			wantRetry: 1,
			wantNext:  s.now.Add(2 * time.Minute).UnixMilli(),
			wantMsg:   defaultFailedMessage,
		},
		{
			name: "重试次数用完",
			task: func() domain.ChannelTask {
				task := s.pendingTask(4, domain.ChannelDingTalk)
				task.Status = domain.TaskStatusRetry
				task.RetryCount = domain.DefaultMaxRetry
				return task
			},
			mock: func() {
				s.configSvc.EXPECT().GetByID(gomock.Any(), int64(104)).Return(domain.ChannelConfig{ID: 104}, nil)
				s.dingAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.ChannelSendResult{}, errors.New("mock error"))
			},
			wantState: domain.TaskStatusFailed,
			wantRetry: domain.DefaultMaxRetry,
			wantMsg:   "mock error",
		},
		{
			name: "配置不存在",
			task: func() domain.ChannelTask {
				return s.pendingTask(5, domain.ChannelDingTalk)
			},
			mock: func() {
				s.configSvc.EXPECT().GetByID(gomock.Any(), int64(105)).Return(domain.ChannelConfig{}, errs.ErrConfigNotFound)
			},
			wantState: domain.TaskStatusRetry,
			wantRetry: 1,
			wantNext:  s.now.Add(2 * time.Minute).UnixMilli(),
			wantMsg:   "获取渠道配置失败: " + errs.ErrConfigNotFound.Error(),
		},
		{
			name: "没有对应的适配器",
			task: func() domain.ChannelTask {
				return s.pendingTask(6, domain.ChannelWeChatWork)
			},
			mock: func() {
				s.configSvc.EXPECT().GetByID(gomock.Any(), int64(106)).Return(domain.ChannelConfig{ID: 106}, nil)
			},
			wantState: domain.TaskStatusRetry,
			wantRetry: 1,
			wantNext:  s.now.Add(2 * time.Minute).UnixMilli(),
			wantMsg:   errs.ErrAdapterNotFound.Error() + ": WECHAT_WORK",
		},
		{
			name: "适配器panic",
			task: func() domain.ChannelTask {
				return s.pendingTask(7, domain.ChannelDingTalk)
			},
			mock: func() {
				s.configSvc.EXPECT().GetByID(gomock.Any(), int64(107)).Return(domain.ChannelConfig{ID: 107}, nil)
				s.dingAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, domain.ChannelTask, domain.ChannelConfig) (domain.ChannelSendResult, error) {
						panic("mock panic")
					})
			},
			wantState: domain.TaskStatusRetry,
			wantRetry: 1,
			wantNext:  s.now.Add(2 * time.Minute).UnixMilli(),
			wantMsg:   "渠道发送 panic: mock panic",
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.mock()
			task := tc.task()
			res := s.executor.Execute(s.T().Context(), task)
			assert.Equal(s.T(), tc.wantState, res.Status)
			assert.Equal(s.T(), tc.wantRetry, res.RetryCount)
			assert.Equal(s.T(), tc.wantNext, res.NextRetryTime)
			assert.Equal(s.T(), tc.wantMsg, res.ResultMessage)
			assert.Equal(s.T(), []domain.TaskStatus{domain.TaskStatusSending, tc.wantState}, s.savedStatuses(task.ID))
		})
	}
}

func (s *ExecutorTestSuite) TestExecute_RetryMonotonic() {
	t := s.T()
	s.configSvc.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(domain.ChannelConfig{ID: 108}, nil).AnyTimes()
	s.dingAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ChannelSendResult{}, errors.New("mock error")).AnyTimes()

	task := s.pendingTask(8, domain.ChannelDingTalk)
	var lastNext int64
	for i := 0; i < domain.DefaultMaxRetry; i++ {
		task = s.executor.Execute(t.Context(), task)
		require.Equal(t, domain.TaskStatusRetry, task.Status)
		assert.Equal(t, i+1, task.RetryCount)
		assert.Greater(t, task.NextRetryTime, lastNext)
		assert.LessOrEqual(t, task.RetryCount, task.MaxRetry)
		lastNext = task.NextRetryTime
	}
	task = s.executor.Execute(t.Context(), task)
	assert.Equal(t, domain.TaskStatusFailed, task.Status)
	assert.Equal(t, domain.DefaultMaxRetry, task.RetryCount)
	assert.NotZero(t, task.FinishTime)
}

func (s *ExecutorTestSuite) TestExecute_SkipTerminal() {
	t := s.T()
	for _, status := range []domain.TaskStatus{
		domain.TaskStatusSuccess,
		domain.TaskStatusFailed,
		domain.TaskStatusCancelled,
		domain.TaskStatusSending,
	} {
		task := s.pendingTask(9, domain.ChannelDingTalk)
		task.Status = status
		res := s.executor.Execute(t.Context(), task)
		assert.Equal(t, status, res.Status)
	}
	assert.Empty(t, s.savedStatuses(9))
}

func (s *ExecutorTestSuite) TestSubmit_Isolation() {
	t := s.T()
	s.configSvc.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (domain.ChannelConfig, error) {
			return domain.ChannelConfig{ID: id, ChannelType: domain.ChannelDingTalk}, nil
		}).AnyTimes()
	s.dingAdapter.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task domain.ChannelTask, _ domain.ChannelConfig) (domain.ChannelSendResult, error) {
			if task.ID == 11 {
				panic("mock panic")
			}
			return domain.ChannelSendResult{Success: true}, nil
		}).Times(3)

	ctx, cancel := context.WithCancel(t.Context())
	s.executor.Submit(ctx, []domain.ChannelTask{
		s.pendingTask(10, domain.ChannelDingTalk),
		s.pendingTask(11, domain.ChannelDingTalk),
		s.pendingTask(12, domain.ChannelDingTalk),
	})
	// 请求结束不影响任务执行
	cancel()
	require.NoError(t, s.pool.Shutdown(t.Context()))

	assert.Equal(t, []domain.TaskStatus{domain.TaskStatusSending, domain.TaskStatusSuccess}, s.savedStatuses(10))
	assert.Equal(t, []domain.TaskStatus{domain.TaskStatusSending, domain.TaskStatusRetry}, s.savedStatuses(11))
	assert.Equal(t, []domain.TaskStatus{domain.TaskStatusSending, domain.TaskStatusSuccess}, s.savedStatuses(12))
}
