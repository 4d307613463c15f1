package message

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gitee.com/flycash/message-center/internal/domain"
	"gitee.com/flycash/message-center/internal/errs"
	repomocks "gitee.com/flycash/message-center/internal/repository/mocks"
	messagemocks "gitee.com/flycash/message-center/internal/service/message/mocks"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompletionTask_OneLoop(t *testing.T) {
	t.Parallel()

	msgs := func(ids ...int64) []domain.Message {
		res := make([]domain.Message, 0, len(ids))
		for _, id := range ids {
			res = append(res, domain.Message{ID: id, MessageID: fmt.Sprintf("MSG%d", id)})
		}
		return res
	}

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (*messagemocks.MockService, *repomocks.MockMessageRepository)

		wantErr  error
		wantErrs int
	}{
		{
			name: "按主键翻页直到最后一页",
			mock: func(ctrl *gomock.Controller) (*messagemocks.MockService, *repomocks.MockMessageRepository) {
				svc := messagemocks.NewMockService(ctrl)
				repo := repomocks.NewMockMessageRepository(ctrl)
				repo.EXPECT().FindProcessing(gomock.Any(), int64(0), 2).Return(msgs(1, 2), nil)
				repo.EXPECT().FindProcessing(gomock.Any(), int64(2), 2).Return(msgs(5), nil)
				svc.EXPECT().CompleteMessage(gomock.Any(), "MSG1").
					Return(domain.Message{MessageID: "MSG1", Status: domain.MessageStatusSuccess}, nil)
				svc.EXPECT().CompleteMessage(gomock.Any(), "MSG2").
					Return(domain.Message{MessageID: "MSG2", Status: domain.MessageStatusPartialSuccess}, nil)
				svc.EXPECT().CompleteMessage(gomock.Any(), "MSG5").
					Return(domain.Message{MessageID: "MSG5", Status: domain.MessageStatusFailed}, nil)
				return svc, repo
			},
		},
		{
			name: "未结束的消息跳过",
			mock: func(ctrl *gomock.Controller) (*messagemocks.MockService, *repomocks.MockMessageRepository) {
				svc := messagemocks.NewMockService(ctrl)
				repo := repomocks.NewMockMessageRepository(ctrl)
				repo.EXPECT().FindProcessing(gomock.Any(), int64(0), 2).Return(msgs(1), nil)
				svc.EXPECT().CompleteMessage(gomock.Any(), "MSG1").
					Return(domain.Message{}, fmt.Errorf("%w: MSG1", errs.ErrMessageNotFinished))
				return svc, repo
			},
		},
		{
			name: "单条失败不影响其他消息",
			mock: func(ctrl *gomock.Controller) (*messagemocks.MockService, *repomocks.MockMessageRepository) {
				svc := messagemocks.NewMockService(ctrl)
				repo := repomocks.NewMockMessageRepository(ctrl)
				repo.EXPECT().FindProcessing(gomock.Any(), int64(0), 2).Return(msgs(1, 2), nil)
				repo.EXPECT().FindProcessing(gomock.Any(), int64(2), 2).Return(nil, nil)
				svc.EXPECT().CompleteMessage(gomock.Any(), "MSG1").Return(domain.Message{}, errors.New("mock db error"))
				svc.EXPECT().CompleteMessage(gomock.Any(), "MSG2").Return(domain.Message{}, errors.New("mock db error"))
				return svc, repo
			},
			wantErrs: 2,
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) (*messagemocks.MockService, *repomocks.MockMessageRepository) {
				svc := messagemocks.NewMockService(ctrl)
				repo := repomocks.NewMockMessageRepository(ctrl)
				repo.EXPECT().FindProcessing(gomock.Any(), int64(0), 2).Return(nil, errs.ErrInvalidParameter)
				return svc, repo
			},
			wantErr:  errs.ErrInvalidParameter,
			wantErrs: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo := tc.mock(ctrl)
			task := NewCompletionTask(nil, svc, repo, 2, time.Second)
			err := task.OneLoop(t.Context())
			if tc.wantErrs == 0 {
				require.NoError(t, err)
				return
			}
			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			assert.Len(t, merr.Errors, tc.wantErrs)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
