package dao

import (
	"database/sql"
	"testing"

	"gitee.com/flycash/message-center/internal/errs"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelConfigDAO_FindByStore(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	// 停用的配置也要查出来，门店级的停用配置要能覆盖租户级配置
	rows := sqlmock.NewRows([]string{"id", "tenant_id", "store_id", "channel_type", "enabled", "start_hour", "config"}).
		AddRow(2, 1001, 2001, "DINGTALK", true, 9, `{"webhook":"http://x"}`).
		AddRow(3, 1001, 2001, "WECHAT_WORK", false, nil, nil)
	mock.ExpectQuery("SELECT \\* FROM `msg_channel_config` WHERE tenant_id = \\? AND store_id = \\? ORDER BY priority ASC, id ASC").
		WillReturnRows(rows)

	res, err := NewChannelConfigDAO(db).FindByStore(t.Context(), 1001, 2001)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, sql.NullInt32{Int32: 9, Valid: true}, res[0].StartHour)
	assert.Equal(t, `{"webhook":"http://x"}`, res[0].Config.String)
	assert.False(t, res[1].Enabled)
	assert.False(t, res[1].StartHour.Valid)
}

func TestChannelConfigDAO_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `msg_channel_config` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewChannelConfigDAO(db).GetByID(t.Context(), 404)
	assert.ErrorIs(t, err, errs.ErrConfigNotFound)
}

func TestChannelConfigDAO_Update(t *testing.T) {
	t.Parallel()

	t.Run("更新成功", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE `msg_channel_config` SET .*`enabled`=\\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		err := NewChannelConfigDAO(db).Update(t.Context(), ChannelConfig{ID: 1, TenantID: 1001, Enabled: false})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("记录不存在", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE `msg_channel_config`").WillReturnResult(sqlmock.NewResult(0, 0))
		err := NewChannelConfigDAO(db).Update(t.Context(), ChannelConfig{ID: 404})
		assert.ErrorIs(t, err, errs.ErrConfigNotFound)
	})
}

func TestChannelConfigDAO_Delete(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM `msg_channel_config` WHERE id = \\?").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, NewChannelConfigDAO(db).Delete(t.Context(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
