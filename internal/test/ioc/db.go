package ioc

import (
	"sync"

	prodioc "gitee.com/flycash/message-center/internal/ioc"
	"gitee.com/flycash/message-center/internal/pkg/retry"
	"gitee.com/flycash/message-center/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

const dsn = "root:root@tcp(localhost:13316)/message_center?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=True&loc=Local&timeout=1s&readTimeout=3s&writeTimeout=3s&multiStatements=true"

var (
	db         *egorm.Component
	dbInitOnce sync.Once
)

func InitDBAndTables() *egorm.Component {
	dbInitOnce.Do(func() {
		prodioc.WaitForDBSetup(dsn, retry.Config{
			Type: "exponential",
			ExponentialBackoff: &retry.ExponentialBackoffConfig{
				InitialInterval: 1000,
				MaxInterval:     10000,
				MaxRetries:      10,
			},
		})
		econf.Set("mysql", map[string]any{
			"dsn":   dsn,
			"debug": true,
		})
		db = egorm.Load("mysql").Build()
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
	})
	return db
}
