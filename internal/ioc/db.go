package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/message-center/internal/pkg/retry"
	"gitee.com/flycash/message-center/internal/repository/dao"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	cfg := retry.Config{
		Type: "exponential",
		ExponentialBackoff: &retry.ExponentialBackoffConfig{
			InitialInterval: 1000,
			MaxInterval:     10000,
			MaxRetries:      10,
		},
	}
	if econf.Get("mysql.waitRetry") != nil {
		if err := econf.UnmarshalKey("mysql.waitRetry", &cfg); err != nil {
			panic(err)
		}
	}
	WaitForDBSetup(econf.GetString("mysql.dsn"), cfg)
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 容器刚启动时 MySQL 可能还没有就绪，按配置的策略重试
func WaitForDBSetup(dsn string, retryCfg retry.Config) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	strategy, err := retry.NewRetry(retryCfg)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		time.Sleep(next)
	}
}
