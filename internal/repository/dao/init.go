package dao

import "github.com/ego-component/egorm"

// InitTables 建表，只在启动和测试的时候调用
func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Message{},
		&ChannelTask{},
		&ChannelConfig{},
		&MessageTemplate{},
	)
}
