package database

import (
	"Tuiter/config"
	"Tuiter/models"
	"Tuiter/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接。配置了 sqlite 时用本地文件，否则连 MySQL
func NewDB(conf *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	if conf.SQLite != nil && conf.SQLite.Path != "" {
		db, err = OpenSQLite(conf.SQLite.Path, conf.Debug())
	} else {
		db, err = Open(mysql.Open(conf.MySQL.Dsn()), conf.Debug())
	}
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Open 打开任意 gorm 方言的连接。TranslateError 让唯一键冲突以 gorm.ErrDuplicatedKey 返回
func Open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
}

// OpenSQLite SQLite 只允许单连接写入，连接池限制为 1。外键约束需要按连接打开
func OpenSQLite(dsn string, debug bool) (*gorm.DB, error) {
	db, err := Open(sqlite.Open(dsn), debug)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate 建表以及唯一索引、外键。关系表引用 users/tuits，删除时级联
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tuit{},
		&models.Like{},
		&models.Dislike{},
		&models.Follow{},
		&models.Bookmark{},
	)
}
