package config

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type MySQL struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
	// Timeout is applied to dial, read and write on the driver connection.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

func (m *MySQL) Dsn() string {
	cfg := mysql.NewConfig()
	cfg.User = m.Username
	cfg.Passwd = m.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", m.Host, m.Port)
	cfg.DBName = m.Database
	cfg.ParseTime = true
	cfg.Loc = time.Local
	charset := m.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	cfg.Params = map[string]string{"charset": charset}
	if m.Timeout > 0 {
		cfg.Timeout = m.Timeout
		cfg.ReadTimeout = m.Timeout
		cfg.WriteTimeout = m.Timeout
	}
	return cfg.FormatDSN()
}

// SQLite 本地开发用，Path 非空时替代 MySQL
type SQLite struct {
	Path string `json:"path" yaml:"path"`
}
