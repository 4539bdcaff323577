package config

import "time"

const DefaultStatsTTL = 10 * time.Minute

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// StatsTTL is how long projected tuit stats stay cached. Defaults to DefaultStatsTTL.
	StatsTTL time.Duration `json:"stats_ttl" yaml:"stats_ttl"`
}
