package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	SQLite   *SQLite         `json:"sqlite" yaml:"sqlite"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

// Parse decodes a yaml document and fills in defaults for missing sections.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	if conf.App == nil {
		conf.App = &App{}
	}
	if conf.App.RecomputeWorkers <= 0 {
		conf.App.RecomputeWorkers = DefaultRecomputeWorkers
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 4000
	}
	if conf.Redis != nil && conf.Redis.StatsTTL <= 0 {
		conf.Redis.StatsTTL = DefaultStatsTTL
	}
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
