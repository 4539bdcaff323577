package config

type RocketMQConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`

	// RepairTopic carries counter recompute requests for tuits whose stats may be stale.
	RepairTopic string `yaml:"repair_topic"`

	Consumer Consumer `yaml:"consumer"`
}

type Consumer struct {
	Group string `yaml:"group"`
	// BatchSize is the max number of messages pulled per receive call.
	BatchSize int32 `yaml:"batch_size"`
}

// Enabled reports whether a repair queue is configured.
func (c *RocketMQConfig) Enabled() bool {
	return c != nil && c.Endpoint != "" && c.RepairTopic != ""
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
