package config

const DefaultRecomputeWorkers = 8

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// NodeID is the snowflake node of this process; instances sharing a database need distinct ids.
	NodeID int64 `json:"node_id" yaml:"node_id"`
	// RecomputeWorkers bounds the goroutines recomputing tuit counters during an account cascade.
	RecomputeWorkers int `json:"recompute_workers" yaml:"recompute_workers"`
}

func ProvideAppConfig(cfg *Config) *App {
	return cfg.App
}
