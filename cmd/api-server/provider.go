package main

import (
	"Tuiter/config"
	"Tuiter/pkg/log"
	"Tuiter/pkg/rocketmq"
	"Tuiter/service"

	"go.uber.org/zap"
)

// ProvideRepairPublisher 未配置 RocketMQ 时计数修复只记录日志
func ProvideRepairPublisher(cfg *config.RocketMQConfig) (service.RepairPublisher, func(), error) {
	if !cfg.Enabled() {
		log.L.Info("rocketmq not configured, counter repair queue disabled")
		return nil, func() {}, nil
	}
	p, err := rocketmq.NewRepairProducer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return p, func() {
		if err := p.Close(); err != nil {
			log.L.Warn("stop repair producer", zap.Error(err))
		}
	}, nil
}
