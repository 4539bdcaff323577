package rocketmq

import (
	"Tuiter/config"
	"Tuiter/pkg/log"
	"context"
	"strconv"
	"time"

	rmq_client "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/apache/rocketmq-clients/golang/v5/credentials"
	"go.uber.org/zap"
)

// RepairProducer 把计数修复请求投递到 RepairTopic
type RepairProducer struct {
	producer rmq_client.Producer
	topic    string
}

func NewRepairProducer(cfg *config.RocketMQConfig) (*RepairProducer, error) {
	p, err := rmq_client.NewProducer(&rmq_client.Config{
		Endpoint: cfg.Endpoint,
		Credentials: &credentials.SessionCredentials{
			AccessKey:    cfg.AccessKey,
			AccessSecret: cfg.SecretKey,
		},
	}, rmq_client.WithTopics(cfg.RepairTopic))
	if err != nil {
		return nil, err
	}
	if err := p.Start(); err != nil {
		return nil, err
	}
	log.L.Info("init repair producer success", zap.String("topic", cfg.RepairTopic))
	return &RepairProducer{producer: p, topic: cfg.RepairTopic}, nil
}

func (p *RepairProducer) PublishRepair(ctx context.Context, tuitID int64, reason string) error {
	msg := &RepairMessage{TuitID: tuitID, Reason: reason, At: time.Now().UnixMilli()}
	body, err := msg.Encode()
	if err != nil {
		return err
	}

	m := &rmq_client.Message{
		Topic: p.topic,
		Body:  body,
	}
	m.SetKeys(strconv.FormatInt(tuitID, 10))
	m.SetTag(repairTag)

	_, err = p.producer.Send(ctx, m)
	countRepair("publish", err)
	if err != nil {
		return err
	}
	log.L.Info("publish counter repair", zap.Int64("tuit_id", tuitID))
	return nil
}

func (p *RepairProducer) Close() error {
	return p.producer.GracefulStop()
}
