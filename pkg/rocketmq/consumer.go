package rocketmq

import (
	"Tuiter/config"
	"Tuiter/pkg/log"
	"context"
	"time"

	rmq_client "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/apache/rocketmq-clients/golang/v5/credentials"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// receive 最长等待时间
	awaitDuration = time.Second * 5
	// invisibleDuration 应大于 20s
	invisibleDuration = time.Second * 20
	// receive 并发数
	receiveConcurrency = 4
	// receive 出错后的退避区间
	minReceiveBackoff = 100 * time.Millisecond
	maxReceiveBackoff = 2 * time.Second
)

const defaultBatchSize int32 = 16

// RepairHandler 处理一条修复请求；返回错误时消息不会 Ack，到期后重投
type RepairHandler func(ctx context.Context, msg *RepairMessage) error

// receiver SimpleConsumer 中消费循环用到的部分
type receiver interface {
	Receive(ctx context.Context, maxMessageNum int32, invisibleDuration time.Duration) ([]*rmq_client.MessageView, error)
	Ack(ctx context.Context, messageView *rmq_client.MessageView) error
}

type RepairConsumer struct {
	consumer  rmq_client.SimpleConsumer
	handle    RepairHandler
	batchSize int32
}

func NewRepairConsumer(cfg *config.RocketMQConfig, handle RepairHandler) (*RepairConsumer, error) {
	c, err := rmq_client.NewSimpleConsumer(&rmq_client.Config{
		Endpoint:      cfg.Endpoint,
		ConsumerGroup: cfg.Consumer.Group,
		Credentials: &credentials.SessionCredentials{
			AccessKey:    cfg.AccessKey,
			AccessSecret: cfg.SecretKey,
		},
	},
		rmq_client.WithSimpleAwaitDuration(awaitDuration),
		rmq_client.WithSimpleSubscriptionExpressions(map[string]*rmq_client.FilterExpression{
			cfg.RepairTopic: rmq_client.NewFilterExpression(repairTag),
		}),
	)
	if err != nil {
		return nil, err
	}

	batch := cfg.Consumer.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	return &RepairConsumer{consumer: c, handle: handle, batchSize: batch}, nil
}

// Start 启动消费协程，ctx 取消后优雅退出
func (c *RepairConsumer) Start(ctx context.Context, eg *errgroup.Group) error {
	if err := c.consumer.Start(); err != nil {
		return err
	}

	eg.Go(func() error {
		<-ctx.Done()
		log.L.Info("stopping repair consumer")
		return c.consumer.GracefulStop()
	})

	for i := 0; i < receiveConcurrency; i++ {
		eg.Go(func() error {
			c.receive(ctx, c.consumer)
			return nil
		})
	}
	log.L.Info("repair consumer started")
	return nil
}

// receive 循环拉取直到 ctx 取消。broker 不可用时 Receive 会立即失败，按指数退避等待
func (c *RepairConsumer) receive(ctx context.Context, r receiver) {
	backoff := minReceiveBackoff
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		mvs, err := r.Receive(ctx, c.batchSize, invisibleDuration)
		if err != nil {
			// 无消息时同样返回错误
			log.L.Debug("receive repair messages", zap.Error(err), zap.Duration("backoff", backoff))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxReceiveBackoff)
			continue
		}
		backoff = minReceiveBackoff

		for _, mv := range mvs {
			if mv == nil {
				continue
			}
			if err := c.process(ctx, mv.GetBody()); err != nil {
				continue
			}
			if err := r.Ack(ctx, mv); err != nil {
				log.L.Error("ack repair message", zap.String("msg_id", mv.GetMessageId()), zap.Error(err))
			}
		}
	}
}

func (c *RepairConsumer) process(ctx context.Context, body []byte) error {
	msg, err := DecodeRepair(body)
	if err != nil {
		// 格式错误的消息重投也无法处理，直接 Ack
		log.L.Error("drop repair message", zap.ByteString("body", body), zap.Error(err))
		return nil
	}
	err = c.handle(ctx, msg)
	countRepair("consume", err)
	if err != nil {
		log.L.Warn("repair tuit counters", zap.Int64("tuit_id", msg.TuitID), zap.Error(err))
		return err
	}
	return nil
}
