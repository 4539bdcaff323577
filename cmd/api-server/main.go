package main

import (
	"Tuiter/config"
	"Tuiter/pkg/database"
	"Tuiter/pkg/log"
	"Tuiter/pkg/rocketmq"
	"Tuiter/pkg/server"
	"Tuiter/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env 只在本地开发时存在
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	if p := os.Getenv("APP_CONFIG"); p != "" {
		path = p
	}
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		log.L.Fatal("invalid snowflake node", zap.Int64("node_id", cfg.App.NodeID), zap.Error(err))
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "tuiter relationship service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "repair-worker", Usage: "also consume counter repair messages"},
				},
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					var jobs []server.Background
					if ctx.Bool("repair-worker") {
						job, stop, err := repairJob(cfg)
						if err != nil {
							return err
						}
						defer stop()
						jobs = append(jobs, job)
					}
					return server.Run(ctx, appProvider, jobs...)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and unique indexes",
				Action: func(ctx *cli.Context) error {
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
			{
				Name:  "recount",
				Usage: "recompute like/dislike counters of every tuit",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "batch", Value: 500, Usage: "tuits per batch"},
				},
				Action: func(ctx *cli.Context) error {
					counter, cleanup, err := InitCounter(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					n, err := counter.RecomputeAll(ctx.Context, ctx.Int("batch"))
					if err != nil {
						return err
					}
					log.L.Info("recount finished", zap.Int("tuits", n))
					return nil
				},
			},
			{
				Name:  "repair-worker",
				Usage: "consume counter repair messages",
				Action: func(ctx *cli.Context) error {
					job, stop, err := repairJob(cfg)
					if err != nil {
						return err
					}
					defer stop()

					sigCtx, cancel := signal.NotifyContext(ctx.Context, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
					defer cancel()

					eg, egCtx := errgroup.WithContext(sigCtx)
					if err := job(egCtx, eg); err != nil {
						return err
					}
					if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
						return err
					}
					log.L.Info("repair worker stopped")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

// repairJob 计数修复消费者
func repairJob(cfg *config.Config) (server.Background, func(), error) {
	if !cfg.RocketMQ.Enabled() {
		return nil, nil, errors.New("rocketmq is not configured")
	}
	counter, cleanup, err := InitCounter(cfg)
	if err != nil {
		return nil, nil, err
	}
	consumer, err := rocketmq.NewRepairConsumer(cfg.RocketMQ, func(ctx context.Context, msg *rocketmq.RepairMessage) error {
		return counter.Reconcile(ctx, msg.TuitID)
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return consumer.Start, cleanup, nil
}
