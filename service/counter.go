package service

import (
	"Tuiter/config"
	"Tuiter/dao"
	"Tuiter/dao/cache"
	"Tuiter/models"
	"Tuiter/pkg/errs"
	"Tuiter/pkg/log"
	"context"
	"errors"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var _ ICounterService = (*CounterService)(nil)

const (
	recomputeAttempts = 3
	recomputeBackoff  = 20 * time.Millisecond
)

// RepairPublisher 计数重算失败后投递修复请求
type RepairPublisher interface {
	PublishRepair(ctx context.Context, tuitID int64, reason string) error
}

type ICounterService interface {
	// Recompute 从关系表重算点赞/点踩计数
	Recompute(ctx context.Context, tuitID int64) (*models.Stats, error)
	// Sync 关系写入之后调用；失败时返回 *errs.CounterSyncError 并投递修复请求
	Sync(ctx context.Context, tuitID int64) (*models.Stats, error)
	Stats(ctx context.Context, tuitID int64) (*models.Stats, error)
	// Reconcile 处理异步修复请求，推文已删除时视为完成
	Reconcile(ctx context.Context, tuitID int64) error
	// RecomputeAll 全量重算，返回处理的推文数
	RecomputeAll(ctx context.Context, batch int) (int, error)
}

type CounterService struct {
	App     *config.App
	TuitDAO *dao.TuitDAO
	Cache   *cache.StatsCache
	Repair  RepairPublisher
}

func (s *CounterService) Recompute(ctx context.Context, tuitID int64) (*models.Stats, error) {
	var (
		stats *models.Stats
		err   error
	)
	// 重算是幂等的，瞬时错误直接重试
	for attempt := 0; attempt < recomputeAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * recomputeBackoff):
			}
		}
		stats, err = s.TuitDAO.ProjectReactions(ctx, tuitID)
		if err == nil || !errs.IsRetryable(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, tuitID, stats); err != nil {
			log.L.Warn("write tuit stats cache", zap.Int64("tuit_id", tuitID), zap.Error(err))
			// 写不进去就尽量删掉旧值，剩下的交给 TTL
			_ = s.Cache.Invalidate(ctx, tuitID)
		}
	}
	return stats, nil
}

func (s *CounterService) Sync(ctx context.Context, tuitID int64) (*models.Stats, error) {
	stats, err := s.Recompute(ctx, tuitID)
	if err == nil {
		return stats, nil
	}
	if errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	counterSyncFailures.Inc()
	log.L.Error("recompute tuit counters", zap.Int64("tuit_id", tuitID), zap.Error(err))
	if s.Repair != nil {
		if perr := s.Repair.PublishRepair(context.WithoutCancel(ctx), tuitID, err.Error()); perr != nil {
			log.L.Warn("publish counter repair", zap.Int64("tuit_id", tuitID), zap.Error(perr))
		}
	}
	return nil, errs.NewCounterSyncError(tuitID, err)
}

func (s *CounterService) Reconcile(ctx context.Context, tuitID int64) error {
	stats, err := s.Recompute(ctx, tuitID)
	if errors.Is(err, errs.ErrNotFound) {
		log.L.Info("skip repair for deleted tuit", zap.Int64("tuit_id", tuitID))
		return nil
	}
	if err != nil {
		return err
	}
	log.L.Info("tuit counters repaired",
		zap.Int64("tuit_id", tuitID),
		zap.Int64("likes", stats.Likes),
		zap.Int64("dislikes", stats.Dislikes),
	)
	return nil
}

// Stats 先查缓存，未命中再查库并回填。回填只在缓存为空时生效，不会盖掉并发重算写入的新值
func (s *CounterService) Stats(ctx context.Context, tuitID int64) (*models.Stats, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, tuitID)
		if err != nil {
			log.L.Warn("read tuit stats cache", zap.Int64("tuit_id", tuitID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	tuit, err := s.TuitDAO.FindByID(ctx, tuitID)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if _, err := s.Cache.Fill(ctx, tuitID, &tuit.Stats); err != nil {
			log.L.Warn("fill tuit stats cache", zap.Int64("tuit_id", tuitID), zap.Error(err))
		}
	}
	return &tuit.Stats, nil
}

func (s *CounterService) RecomputeAll(ctx context.Context, batch int) (int, error) {
	if batch <= 0 {
		batch = 500
	}
	workers := config.DefaultRecomputeWorkers
	if s.App != nil && s.App.RecomputeWorkers > 0 {
		workers = s.App.RecomputeWorkers
	}

	var (
		total int
		after int64
	)
	for {
		ids, err := s.TuitDAO.IDsAfter(ctx, after, batch)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}

		p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
		for _, id := range ids {
			p.Go(func(ctx context.Context) error {
				_, err := s.Recompute(ctx, id)
				if errors.Is(err, errs.ErrNotFound) {
					return nil
				}
				return err
			})
		}
		if err := p.Wait(); err != nil {
			return total, err
		}

		total += len(ids)
		after = ids[len(ids)-1]
		log.L.Info("recount progress", zap.Int("tuits", total), zap.Int64("last_id", after))
	}
}
