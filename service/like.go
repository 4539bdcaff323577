package service

import (
	"Tuiter/config"
	"Tuiter/dao"
	"Tuiter/models"
	"Tuiter/pkg/errs"
	"Tuiter/pkg/log"
	"context"
	"errors"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var _ ILikeService = (*LikeService)(nil)

const purgeBatch = 200

type ILikeService interface {
	// Like 点赞；会先撤销同一用户对该推文的点踩
	Like(ctx context.Context, userID, tuitID int64) (*models.Stats, error)
	Unlike(ctx context.Context, userID, tuitID int64) (*models.Stats, error)
	// Dislike 点踩；会先撤销同一用户对该推文的点赞
	Dislike(ctx context.Context, userID, tuitID int64) (*models.Stats, error)
	Undislike(ctx context.Context, userID, tuitID int64) (*models.Stats, error)
	ToggleLike(ctx context.Context, userID, tuitID int64) (bool, *models.Stats, error)
	ToggleDislike(ctx context.Context, userID, tuitID int64) (bool, *models.Stats, error)
	IsLiked(ctx context.Context, userID, tuitID int64) (bool, error)
	IsDisliked(ctx context.Context, userID, tuitID int64) (bool, error)
	FindUsersThatLikedTuit(ctx context.Context, tuitID int64) ([]*models.Like, error)
	FindTuitsLikedByUser(ctx context.Context, userID int64) ([]*models.Like, error)
	FindUsersThatDislikedTuit(ctx context.Context, tuitID int64) ([]*models.Dislike, error)
	FindTuitsDislikedByUser(ctx context.Context, userID int64) ([]*models.Dislike, error)
	CountLikes(ctx context.Context, tuitID int64) (int64, error)
	CountDislikes(ctx context.Context, tuitID int64) (int64, error)
	// DeleteAllForUser 删除用户全部点赞/点踩并重算受影响推文的计数
	DeleteAllForUser(ctx context.Context, userID int64) (likes, dislikes int64, err error)
}

type LikeService struct {
	App        *config.App
	LikeDAO    *dao.LikeDAO
	DislikeDAO *dao.DislikeDAO
	Refs       *Refs
	Counter    ICounterService
}

func (s *LikeService) Like(ctx context.Context, userID, tuitID int64) (*models.Stats, error) {
	if err := s.Refs.UserTuit(ctx, userID, tuitID); err != nil {
		return nil, err
	}

	removed, err := s.DislikeDAO.Remove(ctx, userID, tuitID)
	if err != nil {
		return nil, err
	}
	observe("dislike", "remove", removed > 0)

	created, err := s.LikeDAO.Add(ctx, userID, tuitID)
	if err != nil {
		// 点踩已经删除，计数仍需跟上
		if removed > 0 {
			_, _ = s.Counter.Sync(ctx, tuitID)
		}
		return nil, err
	}
	observe("like", "add", created)

	return s.Counter.Sync(ctx, tuitID)
}

func (s *LikeService) Unlike(ctx context.Context, userID, tuitID int64) (*models.Stats, error) {
	removed, err := s.LikeDAO.Remove(ctx, userID, tuitID)
	if err != nil {
		return nil, err
	}
	observe("like", "remove", removed > 0)
	return s.Counter.Sync(ctx, tuitID)
}

func (s *LikeService) Dislike(ctx context.Context, userID, tuitID int64) (*models.Stats, error) {
	if err := s.Refs.UserTuit(ctx, userID, tuitID); err != nil {
		return nil, err
	}

	removed, err := s.LikeDAO.Remove(ctx, userID, tuitID)
	if err != nil {
		return nil, err
	}
	observe("like", "remove", removed > 0)

	created, err := s.DislikeDAO.Add(ctx, userID, tuitID)
	if err != nil {
		if removed > 0 {
			_, _ = s.Counter.Sync(ctx, tuitID)
		}
		return nil, err
	}
	observe("dislike", "add", created)

	return s.Counter.Sync(ctx, tuitID)
}

func (s *LikeService) Undislike(ctx context.Context, userID, tuitID int64) (*models.Stats, error) {
	removed, err := s.DislikeDAO.Remove(ctx, userID, tuitID)
	if err != nil {
		return nil, err
	}
	observe("dislike", "remove", removed > 0)
	return s.Counter.Sync(ctx, tuitID)
}

// ToggleLike 返回切换后是否处于点赞状态
func (s *LikeService) ToggleLike(ctx context.Context, userID, tuitID int64) (bool, *models.Stats, error) {
	liked, err := s.LikeDAO.Has(ctx, userID, tuitID)
	if err != nil {
		return false, nil, err
	}
	if liked {
		stats, err := s.Unlike(ctx, userID, tuitID)
		return false, stats, err
	}
	stats, err := s.Like(ctx, userID, tuitID)
	return true, stats, err
}

func (s *LikeService) ToggleDislike(ctx context.Context, userID, tuitID int64) (bool, *models.Stats, error) {
	disliked, err := s.DislikeDAO.Has(ctx, userID, tuitID)
	if err != nil {
		return false, nil, err
	}
	if disliked {
		stats, err := s.Undislike(ctx, userID, tuitID)
		return false, stats, err
	}
	stats, err := s.Dislike(ctx, userID, tuitID)
	return true, stats, err
}

func (s *LikeService) IsLiked(ctx context.Context, userID, tuitID int64) (bool, error) {
	return s.LikeDAO.Has(ctx, userID, tuitID)
}

func (s *LikeService) IsDisliked(ctx context.Context, userID, tuitID int64) (bool, error) {
	return s.DislikeDAO.Has(ctx, userID, tuitID)
}

func (s *LikeService) FindUsersThatLikedTuit(ctx context.Context, tuitID int64) ([]*models.Like, error) {
	return s.LikeDAO.FindByTuit(ctx, tuitID, dao.ExpandUser)
}

func (s *LikeService) FindTuitsLikedByUser(ctx context.Context, userID int64) ([]*models.Like, error) {
	return s.LikeDAO.FindByUser(ctx, userID, dao.ExpandTuit)
}

func (s *LikeService) FindUsersThatDislikedTuit(ctx context.Context, tuitID int64) ([]*models.Dislike, error) {
	return s.DislikeDAO.FindByTuit(ctx, tuitID, dao.ExpandUser)
}

func (s *LikeService) FindTuitsDislikedByUser(ctx context.Context, userID int64) ([]*models.Dislike, error) {
	return s.DislikeDAO.FindByUser(ctx, userID, dao.ExpandTuit)
}

func (s *LikeService) CountLikes(ctx context.Context, tuitID int64) (int64, error) {
	return s.LikeDAO.CountByTuit(ctx, tuitID)
}

func (s *LikeService) CountDislikes(ctx context.Context, tuitID int64) (int64, error) {
	return s.DislikeDAO.CountByTuit(ctx, tuitID)
}

func (s *LikeService) DeleteAllForUser(ctx context.Context, userID int64) (int64, int64, error) {
	likes, likeErr := s.purge(ctx, s.LikeDAO, userID)
	if likeErr != nil && !errors.Is(likeErr, errs.ErrCounterSyncFailed) {
		return likes, 0, likeErr
	}
	dislikes, err := s.purge(ctx, s.DislikeDAO, userID)
	if err != nil {
		return likes, dislikes, err
	}
	return likes, dislikes, likeErr
}

// userReactions 点赞/点踩表按用户清理所需的操作
type userReactions interface {
	TuitIDsByUser(ctx context.Context, userID int64, limit int) ([]int64, error)
	DeleteByUserTuits(ctx context.Context, userID int64, tuitIDs []int64) (int64, error)
}

// purge 每轮只删除查出来的 (user, tuit) 并重算这些推文，直到查不到记录。
// 清理期间并发写入的记录会在下一轮被删除和重算；重算失败不影响后续删除，返回第一个失败
func (s *LikeService) purge(ctx context.Context, store userReactions, userID int64) (int64, error) {
	var (
		total   int64
		syncErr error
	)
	for {
		tuitIDs, err := store.TuitIDsByUser(ctx, userID, purgeBatch)
		if err != nil {
			return total, err
		}
		if len(tuitIDs) == 0 {
			return total, syncErr
		}
		n, err := store.DeleteByUserTuits(ctx, userID, tuitIDs)
		if err != nil {
			return total, err
		}
		total += n
		if err := s.syncAll(ctx, tuitIDs); err != nil && syncErr == nil {
			syncErr = err
		}
	}
}

func (s *LikeService) syncAll(ctx context.Context, tuitIDs []int64) error {
	workers := config.DefaultRecomputeWorkers
	if s.App != nil && s.App.RecomputeWorkers > 0 {
		workers = s.App.RecomputeWorkers
	}

	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	for _, id := range tuitIDs {
		p.Go(func(ctx context.Context) error {
			_, err := s.Counter.Sync(ctx, id)
			if errors.Is(err, errs.ErrNotFound) {
				// 推文已删除，没有计数可维护
				return nil
			}
			return err
		})
	}
	if err := p.Wait(); err != nil {
		log.L.Warn("recompute counters after purge", zap.Int("tuits", len(tuitIDs)), zap.Error(err))
		return err
	}
	return nil
}
