package service

import (
	"Tuiter/dao"
	"Tuiter/dao/cache"
	"Tuiter/pkg/log"
	"context"

	"go.uber.org/zap"
)

var _ IAccountService = (*AccountService)(nil)

// Deactivation 注销账号时清理掉的关系记录数
type Deactivation struct {
	Followers int64 `json:"followers"`
	Followees int64 `json:"followees"`
	Bookmarks int64 `json:"bookmarks"`
	Likes     int64 `json:"likes"`
	Dislikes  int64 `json:"dislikes"`
}

type IAccountService interface {
	// DeactivateAccount 清理用户的全部关系，用户记录本身保留
	DeactivateAccount(ctx context.Context, userID int64) (*Deactivation, error)
	DeleteTuit(ctx context.Context, tuitID int64) (*dao.Cascade, error)
}

type AccountService struct {
	Follows   IFollowService
	Bookmarks IBookmarkService
	Likes     ILikeService
	TuitDAO   *dao.TuitDAO
	Cache     *cache.StatsCache
}

func (s *AccountService) DeactivateAccount(ctx context.Context, userID int64) (*Deactivation, error) {
	var (
		out Deactivation
		err error
	)
	if out.Followers, err = s.Follows.DeleteAllFollowers(ctx, userID); err != nil {
		return nil, err
	}
	if out.Followees, err = s.Follows.DeleteAllFollowees(ctx, userID); err != nil {
		return nil, err
	}
	if out.Bookmarks, err = s.Bookmarks.DeleteAllForUser(ctx, userID); err != nil {
		return nil, err
	}
	// 点赞/点踩删除后已重算计数；重算失败时删除结果依然有效
	out.Likes, out.Dislikes, err = s.Likes.DeleteAllForUser(ctx, userID)

	log.L.Info("account deactivated",
		zap.Int64("user_id", userID),
		zap.Int64("followers", out.Followers),
		zap.Int64("followees", out.Followees),
		zap.Int64("bookmarks", out.Bookmarks),
		zap.Int64("likes", out.Likes),
		zap.Int64("dislikes", out.Dislikes),
	)
	return &out, err
}

func (s *AccountService) DeleteTuit(ctx context.Context, tuitID int64) (*dao.Cascade, error) {
	out, err := s.TuitDAO.DeleteCascade(ctx, tuitID)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, tuitID); err != nil {
			log.L.Warn("invalidate tuit stats cache", zap.Int64("tuit_id", tuitID), zap.Error(err))
		}
	}
	log.L.Info("tuit deleted",
		zap.Int64("tuit_id", tuitID),
		zap.Int64("likes", out.Likes),
		zap.Int64("dislikes", out.Dislikes),
		zap.Int64("bookmarks", out.Bookmarks),
	)
	return out, nil
}
