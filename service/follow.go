package service

import (
	"Tuiter/dao"
	"Tuiter/models"
	"Tuiter/pkg/errs"
	"context"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	// FindFollowers 关注 userID 的人
	FindFollowers(ctx context.Context, userID int64) ([]*models.Follow, error)
	// FindFollowees userID 关注的人
	FindFollowees(ctx context.Context, userID int64) ([]*models.Follow, error)
	DeleteAllFollowers(ctx context.Context, userID int64) (int64, error)
	DeleteAllFollowees(ctx context.Context, userID int64) (int64, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	Refs      *Refs
}

func (s *FollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	// 不能关注自己
	if followerID == followeeID {
		return errs.Invalid("user %d cannot follow itself", followerID)
	}
	if err := s.Refs.User(ctx, followerID, followeeID); err != nil {
		return err
	}

	created, err := s.FollowDAO.Add(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	observe("follow", "add", created)
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	removed, err := s.FollowDAO.Remove(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	observe("follow", "remove", removed > 0)
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

func (s *FollowService) FindFollowers(ctx context.Context, userID int64) ([]*models.Follow, error) {
	return s.FollowDAO.FindFollowers(ctx, userID, dao.ExpandFollower)
}

func (s *FollowService) FindFollowees(ctx context.Context, userID int64) ([]*models.Follow, error) {
	return s.FollowDAO.FindFollowees(ctx, userID, dao.ExpandFollowee)
}

func (s *FollowService) DeleteAllFollowers(ctx context.Context, userID int64) (int64, error) {
	return s.FollowDAO.DeleteFollowers(ctx, userID)
}

func (s *FollowService) DeleteAllFollowees(ctx context.Context, userID int64) (int64, error) {
	return s.FollowDAO.DeleteFollowees(ctx, userID)
}
