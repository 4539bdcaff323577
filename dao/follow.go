package dao

import (
	"Tuiter/models"
	"Tuiter/pkg/snowflake"
	"context"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
	Joiner *Joiner
}

func NewFollowDAO(db *gorm.DB, joiner *Joiner) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](db), Joiner: joiner}
}

func edgeFilter(followerID, followeeID int64) Filter {
	return Filter{"follower_id": followerID, "followee_id": followeeID}
}

// Add 幂等关注，已存在返回 false
func (d *FollowDAO) Add(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return d.Insert(ctx, &models.Follow{
		ID:         snowflake.GenID(),
		FollowerID: followerID,
		FolloweeID: followeeID,
	})
}

func (d *FollowDAO) Remove(ctx context.Context, followerID, followeeID int64) (int64, error) {
	return d.DeleteOne(ctx, edgeFilter(followerID, followeeID))
}

// IsFollowing 检查是否已关注
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return d.Exists(ctx, edgeFilter(followerID, followeeID))
}

// FindFollowers 关注 userID 的人
func (d *FollowDAO) FindFollowers(ctx context.Context, userID int64, expand Expand) ([]*models.Follow, error) {
	return d.Find(ctx, Filter{"followee_id": userID}, expand)
}

// FindFollowees userID 关注的人
func (d *FollowDAO) FindFollowees(ctx context.Context, userID int64, expand Expand) ([]*models.Follow, error) {
	return d.Find(ctx, Filter{"follower_id": userID}, expand)
}

func (d *FollowDAO) DeleteFollowers(ctx context.Context, userID int64) (int64, error) {
	return d.DeleteMany(ctx, Filter{"followee_id": userID})
}

func (d *FollowDAO) DeleteFollowees(ctx context.Context, userID int64) (int64, error) {
	return d.DeleteMany(ctx, Filter{"follower_id": userID})
}

func (d *FollowDAO) Find(ctx context.Context, filter Filter, expand Expand) ([]*models.Follow, error) {
	follows, err := d.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !expand.Has(ExpandFollower|ExpandFollowee) || len(follows) == 0 {
		return follows, nil
	}

	ids := make([]int64, 0, 2*len(follows))
	for _, f := range follows {
		if expand.Has(ExpandFollower) {
			ids = append(ids, f.FollowerID)
		}
		if expand.Has(ExpandFollowee) {
			ids = append(ids, f.FolloweeID)
		}
	}
	users, err := d.Joiner.UserMap(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, f := range follows {
		if expand.Has(ExpandFollower) {
			f.Follower = users[f.FollowerID]
		}
		if expand.Has(ExpandFollowee) {
			f.Followee = users[f.FolloweeID]
		}
	}
	return follows, nil
}
