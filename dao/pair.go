package dao

import (
	"Tuiter/models"
	"Tuiter/pkg/snowflake"
	"context"

	"gorm.io/gorm"
)

type pairRecord[T any] interface {
	*T
	Pair() (userID, tuitID int64)
	SetPair(id, userID, tuitID int64)
	Attach(user *models.User, tuit *models.Tuit)
}

// PairRepo user×tuit 关系（点赞、点踩、收藏）共用的存取
type PairRepo[T any, P pairRecord[T]] struct {
	Repo[T]
	Joiner *Joiner
}

func NewPairRepo[T any, P pairRecord[T]](db *gorm.DB, joiner *Joiner) PairRepo[T, P] {
	return PairRepo[T, P]{Repo: NewRepo[T](db), Joiner: joiner}
}

func PairFilter(userID, tuitID int64) Filter {
	return Filter{"user_id": userID, "tuit_id": tuitID}
}

// Add 幂等插入，已存在返回 false
func (r *PairRepo[T, P]) Add(ctx context.Context, userID, tuitID int64) (bool, error) {
	var item T
	P(&item).SetPair(snowflake.GenID(), userID, tuitID)
	return r.Insert(ctx, &item)
}

// Remove 幂等删除，返回删除条数
func (r *PairRepo[T, P]) Remove(ctx context.Context, userID, tuitID int64) (int64, error) {
	return r.DeleteOne(ctx, PairFilter(userID, tuitID))
}

func (r *PairRepo[T, P]) Has(ctx context.Context, userID, tuitID int64) (bool, error) {
	return r.Exists(ctx, PairFilter(userID, tuitID))
}

func (r *PairRepo[T, P]) CountByTuit(ctx context.Context, tuitID int64) (int64, error) {
	return r.Count(ctx, Filter{"tuit_id": tuitID})
}

func (r *PairRepo[T, P]) FindByTuit(ctx context.Context, tuitID int64, expand Expand) ([]*T, error) {
	return r.Find(ctx, Filter{"tuit_id": tuitID}, expand)
}

func (r *PairRepo[T, P]) FindByUser(ctx context.Context, userID int64, expand Expand) ([]*T, error) {
	return r.Find(ctx, Filter{"user_id": userID}, expand)
}

func (r *PairRepo[T, P]) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	return r.DeleteMany(ctx, Filter{"user_id": userID})
}

func (r *PairRepo[T, P]) DeleteByTuit(ctx context.Context, tuitID int64) (int64, error) {
	return r.DeleteMany(ctx, Filter{"tuit_id": tuitID})
}

// DeleteByUserTuits 只删除给定推文上的记录，调用方据此精确重算计数
func (r *PairRepo[T, P]) DeleteByUserTuits(ctx context.Context, userID int64, tuitIDs []int64) (int64, error) {
	if len(tuitIDs) == 0 {
		return 0, nil
	}
	res := r.Db.WithContext(ctx).Where("user_id = ? AND tuit_id IN ?", userID, tuitIDs).Delete(new(T))
	return res.RowsAffected, translate(res.Error)
}

// TuitIDsByUser 用户关联过的推文 id，最多 limit 条，limit <= 0 不限制
func (r *PairRepo[T, P]) TuitIDsByUser(ctx context.Context, userID int64, limit int) ([]int64, error) {
	ids := make([]int64, 0)
	db := r.Db.WithContext(ctx).Model(new(T)).Where("user_id = ?", userID).Order("id ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Pluck("tuit_id", &ids).Error
	return ids, translate(err)
}

// Find 查询并按 expand 展开引用
func (r *PairRepo[T, P]) Find(ctx context.Context, filter Filter, expand Expand) ([]*T, error) {
	items, err := r.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	if expand == ExpandNone || len(items) == 0 {
		return items, nil
	}

	userIDs := make([]int64, 0, len(items))
	tuitIDs := make([]int64, 0, len(items))
	for _, it := range items {
		u, t := P(it).Pair()
		userIDs = append(userIDs, u)
		tuitIDs = append(tuitIDs, t)
	}

	var (
		users map[int64]*models.User
		tuits map[int64]*models.Tuit
	)
	if expand.Has(ExpandUser) {
		if users, err = r.Joiner.UserMap(ctx, userIDs); err != nil {
			return nil, err
		}
	}
	if expand.Has(ExpandTuit) {
		if tuits, err = r.Joiner.TuitMap(ctx, tuitIDs); err != nil {
			return nil, err
		}
	}
	for _, it := range items {
		u, t := P(it).Pair()
		P(it).Attach(users[u], tuits[t])
	}
	return items, nil
}
