package dao

import (
	"Tuiter/models"
	"Tuiter/pkg/errs"
	"context"
)

// Expand 读关系时需要展开的引用
type Expand uint8

const (
	ExpandUser Expand = 1 << iota
	ExpandTuit
	ExpandFollower
	ExpandFollowee
)

const ExpandNone Expand = 0

func (e Expand) Has(f Expand) bool {
	return e&f != 0
}

// Joiner 在关系查询之后批量加载被引用的用户/推文
type Joiner struct {
	Users *Users
	Tuits *TuitDAO
}

func NewJoiner(users *Users, tuits *TuitDAO) *Joiner {
	return &Joiner{Users: users, Tuits: tuits}
}

// UserMap 任意一个 id 不存在都返回 errs.ErrNotFound
func (j *Joiner) UserMap(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	return j.userMap(ctx, ids, true)
}

func (j *Joiner) userMap(ctx context.Context, ids []int64, strict bool) (map[int64]*models.User, error) {
	ids = distinct(ids)
	users, err := j.Users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[int64]*models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	if strict {
		for _, id := range ids {
			if _, ok := m[id]; !ok {
				return nil, errs.NotFound("user %d", id)
			}
		}
	}
	return m, nil
}

// TuitMap 同 UserMap，并附带推文作者。作者缺失时 Author 为 nil
func (j *Joiner) TuitMap(ctx context.Context, ids []int64) (map[int64]*models.Tuit, error) {
	ids = distinct(ids)
	tuits, err := j.Tuits.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[int64]*models.Tuit, len(tuits))
	authorIDs := make([]int64, 0, len(tuits))
	for _, t := range tuits {
		m[t.ID] = t
		authorIDs = append(authorIDs, t.PostedBy)
	}
	for _, id := range ids {
		if _, ok := m[id]; !ok {
			return nil, errs.NotFound("tuit %d", id)
		}
	}

	authors, err := j.userMap(ctx, authorIDs, false)
	if err != nil {
		return nil, err
	}
	for _, t := range tuits {
		t.Author = authors[t.PostedBy]
	}
	return m, nil
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
