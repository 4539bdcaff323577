package service

import (
	"Tuiter/dao"
	"Tuiter/pkg/errs"
	"context"
)

// Refs 写关系前校验被引用的用户/推文存在
type Refs struct {
	Users *dao.Users
	Tuits *dao.TuitDAO
}

func (r *Refs) User(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		exist, err := r.Users.IsExist(ctx, "id = ?", id)
		if err != nil {
			return err
		}
		if !exist {
			return errs.NotFound("user %d", id)
		}
	}
	return nil
}

func (r *Refs) Tuit(ctx context.Context, id int64) error {
	exist, err := r.Tuits.IsExist(ctx, "id = ?", id)
	if err != nil {
		return err
	}
	if !exist {
		return errs.NotFound("tuit %d", id)
	}
	return nil
}

func (r *Refs) UserTuit(ctx context.Context, userID, tuitID int64) error {
	if err := r.User(ctx, userID); err != nil {
		return err
	}
	return r.Tuit(ctx, tuitID)
}
