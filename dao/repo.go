package dao

import (
	"Tuiter/pkg/errs"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter 精确等值匹配，key 为列名
type Filter map[string]any

// Repo 通用的单表读写，所有关系/实体 DAO 都嵌入它
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Insert 依赖唯一索引的原子插入，已存在时返回 created=false 而不是错误
func (r *Repo[T]) Insert(ctx context.Context, item *T) (created bool, err error) {
	res := r.Db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(item)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Create 严格插入，唯一键冲突返回 errs.ErrDuplicateKey
func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return translate(r.Db.WithContext(ctx).Create(item).Error)
}

func (r *Repo[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(map[string]any(filter)).Take(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// FindMany 按 id 倒序返回，snowflake id 即创建顺序
func (r *Repo[T]) FindMany(ctx context.Context, filter Filter) ([]*T, error) {
	items := make([]*T, 0)
	err := r.Db.WithContext(ctx).Where(map[string]any(filter)).Order("id DESC").Find(&items).Error
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.FindOne(ctx, Filter{"id": id})
}

func (r *Repo[T]) FindByIDs(ctx context.Context, ids []int64) ([]*T, error) {
	items := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).Take(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *Repo[T]) Exists(ctx context.Context, filter Filter) (bool, error) {
	return r.IsExist(ctx, map[string]any(filter))
}

func (r *Repo[T]) IsExist(ctx context.Context, where any, args ...any) (bool, error) {
	var item T
	res := r.Db.WithContext(ctx).Where(where, args...).Limit(1).Find(&item)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *Repo[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(map[string]any(filter)).Count(&count).Error
	return count, translate(err)
}

// DeleteOne 删除第一条匹配记录，没有匹配时返回 0
func (r *Repo[T]) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	if len(filter) == 0 {
		return 0, errs.Invalid("delete one without filter")
	}
	var deleted int64
	err := r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item T
		res := tx.Where(map[string]any(filter)).Limit(1).Find(&item)
		if res.Error != nil || res.RowsAffected == 0 {
			return res.Error
		}
		res = tx.Delete(&item)
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, translate(err)
}

func (r *Repo[T]) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	if len(filter) == 0 {
		return 0, errs.Invalid("delete many without filter")
	}
	res := r.Db.WithContext(ctx).Where(map[string]any(filter)).Delete(new(T))
	return res.RowsAffected, translate(res.Error)
}

// UpdateOne 部分字段更新，filter 应当唯一定位一条记录
func (r *Repo[T]) UpdateOne(ctx context.Context, filter Filter, fields map[string]any) (int64, error) {
	if len(filter) == 0 {
		return 0, errs.Invalid("update without filter")
	}
	res := r.Db.WithContext(ctx).Model(new(T)).Where(map[string]any(filter)).Updates(fields)
	return res.RowsAffected, translate(res.Error)
}
