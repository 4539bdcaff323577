package dao

import (
	"Tuiter/models"
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TuitDAO struct {
	Repo[models.Tuit]
}

func NewTuitDAO(db *gorm.DB) *TuitDAO {
	return &TuitDAO{Repo: NewRepo[models.Tuit](db)}
}

// ProjectReactions 用关系表的实时计数覆盖 stats_likes/stats_dislikes。
// 计数和写入在同一条 UPDATE 中完成
func (d *TuitDAO) ProjectReactions(ctx context.Context, tuitID int64) (*models.Stats, error) {
	db := d.Db.WithContext(ctx)
	err := db.Model(&models.Tuit{}).
		Where("id = ?", tuitID).
		Updates(map[string]any{
			"stats_likes":    countExpr(models.Like{}.TableName(), tuitID),
			"stats_dislikes": countExpr(models.Dislike{}.TableName(), tuitID),
		}).Error
	if err != nil {
		return nil, translate(err)
	}

	// MySQL 默认返回的是 changed rows，计数未变化时 RowsAffected 为 0，所以回读判断是否存在
	var tuit models.Tuit
	if err := db.Where("id = ?", tuitID).Take(&tuit).Error; err != nil {
		return nil, translate(err)
	}
	return &tuit.Stats, nil
}

func countExpr(table string, tuitID int64) clause.Expr {
	return gorm.Expr(fmt.Sprintf("(SELECT COUNT(*) FROM %s WHERE %s.tuit_id = ?)", table, table), tuitID)
}

// FindByPostedBy 用户发布的推文，按发布时间倒序
func (d *TuitDAO) FindByPostedBy(ctx context.Context, userID int64) ([]*models.Tuit, error) {
	tuits := make([]*models.Tuit, 0)
	err := d.Db.WithContext(ctx).
		Where("posted_by = ?", userID).
		Order("posted_on DESC").
		Find(&tuits).Error
	return tuits, translate(err)
}

// Cascade 删除推文时一并清理的关系记录数
type Cascade struct {
	Likes     int64 `json:"likes"`
	Dislikes  int64 `json:"dislikes"`
	Bookmarks int64 `json:"bookmarks"`
}

// DeleteCascade 在一个事务中删除推文及引用它的点赞、点踩和收藏。
// 先删关系记录以便统计条数，外键级联兜住事务内并发写入的记录
func (d *TuitDAO) DeleteCascade(ctx context.Context, tuitID int64) (*Cascade, error) {
	var out Cascade
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			model any
			n     *int64
		}{
			{&models.Like{}, &out.Likes},
			{&models.Dislike{}, &out.Dislikes},
			{&models.Bookmark{}, &out.Bookmarks},
		}
		for _, step := range steps {
			res := tx.Where("tuit_id = ?", tuitID).Delete(step.model)
			if res.Error != nil {
				return res.Error
			}
			*step.n = res.RowsAffected
		}

		res := tx.Where("id = ?", tuitID).Delete(&models.Tuit{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// IDsAfter 按 id 升序分页取推文 id，用于全量重算
func (d *TuitDAO) IDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	ids := make([]int64, 0, limit)
	err := d.Db.WithContext(ctx).
		Model(&models.Tuit{}).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, translate(err)
}
