package dao

import (
	"Tuiter/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	PairRepo[models.Like, *models.Like]
}

func NewLikeDAO(db *gorm.DB, joiner *Joiner) *LikeDAO {
	return &LikeDAO{PairRepo: NewPairRepo[models.Like](db, joiner)}
}

type DislikeDAO struct {
	PairRepo[models.Dislike, *models.Dislike]
}

func NewDislikeDAO(db *gorm.DB, joiner *Joiner) *DislikeDAO {
	return &DislikeDAO{PairRepo: NewPairRepo[models.Dislike](db, joiner)}
}
