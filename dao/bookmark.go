package dao

import (
	"Tuiter/models"

	"gorm.io/gorm"
)

type BookmarkDAO struct {
	PairRepo[models.Bookmark, *models.Bookmark]
}

func NewBookmarkDAO(db *gorm.DB, joiner *Joiner) *BookmarkDAO {
	return &BookmarkDAO{PairRepo: NewPairRepo[models.Bookmark](db, joiner)}
}
