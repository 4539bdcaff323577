package service

import (
	"Tuiter/dao"
	"Tuiter/models"
	"context"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	Bookmark(ctx context.Context, userID, tuitID int64) error
	Unbookmark(ctx context.Context, userID, tuitID int64) error
	IsBookmarked(ctx context.Context, userID, tuitID int64) (bool, error)
	FindBookmarksByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error)
	FindUsersThatBookmarkedTuit(ctx context.Context, tuitID int64) ([]*models.Bookmark, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}

type BookmarkService struct {
	BookmarkDAO *dao.BookmarkDAO
	Refs        *Refs
}

func (s *BookmarkService) Bookmark(ctx context.Context, userID, tuitID int64) error {
	if err := s.Refs.UserTuit(ctx, userID, tuitID); err != nil {
		return err
	}
	created, err := s.BookmarkDAO.Add(ctx, userID, tuitID)
	if err != nil {
		return err
	}
	observe("bookmark", "add", created)
	return nil
}

func (s *BookmarkService) Unbookmark(ctx context.Context, userID, tuitID int64) error {
	removed, err := s.BookmarkDAO.Remove(ctx, userID, tuitID)
	if err != nil {
		return err
	}
	observe("bookmark", "remove", removed > 0)
	return nil
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, tuitID int64) (bool, error) {
	return s.BookmarkDAO.Has(ctx, userID, tuitID)
}

func (s *BookmarkService) FindBookmarksByUser(ctx context.Context, userID int64) ([]*models.Bookmark, error) {
	return s.BookmarkDAO.FindByUser(ctx, userID, dao.ExpandTuit)
}

func (s *BookmarkService) FindUsersThatBookmarkedTuit(ctx context.Context, tuitID int64) ([]*models.Bookmark, error) {
	return s.BookmarkDAO.FindByTuit(ctx, tuitID, dao.ExpandUser)
}

func (s *BookmarkService) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	return s.BookmarkDAO.DeleteByUser(ctx, userID)
}
