package service

import (
	"Tuiter/dao"
	"Tuiter/models"
	"Tuiter/pkg/errs"
	"Tuiter/pkg/snowflake"
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

const maxTuitLength = 280

var _ ITuitService = (*TuitService)(nil)

type ITuitService interface {
	CreateTuit(ctx context.Context, userID int64, text string) (*models.Tuit, error)
	// FindTuit 查询推文并展开作者
	FindTuit(ctx context.Context, tuitID int64) (*models.Tuit, error)
	FindTuitsByUser(ctx context.Context, userID int64) ([]*models.Tuit, error)
}

type TuitService struct {
	TuitDAO *dao.TuitDAO
	Joiner  *dao.Joiner
	Refs    *Refs
}

func (s *TuitService) CreateTuit(ctx context.Context, userID int64, text string) (*models.Tuit, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.Invalid("tuit is empty")
	}
	if utf8.RuneCountInString(text) > maxTuitLength {
		return nil, errs.Invalid("tuit exceeds %d characters", maxTuitLength)
	}
	if err := s.Refs.User(ctx, userID); err != nil {
		return nil, err
	}

	tuit := &models.Tuit{
		ID:       snowflake.GenID(),
		Tuit:     text,
		PostedBy: userID,
		PostedOn: time.Now(),
	}
	if err := s.TuitDAO.Create(ctx, tuit); err != nil {
		return nil, err
	}
	return tuit, nil
}

func (s *TuitService) FindTuit(ctx context.Context, tuitID int64) (*models.Tuit, error) {
	tuits, err := s.Joiner.TuitMap(ctx, []int64{tuitID})
	if err != nil {
		return nil, err
	}
	return tuits[tuitID], nil
}

func (s *TuitService) FindTuitsByUser(ctx context.Context, userID int64) ([]*models.Tuit, error) {
	if err := s.Refs.User(ctx, userID); err != nil {
		return nil, err
	}
	return s.TuitDAO.FindByPostedBy(ctx, userID)
}
