package service

import (
	"Tuiter/dao"
	"Tuiter/models"
	"Tuiter/pkg/errs"
	"Tuiter/pkg/snowflake"
	"context"
	"strings"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	CreateUser(ctx context.Context, username, email string) (*models.User, error)
	FindUser(ctx context.Context, userID int64) (*models.User, error)
}

type UserService struct {
	Users *dao.Users
}

func (s *UserService) CreateUser(ctx context.Context, username, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.Invalid("username is required")
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		Username: username,
		Email:    strings.TrimSpace(email),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.Users.FindByID(ctx, userID)
}
