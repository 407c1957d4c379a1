package service

import (
	"context"
	"strings"

	"sushishop/internal/models"
	"sushishop/internal/repo"
	"sushishop/internal/transport"
	"sushishop/pkg/hash"
)

func trimmed(s string) string { return strings.TrimSpace(s) }

// UserService backs the admin user management endpoints.
type UserService struct {
	Repo *repo.GormRepo
}

func userView(u *models.User) transport.UserView {
	return transport.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func (s *UserService) List(ctx context.Context) ([]transport.UserView, error) {
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]transport.UserView, len(users))
	for i := range users {
		views[i] = userView(&users[i])
	}
	return views, nil
}

func (s *UserService) Create(ctx context.Context, req transport.AdminCreateUserRequest) (*transport.UserView, error) {
	username := trimmed(req.Username)
	email := trimmed(req.Email)

	if err := s.Repo.CheckUserUnique(ctx, username, email, 0); err != nil {
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
		IsAdmin:      req.IsAdmin,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	v := userView(&user)
	return &v, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.AdminUpdateUserRequest) (*transport.UserView, error) {
	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	username := trimmed(req.Username)
	email := trimmed(req.Email)

	if err := s.Repo.CheckUserUnique(ctx, username, email, id); err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = email
	user.IsAdmin = req.IsAdmin

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	v := userView(user)
	return &v, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, isAdmin bool) error {
	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	user.IsAdmin = isAdmin
	return s.Repo.SaveUser(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repo.GetUserByID(ctx, id); err != nil {
		return err
	}
	return s.Repo.DeleteUser(ctx, id)
}
