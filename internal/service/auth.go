package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sushishop/internal/models"
	"sushishop/internal/mykafka"
	"sushishop/internal/repo"
	"sushishop/internal/transport"
	"sushishop/pkg/hash"
	"sushishop/pkg/logging"
	"sushishop/pkg/tokens"
)

// ErrInvalidCredentials is the single login failure. A missing user and a
// wrong password are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid username/email or password")

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *mykafka.Producer
}

func roleOf(u *models.User) string {
	if u.IsAdmin {
		return tokens.RoleAdmin
	}
	return tokens.RoleUser
}

func (s *AuthService) authResponse(u *models.User) (*transport.AuthResponse, error) {
	token, err := tokens.SignAccessToken(u.ID, u.Username, u.Email, roleOf(u), s.JWTSecret)
	if err != nil {
		return nil, err
	}
	return &transport.AuthResponse{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}, nil
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicUserEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}

// Register creates a user. The very first user becomes an admin.
func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*transport.AuthResponse, error) {
	username := trimmed(req.Username)
	email := trimmed(req.Email)

	if err := s.Repo.CheckUserUnique(ctx, username, email, 0); err != nil {
		return nil, err
	}

	total, err := s.Repo.CountUsers(ctx)
	if err != nil {
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
		IsAdmin:      total == 0,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return s.authResponse(&user)
}

// Login accepts a username or an email as the identifier.
func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.AuthResponse, error) {
	user, err := s.Repo.GetUserByIdentifier(ctx, trimmed(req.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_logged_in",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return s.authResponse(user)
}

// Me resolves the caller from the verified token subject.
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	return s.Repo.GetUserByID(ctx, userID)
}
