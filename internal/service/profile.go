package service

import (
	"context"
	"mime/multipart"

	"sushishop/internal/models"
	"sushishop/internal/repo"
	"sushishop/internal/transport"
	"sushishop/internal/upload"
	"sushishop/pkg/hash"
	"sushishop/pkg/logging"
)

// ProfileService lets an authenticated user read and edit their own record.
type ProfileService struct {
	Repo  *repo.GormRepo
	Files *upload.Store
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.User, error) {
	return s.Repo.GetUserByID(ctx, userID)
}

// Update overwrites username/email, re-hashes the password when a new one is
// supplied and replaces the avatar file when one is uploaded. The old avatar
// file is removed before the new one is written, as a best effort.
func (s *ProfileService) Update(ctx context.Context, userID uint, req transport.ProfileUpdateRequest, avatar *multipart.FileHeader) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	username := trimmed(req.Username)
	email := trimmed(req.Email)

	if err := s.Repo.CheckUserUnique(ctx, username, email, userID); err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = email

	if req.NewPassword != "" {
		pwHash, err := hash.HashPassword(req.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = pwHash
	}

	if avatar != nil && avatar.Size > 0 {
		if user.AvatarFileName != nil {
			if err := s.Files.Remove(upload.AvatarsDir, *user.AvatarFileName); err != nil {
				logging.FromContext(ctx).Warn("old avatar not removed", "file", *user.AvatarFileName, "error", err)
			}
		}

		name, err := s.Files.Save(upload.AvatarsDir, avatar)
		if err != nil {
			return nil, err
		}
		user.AvatarFileName = &name
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
