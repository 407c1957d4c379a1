package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sushishop/internal/middleware"
	"sushishop/internal/models"
	"sushishop/internal/service"
	"sushishop/internal/transport"
	"sushishop/internal/validation"
	"sushishop/pkg/logging"
)

type ProfileHTTP struct {
	Svc      *service.ProfileService
	Validate *validation.Validator
}

func profileView(u *models.User) echo.Map {
	return echo.Map{
		"id":               u.ID,
		"username":         u.Username,
		"email":            u.Email,
		"is_admin":         u.IsAdmin,
		"avatar_file_name": u.AvatarFileName,
		"created_at":       u.CreatedAt,
	}
}

func (h *ProfileHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile_get")

	user, err := h.Svc.Get(ctx, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("profile_get_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("profile_get_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load profile")
	}

	return c.JSON(http.StatusOK, profileView(user))
}

func (h *ProfileHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile_update")

	var req transport.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("profile_update_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if errs := h.Validate.Validate(req); errs != nil {
		l.Warn("profile_update_failed", "status", 400, "reason", "validation")
		return validationError(c, errs)
	}

	avatar, _ := c.FormFile("avatar")

	user, err := h.Svc.Update(ctx, middleware.UserID(c), req, avatar)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("profile_update_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		case isConflict(err):
			l.Warn("profile_update_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("profile_update_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update profile")
		}
	}

	l.Info("profile_update_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, profileView(user))
}
