package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sushishop/internal/middleware"
	"sushishop/internal/repo"
	"sushishop/internal/service"
	"sushishop/internal/transport"
	"sushishop/internal/validation"
	"sushishop/pkg/logging"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Validate *validation.Validator
}

func validationError(c echo.Context, errs []validation.FieldError) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"message": "validation failed",
		"errors":  errs,
	})
}

func isConflict(err error) bool {
	return errors.Is(err, repo.ErrUsernameTaken) || errors.Is(err, repo.ErrEmailTaken)
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if errs := h.Validate.Validate(req); errs != nil {
		l.Warn("register_failed", "status", 400, "reason", "validation")
		return validationError(c, errs)
	}

	res, err := h.Svc.Register(ctx, req)
	if err != nil {
		if isConflict(err) {
			l.Warn("register_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("register_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register user")
	}

	l.Info("register_success", "user_id", res.UserID)
	return c.JSON(http.StatusCreated, res)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if errs := h.Validate.Validate(req); errs != nil {
		l.Warn("login_failed", "status", 400, "reason", "validation")
		return validationError(c, errs)
	}

	res, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 400, "reason", "invalid credentials")
			return echo.NewHTTPError(http.StatusBadRequest, service.ErrInvalidCredentials.Error())
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	l.Info("login_success", "user_id", res.UserID)
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_me")

	user, err := h.Svc.Me(ctx, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("me_failed", "status", 401, "reason", "user no longer exists")
			return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
		}
		l.Error("me_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load user")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	})
}
