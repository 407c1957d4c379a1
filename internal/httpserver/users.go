package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sushishop/internal/service"
	"sushishop/internal/transport"
	"sushishop/internal/validation"
	"sushishop/pkg/logging"
)

// UsersHTTP serves the admin-only user management endpoints.
type UsersHTTP struct {
	Svc      *service.UserService
	Validate *validation.Validator
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}
	return uint(id), nil
}

func (h *UsersHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_users_list")

	users, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("users_list_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list users")
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UsersHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_users_create")

	var req transport.AdminCreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_create_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if errs := h.Validate.Validate(req); errs != nil {
		l.Warn("user_create_failed", "status", 400, "reason", "validation")
		return validationError(c, errs)
	}

	user, err := h.Svc.Create(ctx, req)
	if err != nil {
		if isConflict(err) {
			l.Warn("user_create_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("user_create_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create user")
	}

	l.Info("user_create_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UsersHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_users_update")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_update_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if errs := h.Validate.Validate(req); errs != nil {
		l.Warn("user_update_failed", "status", 400, "reason", "validation")
		return validationError(c, errs)
	}

	user, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("user_update_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		case isConflict(err):
			l.Warn("user_update_failed", "status", 400, "reason", err.Error())
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			l.Error("user_update_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update user")
		}
	}

	l.Info("user_update_success", "user_id", id)
	return c.JSON(http.StatusOK, user)
}

func (h *UsersHTTP) UpdateRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_users_update_role")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_role_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateRole(ctx, id, req.IsAdmin); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("user_role_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("user_role_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update role")
	}

	l.Info("user_role_success", "user_id", id, "is_admin", req.IsAdmin)
	return c.NoContent(http.StatusNoContent)
}

func (h *UsersHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_users_delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("user_delete_failed", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("user_delete_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete user")
	}

	l.Info("user_delete_success", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}
