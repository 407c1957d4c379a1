package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sushishop/internal/models"
	"sushishop/internal/transport"
)

func TestUsersRequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.registerAdmin()
	user := env.register("kenji", "kenji@example.com", "secret123")

	rec := env.doJSON(http.MethodGet, "/api/admin/users", nil, user.Token)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.doJSON(http.MethodGet, "/api/admin/users", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsersListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAdmin()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 1; i <= 3; i++ {
		u := models.User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: "x",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.db.Create(&u).Error)
	}

	rec := env.doJSON(http.MethodGet, "/api/admin/users", nil, admin.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []transport.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 4)
	require.Equal(t, "admin", views[0].Username)
	require.Equal(t, "user3", views[1].Username)
	require.Equal(t, "user1", views[3].Username)
}

func TestUsersCreate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAdmin()

	rec := env.doJSON(http.MethodPost, "/api/admin/users", map[string]any{
		"username": "kenji",
		"email":    "kenji@example.com",
		"password": "secret123",
		"is_admin": true,
	}, admin.Token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view transport.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.True(t, view.IsAdmin)
	require.NotContains(t, rec.Body.String(), "password")

	// the created user can actually log in
	login := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"identifier": "kenji",
		"password":   "secret123",
	}, "")
	require.Equal(t, http.StatusOK, login.Code)
}

func TestUsersUpdateConflictExcludesSelf(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAdmin()
	other := env.register("kenji", "kenji@example.com", "secret123")

	// keeping your own username is not a conflict
	rec := env.doJSON(http.MethodPut, fmt.Sprintf("/api/admin/users/%d", other.UserID), map[string]any{
		"username": "kenji",
		"email":    "kenji@example.com",
		"is_admin": false,
	}, admin.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// taking someone else's is
	rec = env.doJSON(http.MethodPut, fmt.Sprintf("/api/admin/users/%d", other.UserID), map[string]any{
		"username": "admin",
		"email":    "kenji@example.com",
		"is_admin": false,
	}, admin.Token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "username already taken")
}

func TestUsersUpdateNotFound(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAdmin()

	rec := env.doJSON(http.MethodPut, "/api/admin/users/999", map[string]any{
		"username": "ghost",
		"email":    "ghost@example.com",
	}, admin.Token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersUpdateRole(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAdmin()
	other := env.register("kenji", "kenji@example.com", "secret123")

	rec := env.doJSON(http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", other.UserID), map[string]any{
		"is_admin": true,
	}, admin.Token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var u models.User
	require.NoError(t, env.db.First(&u, other.UserID).Error)
	require.True(t, u.IsAdmin)
}

func TestUsersDelete(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAdmin()
	other := env.register("kenji", "kenji@example.com", "secret123")

	rec := env.doJSON(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", other.UserID), nil, admin.Token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.doJSON(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", other.UserID), nil, admin.Token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersBadID(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAdmin()

	rec := env.doJSON(http.MethodDelete, "/api/admin/users/abc", nil, admin.Token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
