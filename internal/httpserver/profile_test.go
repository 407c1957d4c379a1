package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"sushishop/internal/models"
	"sushishop/internal/upload"
)

func TestProfileGet(t *testing.T) {
	env := newTestEnv(t)
	res := env.register("hana", "hana@example.com", "secret123")

	rec := env.doJSON(http.MethodGet, "/api/profile", nil, res.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Username       string  `json:"username"`
		Email          string  `json:"email"`
		AvatarFileName *string `json:"avatar_file_name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "hana", body.Username)
	require.Nil(t, body.AvatarFileName)
}

func TestProfileRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/profile", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileUpdate(t *testing.T) {
	env := newTestEnv(t)
	res := env.register("hana", "hana@example.com", "secret123")

	rec := env.doForm(http.MethodPut, "/api/profile", map[string]string{
		"username":     "hana2",
		"email":        "hana2@example.com",
		"new_password": "newsecret",
	}, nil, res.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// old password no longer works, new one does
	login := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"identifier": "hana2",
		"password":   "secret123",
	}, "")
	require.Equal(t, http.StatusBadRequest, login.Code)

	login = env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"identifier": "hana2",
		"password":   "newsecret",
	}, "")
	require.Equal(t, http.StatusOK, login.Code)
}

func TestProfileUpdateConflict(t *testing.T) {
	env := newTestEnv(t)
	env.register("hana", "hana@example.com", "secret123")
	other := env.register("kenji", "kenji@example.com", "secret123")

	rec := env.doForm(http.MethodPut, "/api/profile", map[string]string{
		"username": "hana",
		"email":    "kenji@example.com",
	}, nil, other.Token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "username already taken")
}

func TestProfileAvatarUploadReplacesOld(t *testing.T) {
	env := newTestEnv(t)
	res := env.register("hana", "hana@example.com", "secret123")

	rec := env.doForm(http.MethodPut, "/api/profile", map[string]string{
		"username": "hana",
		"email":    "hana@example.com",
	}, &testFile{field: "avatar", name: "me.png", content: []byte("png-bytes")}, res.Token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var u models.User
	require.NoError(t, env.db.First(&u, res.UserID).Error)
	require.NotNil(t, u.AvatarFileName)
	first := *u.AvatarFileName

	_, err := os.Stat(env.files.Path(upload.AvatarsDir, first))
	require.NoError(t, err)

	rec = env.doForm(http.MethodPut, "/api/profile", map[string]string{
		"username": "hana",
		"email":    "hana@example.com",
	}, &testFile{field: "avatar", name: "me2.jpg", content: []byte("jpg-bytes")}, res.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, env.db.First(&u, res.UserID).Error)
	require.NotNil(t, u.AvatarFileName)
	require.NotEqual(t, first, *u.AvatarFileName)

	_, err = os.Stat(env.files.Path(upload.AvatarsDir, first))
	require.True(t, os.IsNotExist(err))
}
