package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sushishop/internal/models"
	"sushishop/internal/repo"
	"sushishop/internal/service"
	"sushishop/internal/transport"
	"sushishop/internal/upload"
	"sushishop/internal/util"
	"sushishop/internal/validation"
	"sushishop/pkg/logging"
	loggingmw "sushishop/pkg/middleware/logging"
)

var testSecret = []byte("test-secret")

type testEnv struct {
	t     *testing.T
	e     *echo.Echo
	db    *gorm.DB
	files *upload.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", util.RandomToken(12))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	gormRepo := &repo.GormRepo{DB: db}
	files := upload.NewStore(t.TempDir())
	validate := validation.New()

	e := echo.New()
	e.Use(loggingmw.RequestLogger(logging.New("error")))
	Register(e, &Deps{
		AuthHandler:    &AuthHTTP{Svc: &service.AuthService{Repo: gormRepo, JWTSecret: testSecret}, Validate: validate},
		UsersHandler:   &UsersHTTP{Svc: &service.UserService{Repo: gormRepo}, Validate: validate},
		ProfileHandler: &ProfileHTTP{Svc: &service.ProfileService{Repo: gormRepo, Files: files}, Validate: validate},
		ProductHandler: &ProductHTTP{Svc: &service.CatalogService{Repo: gormRepo, Files: files}, Validate: validate},
		JWTSecret:      testSecret,
	})

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &testEnv{t: t, e: e, db: db, files: files}
}

func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

type testFile struct {
	field   string
	name    string
	content []byte
}

func (env *testEnv) doForm(method, path string, fields map[string]string, file *testFile, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(env.t, w.WriteField(k, v))
	}
	if file != nil {
		fw, err := w.CreateFormFile(file.field, file.name)
		require.NoError(env.t, err)
		_, err = fw.Write(file.content)
		require.NoError(env.t, err)
	}
	require.NoError(env.t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) register(username, email, password string) transport.AuthResponse {
	rec := env.doJSON(http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())

	var res transport.AuthResponse
	require.NoError(env.t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(env.t, res.Token)
	return res
}

// registerAdmin registers into an empty database, so the user comes back
// with the admin role.
func (env *testEnv) registerAdmin() transport.AuthResponse {
	res := env.register("admin", "admin@example.com", "secret123")
	require.True(env.t, res.IsAdmin)
	return res
}

func productForm(name, sku string) map[string]string {
	return map[string]string{
		"name":  name,
		"sku":   sku,
		"price": "9.99",
		"stock": "5",
	}
}
