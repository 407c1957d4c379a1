package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"sushishop/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	UsersHandler   *UsersHTTP
	ProfileHandler *ProfileHTTP
	ProductHandler *ProductHTTP
	SearchHandler  *SearchHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := middleware.NewAuth(d.JWTSecret)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, authMW.RequireAuth)

	users := e.Group("/api/admin/users", authMW.RequireAdmin)
	users.GET("", d.UsersHandler.List)
	users.POST("", d.UsersHandler.Create)
	users.PUT("/:id", d.UsersHandler.Update)
	users.PUT("/:id/role", d.UsersHandler.UpdateRole)
	users.DELETE("/:id", d.UsersHandler.Delete)

	profile := e.Group("/api/profile", authMW.RequireAuth, echomw.BodyLimit("10M"))
	profile.GET("", d.ProfileHandler.Get)
	profile.PUT("", d.ProfileHandler.Update)

	// Product routes carry no auth, mutations included.
	products := e.Group("/api/products")
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
	products.GET("", d.ProductHandler.List)
	products.GET("/:id", d.ProductHandler.Get)
	products.GET("/by-slug/:slug", d.ProductHandler.GetBySlug)

	mutations := products.Group("", echomw.BodyLimit("10M"))
	mutations.POST("", d.ProductHandler.Create)
	mutations.PUT("/:id", d.ProductHandler.Update)
	mutations.DELETE("/:id", d.ProductHandler.Delete)
}
