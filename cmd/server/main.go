package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"sushishop/internal/config"
	"sushishop/internal/es"
	"sushishop/internal/httpserver"
	"sushishop/internal/models"
	"sushishop/internal/mykafka"
	"sushishop/internal/repo"
	"sushishop/internal/service"
	"sushishop/internal/upload"
	"sushishop/internal/validation"
	pkgdb "sushishop/pkg/db"
	"sushishop/pkg/logging"
	loggingmw "sushishop/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := models.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
	}

	var indexer *es.Indexer
	if cfg.ESURL != "" {
		client, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		indexer = es.NewIndexer(client, "products")
	}

	gormRepo := &repo.GormRepo{DB: db}
	files := &upload.Store{Root: cfg.UploadRoot}
	validate := validation.New()

	authSvc := &service.AuthService{Repo: gormRepo, JWTSecret: cfg.JWTSecret, Producer: producer}
	userSvc := &service.UserService{Repo: gormRepo}
	profileSvc := &service.ProfileService{Repo: gormRepo, Files: files}
	catalogSvc := &service.CatalogService{Repo: gormRepo, Files: files, Producer: producer, Search: indexer}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	e.Static("/uploads", cfg.UploadRoot)

	deps := &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc, Validate: validate},
		UsersHandler:   &httpserver.UsersHTTP{Svc: userSvc, Validate: validate},
		ProfileHandler: &httpserver.ProfileHTTP{Svc: profileSvc, Validate: validate},
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc, Validate: validate},
		JWTSecret:      cfg.JWTSecret,
	}
	if indexer != nil {
		deps.SearchHandler = &httpserver.SearchHTTP{Indexer: indexer}
	}
	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if err := producer.Close(); err != nil {
		log.Printf("kafka close: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Printf("%s stopped", cfg.ServiceName)
}
