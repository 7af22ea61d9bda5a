package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/carrierx/carrierx/internal/config"
	"github.com/carrierx/carrierx/internal/db"
	"github.com/carrierx/carrierx/internal/events"
	"github.com/carrierx/carrierx/internal/httpserver"
	"github.com/carrierx/carrierx/internal/logging"
	"github.com/carrierx/carrierx/internal/maintenance"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/service"
	"github.com/carrierx/carrierx/internal/session"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var cache *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis url: %v", err)
		}
		cache = redis.NewClient(opts)
		if err := cache.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
	}

	r := repo.New(database)
	resolver := &session.Resolver{Secret: cfg.JWTSecret}
	cookies := session.CookieManager{Secure: cfg.IsProduction()}

	deps := &httpserver.Deps{
		Auth: &httpserver.AuthHTTP{
			Svc:      &service.AuthService{Repo: r, Producer: producer, Secret: cfg.JWTSecret},
			Cookies:  cookies,
			Resolver: resolver,
		},
		Jobs: &httpserver.JobsHTTP{
			Jobs:     &service.JobService{Repo: r, Producer: producer},
			Apps:     &service.ApplicationService{Repo: r, Producer: producer},
			Resolver: resolver,
		},
		Blogs:     &httpserver.BlogsHTTP{Svc: &service.BlogService{Repo: r}},
		Companies: &httpserver.CompaniesHTTP{Svc: &service.CompanyService{Repo: r}},
		Events:    &httpserver.EventsHTTP{Svc: &service.EventService{Repo: r}},
		Search:    &httpserver.SearchHTTP{Svc: &service.SearchService{Repo: r}},
		Admin: &httpserver.AdminHTTP{
			Stats:    &service.StatsService{Repo: r, Cache: cache, CacheTTL: time.Minute},
			Resolver: resolver,
		},
		Resolver: resolver,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	httpserver.Register(e, deps)

	sweeper := maintenance.NewSweeper(r, logger)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatalf("sweeper init: %v", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	sweeper.Stop()

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}
	if cache != nil {
		if err := cache.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
