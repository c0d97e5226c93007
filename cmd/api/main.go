package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"risuwork/internal/app"
	"risuwork/internal/config"
	"risuwork/internal/database"
	apphttp "risuwork/internal/http"
	"risuwork/internal/http/handlers"
	httpmw "risuwork/internal/http/middleware"
	"risuwork/internal/http/response"
	"risuwork/internal/observability"
	"risuwork/internal/repository/postgres"
	"risuwork/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	response.SetLogger(logger)

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	accountService := app.NewAccountService(userRepo, companyRepo)
	jobService := app.NewJobService(jobRepo, userRepo, applicationRepo)
	applicationService := app.NewApplicationService(applicationRepo, userRepo, jobRepo)
	searchService := app.NewSearchService(jobRepo, companyRepo)

	tokenProvider := security.NewTokenProvider(cfg.TokenSecret)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("using redis rate limiter", "addr", cfg.RedisAddr)
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AccountHandler:     handlers.NewAccountHandler(accountService, tokenProvider, cfg.TokenTTL, limiter),
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, limiter),
		SearchHandler:      handlers.NewSearchHandler(searchService),
		AuthMiddleware:     httpmw.NewAuthMiddleware(tokenProvider),
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
