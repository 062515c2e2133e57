package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/blogly/config"
	"github.com/d60-Lab/blogly/internal/api/handler"
	"github.com/d60-Lab/blogly/internal/api/router"
	"github.com/d60-Lab/blogly/internal/cache"
	"github.com/d60-Lab/blogly/internal/repository"
	"github.com/d60-Lab/blogly/internal/service"
	"github.com/d60-Lab/blogly/pkg/database"
	"github.com/d60-Lab/blogly/pkg/logger"
	"github.com/d60-Lab/blogly/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}
	defer database.Close(db)
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("database handle", zap.Error(err))
	}

	var postCache cache.PostCache = cache.Noop{}
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("connect redis", zap.Error(err))
		}
		defer rdb.Close()
		postCache = cache.NewRedisPostCache(rdb, cfg.Redis.TTL)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)
	h := handler.New(
		service.NewUserService(userRepo, postCache),
		service.NewPostService(userRepo, postRepo, postCache),
		service.NewTagService(tagRepo),
		sqlDB,
	)

	gin.SetMode(cfg.Server.Mode)
	opts := router.Options{RateLimit: cfg.Server.RateLimit, RateBurst: cfg.Server.RateBurst}
	if cfg.Tracing.Enabled {
		opts.ServiceName = cfg.Tracing.ServiceName
	}
	engine, err := router.New(h, opts)
	if err != nil {
		logger.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown", zap.Error(err))
	}
}
