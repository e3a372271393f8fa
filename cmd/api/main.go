package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/elisfemina/react-mesto-api-full/internal/core/auth"
	"github.com/elisfemina/react-mesto-api-full/internal/core/config"
	"github.com/elisfemina/react-mesto-api-full/internal/core/database"
	"github.com/elisfemina/react-mesto-api-full/internal/core/logger"
	"github.com/elisfemina/react-mesto-api-full/internal/core/server"
	"github.com/elisfemina/react-mesto-api-full/internal/repo"
	"github.com/elisfemina/react-mesto-api-full/internal/service"
	"github.com/elisfemina/react-mesto-api-full/internal/transport/http/handler"
	"github.com/elisfemina/react-mesto-api-full/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	// 数据库（失败直接 Fatal）
	db, err := database.Connect(context.Background(), database.Opts{
		URI:               cfg.Mongo.URI,
		Database:          cfg.Mongo.Database,
		MaxPoolSize:       cfg.Mongo.MaxPoolSize,
		ConnectTimeoutSec: cfg.Mongo.ConnectTimeoutSec,
	})
	if err != nil {
		log.Fatal("mongo connect", zap.Error(err))
	}
	log.Info("database connected", zap.String("database", cfg.Mongo.Database))

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal("ensure indexes", zap.Error(err))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.TTLDays) * 24 * time.Hour,
	}

	// 依赖装配
	userRepo := repo.NewUserRepo(db)
	cardRepo := repo.NewCardRepo(db)
	userSvc := service.NewUserService(userRepo, jwter)
	cardSvc := service.NewCardService(cardRepo)
	userH := handler.NewUserHandler(userSvc)
	cardH := handler.NewCardHandler(cardSvc)

	r := router.NewAPIEngine(log, userH, cardH, jwter)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started", zap.String("addr", addr))

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	_ = db.Client().Disconnect(ctx)
	log.Info("api stopped gracefully")
}
