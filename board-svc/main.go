package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/GlennDumoulin/food-orders/board-svc/internal/api/http"
	"github.com/GlennDumoulin/food-orders/board-svc/internal/service"
	"github.com/GlennDumoulin/food-orders/board-svc/internal/storage"
	"github.com/GlennDumoulin/food-orders/config"

	"go.uber.org/zap"
)

const consumerGroup = "board-svc"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET_KEY must be set")
	}

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, config.OrderEventsTopic, consumerGroup)
	defer reader.Close()

	store := storage.NewStore(rdb, logger)
	consumer := service.NewConsumer(reader, store, logger)
	board := service.NewBoardService(store, storage.NewSessionVerifier(rdb, cfg.JWTSecret))

	server := &http.Server{
		Addr:              cfg.BoardAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(board, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("board service starting", zap.String("addr", cfg.BoardAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("board service stopped")
}
