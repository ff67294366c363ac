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

	"github.com/GlennDumoulin/food-orders/config"
	httpapi "github.com/GlennDumoulin/food-orders/storefront-svc/internal/api/http"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/identity"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/storage"

	"go.uber.org/zap"
)

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

	db := config.MustInitPostgres(cfg, logger)
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg, config.OrderEventsTopic)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	blobs := storage.NewFileBlobStore(cfg.UploadDir, cfg.PublicBaseURL)

	provider := identity.NewPasswordProvider(repo, storage.NewRedisDenylist(rdb), cfg.JWTSecret, cfg.SessionTTL)
	roles := service.NewRoleResolver(repo)

	orders := service.NewOrderService(
		repo,
		repo,
		storage.NewRedisCartLock(rdb, cfg.CartLockTTL),
		storage.NewKafkaPublisher(writer),
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		logger,
		service.OrderOptions{
			Location:            cfg.Location,
			ResetPickupOnCancel: cfg.ResetPickupOnCancel,
		},
	)

	handler := httpapi.NewHandler(
		service.NewAccountService(provider, repo, repo, roles, blobs, logger),
		orders,
		service.NewPriceService(repo, repo, repo, logger),
		service.NewRestaurantService(repo, repo, blobs, logger),
		service.NewSizeService(repo),
		service.NewDishService(repo, blobs, logger),
		logger,
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, cfg.UploadDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("storefront service starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("storefront service stopped")
}
