package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Aadi-1821/RustynKart-backend/internal/api/http"
	"github.com/Aadi-1821/RustynKart-backend/internal/api/http/handlers"
	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/cart"
	"github.com/Aadi-1821/RustynKart-backend/internal/config"
	"github.com/Aadi-1821/RustynKart-backend/internal/events"
	"github.com/Aadi-1821/RustynKart-backend/internal/media"
	"github.com/Aadi-1821/RustynKart-backend/internal/observability"
	"github.com/Aadi-1821/RustynKart-backend/internal/persistence"
	"github.com/Aadi-1821/RustynKart-backend/internal/repository"
	"github.com/Aadi-1821/RustynKart-backend/internal/service"
	"github.com/Aadi-1821/RustynKart-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	uploader, err := media.NewUploader(ctx, cfg.Media)
	if err != nil {
		logger.Fatal("failed to init media storage", zap.Error(err))
	}
	if uploader == nil {
		logger.Warn("MEDIA_S3_BUCKET not provided; product images disabled")
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	tokenMgr := auth.NewTokenManager(cfg.Auth.JWTSecret)
	guard := auth.NewSessionGuard(tokenMgr, cfg.Auth.AdminEmail)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:   userRepo,
		TokenMgr:   tokenMgr,
		Dispatcher: dispatcher,
	})
	productService := service.NewProductService(productRepo, uploader)
	orderService := service.NewOrderService(orderRepo, dispatcher)
	cartAggregator := cart.NewAggregator(cart.NewRedisStore(redis.Client))

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: 20 * 1024 * 1024,
	})
	httptransport.RegisterMiddlewares(app, cfg, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.App.Env, pg, redis),
		Auth:     handlers.NewAuthHandler(authService, cfg.App.IsProduction()),
		Users:    handlers.NewUsersHandler(authService),
		Products: handlers.NewProductsHandler(productService),
		Cart:     handlers.NewCartHandler(cartAggregator),
		Orders:   handlers.NewOrdersHandler(orderService),
		Guard:    guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
