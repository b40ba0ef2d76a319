package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/asiburrahmanprince/ecommerce/config"
	"github.com/asiburrahmanprince/ecommerce/internal/app/controller"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/internal/app/service"
	"github.com/asiburrahmanprince/ecommerce/internal/db"
	"github.com/asiburrahmanprince/ecommerce/internal/middleware"
	"github.com/asiburrahmanprince/ecommerce/internal/router"
	"github.com/asiburrahmanprince/ecommerce/internal/scheduler"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"github.com/asiburrahmanprince/ecommerce/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Marketplace Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed default admin account (no-op on a populated database)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize redis (optional, enables the refresh token blacklist)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize redis", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close redis connection", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	shopkeeperRepo := repository.NewShopkeeperRepository(db.GetDB())
	customerRepo := repository.NewCustomerRepository(db.GetDB())
	shopRepo := repository.NewShopRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		db.GetDB(),
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	userService := service.NewUserService(db.GetDB(), userRepo)
	shopkeeperService := service.NewShopkeeperService(db.GetDB(), shopkeeperRepo, userRepo)
	customerService := service.NewCustomerService(db.GetDB(), customerRepo, userRepo)
	shopService := service.NewShopService(db.GetDB(), shopRepo, shopkeeperRepo)
	productService := service.NewProductService(db.GetDB(), productRepo, shopRepo, shopkeeperRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo, customerRepo)
	orderService := service.NewOrderService(db.GetDB(), orderRepo, customerRepo, shopRepo, productRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	userController := controller.NewUserController(userService)
	shopController := controller.NewShopController(shopService)
	shopkeeperController := controller.NewShopkeeperController(shopkeeperService)
	customerController := controller.NewCustomerController(customerService)
	productController := controller.NewProductController(productService)
	reviewController := controller.NewReviewController(reviewService)
	orderController := controller.NewOrderController(orderService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start the nightly shop purge
	purgeScheduler := scheduler.NewShopPurgeScheduler(shopService)
	if err := purgeScheduler.Start(); err != nil {
		logger.Fatal("Failed to start shop purge scheduler", err)
	}
	defer purgeScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		userController,
		shopController,
		shopkeeperController,
		customerController,
		productController,
		reviewController,
		orderController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
