package main

import (
	"fmt"
	"os"

	"github.com/beststore/beststore/internal/api"
	"github.com/beststore/beststore/internal/config"
	"github.com/beststore/beststore/internal/database"
	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
	"github.com/beststore/beststore/internal/handler"
	"github.com/beststore/beststore/internal/logger"
	"github.com/beststore/beststore/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [BestStore] Starting server...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	listingRepo := repository.NewListingRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, sessionRepo, cfg, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	listingService := service.NewListingService(listingRepo, categoryRepo, userRepo, favoriteRepo, appLogger)
	questionService := service.NewQuestionService(questionRepo, listingRepo, appLogger)
	favoriteService := service.NewFavoriteService(favoriteRepo, listingRepo, appLogger)
	purchaseService := service.NewPurchaseService(purchaseRepo, listingRepo, appLogger)

	// 6. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, cfg, appLogger)
	categoryHandler := handler.NewCategoryHandler(categoryService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	listingHandler := handler.NewListingHandler(listingService, appLogger)
	questionHandler := handler.NewQuestionHandler(questionService, appLogger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, appLogger)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 7. Initialize Login Rate Limiter
	loginLimiter, err := middleware.NewLoginRateLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		loginLimiter = middleware.NewNoOpLoginRateLimiter(appLogger)
	}
	defer loginLimiter.Close()

	// 8. Setup Router
	r := api.SetupRouter(
		authHandler,
		categoryHandler,
		userHandler,
		listingHandler,
		questionHandler,
		favoriteHandler,
		purchaseHandler,
		authMiddleware,
		loginLimiter,
		appLogger,
	)

	// 9. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [BestStore] HTTP Server running...", "addr", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
