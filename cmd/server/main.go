package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/saraccmululo/auction-platform-app/docs" // swagger docs

	"github.com/saraccmululo/auction-platform-app/internal/auth"
	"github.com/saraccmululo/auction-platform-app/internal/cache"
	"github.com/saraccmululo/auction-platform-app/internal/config"
	"github.com/saraccmululo/auction-platform-app/internal/db"
	"github.com/saraccmululo/auction-platform-app/internal/handler"
	"github.com/saraccmululo/auction-platform-app/internal/logger"
	"github.com/saraccmululo/auction-platform-app/internal/model"
	"github.com/saraccmululo/auction-platform-app/internal/repository"
	"github.com/saraccmululo/auction-platform-app/internal/router"
	"github.com/saraccmululo/auction-platform-app/internal/service"
)

// @title Auction Platform API
// @version 1.0
// @description Online auction marketplace: listings, bids, watchlists, and comments with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init failed", map[string]any{"error": err.Error()})
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn("RESET_DB=true detected, dropping all tables", nil)
		tables := []interface{}{
			&model.Comment{},
			&model.Bid{},
			&model.Listing{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn("failed to drop table (may not exist)", map[string]any{"error": err.Error()})
			}
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("auto-migrate failed", map[string]any{"error": err.Error()})
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)
	bidRepo := repository.NewBidRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	listingService := service.NewListingService(listingRepo, bidRepo, commentRepo, categoryRepo, userRepo, cacheClient)
	bidService := service.NewBidService(listingRepo, bidRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, listingRepo)
	watchlistService := service.NewWatchlistService(userRepo, listingRepo)
	categoryService := service.NewCategoryService(categoryRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService, jwtService)
	bidHandler := handler.NewBidHandler(bidService)
	commentHandler := handler.NewCommentHandler(commentService)
	watchlistHandler := handler.NewWatchlistHandler(watchlistService)
	categoryHandler := handler.NewCategoryHandler(categoryService, listingService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		listingHandler,
		bidHandler,
		commentHandler,
		watchlistHandler,
		categoryHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info("server starting", map[string]any{"addr": addr})
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start failed", map[string]any{"error": err.Error()})
	}
}
