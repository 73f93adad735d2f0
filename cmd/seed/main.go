package main

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saraccmululo/auction-platform-app/internal/config"
	"github.com/saraccmululo/auction-platform-app/internal/db"
	"github.com/saraccmululo/auction-platform-app/internal/logger"
	"github.com/saraccmululo/auction-platform-app/internal/model"
	"github.com/saraccmululo/auction-platform-app/internal/repository"
)

var categoryNames = []string{"Electronics", "Fashion", "Home", "Toys", "Books"}

type seedUser struct {
	username string
	email    string
	password string
}

var seedUsers = []seedUser{
	{"alice", "alice@example.com", "password123"},
	{"bob", "bob@example.com", "password123"},
}

// Seeds demo categories, users, and a couple of listings so a fresh
// environment has something to browse and bid on.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init failed", map[string]any{"error": err.Error()})
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("auto-migrate failed", map[string]any{"error": err.Error()})
	}

	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)

	categories := make(map[string]*model.Category, len(categoryNames))
	for _, name := range categoryNames {
		existing, err := categoryRepo.FindByName(ctx, name)
		if err == nil {
			categories[name] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			logger.Fatal("lookup category failed", map[string]any{"name": name, "error": err.Error()})
		}
		category := &model.Category{Name: name}
		if err := categoryRepo.Create(ctx, category); err != nil {
			logger.Fatal("create category failed", map[string]any{"name": name, "error": err.Error()})
		}
		categories[name] = category
	}

	users := make(map[string]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := userRepo.FindByUsername(ctx, su.username)
		if err == nil {
			users[su.username] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			logger.Fatal("lookup user failed", map[string]any{"username": su.username, "error": err.Error()})
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), 10)
		if err != nil {
			logger.Fatal("hash password failed", map[string]any{"error": err.Error()})
		}
		user := &model.User{Username: su.username, Email: su.email, PasswordHash: string(hash)}
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Fatal("create user failed", map[string]any{"username": su.username, "error": err.Error()})
		}
		users[su.username] = user
	}

	electronics := categories["Electronics"].ID
	books := categories["Books"].ID
	listings := []*model.Listing{
		{
			Title:       "Vintage film camera",
			Description: "35mm rangefinder in working condition, light meter included.",
			StartBid:    decimal.NewFromFloat(45.00),
			IsActive:    true,
			OwnerID:     users["alice"].ID,
			CategoryID:  &electronics,
		},
		{
			Title:       "First edition paperback",
			Description: "Shelf wear on the spine, otherwise clean pages.",
			StartBid:    decimal.NewFromFloat(12.50),
			IsActive:    true,
			OwnerID:     users["bob"].ID,
			CategoryID:  &books,
		},
	}
	for _, listing := range listings {
		if err := listingRepo.Create(ctx, listing); err != nil {
			logger.Fatal("create listing failed", map[string]any{"title": listing.Title, "error": err.Error()})
		}
	}

	logger.Info("seed complete", map[string]any{
		"categories": len(categories),
		"users":      len(users),
		"listings":   len(listings),
	})
}
