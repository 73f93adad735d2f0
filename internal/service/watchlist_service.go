package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/model"
	"github.com/saraccmululo/auction-platform-app/internal/repository"
)

// WatchlistService manages per-user watchlist membership.
type WatchlistService interface {
	// Toggle flips the listing's membership on the user's watchlist and
	// returns the new membership state.
	Toggle(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Listing, error)
}

type watchlistService struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(userRepo repository.UserRepository, listingRepo repository.ListingRepository) WatchlistService {
	return &watchlistService{
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

// Toggle adds the listing to the watchlist if absent, removes it if present.
func (s *watchlistService) Toggle(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, apperrors.NewNotFoundError("listing")
		}
		return false, fmt.Errorf("load listing: %w", err)
	}

	watching, err := s.userRepo.IsWatching(ctx, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("check watchlist: %w", err)
	}

	if watching {
		if err := s.userRepo.RemoveFromWatchlist(ctx, userID, listingID); err != nil {
			return false, fmt.Errorf("remove from watchlist: %w", err)
		}
		return false, nil
	}
	if err := s.userRepo.AddToWatchlist(ctx, userID, listingID); err != nil {
		return false, fmt.Errorf("add to watchlist: %w", err)
	}
	return true, nil
}

// List returns the user's watched listings.
func (s *watchlistService) List(ctx context.Context, userID uuid.UUID) ([]model.Listing, error) {
	listings, err := s.userRepo.ListWatchlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return listings, nil
}
