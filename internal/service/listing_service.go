package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/saraccmululo/auction-platform-app/internal/cache"
	apperrors "github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/logger"
	"github.com/saraccmululo/auction-platform-app/internal/model"
	"github.com/saraccmululo/auction-platform-app/internal/repository"
)

const listingCacheTTL = 5 * time.Minute

// CreateListingInput carries the raw user-supplied fields for a new listing.
// StartBid arrives as a string so the engine owns numeric validation.
type CreateListingInput struct {
	Title       string
	Description string
	ImageURL    string
	StartBid    string
	CategoryID  *uuid.UUID
}

// ListingDetail is the aggregate a listing page renders: the listing itself,
// its current price, its comment log newest-first, and whether the viewer is
// watching it.
type ListingDetail struct {
	Listing      *model.Listing  `json:"listing"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Comments     []model.Comment `json:"comments"`
	Watching     bool            `json:"watching"`
}

// ListingService handles the listing lifecycle: creation, browsing, the
// close-auction transition, and deletion.
type ListingService interface {
	// CreateListing validates every field, accumulating all violations rather
	// than stopping at the first, then creates an active listing.
	CreateListing(ctx context.Context, ownerID uuid.UUID, input CreateListingInput) (*model.Listing, error)
	// CloseListing deactivates a listing and records the winner, the bidder
	// holding the highest bid at close time. Only the owner may close;
	// re-closing an inactive listing recomputes the same winner.
	CloseListing(ctx context.Context, listingID, requesterID uuid.UUID) (*model.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	// GetListingDetail assembles the listing page aggregate. viewerID is nil
	// for anonymous viewers, whose watchlist state is always false.
	GetListingDetail(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*ListingDetail, error)
	ListActive(ctx context.Context) ([]model.Listing, error)
	ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Listing, error)
	// DeleteListing removes an owned listing with its bids and comments.
	DeleteListing(ctx context.Context, listingID, requesterID uuid.UUID) error
}

type listingService struct {
	listingRepo  repository.ListingRepository
	bidRepo      repository.BidRepository
	commentRepo  repository.CommentRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	cache        *cache.Client
}

// NewListingService creates a new listing service.
func NewListingService(
	listingRepo repository.ListingRepository,
	bidRepo repository.BidRepository,
	commentRepo repository.CommentRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) ListingService {
	return &listingService{
		listingRepo:  listingRepo,
		bidRepo:      bidRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		cache:        cache,
	}
}

// CreateListing validates and creates a new active listing.
func (s *listingService) CreateListing(ctx context.Context, ownerID uuid.UUID, input CreateListingInput) (*model.Listing, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	startBidStr := strings.TrimSpace(input.StartBid)

	violations := &apperrors.ValidationError{}
	if title == "" {
		violations.Add("title", "title is required")
	}
	if description == "" {
		violations.Add("description", "description is required")
	}
	var startBid decimal.Decimal
	if startBidStr == "" {
		violations.Add("start_bid", "starting bid is required")
	} else {
		parsed, err := decimal.NewFromString(startBidStr)
		if err != nil {
			violations.Add("start_bid", "starting bid must be a valid number")
		} else if parsed.LessThanOrEqual(decimal.Zero) {
			violations.Add("start_bid", "starting bid must be greater than zero")
		} else {
			startBid = parsed.Round(2)
		}
	}
	if violations.HasViolations() {
		return nil, violations
	}

	listing := &model.Listing{
		Title:       title,
		Description: description,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		StartBid:    startBid,
		IsActive:    true,
		OwnerID:     ownerID,
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, apperrors.NewNotFoundError("category")
			}
			return nil, fmt.Errorf("load category: %w", err)
		}
		listing.CategoryID = &category.ID
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	logger.Info("listing created", map[string]any{
		"listing_id": listing.ID.String(),
		"owner_id":   ownerID.String(),
		"start_bid":  startBid.StringFixed(2),
	})
	return listing, nil
}

// CloseListing deactivates a listing and determines the winner.
func (s *listingService) CloseListing(ctx context.Context, listingID, requesterID uuid.UUID) (*model.Listing, error) {
	var closed *model.Listing
	err := s.listingRepo.WithTransaction(ctx, func(ctx context.Context, listings repository.ListingRepository, bids repository.BidRepository) error {
		listing, err := listings.FindByIDForUpdate(ctx, listingID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("listing")
			}
			return fmt.Errorf("load listing: %w", err)
		}
		if listing.OwnerID != requesterID {
			return apperrors.NewAuthorizationError("not owner")
		}

		listing.IsActive = false
		highest, err := bids.HighestBid(ctx, listingID)
		switch {
		case err == nil:
			winnerID := highest.UserID
			listing.WinnerID = &winnerID
		case err == gorm.ErrRecordNotFound:
			// No bids: listing closes without a winner.
		default:
			return fmt.Errorf("load highest bid: %w", err)
		}

		if err := listings.Save(ctx, listing); err != nil {
			return fmt.Errorf("save listing: %w", err)
		}
		closed = listing
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, listingCacheKey(listingID))
	fields := map[string]any{"listing_id": listingID.String()}
	if closed.WinnerID != nil {
		fields["winner_id"] = closed.WinnerID.String()
	}
	logger.Info("listing closed", fields)
	return closed, nil
}

// GetListing retrieves a listing by ID with caching.
func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var cached model.Listing
	if s.cache.GetJSON(ctx, listingCacheKey(id), &cached) {
		return &cached, nil
	}

	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("listing")
		}
		return nil, fmt.Errorf("load listing: %w", err)
	}

	s.cache.SetJSON(ctx, listingCacheKey(id), listing, listingCacheTTL)
	return listing, nil
}

// GetListingDetail assembles everything a listing page needs.
func (s *listingService) GetListingDetail(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*ListingDetail, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := currentFloor(ctx, s.bidRepo, listing)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	watching := false
	if viewerID != nil {
		watching, err = s.userRepo.IsWatching(ctx, *viewerID, id)
		if err != nil {
			return nil, fmt.Errorf("check watchlist: %w", err)
		}
	}

	return &ListingDetail{
		Listing:      listing,
		CurrentPrice: price,
		Comments:     comments,
		Watching:     watching,
	}, nil
}

// ListActive returns all active listings.
func (s *listingService) ListActive(ctx context.Context) ([]model.Listing, error) {
	listings, err := s.listingRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}
	return listings, nil
}

// ListActiveByCategory returns active listings in a category.
func (s *listingService) ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Listing, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("category")
		}
		return nil, fmt.Errorf("load category: %w", err)
	}
	listings, err := s.listingRepo.ListActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list listings by category: %w", err)
	}
	return listings, nil
}

// DeleteListing removes an owned listing and everything hanging off it.
func (s *listingService) DeleteListing(ctx context.Context, listingID, requesterID uuid.UUID) error {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NewNotFoundError("listing")
		}
		return fmt.Errorf("load listing: %w", err)
	}
	if listing.OwnerID != requesterID {
		return apperrors.NewAuthorizationError("not owner")
	}
	if err := s.listingRepo.Delete(ctx, listingID); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	_ = s.cache.Delete(ctx, listingCacheKey(listingID))
	return nil
}
