package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/saraccmululo/auction-platform-app/internal/cache"
	apperrors "github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/logger"
	"github.com/saraccmululo/auction-platform-app/internal/model"
	"github.com/saraccmululo/auction-platform-app/internal/repository"
)

// BidService enforces the bidding rules of the auction engine.
type BidService interface {
	// PlaceBid validates amount against the listing's current floor and, when
	// it strictly exceeds the floor, appends a bid to the ledger. Amount is
	// the raw user-supplied string; parsing failures surface as validation
	// errors. Nothing stops the owner bidding on their own listing or anyone
	// bidding on an inactive one.
	PlaceBid(ctx context.Context, listingID, bidderID uuid.UUID, amount string) (*model.Bid, error)
	// CurrentPrice returns the maximum bid amount for the listing, or its
	// starting bid when the ledger is empty.
	CurrentPrice(ctx context.Context, listingID uuid.UUID) (decimal.Decimal, error)
	ListBids(ctx context.Context, listingID uuid.UUID) ([]model.Bid, error)
}

type bidService struct {
	listingRepo repository.ListingRepository
	bidRepo     repository.BidRepository
	cache       *cache.Client
}

// NewBidService creates a new bid service.
func NewBidService(listingRepo repository.ListingRepository, bidRepo repository.BidRepository, cache *cache.Client) BidService {
	return &bidService{
		listingRepo: listingRepo,
		bidRepo:     bidRepo,
		cache:       cache,
	}
}

// PlaceBid runs the floor check and ledger append in one transaction with the
// listing row locked, so two concurrent bids against the same floor cannot
// both commit out of order.
func (s *bidService) PlaceBid(ctx context.Context, listingID, bidderID uuid.UUID, amount string) (*model.Bid, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("amount", "amount required")
	}
	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, apperrors.NewValidationError("amount", "amount not numeric")
	}
	// Amounts are stored with 2 fractional digits; compare what will be kept.
	parsed = parsed.Round(2)

	bid := &model.Bid{
		ListingID: listingID,
		UserID:    bidderID,
		Amount:    parsed,
	}

	err = s.listingRepo.WithTransaction(ctx, func(ctx context.Context, listings repository.ListingRepository, bids repository.BidRepository) error {
		listing, err := listings.FindByIDForUpdate(ctx, listingID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.NewNotFoundError("listing")
			}
			return fmt.Errorf("load listing: %w", err)
		}

		floor, err := currentFloor(ctx, bids, listing)
		if err != nil {
			return err
		}
		if parsed.LessThanOrEqual(floor) {
			return apperrors.NewValidationError("amount", "bid too low")
		}

		return bids.Create(ctx, bid)
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, listingCacheKey(listingID))
	logger.Info("bid accepted", map[string]any{
		"listing_id": listingID.String(),
		"bidder_id":  bidderID.String(),
		"amount":     parsed.StringFixed(2),
	})
	return bid, nil
}

// CurrentPrice retrieves the current floor for a listing.
func (s *bidService) CurrentPrice(ctx context.Context, listingID uuid.UUID) (decimal.Decimal, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, apperrors.NewNotFoundError("listing")
		}
		return decimal.Zero, fmt.Errorf("load listing: %w", err)
	}
	return currentFloor(ctx, s.bidRepo, listing)
}

// ListBids returns the listing's bid ledger, highest first.
func (s *bidService) ListBids(ctx context.Context, listingID uuid.UUID) ([]model.Bid, error) {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("listing")
		}
		return nil, fmt.Errorf("load listing: %w", err)
	}
	bids, err := s.bidRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return bids, nil
}

// currentFloor computes the minimum amount a new bid must exceed: the highest
// bid on the ledger, or the starting bid when no bids exist.
func currentFloor(ctx context.Context, bids repository.BidRepository, listing *model.Listing) (decimal.Decimal, error) {
	highest, err := bids.HighestBid(ctx, listing.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return listing.StartBid, nil
		}
		return decimal.Zero, fmt.Errorf("load highest bid: %w", err)
	}
	return highest.Amount, nil
}

func listingCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("listing:%s", id.String())
}
