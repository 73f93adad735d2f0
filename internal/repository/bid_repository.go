package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saraccmululo/auction-platform-app/internal/model"
)

// BidRepository defines bid ledger persistence operations. The ledger is
// append-only: bids are never updated or removed individually.
type BidRepository interface {
	Create(ctx context.Context, bid *model.Bid) error
	// HighestBid returns the bid with the maximum amount for the listing,
	// breaking amount ties in favor of the later bid. Returns
	// gorm.ErrRecordNotFound when the ledger is empty.
	HighestBid(ctx context.Context, listingID uuid.UUID) (*model.Bid, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Bid, error)
	CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error)
}

type bidRepository struct {
	db *gorm.DB
}

// NewBidRepository creates a new bid repository.
func NewBidRepository(db *gorm.DB) BidRepository {
	return &bidRepository{db: db}
}

// Create appends a bid to the ledger.
func (r *bidRepository) Create(ctx context.Context, bid *model.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

// HighestBid returns the current highest bid for a listing.
func (r *bidRepository) HighestBid(ctx context.Context, listingID uuid.UUID) (*model.Bid, error) {
	var bid model.Bid
	if err := r.db.WithContext(ctx).Where("listing_id = ?", listingID).
		Order("amount DESC, created_at DESC").First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

// ListByListing returns all bids for a listing, highest first.
func (r *bidRepository) ListByListing(ctx context.Context, listingID uuid.UUID) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.WithContext(ctx).Where("listing_id = ?", listingID).
		Order("amount DESC, created_at DESC").Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

// CountByListing returns the ledger size for a listing.
func (r *bidRepository) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Bid{}).
		Where("listing_id = ?", listingID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
