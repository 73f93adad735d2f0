package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saraccmululo/auction-platform-app/internal/model"
)

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	Save(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	ListActive(ctx context.Context) ([]model.Listing, error)
	ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// WithTransaction runs fn inside a single database transaction, handing it
	// listing and bid repositories bound to that transaction. Combined with
	// FindByIDForUpdate this serializes floor-check-then-insert per listing.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, listings ListingRepository, bids BidRepository) error) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create creates a new listing.
func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// Save persists all fields of an existing listing.
func (r *listingRepository) Save(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

// FindByID finds a listing by ID.
func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindByIDForUpdate finds a listing by ID with a row-level lock for update.
func (r *listingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListActive lists all active listings, newest first.
func (r *listingRepository) ListActive(ctx context.Context) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// ListActiveByCategory lists active listings within a category, newest first.
func (r *listingRepository) ListActiveByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND category_id = ?", true, categoryID).
		Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// Delete removes a listing together with its bids, comments, and watchlist
// rows. Bids and comments exist only in the context of their listing.
func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&model.Bid{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM watchlists WHERE listing_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Listing{}).Error
	})
}

// WithTransaction executes a function within a database transaction.
func (r *listingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, listings ListingRepository, bids BidRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &listingRepository{db: tx}, &bidRepository{db: tx})
	})
}
