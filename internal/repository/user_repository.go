package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saraccmululo/auction-platform-app/internal/model"
)

// UserRepository defines user persistence operations, including the user's
// watchlist association.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Watchlist association
	AddToWatchlist(ctx context.Context, userID, listingID uuid.UUID) error
	RemoveFromWatchlist(ctx context.Context, userID, listingID uuid.UUID) error
	IsWatching(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	ListWatchlist(ctx context.Context, userID uuid.UUID) ([]model.Listing, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user and everything hanging off it. The cascade is
// explicit: owned listings go down with their bids, comments, and watchlist
// rows, then the user's own bids, comments, and watchlist entries.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ownedIDs []uuid.UUID
		if err := tx.Model(&model.Listing{}).Where("owner_id = ?", id).
			Pluck("id", &ownedIDs).Error; err != nil {
			return err
		}
		if len(ownedIDs) > 0 {
			if err := tx.Where("listing_id IN ?", ownedIDs).Delete(&model.Bid{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id IN ?", ownedIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM watchlists WHERE listing_id IN ?", ownedIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ownedIDs).Delete(&model.Listing{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Bid{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM watchlists WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.User{}).Error
	})
}

// AddToWatchlist inserts a watchlist membership row.
func (r *userRepository) AddToWatchlist(ctx context.Context, userID, listingID uuid.UUID) error {
	user := model.User{ID: userID}
	listing := model.Listing{ID: listingID}
	return r.db.WithContext(ctx).Model(&user).Association("Watchlist").Append(&listing)
}

// RemoveFromWatchlist deletes a watchlist membership row.
func (r *userRepository) RemoveFromWatchlist(ctx context.Context, userID, listingID uuid.UUID) error {
	user := model.User{ID: userID}
	listing := model.Listing{ID: listingID}
	return r.db.WithContext(ctx).Model(&user).Association("Watchlist").Delete(&listing)
}

// IsWatching reports whether the listing is on the user's watchlist.
func (r *userRepository) IsWatching(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("watchlists").
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListWatchlist returns all listings on the user's watchlist.
func (r *userRepository) ListWatchlist(ctx context.Context, userID uuid.UUID) ([]model.Listing, error) {
	var listings []model.Listing
	user := model.User{ID: userID}
	if err := r.db.WithContext(ctx).Model(&user).Association("Watchlist").Find(&listings); err != nil {
		return nil, err
	}
	return listings, nil
}
