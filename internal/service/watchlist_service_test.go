package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/saraccmululo/auction-platform-app/internal/errors"
	"github.com/saraccmululo/auction-platform-app/internal/model"
)

func TestWatchlistService_Toggle(t *testing.T) {
	t.Run("adds when not watching", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		listingRepo := new(MockListingRepository)
		svc := NewWatchlistService(userRepo, listingRepo)
		userID, listing := uuid.New(), activeListing("10.00")
		listingRepo.On("FindByID", mock.Anything, listing.ID).Return(listing, nil)
		userRepo.On("IsWatching", mock.Anything, userID, listing.ID).Return(false, nil)
		userRepo.On("AddToWatchlist", mock.Anything, userID, listing.ID).Return(nil)

		watching, err := svc.Toggle(context.Background(), userID, listing.ID)

		assert.NoError(t, err)
		assert.True(t, watching)
		userRepo.AssertExpectations(t)
	})

	t.Run("removes when watching", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		listingRepo := new(MockListingRepository)
		svc := NewWatchlistService(userRepo, listingRepo)
		userID, listing := uuid.New(), activeListing("10.00")
		listingRepo.On("FindByID", mock.Anything, listing.ID).Return(listing, nil)
		userRepo.On("IsWatching", mock.Anything, userID, listing.ID).Return(true, nil)
		userRepo.On("RemoveFromWatchlist", mock.Anything, userID, listing.ID).Return(nil)

		watching, err := svc.Toggle(context.Background(), userID, listing.ID)

		assert.NoError(t, err)
		assert.False(t, watching)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown listing", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		listingRepo := new(MockListingRepository)
		svc := NewWatchlistService(userRepo, listingRepo)
		id := uuid.New()
		listingRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Toggle(context.Background(), uuid.New(), id)

		var notFound *apperrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

// Two toggles in a row land back on the original membership state.
func TestWatchlistService_ToggleTwiceRoundTrips(t *testing.T) {
	userRepo := new(MockUserRepository)
	listingRepo := new(MockListingRepository)
	svc := NewWatchlistService(userRepo, listingRepo)
	userID, listing := uuid.New(), activeListing("10.00")

	listingRepo.On("FindByID", mock.Anything, listing.ID).Return(listing, nil)
	userRepo.On("IsWatching", mock.Anything, userID, listing.ID).Return(false, nil).Once()
	userRepo.On("AddToWatchlist", mock.Anything, userID, listing.ID).Return(nil).Once()
	userRepo.On("IsWatching", mock.Anything, userID, listing.ID).Return(true, nil).Once()
	userRepo.On("RemoveFromWatchlist", mock.Anything, userID, listing.ID).Return(nil).Once()

	first, err := svc.Toggle(context.Background(), userID, listing.ID)
	assert.NoError(t, err)
	assert.True(t, first)

	second, err := svc.Toggle(context.Background(), userID, listing.ID)
	assert.NoError(t, err)
	assert.False(t, second)
	userRepo.AssertExpectations(t)
}

func TestWatchlistService_List(t *testing.T) {
	userRepo := new(MockUserRepository)
	listingRepo := new(MockListingRepository)
	svc := NewWatchlistService(userRepo, listingRepo)
	userID := uuid.New()
	userRepo.On("ListWatchlist", mock.Anything, userID).Return([]model.Listing{
		*activeListing("10.00"),
		*activeListing("20.00"),
	}, nil)

	listings, err := svc.List(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, listings, 2)
}
