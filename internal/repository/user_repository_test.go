package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_Delete_CascadesOwnedListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	userID := uuid.New()
	listingID := uuid.New()

	// Owned listings go down with their bids, comments, and watchlist rows
	// before the user's own activity and the user row itself.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `listings` WHERE owner_id = \\?").
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(listingID.String()))
	mock.ExpectExec("DELETE FROM `bids` WHERE listing_id IN \\(\\?\\)").
		WithArgs(listingID.String()).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `comments` WHERE listing_id IN \\(\\?\\)").
		WithArgs(listingID.String()).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM watchlists WHERE listing_id IN \\(\\?\\)").
		WithArgs(listingID.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `listings` WHERE id IN \\(\\?\\)").
		WithArgs(listingID.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `bids` WHERE user_id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `comments` WHERE user_id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM watchlists WHERE user_id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `users` WHERE id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NoOwnedListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `listings` WHERE owner_id = \\?").
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `bids` WHERE user_id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `comments` WHERE user_id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM watchlists WHERE user_id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `users` WHERE id = \\?").
		WithArgs(userID.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
