package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// The bid floor check is only serialized if the locking read actually reaches
// the database as SELECT ... FOR UPDATE, so this asserts on the generated SQL.
func TestListingRepository_FindByIDForUpdate_EmitsRowLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "title", "start_bid", "is_active", "owner_id"}).
		AddRow(id.String(), "vintage camera", "10.00", true, uuid.New().String())
	mock.ExpectQuery("SELECT (.+) FROM `listings` WHERE id = \\?(.+)FOR UPDATE").
		WithArgs(id.String(), 1).
		WillReturnRows(rows)

	listing, err := repo.FindByIDForUpdate(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, id, listing.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_Delete_CascadesListingScopedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `bids` WHERE listing_id = \\?").
		WithArgs(id.String()).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `comments` WHERE listing_id = \\?").
		WithArgs(id.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM watchlists WHERE listing_id = \\?").
		WithArgs(id.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `listings` WHERE id = \\?").
		WithArgs(id.String()).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
