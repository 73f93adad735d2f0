package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bid is one entry in a listing's append-only bid ledger. Every accepted
// bid exceeded the listing's floor at acceptance time, so the ledger is
// monotonically increasing in amount when read in chronological order.
type Bid struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	ListingID uuid.UUID       `json:"listing_id" gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`

	// Relations
	Listing *Listing `json:"-" gorm:"foreignKey:ListingID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
