package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Listing represents an item up for auction.
//
// WinnerID is non-null only after the listing has been closed with at least
// one bid on the ledger; the category reference is weak and survives category
// deletion (set to null), while the owner reference is strong (deleting the
// owner deletes the listing).
type Listing struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string          `json:"title" gorm:"size:64;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:2048"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty" gorm:"type:char(36);index"`
	StartBid    decimal.Decimal `json:"start_bid" gorm:"type:decimal(10,2);not null"`
	IsActive    bool            `json:"is_active" gorm:"default:true;index"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:char(36);not null;index"`
	WinnerID    *uuid.UUID      `json:"winner_id,omitempty" gorm:"type:char(36)"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Owner    *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Winner   *User     `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
	Bids     []Bid     `json:"bids,omitempty" gorm:"foreignKey:ListingID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ListingID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
