package models

import "time"

// Favorite bookmarks a listing for a user; at most one row per (user, listing)
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uq_favorites_user_listing" json:"user_id"`
	ListingID uint      `gorm:"not null;uniqueIndex:uq_favorites_user_listing" json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Listing Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

// TableName overrides the table name
func (Favorite) TableName() string {
	return "favorites"
}
