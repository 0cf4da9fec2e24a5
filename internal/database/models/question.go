package models

import "time"

// Question is a flat question asked by a user on a listing (no threading)
type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ListingID uint      `gorm:"not null;index" json:"listing_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Listing Listing `gorm:"foreignKey:ListingID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name
func (Question) TableName() string {
	return "questions"
}
