package models

import "time"

// Listing is a sale offer owned by a user and filed under a category
type Listing struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	OwnerID    uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Owner    User     `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName overrides the table name
func (Listing) TableName() string {
	return "listings"
}
