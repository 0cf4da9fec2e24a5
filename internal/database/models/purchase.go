package models

import "time"

// Purchase is a checkout record; payment method and shipping fee are a
// placeholder checkout policy, not a payment integration
type Purchase struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	PaymentMethod string    `gorm:"size:64;not null" json:"payment_method"`
	ShippingFee   float64   `gorm:"not null;default:0" json:"shipping_fee"`
	PurchasedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"purchased_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	User  User           `gorm:"foreignKey:UserID" json:"-"`
	Items []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// TableName overrides the table name
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is a single line item of a purchase
type PurchaseItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	PurchaseID uint      `gorm:"not null;index" json:"purchase_id"`
	ListingID  uint      `gorm:"not null" json:"listing_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Listing  Listing  `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

// TableName overrides the table name
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
