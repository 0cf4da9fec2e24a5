package models

import "time"

// User represents a registered marketplace user
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"size:256;not null" json:"name"`
	Email        string     `gorm:"size:256;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:256;not null" json:"-"`
	CPF          *string    `gorm:"size:14;uniqueIndex" json:"cpf,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Phone        string     `gorm:"size:32" json:"phone"`
	Street       string     `gorm:"size:256" json:"street"`
	City         string     `gorm:"size:128" json:"city"`
	District     string     `gorm:"size:128" json:"district"`
	Number       string     `gorm:"size:16" json:"number"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	Listings  []Listing  `gorm:"foreignKey:OwnerID" json:"listings,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
	Purchases []Purchase `gorm:"foreignKey:UserID" json:"purchases,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
