package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/beststore/beststore/internal/database/models"
)

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	Create(listing *models.Listing) error
	FindAll() ([]models.Listing, error)
	FindByID(id uint) (*models.Listing, error)
	Delete(id uint) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository instance
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *listingRepository) FindAll() ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.db.Preload("Category").Order("id ASC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) FindByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.db.Preload("Category").First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Listing{}, id).Error
}

// Repository errors
var (
	ErrListingNotFound = errors.New("listing not found")
)
