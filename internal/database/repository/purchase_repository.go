package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/beststore/beststore/internal/database/models"
)

// PurchaseRepository defines the interface for purchase data operations
type PurchaseRepository interface {
	// CreateWithItem persists a purchase and its single line item atomically;
	// if the item insert fails the purchase must not persist either.
	CreateWithItem(purchase *models.Purchase, listingID uint, quantity int) error
	FindByUser(userID uint) ([]models.Purchase, error)
	FindItemsByOwner(ownerID uint) ([]models.PurchaseItem, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) CreateWithItem(purchase *models.Purchase, listingID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		// The insert is flushed here so purchase.ID is available for the item
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		item := models.PurchaseItem{
			PurchaseID: purchase.ID,
			ListingID:  listingID,
			Quantity:   quantity,
		}
		return tx.Create(&item).Error
	})
}

// FindByUser returns the user's purchases with their items, newest last
func (r *purchaseRepository) FindByUser(userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Listing").
		Order("id ASC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

// FindItemsByOwner returns purchase items whose listing belongs to the owner
// (the owner's sales)
func (r *purchaseRepository) FindItemsByOwner(ownerID uint) ([]models.PurchaseItem, error) {
	var items []models.PurchaseItem
	err := r.db.
		Joins("JOIN listings ON listings.id = purchase_items.listing_id").
		Where("listings.owner_id = ?", ownerID).
		Preload("Listing").
		Order("purchase_items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Repository errors
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
