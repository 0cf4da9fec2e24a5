package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/beststore/beststore/internal/database/models"
)

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	// Toggle removes the favorite for (userID, listingID) if it exists,
	// otherwise creates it. Returns true when the listing ended up favorited.
	Toggle(userID, listingID uint) (bool, error)
	FindByUser(userID uint) ([]models.Favorite, error)
	ListingIDsByUser(userID uint) ([]uint, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository instance
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Toggle(userID, listingID uint) (bool, error) {
	favorited := false

	// Read-check-write must be atomic or a concurrent double toggle could
	// insert twice; the unique (user_id, listing_id) index is the backstop.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Favorite
		err := tx.Where("user_id = ? AND listing_id = ?", userID, listingID).
			First(&existing).Error

		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		favorite := models.Favorite{UserID: userID, ListingID: listingID}
		if err := tx.Create(&favorite).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race to a concurrent insert: already favorited
				favorited = true
				return nil
			}
			return err
		}
		favorited = true
		return nil
	})

	return favorited, err
}

func (r *favoriteRepository) FindByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Where("user_id = ?", userID).
		Preload("Listing").
		Preload("Listing.Category").
		Order("id ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) ListingIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("listing_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
