package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beststore/beststore/internal/database/models"
)

// setupTestDB creates a new in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Run migrations
	err = db.AutoMigrate(
		&models.Category{},
		&models.User{},
		&models.Listing{},
		&models.Favorite{},
		&models.Question{},
		&models.Purchase{},
		&models.PurchaseItem{},
		&models.Session{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	category := &models.Category{
		Name:        name,
		Description: "test category",
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestListing(t *testing.T, db *gorm.DB, ownerID, categoryID uint) *models.Listing {
	listing := &models.Listing{
		Body:       "TV 50in",
		CategoryID: categoryID,
		OwnerID:    ownerID,
	}
	require.NoError(t, db.Create(listing).Error)
	return listing
}
