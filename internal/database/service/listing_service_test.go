package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
)

func newListingService(db *gorm.DB) service.ListingService {
	return service.NewListingService(
		repository.NewListingRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewUserRepository(db),
		repository.NewFavoriteRepository(db),
		testLogger(),
	)
}

func TestListingService_Create(t *testing.T) {
	db := setupTestDB(t)
	listingService := newListingService(db)

	owner := &models.User{Name: "Owner", Email: "owner@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(owner).Error)
	category := &models.Category{Name: "Eletrônicos"}
	require.NoError(t, db.Create(category).Error)

	listing, err := listingService.Create(owner.ID, "TV 50in", category.ID)
	require.NoError(t, err)
	assert.NotZero(t, listing.ID)
	assert.Equal(t, owner.ID, listing.OwnerID)

	// A blank body is a validation error
	_, err = listingService.Create(owner.ID, "  ", category.ID)
	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// A dangling category id must fail up front, not surface as a broken row
	_, err = listingService.Create(owner.ID, "TV 50in", 9999)
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields, 1)
	assert.Equal(t, "id_categoria", validationErr.Fields[0].Field)
}

func TestListingService_List(t *testing.T) {
	db := setupTestDB(t)
	listingService := newListingService(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	owner := &models.User{Name: "Owner", Email: "owner@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(owner).Error)
	viewer := &models.User{Name: "Viewer", Email: "viewer@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(viewer).Error)
	category := &models.Category{Name: "Eletrônicos"}
	require.NoError(t, db.Create(category).Error)

	first, err := listingService.Create(owner.ID, "TV 50in", category.ID)
	require.NoError(t, err)
	_, err = listingService.Create(owner.ID, "Notebook", category.ID)
	require.NoError(t, err)

	_, err = favoriteRepo.Toggle(viewer.ID, first.ID)
	require.NoError(t, err)

	listings, favoritedIDs, err := listingService.List(viewer.ID)
	require.NoError(t, err)
	assert.Len(t, listings, 2)
	assert.Equal(t, []uint{first.ID}, favoritedIDs)
	assert.Equal(t, category.Name, listings[0].Category.Name)

	// The owner sees the same listings but no favorites
	_, favoritedIDs, err = listingService.List(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, favoritedIDs)
}
