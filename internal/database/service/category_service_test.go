package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
)

func TestCategoryService_Create(t *testing.T) {
	db := setupTestDB(t)
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(db), testLogger())

	category, err := categoryService.Create("Eletrônicos", "TVs e afins")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	// A blank name is a validation error naming the field
	_, err = categoryService.Create("   ", "")
	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields, 1)
	assert.Equal(t, "nome", validationErr.Fields[0].Field)
}

func TestCategoryService_Update(t *testing.T) {
	db := setupTestDB(t)
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(db), testLogger())

	category, err := categoryService.Create("Eletrônicos", "")
	require.NoError(t, err)

	updated, err := categoryService.Update(category.ID, "Eletrodomésticos", "geladeiras")
	require.NoError(t, err)
	assert.Equal(t, "Eletrodomésticos", updated.Name)

	// Updating a missing id reports not found; the handler turns this into
	// a redirect no-op
	_, err = categoryService.Update(9999, "Nada", "")
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryService_Delete(t *testing.T) {
	db := setupTestDB(t)
	categoryService := service.NewCategoryService(repository.NewCategoryRepository(db), testLogger())

	empty, err := categoryService.Create("Vazia", "")
	require.NoError(t, err)
	inUse, err := categoryService.Create("Usada", "")
	require.NoError(t, err)

	owner := &models.User{Name: "Owner", Email: "owner@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(&models.Listing{Body: "TV", CategoryID: inUse.ID, OwnerID: owner.ID}).Error)

	require.NoError(t, categoryService.Delete(empty.ID))

	assert.ErrorIs(t, categoryService.Delete(9999), repository.ErrCategoryNotFound)
	assert.ErrorIs(t, categoryService.Delete(inUse.ID), service.ErrCategoryInUse)
}
