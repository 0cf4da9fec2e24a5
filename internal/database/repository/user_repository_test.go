package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	tests := []struct {
		name    string
		user    *models.User
		wantErr error
	}{
		{
			name: "success",
			user: &models.User{
				Name:         "A",
				Email:        "a@x.com",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name: "duplicate email",
			user: &models.User{
				Name:         "B",
				Email:        "a@x.com",
				PasswordHash: "hashedpassword",
			},
			wantErr: repository.ErrDuplicateUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, tt.user.ID)
			}
		})
	}

	// The failed insert must not have created a second row
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	created := createTestUser(t, db, "known@x.com")

	found, err := repo.FindByEmail("known@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail("unknown@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	created := createTestUser(t, db, "byid@x.com")

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "byid@x.com", found.Email)

	_, err = repo.FindByID(9999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CountDependents(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	user := createTestUser(t, db, "owner@x.com")
	category := createTestCategory(t, db, "Eletrônicos")

	n, err := repo.CountDependents(user.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	createTestListing(t, db, user.ID, category.ID)

	n, err = repo.CountDependents(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
