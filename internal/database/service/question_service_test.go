package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
)

func TestQuestionService_Create(t *testing.T) {
	db := setupTestDB(t)
	questionService := service.NewQuestionService(
		repository.NewQuestionRepository(db),
		repository.NewListingRepository(db),
		testLogger(),
	)

	owner := &models.User{Name: "Owner", Email: "owner@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(owner).Error)
	asker := &models.User{Name: "Asker", Email: "asker@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(asker).Error)
	category := &models.Category{Name: "Eletrônicos"}
	require.NoError(t, db.Create(category).Error)
	listing := &models.Listing{Body: "TV 50in", CategoryID: category.ID, OwnerID: owner.ID}
	require.NoError(t, db.Create(listing).Error)

	question, err := questionService.Create(asker.ID, listing.ID, "Tem garantia?")
	require.NoError(t, err)
	assert.NotZero(t, question.ID)

	// Blank text is a validation error naming the field
	_, err = questionService.Create(asker.ID, listing.ID, "   ")
	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "pergunta", validationErr.Fields[0].Field)

	// A dangling listing id is rejected up front
	_, err = questionService.Create(asker.ID, 9999, "Tem garantia?")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id_anuncio", validationErr.Fields[0].Field)

	questions, err := questionService.ListByListing(listing.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Tem garantia?", questions[0].Text)
}
