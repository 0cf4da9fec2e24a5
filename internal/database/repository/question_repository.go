package repository

import (
	"gorm.io/gorm"

	"github.com/beststore/beststore/internal/database/models"
)

// QuestionRepository defines the interface for question data operations
type QuestionRepository interface {
	Create(question *models.Question) error
	FindAll() ([]models.Question, error)
	FindByListing(listingID uint) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository instance
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindAll() ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindByListing returns the listing's questions in creation order
func (r *questionRepository) FindByListing(listingID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Where("listing_id = ?", listingID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
