package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

// QuestionService defines the interface for question business logic
type QuestionService interface {
	Create(userID, listingID uint, text string) (*models.Question, error)
	ListAll() ([]models.Question, error)
	ListByListing(listingID uint) ([]models.Question, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	listingRepo  repository.ListingRepository
	logger       *slog.Logger
}

// NewQuestionService creates a new question service instance
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	listingRepo repository.ListingRepository,
	logger *slog.Logger,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		listingRepo:  listingRepo,
		logger:       logger,
	}
}

func (s *questionService) Create(userID, listingID uint, text string) (*models.Question, error) {
	var fields []FieldError
	if strings.TrimSpace(text) == "" {
		fields = append(fields, requiredField("pergunta"))
	}
	if listingID == 0 {
		fields = append(fields, requiredField("id_anuncio"))
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	if _, err := s.listingRepo.FindByID(listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, NewValidationError(FieldError{Field: "id_anuncio", Message: "listing does not exist"})
		}
		return nil, err
	}

	question := &models.Question{
		ListingID: listingID,
		UserID:    userID,
		Text:      text,
	}

	if err := s.questionRepo.Create(question); err != nil {
		s.logger.Error("❌ [QuestionService] Failed to create question", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [QuestionService] Question created", "question_id", question.ID, "listing_id", listingID)
	return question, nil
}

func (s *questionService) ListAll() ([]models.Question, error) {
	return s.questionRepo.FindAll()
}

func (s *questionService) ListByListing(listingID uint) ([]models.Question, error) {
	return s.questionRepo.FindByListing(listingID)
}
