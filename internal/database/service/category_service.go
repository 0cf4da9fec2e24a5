package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	List() ([]models.Category, error)
	Create(name, description string) (*models.Category, error)
	Get(id uint) (*models.Category, error)
	Update(id uint, name, description string) (*models.Category, error)
	Delete(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *categoryService) List() ([]models.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) Create(name, description string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError(requiredField("nome"))
	}

	category := &models.Category{
		Name:        name,
		Description: description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		s.logger.Error("❌ [CategoryService] Failed to create category", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [CategoryService] Category created", "category_id", category.ID, "name", name)
	return category, nil
}

func (s *categoryService) Get(id uint) (*models.Category, error) {
	return s.categoryRepo.FindByID(id)
}

func (s *categoryService) Update(id uint, name, description string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError(requiredField("nome"))
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = description

	if err := s.categoryRepo.Update(category); err != nil {
		s.logger.Error("❌ [CategoryService] Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [CategoryService] Category updated", "category_id", id)
	return category, nil
}

func (s *categoryService) Delete(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return err
	}

	// Restrict policy: a category with listings cannot be removed
	listings, err := s.categoryRepo.CountListings(id)
	if err != nil {
		return err
	}
	if listings > 0 {
		s.logger.Warn("⚠️ [CategoryService] Category has listings, refusing delete", "category_id", id, "listings", listings)
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		s.logger.Error("❌ [CategoryService] Failed to delete category", "category_id", id, "error", err)
		return err
	}

	s.logger.Info("✅ [CategoryService] Category deleted", "category_id", id)
	return nil
}

// Service errors
var (
	ErrCategoryInUse = errors.New("category is referenced by listings")
)
