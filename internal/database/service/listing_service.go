package service

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

// ListingService defines the interface for listing business logic
type ListingService interface {
	Create(ownerID uint, body string, categoryID uint) (*models.Listing, error)
	// List returns every listing plus the ids of the listings the viewer has
	// favorited, which drives the favorite toggle in the listing view
	List(viewerID uint) ([]models.Listing, []uint, error)
	Get(id uint) (*models.Listing, error)
}

type listingService struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(
	listingRepo repository.ListingRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	favoriteRepo repository.FavoriteRepository,
	logger *slog.Logger,
) ListingService {
	return &listingService{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (s *listingService) Create(ownerID uint, body string, categoryID uint) (*models.Listing, error) {
	var fields []FieldError
	if strings.TrimSpace(body) == "" {
		fields = append(fields, requiredField("anunciocol"))
	}
	if categoryID == 0 {
		fields = append(fields, requiredField("id_categoria"))
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	// A dangling category or owner id must fail up front, not depend on the
	// storage layer's constraints
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, NewValidationError(FieldError{Field: "id_categoria", Message: "category does not exist"})
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, err
	}

	listing := &models.Listing{
		Body:       body,
		CategoryID: categoryID,
		OwnerID:    ownerID,
	}

	if err := s.listingRepo.Create(listing); err != nil {
		s.logger.Error("❌ [ListingService] Failed to create listing", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [ListingService] Listing created", "listing_id", listing.ID, "owner_id", ownerID)
	return listing, nil
}

func (s *listingService) List(viewerID uint) ([]models.Listing, []uint, error) {
	listings, err := s.listingRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}

	favoritedIDs, err := s.favoriteRepo.ListingIDsByUser(viewerID)
	if err != nil {
		return nil, nil, err
	}

	return listings, favoritedIDs, nil
}

func (s *listingService) Get(id uint) (*models.Listing, error) {
	return s.listingRepo.FindByID(id)
}
