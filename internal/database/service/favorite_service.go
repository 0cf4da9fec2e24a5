package service

import (
	"log/slog"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

// FavoriteService defines the interface for favorite business logic
type FavoriteService interface {
	// Toggle flips the favorite state of the listing for the user and
	// reports the resulting state
	Toggle(userID, listingID uint) (bool, error)
	ListForUser(userID uint) ([]models.Favorite, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
	logger       *slog.Logger
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	listingRepo repository.ListingRepository,
	logger *slog.Logger,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
		logger:       logger,
	}
}

func (s *favoriteService) Toggle(userID, listingID uint) (bool, error) {
	if _, err := s.listingRepo.FindByID(listingID); err != nil {
		return false, err
	}

	favorited, err := s.favoriteRepo.Toggle(userID, listingID)
	if err != nil {
		s.logger.Error("❌ [FavoriteService] Failed to toggle favorite", "user_id", userID, "listing_id", listingID, "error", err)
		return false, err
	}

	s.logger.Info("✅ [FavoriteService] Favorite toggled", "user_id", userID, "listing_id", listingID, "favorited", favorited)
	return favorited, nil
}

func (s *favoriteService) ListForUser(userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.FindByUser(userID)
}
