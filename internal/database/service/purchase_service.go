package service

import (
	"log/slog"
	"time"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

// Placeholder checkout policy; there is no payment integration behind it
const (
	DefaultPaymentMethod = "boleto"
	DefaultShippingFee   = 15.0
)

// PurchaseService defines the interface for purchase business logic
type PurchaseService interface {
	// Checkout creates a purchase with a single quantity-1 line item for the
	// listing, both persisted atomically
	Checkout(userID, listingID uint) (*models.Purchase, error)
	PurchasesByUser(userID uint) ([]models.Purchase, error)
	SalesByOwner(ownerID uint) ([]models.PurchaseItem, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	listingRepo  repository.ListingRepository
	logger       *slog.Logger
}

// NewPurchaseService creates a new purchase service instance
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	listingRepo repository.ListingRepository,
	logger *slog.Logger,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		listingRepo:  listingRepo,
		logger:       logger,
	}
}

func (s *purchaseService) Checkout(userID, listingID uint) (*models.Purchase, error) {
	if _, err := s.listingRepo.FindByID(listingID); err != nil {
		return nil, err
	}

	purchase := &models.Purchase{
		UserID:        userID,
		PaymentMethod: DefaultPaymentMethod,
		ShippingFee:   DefaultShippingFee,
		PurchasedAt:   time.Now(),
	}

	if err := s.purchaseRepo.CreateWithItem(purchase, listingID, 1); err != nil {
		s.logger.Error("❌ [PurchaseService] Checkout failed", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [PurchaseService] Checkout completed", "purchase_id", purchase.ID, "user_id", userID, "listing_id", listingID)
	return purchase, nil
}

func (s *purchaseService) PurchasesByUser(userID uint) ([]models.Purchase, error) {
	return s.purchaseRepo.FindByUser(userID)
}

func (s *purchaseService) SalesByOwner(ownerID uint) ([]models.PurchaseItem, error) {
	return s.purchaseRepo.FindItemsByOwner(ownerID)
}
