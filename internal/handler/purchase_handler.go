package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/database/service"
)

// PurchaseHandler handles the checkout stub and the report views
type PurchaseHandler struct {
	service service.PurchaseService
	logger  *slog.Logger
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(service service.PurchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		logger:  logger,
	}
}

// Buy handles GET /comprar/:id_anuncio
func (h *PurchaseHandler) Buy(c *gin.Context) {
	listingID, ok := parseIDParam(c, "id_anuncio")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if _, err := h.service.Checkout(currentUserID(c), listingID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/relatorios/compras")
}

// Sales handles GET /relatorios/vendas: purchase items of listings the
// caller owns
func (h *PurchaseHandler) Sales(c *gin.Context) {
	items, err := h.service.SalesByOwner(currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sales": items})
}

// Purchases handles GET /relatorios/compras: the caller's purchases
func (h *PurchaseHandler) Purchases(c *gin.Context) {
	purchases, err := h.service.PurchasesByUser(currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}
