package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/database/service"
)

// ListingHandler handles HTTP requests for listings (anúncios)
type ListingHandler struct {
	service service.ListingService
	logger  *slog.Logger
}

// NewListingHandler creates a new listing handler
func NewListingHandler(service service.ListingService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		logger:  logger,
	}
}

type ListingForm struct {
	Anunciocol  string `form:"anunciocol"`
	IDCategoria uint   `form:"id_categoria"`
}

// List handles GET /anuncio; alongside the listings it returns the ids the
// caller has favorited so the view can render the toggle state
func (h *ListingHandler) List(c *gin.Context) {
	listings, favoritedIDs, err := h.service.List(currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":      listings,
		"favorited_ids": favoritedIDs,
	})
}

// Create handles POST /anuncio/criar; the owner is the current identity
func (h *ListingHandler) Create(c *gin.Context) {
	var form ListingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.service.Create(currentUserID(c), form.Anunciocol, form.IDCategoria); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/anuncio")
}
