package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/database/service"
)

// FavoriteHandler handles HTTP requests for the favorite toggle
type FavoriteHandler struct {
	service service.FavoriteService
	logger  *slog.Logger
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(service service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger,
	}
}

// Toggle handles GET /favoritar/:id_anuncio; a second call on the same
// listing reverts the first
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	listingID, ok := parseIDParam(c, "id_anuncio")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	if _, err := h.service.Toggle(currentUserID(c), listingID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/anuncio")
}

// List handles GET /favoritos
func (h *FavoriteHandler) List(c *gin.Context) {
	favorites, err := h.service.ListForUser(currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
