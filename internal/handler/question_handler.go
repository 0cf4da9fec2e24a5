package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/database/service"
)

// QuestionHandler handles HTTP requests for listing questions (perguntas)
type QuestionHandler struct {
	service service.QuestionService
	logger  *slog.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(service service.QuestionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		service: service,
		logger:  logger,
	}
}

type QuestionForm struct {
	IDAnuncio uint   `form:"id_anuncio"`
	Pergunta  string `form:"pergunta"`
}

// List handles GET /pergunta and GET /pergunta/:id_anuncio; questions come
// back in creation order
func (h *QuestionHandler) List(c *gin.Context) {
	if c.Param("id_anuncio") == "" {
		questions, err := h.service.ListAll()
		if err != nil {
			handleServiceError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"questions": questions})
		return
	}

	listingID, ok := parseIDParam(c, "id_anuncio")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	questions, err := h.service.ListByListing(listingID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Create handles POST /pergunta/nova; the asker is the current identity
func (h *QuestionHandler) Create(c *gin.Context) {
	var form QuestionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	question, err := h.service.Create(currentUserID(c), form.IDAnuncio, form.Pergunta)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/pergunta/%d", question.ListingID))
}
