package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
)

// CategoryHandler handles HTTP requests for category management
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

type CategoryForm struct {
	Nome      string `form:"nome"`
	Descricao string `form:"descricao"`
}

// List handles GET /categoria
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List()
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Create handles POST /categoria/criar
func (h *CategoryHandler) Create(c *gin.Context) {
	var form CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.service.Create(form.Nome, form.Descricao); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/categoria")
}

// EditForm handles GET /categoria/editar/:id
func (h *CategoryHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/categoria")
		return
	}

	category, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			// Editing a missing category is a silent no-op
			c.Redirect(http.StatusFound, "/categoria")
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// Edit handles POST /categoria/editar/:id
func (h *CategoryHandler) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/categoria")
		return
	}

	var form CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.service.Update(id, form.Nome, form.Descricao); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			c.Redirect(http.StatusFound, "/categoria")
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/categoria")
}

// Delete handles GET /categoria/deletar/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/categoria")
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			// Deleting a missing category is a silent no-op
			c.Redirect(http.StatusFound, "/categoria")
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/categoria")
}
