package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
)

// UserHandler handles HTTP requests for user management and "minha conta"
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type UserForm struct {
	Nome         string `form:"nome"`
	Email        string `form:"email"`
	Senha        string `form:"senha"`
	CPF          string `form:"cpf"`
	DtNascimento string `form:"dt_nascimento"`
	Telefone     string `form:"telefone"`
	Rua          string `form:"rua"`
	Cidade       string `form:"cidade"`
	Bairro       string `form:"bairro"`
	Numero       string `form:"numero"`
}

func (f *UserForm) toInput() service.ProfileInput {
	return service.ProfileInput{
		Name:      f.Nome,
		Email:     f.Email,
		Password:  f.Senha,
		CPF:       f.CPF,
		BirthDate: f.DtNascimento,
		Phone:     f.Telefone,
		Street:    f.Rua,
		City:      f.Cidade,
		District:  f.Bairro,
		Number:    f.Numero,
	}
}

// List handles GET /usuario
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List()
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Create handles POST /usuario/novo
func (h *UserHandler) Create(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.service.Create(form.toInput()); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/usuario")
}

// Detail handles GET /usuario/detalhar/:id
func (h *UserHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user, err := h.service.Get(id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// EditForm handles GET /usuario/editar/:id
func (h *UserHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/usuario")
		return
	}

	user, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.Redirect(http.StatusFound, "/usuario")
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Edit handles POST /usuario/editar/:id
func (h *UserHandler) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/usuario")
		return
	}

	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.service.Update(id, form.toInput()); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Editing a missing user is a silent no-op
			c.Redirect(http.StatusFound, "/usuario")
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/usuario")
}

// Delete handles GET /usuario/deletar/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		c.Redirect(http.StatusFound, "/usuario")
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.Redirect(http.StatusFound, "/usuario")
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/usuario")
}

// MyAccount handles GET /minha-conta
func (h *UserHandler) MyAccount(c *gin.Context) {
	user, err := h.service.Get(currentUserID(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateMyAccount handles POST /minha-conta; the caller edits only their own
// row, with the same overwrite semantics as the admin edit
func (h *UserHandler) UpdateMyAccount(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := h.service.Update(currentUserID(c), form.toInput()); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.Redirect(http.StatusFound, "/minha-conta")
}
