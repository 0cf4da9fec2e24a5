package service

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

// ProfileInput carries the user form fields; the date stays a string until
// validated because a malformed dt_nascimento is a field error, not a crash
type ProfileInput struct {
	Name      string
	Email     string
	Password  string
	CPF       string
	BirthDate string // YYYY-MM-DD
	Phone     string
	Street    string
	City      string
	District  string
	Number    string
}

const birthDateLayout = "2006-01-02"

// UserService defines the interface for user business logic
type UserService interface {
	List() ([]models.User, error)
	Get(id uint) (*models.User, error)
	Create(input ProfileInput) (*models.User, error)
	Update(id uint, input ProfileInput) (*models.User, error)
	Delete(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) List() ([]models.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) Get(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

func (s *userService) Create(input ProfileInput) (*models.User, error) {
	input.Email = NormalizeEmail(input.Email)

	var fields []FieldError
	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, requiredField("nome"))
	}
	if input.Email == "" {
		fields = append(fields, requiredField("email"))
	}
	if input.Password == "" {
		fields = append(fields, requiredField("senha"))
	}
	birthDate, fieldErr := parseBirthDate(input.BirthDate)
	if fieldErr != nil {
		fields = append(fields, *fieldErr)
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	if err := s.checkEmailFree(input.Email, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CPF:          normalizeCPF(input.CPF),
		BirthDate:    birthDate,
		Phone:        input.Phone,
		Street:       input.Street,
		City:         input.City,
		District:     input.District,
		Number:       input.Number,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User created", "user_id", user.ID)
	return user, nil
}

// Update replicates the original form semantics: every profile field is
// overwritten from the submitted input; the password changes only when a new
// value was supplied.
func (s *userService) Update(id uint, input ProfileInput) (*models.User, error) {
	input.Email = NormalizeEmail(input.Email)

	var fields []FieldError
	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, requiredField("nome"))
	}
	if input.Email == "" {
		fields = append(fields, requiredField("email"))
	}
	birthDate, fieldErr := parseBirthDate(input.BirthDate)
	if fieldErr != nil {
		fields = append(fields, *fieldErr)
	}
	if len(fields) > 0 {
		return nil, NewValidationError(fields...)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Email != user.Email {
		if err := s.checkEmailFree(input.Email, id); err != nil {
			return nil, err
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.CPF = normalizeCPF(input.CPF)
	user.BirthDate = birthDate
	user.Phone = input.Phone
	user.Street = input.Street
	user.City = input.City
	user.District = input.District
	user.Number = input.Number

	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User updated", "user_id", id)
	return user, nil
}

func (s *userService) Delete(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}

	// Restrict policy: a user with listings, favorites, questions or
	// purchases cannot be removed
	dependents, err := s.userRepo.CountDependents(id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		s.logger.Warn("⚠️ [UserService] User has dependent rows, refusing delete", "user_id", id, "dependents", dependents)
		return ErrUserInUse
	}

	if err := s.userRepo.Delete(id); err != nil {
		s.logger.Error("❌ [UserService] Failed to delete user", "user_id", id, "error", err)
		return err
	}

	s.logger.Info("✅ [UserService] User deleted", "user_id", id)
	return nil
}

func (s *userService) checkEmailFree(email string, selfID uint) error {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrEmailAlreadyExists
	}
	return nil
}

func parseBirthDate(value string) (*time.Time, *FieldError) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return nil, &FieldError{Field: "dt_nascimento", Message: "must be a date in YYYY-MM-DD format"}
	}
	return &parsed, nil
}

func normalizeCPF(cpf string) *string {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return nil
	}
	return &cpf
}

// Service errors
var (
	ErrUserInUse = errors.New("user is referenced by other records")
)
