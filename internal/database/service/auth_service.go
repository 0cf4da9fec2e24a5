package service

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/beststore/beststore/internal/config"
	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "beststore_session"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(name, email, password string) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	Logout(token string) error
	ValidateSessionToken(token string) (uint, error)
}

type authService struct {
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	sessionSecret string
	cfg           *config.Config
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		sessionSecret: cfg.SessionSecret,
		cfg:           cfg,
		logger:        logger,
	}
}

// NormalizeEmail canonicalizes an email address for storage and comparison.
// Uniqueness is therefore case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(name, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)
	s.logger.Info("📝 [AuthService] Registration attempt", "email", email)

	var fields []FieldError
	if strings.TrimSpace(name) == "" {
		fields = append(fields, requiredField("nome"))
	}
	if email == "" {
		fields = append(fields, requiredField("email_cadastro"))
	}
	if password == "" {
		fields = append(fields, requiredField("senha_cadastro"))
	}
	if len(fields) > 0 {
		return nil, "", NewValidationError(fields...)
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, "", err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, "", err
	}

	// Create user
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			// Concurrent registration with the same email
			return nil, "", ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, "", err
	}

	token, err := s.openSession(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to open session", "error", err)
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	// Find user; a missing email and a wrong password must be
	// indistinguishable to the caller
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, "", ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, "", err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(user.ID)
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to open session", "error", err)
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) Logout(token string) error {
	s.logger.Info("👋 [AuthService] Logout attempt")

	tokenID, _, err := s.parseSessionToken(token)
	if err != nil {
		return ErrInvalidSession
	}

	if err := s.sessionRepo.Revoke(tokenID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			s.logger.Warn("⚠️ [AuthService] Session not found for logout")
			return repository.ErrSessionNotFound
		}
		return err
	}

	s.logger.Info("✅ [AuthService] User logged out successfully")
	return nil
}

// ValidateSessionToken verifies the cookie token and returns the user id it
// is bound to; the session row must still exist and be unrevoked
func (s *authService) ValidateSessionToken(token string) (uint, error) {
	tokenID, userID, err := s.parseSessionToken(token)
	if err != nil {
		return 0, ErrInvalidSession
	}

	session, err := s.sessionRepo.FindByTokenID(tokenID)
	if err != nil {
		return 0, ErrInvalidSession
	}

	if session.UserID != userID {
		return 0, ErrInvalidSession
	}

	return userID, nil
}

// openSession stores a revocable session row and signs a JWT referencing it
func (s *authService) openSession(userID uint) (string, error) {
	tokenID := uuid.New()
	ttl := time.Duration(s.cfg.SessionTTL) * time.Second

	session := &models.Session{
		TokenID:   tokenID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
		IsRevoked: false,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     tokenID.String(),
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

func (s *authService) parseSessionToken(tokenString string) (uuid.UUID, uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(s.sessionSecret), nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, 0, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, 0, ErrInvalidSession
	}

	jti, ok := claims["jti"].(string)
	if !ok {
		return uuid.Nil, 0, ErrInvalidSession
	}

	tokenID, err := uuid.Parse(jti)
	if err != nil {
		return uuid.Nil, 0, ErrInvalidSession
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return uuid.Nil, 0, ErrInvalidSession
	}

	return tokenID, uint(userID), nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)
