package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beststore/beststore/internal/database/models"
	"github.com/beststore/beststore/internal/database/repository"
	"github.com/beststore/beststore/internal/database/service"
)

func newAuthService(t *testing.T) (service.AuthService, *testing.T) {
	t.Helper()
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	return service.NewAuthService(userRepo, sessionRepo, testConfig(), testLogger()), t
}

func TestAuthService_Register(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	authService := service.NewAuthService(userRepo, sessionRepo, testConfig(), testLogger())

	user, token, err := authService.Register("User A", "a@x.com", "p1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "p1", user.PasswordHash)

	// A second registration with the same email must fail and not create a row
	_, _, err = authService.Register("User B", "a@x.com", "p2")
	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)

	// Email comparison is case-insensitive
	_, _, err = authService.Register("User C", "A@X.com", "p3")
	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_Register_Validation(t *testing.T) {
	authService, _ := newAuthService(t)

	_, _, err := authService.Register("", "", "")

	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"nome", "email_cadastro", "senha_cadastro"}, fields)
}

func TestAuthService_Login(t *testing.T) {
	authService, _ := newAuthService(t)

	registered, _, err := authService.Register("User A", "a@x.com", "p1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "success",
			email:    "a@x.com",
			password: "p1",
		},
		{
			name:     "case-insensitive email",
			email:    "A@X.COM",
			password: "p1",
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong",
			wantErr:  service.ErrInvalidCredentials,
		},
		{
			// A missing account is indistinguishable from a bad password
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "p1",
			wantErr:  service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := authService.Login(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, user.ID)
			assert.NotEmpty(t, token)
		})
	}
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	authService, _ := newAuthService(t)

	user, token, err := authService.Register("User A", "a@x.com", "p1")
	require.NoError(t, err)

	// The session token resolves to the user it was bound to
	userID, err := authService.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	// Logout revokes the session
	require.NoError(t, authService.Logout(token))

	_, err = authService.ValidateSessionToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidSession)

	// Garbage tokens are rejected outright
	_, err = authService.ValidateSessionToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}
