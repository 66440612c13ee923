package services

import (
	"testing"
	"time"

	"github.com/confessly/confessly-backend/internal/config"
	"github.com/confessly/confessly-backend/internal/dto"
	"github.com/confessly/confessly-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAuthConfig(adminEmails string) *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		AdminEmails:      adminEmails,
	}
}

func newAuthService(db *gorm.DB, adminEmails string) *AuthService {
	return NewAuthService(db, testAuthConfig(adminEmails))
}

func TestComputeAdminFlag(t *testing.T) {
	allowlist := []string{"admin@example.com", "mod@example.com"}

	assert.True(t, ComputeAdminFlag("admin@example.com", allowlist))
	assert.True(t, ComputeAdminFlag("mod@example.com", allowlist))
	assert.False(t, ComputeAdminFlag("user@example.com", allowlist))
	assert.False(t, ComputeAdminFlag("admin@example.com", nil))
	assert.False(t, ComputeAdminFlag("", allowlist))
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "admin@example.com")

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "  New.User@Example.COM ",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "new.user@example.com", resp.User.Email)
	assert.Equal(t, "new.user", resp.User.Name, "name defaults to the email local part")
	assert.False(t, resp.User.IsAdmin)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "new.user@example.com").First(&stored).Error)
	assert.NotEqual(t, "password123", stored.Password, "password is stored hashed")
}

func TestRegisterAdminFromAllowlist(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "admin@example.com, mod@example.com")

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "The Admin",
	})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "")

	_, err := svc.Register(&dto.RegisterRequest{Email: "", Password: "password123"})
	assert.Error(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "short"})
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "")

	_, err := svc.Register(&dto.RegisterRequest{Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "DUP@example.com", Password: "password456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "")

	_, err := svc.Register(&dto.RegisterRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginResyncsAdminFlag(t *testing.T) {
	db := newTestDB(t)

	// Registered before the allow-list included them.
	_, err := newAuthService(db, "").Register(&dto.RegisterRequest{
		Email: "late@example.com", Password: "password123",
	})
	require.NoError(t, err)

	resp, err := newAuthService(db, "late@example.com").Login(&dto.LoginRequest{
		Email: "late@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)

	// Removed from the allow-list, the flag drops on next login.
	resp, err = newAuthService(db, "").Login(&dto.LoginRequest{
		Email: "late@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.False(t, resp.User.IsAdmin)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "")

	initial, err := svc.Register(&dto.RegisterRequest{Email: "rotate@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: initial.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, initial.RefreshToken, refreshed.RefreshToken)

	// The consumed token cannot be replayed.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: initial.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The new one works.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: refreshed.RefreshToken})
	assert.NoError(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "")

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, "")

	resp, err := svc.Register(&dto.RegisterRequest{Email: "bye@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
