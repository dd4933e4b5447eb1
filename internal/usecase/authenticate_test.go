package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/http/middleware"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

func testAccounts() []usecase.Account {
	return []usecase.Account{
		{
			User: entity.User{
				ID:    "1",
				Email: "admin@example.com",
				Name:  "Admin User",
				Role:  entity.RoleAdmin,
			},
			Password: "secret",
		},
	}
}

func TestAuthenticateSuccessIssuesSession(t *testing.T) {
	sessions := middleware.NewSessionStore()
	uc := usecase.NewAuthenticateUseCase(testAccounts(), sessions)

	user, token, err := uc.Execute("admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.NotEmpty(t, token)
	assert.True(t, sessions.IsAuthorized(token))
}

func TestAuthenticateEmailIsCaseInsensitive(t *testing.T) {
	sessions := middleware.NewSessionStore()
	uc := usecase.NewAuthenticateUseCase(testAccounts(), sessions)

	_, token, err := uc.Execute("  Admin@Example.COM ", "secret")
	require.NoError(t, err)
	assert.True(t, sessions.IsAuthorized(token))
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	sessions := middleware.NewSessionStore()
	uc := usecase.NewAuthenticateUseCase(testAccounts(), sessions)

	_, _, err := uc.Execute("admin@example.com", "wrong")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, _, err = uc.Execute("nobody@example.com", "secret")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestSessionGateRejectsUnknownToken(t *testing.T) {
	sessions := middleware.NewSessionStore()
	assert.False(t, sessions.IsAuthorized(""))
	assert.False(t, sessions.IsAuthorized("made-up-token"))
}
