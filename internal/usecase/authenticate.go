package usecase

import (
	"strings"

	"github.com/xavierca1/lead-intake/internal/entity"
)

// Account pairs a principal with its static secret. Real credential storage
// lives outside this service; accounts come from configuration.
type Account struct {
	User     entity.User
	Password string
}

type AuthenticateUseCase struct {
	accounts map[string]Account // keyed by lowercased email
	sessions SessionIssuer
}

func NewAuthenticateUseCase(accounts []Account, sessions SessionIssuer) *AuthenticateUseCase {
	byEmail := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byEmail[strings.ToLower(a.User.Email)] = a
	}
	return &AuthenticateUseCase{accounts: byEmail, sessions: sessions}
}

// Execute checks the identifier/secret pair and issues a session token.
// Unknown identifier and wrong secret are indistinguishable to the caller.
func (uc *AuthenticateUseCase) Execute(email, password string) (*entity.User, string, error) {
	account, ok := uc.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok || account.Password != password {
		return nil, "", entity.ErrInvalidCredentials
	}

	user := account.User
	token := uc.sessions.Issue(&user)
	return &user, token, nil
}
