package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

var ErrInvalidCredentials = httperr.ErrUnauthenticated("invalid_credentials")

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Login struct {
	users  user.Repository
	tokens *auth.TokenManager
}

func NewLogin(users user.Repository, tokens *auth.TokenManager) *Login {
	return &Login{users: users, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*LoginOutput, error) {
	u, err := uc.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive || !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(auth.Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(uc.tokens.TTL().Seconds()),
	}, nil
}
