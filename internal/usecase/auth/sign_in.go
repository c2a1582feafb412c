package auth

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/security"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike.
var ErrInvalidCredentials = httperr.ErrUnauthorized("Email or password invalid")

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type TokenIssuer interface {
	Issue(id, name, email string) (string, error)
}

type SignedInUser struct {
	ID    string `json:"id"`
	Name  string `json:"user_name"`
	Email string `json:"user_email"`
}

type SignInOutput struct {
	User        SignedInUser `json:"user"`
	AccessToken string       `json:"accessToken"`
}

type SignIn struct {
	users  UserFinder
	tokens TokenIssuer
}

func NewSignIn(users UserFinder, tokens TokenIssuer) *SignIn {
	return &SignIn{users: users, tokens: tokens}
}

func (uc *SignIn) Execute(ctx context.Context, email, password string) (*SignInOutput, error) {
	u, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			// Same cost as a real comparison so timing does not reveal the email.
			security.CheckPassword(dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID, u.Name, u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &SignInOutput{
		User: SignedInUser{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		},
		AccessToken: token,
	}, nil
}

var dummyHash, _ = security.HashPassword("not-a-real-password")
