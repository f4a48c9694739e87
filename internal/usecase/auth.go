package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/domain/repository"
	pkgAuth "github.com/GuiiMoreira/jobah-api/internal/pkg/auth"
)

const minPasswordLength = 6

// RegisterInput carries the sign-up form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Kind     model.AccountKind
}

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(store repository.Store, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: store.Users(), hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns an auth token for it.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case in.Name == "":
		return nil, "", domainErrors.Invalid("name", "is required")
	case !strings.Contains(in.Email, "@"):
		return nil, "", domainErrors.Invalid("email", "must be a valid address")
	case len(in.Password) < minPasswordLength:
		return nil, "", domainErrors.Invalid("password", "must be at least 6 characters")
	case !in.Kind.Valid():
		return nil, "", domainErrors.Invalid("kind", "must be client or provider")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, "", domainErrors.Invalid("password", "must be at most 72 bytes")
		}
		return nil, "", err
	}

	usr := &model.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Kind:         in.Kind,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(identityOf(usr))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(identityOf(usr))
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken resolves the caller identity carried by the token.
func (u *AuthUseCase) ParseToken(token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func identityOf(usr *model.User) model.Identity {
	return model.Identity{UserID: usr.ID, Name: usr.Name, Kind: usr.Kind}
}
