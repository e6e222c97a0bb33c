package services

import (
	"context"
	"errors"
	"fmt"

	"bazaar/internal/auth"
	"bazaar/internal/domain/users"
)

// maxPasswordBytes is bcrypt's input limit, counted in bytes.
const maxPasswordBytes = 72

type SignupInput struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PublicUser is the part of a user that is safe to return to clients.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Identity is what a verified token says about its bearer.
type Identity struct {
	ID       int64
	Username string
}

type AuthService struct {
	users         users.Store
	authenticator auth.Authenticator
}

func NewAuthService(store users.Store, authenticator auth.Authenticator) *AuthService {
	return &AuthService{users: store, authenticator: authenticator}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password longer than %d bytes", ErrValidation, maxPasswordBytes)
	}

	user := &users.User{
		Username: in.Username,
		Email:    in.Email,
	}
	if err := user.Password.Set(in.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, users.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.Password.Compare(in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// VerifyToken returns auth.ErrMissingToken or auth.ErrInvalidToken on failure.
func (s *AuthService) VerifyToken(token string) (*Identity, error) {
	claims, err := s.authenticator.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: claims.UserID, Username: claims.Username}, nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pub := toPublic(user)
	return &pub, nil
}

func (s *AuthService) issue(user *users.User) (*AuthResult, error) {
	token, err := s.authenticator.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: toPublic(user)}, nil
}

func toPublic(u *users.User) PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}
