package auth

import "errors"

var (
	// ErrMissingToken means no bearer credential was presented.
	ErrMissingToken = errors.New("authorization token is missing")
	// ErrInvalidToken covers bad signatures, wrong algorithms and expired tokens.
	ErrInvalidToken = errors.New("authorization token is invalid or expired")
)

type Authenticator interface {
	GenerateToken(userID int64, username string) (string, error)
	ValidateToken(token string) (*Claims, error)
}
