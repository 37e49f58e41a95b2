package auth

import (
	"errors"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/password"
)

var ErrMalformedCredentials = errors.New("malformed credentials")

// Credentials is a login attempt whose email is already normalized.
type Credentials struct {
	email  user.Email
	secret string
}

func NewCredentials(email, secret string) (Credentials, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, errors.Join(ErrMalformedCredentials, err)
	}
	if _, err := user.NewPassword(secret); err != nil {
		return Credentials{}, errors.Join(ErrMalformedCredentials, err)
	}
	return Credentials{email: e, secret: secret}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

// Matches compares the attempt against a stored bcrypt hash.
func (c Credentials) Matches(hash string) bool {
	return password.ComparePassword(hash, c.secret) == nil
}
