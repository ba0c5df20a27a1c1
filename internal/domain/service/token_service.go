package service

import (
	"parcel/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the payload of an access token.
type Claims struct {
	Sub  uuid.UUID
	Role entity.Role
}

// Encrypter signs claims into an access token carrying an expiry.
type Encrypter interface {
	Encrypt(claims Claims) (string, error)
}

// TokenService signs and verifies access tokens.
type TokenService interface {
	Encrypter

	// Decrypt validates signature and expiry and returns the claims.
	Decrypt(token string) (*Claims, error)
}
