package auth

import (
	"time"

	"parcel/config"
	"parcel/internal/domain/entity"
	"parcel/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultAccessTTL = time.Hour

// ErrInvalidToken is returned when a token fails signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid access token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.TokenExpiresInHours > 0 {
		ttl = time.Duration(cfg.Auth.TokenExpiresInHours) * time.Hour
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// Encrypt signs the claims into an HS256 access token.
func (s *jwtService) Encrypt(claims service.Claims) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.Sub.String(),         // Subject (who the token is for)
		"role": claims.Role.String(),        // Role for stateless authorization
		"iat":  now.Unix(),                  // Issued At
		"exp":  now.Add(s.accessTTL).Unix(), // Expiration Time
	})

	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Decrypt validates the token and returns its claims.
func (s *jwtService) Decrypt(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, errorText(err))
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(ErrInvalidToken, "unexpected claims type")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject missing")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a uuid")
	}

	roleClaim, _ := mapClaims["role"].(string)
	role := entity.Role(roleClaim)
	if !role.IsValid() {
		return nil, errors.Wrap(ErrInvalidToken, "unknown role")
	}

	return &service.Claims{Sub: userID, Role: role}, nil
}

func errorText(err error) string {
	if err == nil {
		return "token not valid"
	}

	return err.Error()
}
