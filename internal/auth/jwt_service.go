package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"proplist/internal/model"
)

// TokenExpiry is the duration for which issued tokens are valid.
const TokenExpiry = time.Hour

var (
	// ErrSecretMissing is returned when no signing secret is configured.
	ErrSecretMissing = errors.New("JWT secret is not set")
	// ErrInvalidToken is returned for malformed, badly signed or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims represents the identity and role claims embedded in a bearer token.
type Claims struct {
	UserID    string          `json:"id"`
	Roles     model.RoleList  `json:"roles"`
	StaffRole model.StaffRole `json:"staffRole,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles token generation and validation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// Generate signs a token embedding the user's identity and roles.
func (s *JWTService) Generate(user *model.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretMissing
	}

	claims := &Claims{
		UserID:    user.ID.String(),
		Roles:     user.Roles,
		StaffRole: user.StaffRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token, returning its claims.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
