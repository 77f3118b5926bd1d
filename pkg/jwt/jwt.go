package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrWrongType    = errors.New("unexpected token type")
)

// Token types carried in the "type" claim.
const (
	TypeAccess      = "access"
	TypeTwofa       = "twofa"
	TypeEmailVerify = "email_verify"
	TypeReset       = "reset"
)

// Claims represents the JWT claims issued by this backend.
// Subject is the user's email address, matching the rest of the API
// which resolves the acting user by email.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Type   string `json:"type"`
}

// Manager signs and validates bearer tokens with HMAC-SHA512.
type Manager struct {
	secret         []byte
	issuer         string
	accessDuration time.Duration
}

// NewManager creates a new JWT manager.
func NewManager(secret, issuer string, accessDuration time.Duration) *Manager {
	return &Manager{
		secret:         []byte(secret),
		issuer:         issuer,
		accessDuration: accessDuration,
	}
}

// GenerateAccessToken issues a long-lived access token for a user.
func (m *Manager) GenerateAccessToken(userID int64, email string) (string, int64, error) {
	return m.generate(userID, email, TypeAccess, m.accessDuration)
}

// GenerateToken issues a token of the given type with an explicit lifetime.
// Used for the short-lived twofa, email-verification and password-reset tokens.
func (m *Manager) GenerateToken(userID int64, email, tokenType string, ttl time.Duration) (string, error) {
	token, _, err := m.generate(userID, email, tokenType, ttl)
	return token, err
}

func (m *Manager) generate(userID int64, email, tokenType string, ttl time.Duration) (string, int64, error) {
	now := time.Now()
	exp := now.Add(ttl)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID: userID,
		Type:   tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, exp.UnixMilli(), nil
}

// ValidateToken validates a token of any type and returns its claims.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateTokenOfType validates a token and requires a specific "type" claim.
func (m *Manager) ValidateTokenOfType(tokenString, tokenType string) (*Claims, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, ErrWrongType
	}
	return claims, nil
}
