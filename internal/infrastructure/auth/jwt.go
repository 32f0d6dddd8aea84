package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"caterly/internal/shared/authorization"
)

type Claims struct {
	UserID uint                   `json:"user_id"`
	Email  string                 `json:"email"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret     []byte
	expiryDays int
}

func NewJWTService(secret string, expiryDays int) *JWTService {
	if expiryDays <= 0 {
		expiryDays = 7
	}
	return &JWTService{
		secret:     []byte(secret),
		expiryDays: expiryDays,
	}
}

// Generate issues a signed session token carrying the user identity.
func (s *JWTService) Generate(userID uint, email string, role authorization.UserRole) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.expiryDays) * 24 * time.Hour)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates a session token and returns the embedded identity.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExpiryDays returns the configured token lifetime in days.
func (s *JWTService) ExpiryDays() int {
	return s.expiryDays
}
