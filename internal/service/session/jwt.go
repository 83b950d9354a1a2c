package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dhaneyl/course-platform/internal/app_errors"

	"github.com/golang-jwt/jwt/v5"
)

var signingMethod = jwt.SigningMethodHS256

// TokenManager mints the access tokens backing the authenticated-route guard.
type TokenManager struct {
	secretKey string
	issuer    string
	ttl       time.Duration
}

func NewTokenManager(secretKey, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: secretKey,
		issuer:    issuer,
		ttl:       ttl,
	}
}

type Claims struct {
	StudentID string `json:"student_id"`
	jwt.RegisteredClaims
}

func (m *TokenManager) Generate(studentID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(signingMethod, Claims{
		StudentID: studentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   studentID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) ParseClaims(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != signingMethod {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, app_errors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", app_errors.ErrInvalidToken, err)
	}

	if claims.StudentID == "" {
		return nil, app_errors.ErrInvalidToken
	}
	return claims, nil
}
