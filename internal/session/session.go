// Package session carries the identity of the caller explicitly. Every call to
// the backend receives a *Session instead of reading ambient state.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/farellandr/eventportal/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type Session struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"-"`
}

func (s *Session) IsOrganizer() bool {
	return s != nil && (s.Role == models.RoleOrganizer || s.Role == models.RoleAdmin)
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == models.RoleAdmin
}

// Owns reports whether the session may act on a record owned by userID.
// Admins own everything.
func (s *Session) Owns(userID int64) bool {
	return s != nil && (s.IsAdmin() || s.UserID == userID)
}

// Issue signs an HS256 token for s valid for ttl.
func Issue(secret string, ttl time.Duration, s Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  s.UserID,
		"username": s.Username,
		"email":    s.Email,
		"role":     s.Role,
		"exp":      time.Now().Add(ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates tokenString and rebuilds the session it was issued for.
func Parse(secret, tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// numeric claims decode as float64
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Session{
		UserID:   int64(rawID),
		Username: username,
		Email:    email,
		Role:     role,
		Token:    tokenString,
	}, nil
}
