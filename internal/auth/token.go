package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shelfkeeper/internal/common"
	"shelfkeeper/internal/models"
)

// sessionValidity bounds how long a persisted session survives without a
// fresh login.
const sessionValidity = 30 * 24 * time.Hour

// sessionClaims carries the reduced user projection inside the session
// token.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// newSessionToken signs a session token for the given user.
func newSessionToken(user *models.User, key []byte, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionValidity)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	return token.SignedString(key)
}

// parseSessionToken verifies a session token and returns the session
// projection it carries. Any verification failure, including expiry,
// reports common.ErrInvalidToken. Expiry is checked against now so the
// clock can be controlled in tests.
func parseSessionToken(tokenString string, key []byte, now func() time.Time) (*models.Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithTimeFunc(now))
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &models.Session{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
