package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrTableMismatch = errors.New("token was issued for another table")
)

// TableClaims grants control of a single table to whoever holds the token.
type TableClaims struct {
	TableID string `json:"table_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates table tokens with an HMAC secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateTableToken creates a JWT scoped to tableID
func (ti *TokenIssuer) GenerateTableToken(tableID string) (string, error) {
	now := ti.now()
	claims := &TableClaims{
		TableID: tableID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   tableID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// ValidateTableToken checks signature and expiry, then that the token belongs to tableID.
func (ti *TokenIssuer) ValidateTableToken(tokenString, tableID string) (*TableClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TableClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return ti.secret, nil
	}, jwt.WithTimeFunc(ti.now))

	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*TableClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TableID != tableID {
		return nil, ErrTableMismatch
	}
	return claims, nil
}
