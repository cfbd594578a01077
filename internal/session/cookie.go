package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the browser cookie carrying the signed session id.
const CookieName = "brightway_session"

// cookieClaims wraps the session id in standard JWT claims so the cookie
// value cannot be forged without the signing secret. The role itself still
// lives server-side in Redis; this only authenticates the session handle.
type cookieClaims struct {
	jwt.RegisteredClaims
	SID string `json:"sid"`
}

// CookieCodec signs and verifies session cookies.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewCookieCodec creates a codec with the shared session secret.
func NewCookieCodec(secret string, ttl time.Duration) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), ttl: ttl}
}

// Encode signs a session id into a cookie value.
func (c *CookieCodec) Encode(sid string) (string, error) {
	now := time.Now()
	claims := cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		SID: sid,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// Decode verifies a cookie value and returns the session id. Invalid or
// expired cookies decode to "" with an error; callers treat that as
// Anonymous rather than failing the request.
func (c *CookieCodec) Decode(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &cookieClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session cookie: %w", err)
	}
	claims, ok := token.Claims.(*cookieClaims)
	if !ok || !token.Valid || claims.SID == "" {
		return "", errors.New("invalid session cookie claims")
	}
	return claims.SID, nil
}
