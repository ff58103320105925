package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = 1 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenIssuer mints and verifies the signed session tokens. Both kinds are
// stateless JWTs sharing one signing secret and differing only in lifetime;
// nothing is stored server-side, so revocation is by expiry alone. Presenting
// a refresh token yields a new pair but the old refresh token stays valid
// until it expires — a known weakening versus rotation with revocation.
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

func (t *TokenIssuer) IssueAccess(subjectID string) (string, error) {
	return t.issue(subjectID, AccessTokenTTL)
}

func (t *TokenIssuer) IssueRefresh(subjectID string) (string, error) {
	return t.issue(subjectID, RefreshTokenTTL)
}

func (t *TokenIssuer) issue(subjectID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify reports the token subject and whether the token is acceptable.
// Malformed, tampered and expired tokens all come back not-ok; the caller is
// told nothing more, to avoid leaking which check failed.
func (t *TokenIssuer) Verify(tokenStr string) (string, bool) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}
