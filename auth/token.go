package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated covers malformed, tampered and expired tokens alike.
var ErrUnauthenticated = errors.New("invalid or expired token")

// Claims carried by a session token. The registered subject claim holds the
// account's email address.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates signed session tokens. Tokens are
// stateless: expiry is the only invalidation mechanism, there is no
// revocation list.
type TokenIssuer struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, nowFunc: time.Now}
}

// Issue signs an HS256 token for the given subject.
func (t *TokenIssuer) Issue(email, username string) (string, error) {
	now := t.nowFunc()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token, returning its claims.
func (t *TokenIssuer) Verify(tokenString string) (Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.nowFunc))
	if err != nil || !token.Valid || claims.Subject == "" {
		return Claims{}, ErrUnauthenticated
	}
	return *claims, nil
}
