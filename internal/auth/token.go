// internal/auth/token.go
package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity provider's session claims. Subject carries the
// user reference; OrgID is present when the user has an active organization.
type Claims struct {
	Email string `json:"email,omitempty"`
	OrgID string `json:"org_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager verifies session tokens. Tokens are RS256 when a public key is
// configured and HS256 otherwise. Issuing is only possible with a shared
// secret, which local development and tests use.
type TokenManager struct {
	secret    []byte
	publicKey *rsa.PublicKey
	issuer    string
	leeway    time.Duration
}

type TokenConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
}

func NewTokenManager(cfg TokenConfig) (*TokenManager, error) {
	tm := &TokenManager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		leeway: 30 * time.Second,
	}

	if cfg.PublicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parsing session public key: %w", err)
		}
		tm.publicKey = key
	}

	if tm.publicKey == nil && len(tm.secret) == 0 {
		return nil, errors.New("session secret or public key required")
	}
	return tm, nil
}

// Generate issues an HS256 session token.
func (tm *TokenManager) Generate(userID, orgID, email string, ttl time.Duration) (string, error) {
	if len(tm.secret) == 0 {
		return "", errors.New("token issuing requires a shared secret")
	}

	now := time.Now()
	claims := Claims{
		Email: email,
		OrgID: orgID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    tm.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithLeeway(tm.leeway),
		jwt.WithExpirationRequired(),
	}
	if tm.issuer != "" {
		opts = append(opts, jwt.WithIssuer(tm.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, tm.keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("invalid token: missing subject")
	}

	return claims, nil
}

func (tm *TokenManager) keyFunc(t *jwt.Token) (interface{}, error) {
	if tm.publicKey != nil {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.publicKey, nil
	}

	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return tm.secret, nil
}
