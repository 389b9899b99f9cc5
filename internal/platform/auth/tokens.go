// Package auth issues and verifies the bearer tokens of the adopter and admin domains.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AdopterTokenTTL is the lifetime of tokens issued at adopter login or registration.
	AdopterTokenTTL = 7 * 24 * time.Hour
	// AdminTokenTTL is the lifetime of tokens issued at admin login.
	AdminTokenTTL = 8 * time.Hour
)

var (
	ErrMissingToken = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrRevokedToken = errors.New("token revoked")
	ErrEmptySecret  = errors.New("token signing secret is empty")
)

// Claims is the payload carried by both token domains.
type Claims struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// Token is a signed token plus the identifiers needed to revoke it.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Issuer signs and parses HS256 tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer builds an issuer for the given signing secret.
func NewIssuer(secret string) (*Issuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &Issuer{secret: []byte(secret), now: time.Now}, nil
}

// WithClock overrides the time source for deterministic testing.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	if now != nil {
		i.now = now
	}
	return i
}

// IssueAdopter signs a 7-day adopter token.
func (i *Issuer) IssueAdopter(id int64, email string) (Token, error) {
	return i.issue(Claims{ID: id, Email: email}, AdopterTokenTTL)
}

// IssueAdmin signs an 8-hour token carrying the isAdmin claim.
func (i *Issuer) IssueAdmin(id int64, email string) (Token, error) {
	return i.issue(Claims{ID: id, Email: email, IsAdmin: true}, AdminTokenTTL)
}

func (i *Issuer) issue(claims Claims, ttl time.Duration) (Token, error) {
	now := i.now()
	expires := now.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   fmt.Sprintf("%d", claims.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: signed, ID: claims.RegisteredClaims.ID, ExpiresAt: expires}, nil
}

// Parse verifies signature and expiry and returns the claims.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingToken
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
