package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingTokenID = errors.New("token id is required")
	ErrMissingExpiry  = errors.New("token expiry is required")
)

// Revocation blocks a signed token until the token would have expired anyway.
type Revocation struct {
	TokenID   string
	Subject   string
	ExpiresAt time.Time
}

func NewRevocation(tokenID, subject string, expiresAt time.Time) (*Revocation, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return nil, ErrMissingTokenID
	}
	if expiresAt.IsZero() {
		return nil, ErrMissingExpiry
	}
	return &Revocation{TokenID: tokenID, Subject: strings.TrimSpace(subject), ExpiresAt: expiresAt.UTC()}, nil
}

// Expired reports whether the underlying token can no longer be presented.
func (r *Revocation) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}
