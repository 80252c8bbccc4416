// Package jwtx verifies identity-provider tokens. The service never issues
// credentials itself: an external provider signs short-lived HS256 tokens
// carrying a stable subject id, a display name, and an optional email, and
// this package checks them.
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
)

// Claims are the identity claims this service consumes. Keeping the set
// additive preserves compatibility with whatever else the provider stuffs in.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the display name the provider holds for the user.
	Name string `json:"name,omitempty"`

	// Email is optional; used only for best-effort notifications.
	Email string `json:"email,omitempty"`
}

// Verifier validates an identity token and returns the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256Verifier verifies tokens signed with a shared secret. Fine for a
// single-provider deployment; swap the Verifier implementation if the
// provider moves to asymmetric keys.
type HS256Verifier struct {
	secret []byte
	issuer string
}

func NewHS256Verifier(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer}
}

func (v *HS256Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrMalformed
	}

	if v.issuer != "" {
		iss, err := claims.GetIssuer()
		if err != nil || iss != v.issuer {
			return Claims{}, ErrIssuer
		}
	}
	if claims.Subject == "" {
		return Claims{}, ErrMalformed
	}

	return claims, nil
}
