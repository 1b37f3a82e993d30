package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail parsing or validation.
var ErrInvalidToken = errors.New("invalid token")

// ErrEmptySecret is returned by NewIssuer when no signing secret is configured.
var ErrEmptySecret = errors.New("session secret is empty")

// Claims carries the account a token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer returns an Issuer using secret, which must not be empty.
func NewIssuer(secret []byte) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &Issuer{secret: secret, now: time.Now}, nil
}

// Issue returns a token for accountID valid for ttl.
func (i *Issuer) Issue(accountID string, ttl time.Duration) (string, error) {
	if accountID == "" {
		return "", fmt.Errorf("account id is required")
	}
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AccountID: accountID,
	})
	return token.SignedString(i.secret)
}

// Verify parses tokenString and returns the session it carries.
// An expired token is reported as ErrInvalidToken wrapping jwt.ErrTokenExpired.
func (i *Issuer) Verify(tokenString string) (Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return Anonymous, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.AccountID == "" {
		return Anonymous, ErrInvalidToken
	}
	return SignedIn(claims.AccountID), nil
}
