package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	s := FromContext(context.Background())
	assert.False(t, s.IsSignedIn())
	assert.Empty(t, s.AccountID())

	ctx := WithSession(context.Background(), SignedIn("alice.testnet"))
	s = FromContext(ctx)
	assert.True(t, s.IsSignedIn())
	assert.Equal(t, "alice.testnet", s.AccountID())
}

func newIssuer(t *testing.T, secret string) *Issuer {
	t.Helper()
	iss, err := NewIssuer([]byte(secret))
	require.NoError(t, err)
	return iss
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	iss, err := NewIssuer(nil)
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Nil(t, iss)

	_, err = NewIssuer([]byte{})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssuer_RoundTrip(t *testing.T) {
	iss := newIssuer(t, "secret")
	tok, err := iss.Issue("bob.testnet", time.Hour)
	require.NoError(t, err)

	s, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "bob.testnet", s.AccountID())
	assert.True(t, s.IsSignedIn())
}

func TestIssuer_Rejects(t *testing.T) {
	iss := newIssuer(t, "secret")

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := newIssuer(t, "other").Issue("bob", time.Hour)
		require.NoError(t, err)
		s, err := iss.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.False(t, s.IsSignedIn())
	})

	t.Run("expired", func(t *testing.T) {
		past := newIssuer(t, "secret")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		tok, err := past.Issue("bob", time.Hour)
		require.NoError(t, err)
		_, err = iss.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := iss.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty account", func(t *testing.T) {
		_, err := iss.Issue("", time.Hour)
		assert.Error(t, err)
	})
}
