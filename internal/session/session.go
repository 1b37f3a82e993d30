// Package session is the boundary to identity management. The service never
// signs accounts in or out; it only asks whether a request carries a live
// session and which account it belongs to.
package session

import "context"

// Session describes the caller of one request.
type Session interface {
	IsSignedIn() bool
	AccountID() string
}

type account struct {
	id string
}

// SignedIn returns a session for accountID.
func SignedIn(accountID string) Session {
	return account{id: accountID}
}

// Anonymous is the session of a caller without a valid token.
var Anonymous Session = account{}

func (a account) IsSignedIn() bool  { return a.id != "" }
func (a account) AccountID() string { return a.id }

type ctxKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(ctxKey{}).(Session); ok && s != nil {
		return s
	}
	return Anonymous
}
