package identity

import "context"

// Provider is the identity store boundary. Account and invite flows depend on
// this contract only, so the backing store can be swapped without touching them.
type Provider interface {
	CreateIdentity(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
}

type SessionStore interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
}
