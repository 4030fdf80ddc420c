package handlers

import "context"

type identityKey struct{}

// Identity is the authenticated caller attached by the auth middleware.
type Identity struct {
	UserID   string
	Username string
}

// WithIdentity returns ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom достает пользователя из контекста; false для анонимного запроса
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}
