package medadmin

import "context"

type ctxKey string

const (
	ctxKeyIdentity ctxKey = "medadmin_identity"
	ctxKeyRole     ctxKey = "medadmin_role"
	ctxKeyToken    ctxKey = "medadmin_token"
)

// WithIdentity stores the authenticated identity in the context.
func WithIdentity(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, u)
}

// IdentityFromContext extracts the authenticated identity from the context.
func IdentityFromContext(ctx context.Context) *User {
	v, _ := ctx.Value(ctxKeyIdentity).(*User)
	return v
}

// WithRole stores the canonical role in the context.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, ctxKeyRole, role)
}

// RoleFromContext extracts the canonical role from the context.
func RoleFromContext(ctx context.Context) Role {
	v, _ := ctx.Value(ctxKeyRole).(Role)
	return v
}

// WithToken stores the bearer token in the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyToken, token)
}

// TokenFromContext extracts the bearer token from the context.
func TokenFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyToken).(string)
	return v
}
