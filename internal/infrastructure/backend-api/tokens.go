package backendapi

import "context"

// Credentials are the tokens a session holds for the backend.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

func (c Credentials) Authenticated() bool {
	return c.AccessToken != ""
}

// TokenStore persists one session's credentials.
type TokenStore interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, creds Credentials) error
	Clear(ctx context.Context) error
}

type tokenStoreKey struct{}

// ContextWithTokenStore scopes backend calls made with ctx to a session's tokens.
func ContextWithTokenStore(ctx context.Context, store TokenStore) context.Context {
	return context.WithValue(ctx, tokenStoreKey{}, store)
}

func TokenStoreFromContext(ctx context.Context) (TokenStore, bool) {
	store, ok := ctx.Value(tokenStoreKey{}).(TokenStore)
	return store, ok && store != nil
}
