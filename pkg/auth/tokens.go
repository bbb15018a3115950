package auth

import "context"

// TokenGenerator abstracts token creation (e.g. JWT), keeping use cases
// framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
