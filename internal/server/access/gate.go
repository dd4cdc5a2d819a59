// Package access decides whether a request carrying a session token may
// reach a protected operation.
package access

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/server/auth"
	"github.com/dmitrijs2005/lockify/internal/server/models"
)

// TokenVerifier decodes a session token.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserResolver looks a user up by id, returning common.ErrorNotFound when absent.
type UserResolver func(ctx context.Context, id string) (*models.User, error)

// Gate checks tokens and resolves them to live users. It keeps no state
// between calls: deleting a user revokes their outstanding tokens at once.
type Gate struct {
	tokens  TokenVerifier
	resolve UserResolver
}

func NewGate(tokens TokenVerifier, resolve UserResolver) *Gate {
	return &Gate{tokens: tokens, resolve: resolve}
}

// Authorize returns the principal behind token.
//
//	no token             -> common.ErrMissingToken
//	verification failure -> common.ErrInvalidToken
//	user no longer exists -> common.ErrUserNotFound
func (g *Gate) Authorize(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, common.ErrMissingToken
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := g.resolve(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	return models.PrincipalOf(*user), nil
}

// BearerToken extracts the credential from an "Authorization: Bearer <token>"
// value. The scheme is matched case-insensitively.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

type ctxKey struct{}

// ContextWithPrincipal attaches p to ctx.
func ContextWithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFromContext returns the principal attached by the gate.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(*models.Principal)
	return p, ok && p != nil
}
