package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
)

// Authorizer is the external authorization primitive: it decides whether the current call
// proves control of identity
//
//go:generate mockgen -source=guard.go -destination=../mocks/auth.go -package=mocks -mock_names=Authorizer=MockAuthorizer,Guard=MockGuard
type Authorizer interface {
	Authorize(ctx context.Context, identity domain.Identity) bool
}

// Guard is consulted before every mutating operation with the identity that bears its consequences
type Guard interface {
	// RequireAuthorized fails with domain.ErrUnauthorized unless the call proves control of actor
	RequireAuthorized(ctx context.Context, actor domain.Identity) error
}

type guard struct {
	authorizer Authorizer
}

// NewGuard creates a guard backed by authorizer
func NewGuard(authorizer Authorizer) Guard {
	return &guard{authorizer: authorizer}
}

func (g *guard) RequireAuthorized(ctx context.Context, actor domain.Identity) error {
	if !actor.Valid() {
		return fmt.Errorf("%w: invalid actor identity", domain.ErrUnauthorized)
	}
	if !g.authorizer.Authorize(ctx, actor) {
		logger.WarnCtx(ctx, "Authorization rejected", zap.String("actor", string(actor)))
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, actor)
	}
	return nil
}

// AuthorizerFunc adapts a function to the Authorizer interface
type AuthorizerFunc func(ctx context.Context, identity domain.Identity) bool

func (f AuthorizerFunc) Authorize(ctx context.Context, identity domain.Identity) bool {
	return f(ctx, identity)
}

// AnyAuthorizer authorizes when at least one of its authorizers does
type AnyAuthorizer []Authorizer

func (a AnyAuthorizer) Authorize(ctx context.Context, identity domain.Identity) bool {
	for _, authorizer := range a {
		if authorizer.Authorize(ctx, identity) {
			return true
		}
	}
	return false
}

// AllowList authorizes a fixed set of identities, used for trusted service callers and tests
type AllowList map[domain.Identity]struct{}

// NewAllowList creates an allow list of identities
func NewAllowList(identities ...domain.Identity) AllowList {
	list := make(AllowList, len(identities))
	for _, id := range identities {
		list[id] = struct{}{}
	}
	return list
}

func (l AllowList) Authorize(_ context.Context, identity domain.Identity) bool {
	_, ok := l[identity]
	return ok
}
