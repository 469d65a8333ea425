package usecase

import (
	"context"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/pkg/jwt"
)

var (
	ErrMissingToken      = errs.New("access token required")
	ErrInvalidToken      = errs.New("invalid or expired access token")
	ErrPrincipalNotFound = errs.New("token principal no longer exists")
)

type TokenVerifier interface {
	Verify(token string) jwt.Verification
}

// PrincipalFinder is the role-dispatched lookup the resolver needs from the credential store.
type PrincipalFinder interface {
	FindByID(ctx context.Context, role principal.Role, id int64) (*principal.Principal, error)
}

// PrincipalResolver turns a bearer token into the principal it was issued to.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*principal.Principal, error)
}

type principalResolverImpl struct {
	verifier TokenVerifier
	finder   PrincipalFinder
}

func NewPrincipalResolver(verifier TokenVerifier, finder PrincipalFinder) PrincipalResolver {
	return &principalResolverImpl{
		verifier: verifier,
		finder:   finder,
	}
}

// Resolve fails with an authentication error for every token it cannot tie to a stored principal.
func (r *principalResolverImpl) Resolve(ctx context.Context, token string) (*principal.Principal, error) {
	v := r.verifier.Verify(token)
	if !v.Valid || v.Claims == nil {
		return nil, errs.Mark(ErrInvalidToken, errs.ErrAuthentication)
	}

	p, err := r.finder.FindByID(ctx, v.Claims.Role(), v.Claims.PrincipalID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrPrincipalNotFound, errs.ErrAuthentication)
		}
		return nil, errs.Wrap(err, "failed to load token principal")
	}

	// a recycled id must not inherit someone else's token
	if p.Email().Value() != v.Claims.Email() {
		return nil, errs.Mark(ErrInvalidToken, errs.ErrAuthentication)
	}
	return p, nil
}
