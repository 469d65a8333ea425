package commands

import (
	"context"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/shared"
)

var (
	ErrEmailAlreadyExists = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type SignUpInput struct {
	Role        principal.Role
	Email       string
	Password    string
	Name        string
	PhoneNumber string
}

type SignInInput struct {
	Role     principal.Role
	Email    string
	Password string
}

type SignInResult struct {
	PrincipalID int64
	Role        principal.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	SignUp(ctx context.Context, in SignUpInput) (int64, error)
	SignIn(ctx context.Context, in SignInInput) (*SignInResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	hasher PasswordHasher
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, hasher PasswordHasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		hasher: hasher,
		clock:  clk,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, in SignUpInput) (int64, error) {
	if !in.Role.IsValid() {
		return 0, markDomainErr(principal.ErrInvalidRole)
	}
	credentials, err := principal.NewCredentials(in.Email, in.Password)
	if err != nil {
		return 0, markDomainErr(err)
	}
	name, err := principal.NewName(in.Name)
	if err != nil {
		return 0, markDomainErr(err)
	}
	phone, err := principal.NewPhoneNumber(in.PhoneNumber)
	if err != nil {
		return 0, markDomainErr(err)
	}

	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return 0, errs.Wrap(err, "failed to hash password")
	}

	p, err := principal.NewPrincipal(in.Role, credentials.Email(), hash, name, phone, a.clock.Now())
	if err != nil {
		return 0, markDomainErr(err)
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Principals().ExistsByEmail(ctx, in.Role, credentials.Email().Value())
		if err != nil {
			return err
		}
		if exists {
			return errs.Mark(ErrEmailAlreadyExists, errs.ErrConflict)
		}

		id, err = tx.Principals().Create(ctx, p)
		if err != nil {
			// lost a race with a concurrent sign-up
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(ErrEmailAlreadyExists, errs.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// SignIn reports an unknown email and a wrong password identically.
func (a *authCommandsImpl) SignIn(ctx context.Context, in SignInInput) (*SignInResult, error) {
	invalid := errs.Mark(ErrInvalidCredentials, errs.ErrAuthentication)

	if !in.Role.IsValid() {
		return nil, invalid
	}
	email, err := principal.NewEmail(in.Email)
	if err != nil || in.Password == "" {
		return nil, invalid
	}

	var found *principal.Principal
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Principals().FindByEmail(ctx, in.Role, email.Value())
		if err != nil {
			return err
		}
		found = p
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if err := a.hasher.Compare(found.PasswordHash(), in.Password); err != nil {
		return nil, invalid
	}

	token, err := a.tokens.Issue(found.ID(), found.Email().Value(), found.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &SignInResult{
		PrincipalID: found.ID(),
		Role:        found.Role(),
		AccessToken: token,
		ExpiresIn:   a.tokens.TTL(),
	}, nil
}
