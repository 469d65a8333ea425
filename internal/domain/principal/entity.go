package principal

import (
	"time"

	"restaurant-reservation/internal/pkg/errs"
)

var ErrForbidden = errs.New("principal lacks the required role")

// Principal is an authenticated identity, either a customer or a manager.
// Name and phone number are kept because visit confirmation compares against them.
type Principal struct {
	id           int64
	role         Role
	email        Email
	passwordHash string
	name         Name
	phoneNumber  PhoneNumber
	createdAt    time.Time
}

func NewPrincipal(role Role, email Email, passwordHash string, name Name, phone PhoneNumber, now time.Time) (*Principal, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Principal{
		role:         role,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phoneNumber:  phone,
		createdAt:    now,
	}, nil
}

// Reconstruct rebuilds a stored principal without re-validating it.
func Reconstruct(id int64, role Role, email, passwordHash, name, phone string, createdAt time.Time) *Principal {
	return &Principal{
		id:           id,
		role:         role,
		email:        Email{value: email},
		passwordHash: passwordHash,
		name:         Name{value: name},
		phoneNumber:  PhoneNumber{value: phone},
		createdAt:    createdAt,
	}
}

func (p *Principal) ID() int64                { return p.id }
func (p *Principal) Role() Role               { return p.role }
func (p *Principal) Email() Email             { return p.email }
func (p *Principal) PasswordHash() string     { return p.passwordHash }
func (p *Principal) Name() Name               { return p.name }
func (p *Principal) PhoneNumber() PhoneNumber { return p.phoneNumber }
func (p *Principal) CreatedAt() time.Time     { return p.createdAt }

// MatchesContact reports whether the supplied name and phone are exactly the stored ones.
func (p *Principal) MatchesContact(name, phone string) bool {
	return p.name.value == name && p.phoneNumber.value == phone
}

// RequireRole is the precondition every mutating command checks before touching state.
func RequireRole(p *Principal, role Role) error {
	if p == nil || p.role != role {
		return errs.Mark(ErrForbidden, errs.ErrAuthorization)
	}
	return nil
}
