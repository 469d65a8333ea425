package shared

import (
	"context"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/domain/restaurant"
	"restaurant-reservation/internal/domain/review"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Principals() PrincipalRepository
	Restaurants() RestaurantRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Outbox() OutboxRepository
}

// CredentialStore looks principals up in the store of their role.
type CredentialStore interface {
	FindByEmail(ctx context.Context, role principal.Role, email string) (*principal.Principal, error)
	FindByID(ctx context.Context, role principal.Role, id int64) (*principal.Principal, error)
	ExistsByEmail(ctx context.Context, role principal.Role, email string) (bool, error)
}

type PrincipalRepository interface {
	CredentialStore
	Create(ctx context.Context, p *principal.Principal) (int64, error)
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error)
	Create(ctx context.Context, r *restaurant.Restaurant) (int64, error)
}

type ReservationRepository interface {
	// Save inserts a new reservation or applies a status change guarded by the status it was read with.
	Save(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindAccepted(ctx context.Context, until time.Time) ([]*reservation.Reservation, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (int64, error)
	FindByID(ctx context.Context, id int64) (*review.Review, error)
	Update(ctx context.Context, rev *review.Review) error
	Delete(ctx context.Context, id int64) error
	ExistsForReservation(ctx context.Context, reservationID int64) (bool, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event reservation.Event) error
	FetchPending(ctx context.Context, limit int32) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []int64, at time.Time) error
}

// OutboxMessage is a stored lifecycle event waiting to be relayed.
type OutboxMessage struct {
	ID            int64
	ReservationID int64
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}
