//go:build unit || e2e

package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/domain/restaurant"
	"restaurant-reservation/internal/domain/review"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// UnitOfWork is an in-memory shared.UnitOfWork. A failing transaction leaves no trace.
type UnitOfWork struct {
	mu     sync.Mutex
	state  *state
	Events []reservation.Event

	// FailSave, when set, is returned by the next reservation Save instead of writing.
	FailSave error
}

type state struct {
	nextID       int64
	principals   map[principal.Role]map[int64]*principal.Principal
	restaurants  map[int64]*restaurant.Restaurant
	reservations map[int64]*reservation.Reservation
	reviews      map[int64]*review.Review
	outbox       map[int64]shared.OutboxMessage
	published    map[int64]time.Time
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		state: &state{
			principals: map[principal.Role]map[int64]*principal.Principal{
				principal.RoleCustomer: {},
				principal.RoleManager:  {},
			},
			restaurants:  map[int64]*restaurant.Restaurant{},
			reservations: map[int64]*reservation.Reservation{},
			reviews:      map[int64]*review.Review{},
			outbox:       map[int64]shared.OutboxMessage{},
			published:    map[int64]time.Time{},
		},
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UnitOfWork) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.state.clone()
	events := len(u.Events)
	tx := &fakeTx{u: u}
	if err := fn(ctx, tx); err != nil {
		u.state = snapshot
		u.Events = u.Events[:events]
		return err
	}
	return nil
}

// Seed helpers write directly, outside any transaction.

func (u *UnitOfWork) AddPrincipal(p *principal.Principal) *principal.Principal {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := u.state.id(p.ID())
	stored := principal.Reconstruct(id, p.Role(), p.Email().Value(), p.PasswordHash(), p.Name().Value(), p.PhoneNumber().Value(), p.CreatedAt())
	u.state.principals[p.Role()][id] = stored
	return stored
}

func (u *UnitOfWork) AddRestaurant(r *restaurant.Restaurant) *restaurant.Restaurant {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := u.state.id(r.ID())
	stored := restaurant.Reconstruct(id, r.ManagerID(), r.Name(), r.Location(), r.Description(), r.PhoneNumber(), r.CreatedAt(), r.UpdatedAt())
	u.state.restaurants[id] = stored
	return stored
}

func (u *UnitOfWork) AddReservation(r *reservation.Reservation) *reservation.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := u.state.id(r.ID())
	stored := cloneReservation(id, r)
	u.state.reservations[id] = stored
	return cloneReservation(id, stored)
}

func (u *UnitOfWork) AddReview(r *review.Review) *review.Review {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := u.state.id(r.ID())
	stored := cloneReview(id, r)
	u.state.reviews[id] = stored
	return cloneReview(id, stored)
}

// Reservation returns a copy of the stored reservation, or nil.
func (u *UnitOfWork) Reservation(id int64) *reservation.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.state.reservations[id]
	if !ok {
		return nil
	}
	return cloneReservation(id, r)
}

func (u *UnitOfWork) Review(id int64) *review.Review {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.state.reviews[id]
	if !ok {
		return nil
	}
	return cloneReview(id, r)
}

func (u *UnitOfWork) Restaurant(id int64) *restaurant.Restaurant {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.restaurants[id]
}

func (u *UnitOfWork) PrincipalByEmail(role principal.Role, email string) *principal.Principal {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, p := range u.state.principals[role] {
		if p.Email().Value() == email {
			return p
		}
	}
	return nil
}

// Published reports whether the outbox row was marked as relayed.
func (u *UnitOfWork) Published(id int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.state.published[id]
	return ok
}

func (s *state) id(existing int64) int64 {
	if existing != 0 {
		if existing > s.nextID {
			s.nextID = existing
		}
		return existing
	}
	s.nextID++
	return s.nextID
}

func (s *state) clone() *state {
	c := &state{
		nextID:       s.nextID,
		principals:   map[principal.Role]map[int64]*principal.Principal{},
		restaurants:  make(map[int64]*restaurant.Restaurant, len(s.restaurants)),
		reservations: make(map[int64]*reservation.Reservation, len(s.reservations)),
		reviews:      make(map[int64]*review.Review, len(s.reviews)),
		outbox:       make(map[int64]shared.OutboxMessage, len(s.outbox)),
		published:    make(map[int64]time.Time, len(s.published)),
	}
	for role, byID := range s.principals {
		c.principals[role] = make(map[int64]*principal.Principal, len(byID))
		for id, p := range byID {
			c.principals[role][id] = p
		}
	}
	for id, r := range s.restaurants {
		c.restaurants[id] = r
	}
	for id, r := range s.reservations {
		c.reservations[id] = cloneReservation(id, r)
	}
	for id, r := range s.reviews {
		c.reviews[id] = cloneReview(id, r)
	}
	for id, m := range s.outbox {
		c.outbox[id] = m
	}
	for id, t := range s.published {
		c.published[id] = t
	}
	return c
}

func cloneReservation(id int64, r *reservation.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(
		id, r.CustomerID(), r.RestaurantID(), r.ManagerID(),
		r.PeopleCount().Value(), r.ReservationTime(), r.Status(), r.Visited(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func cloneReview(id int64, r *review.Review) *review.Review {
	return review.Reconstruct(
		id, r.CustomerID(), r.RestaurantID(), r.ReservationID(),
		r.Title().String(), r.Comment().String(), r.Rating().Value(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

type fakeTx struct {
	u *UnitOfWork
}

func (t *fakeTx) Principals() shared.PrincipalRepository     { return principalRepo{t.u} }
func (t *fakeTx) Restaurants() shared.RestaurantRepository   { return restaurantRepo{t.u} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return reservationRepo{t.u} }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return reviewRepo{t.u} }
func (t *fakeTx) Outbox() shared.OutboxRepository            { return outboxRepo{t.u} }

type principalRepo struct{ u *UnitOfWork }

func (r principalRepo) store(role principal.Role) (map[int64]*principal.Principal, error) {
	byID, ok := r.u.state.principals[role]
	if !ok {
		return nil, principal.ErrInvalidRole
	}
	return byID, nil
}

func (r principalRepo) FindByEmail(_ context.Context, role principal.Role, email string) (*principal.Principal, error) {
	byID, err := r.store(role)
	if err != nil {
		return nil, err
	}
	for _, p := range byID {
		if p.Email().Value() == email {
			return p, nil
		}
	}
	return nil, notFound("principal not found by email")
}

func (r principalRepo) FindByID(_ context.Context, role principal.Role, id int64) (*principal.Principal, error) {
	byID, err := r.store(role)
	if err != nil {
		return nil, err
	}
	p, ok := byID[id]
	if !ok {
		return nil, notFound("principal not found by id")
	}
	return p, nil
}

func (r principalRepo) ExistsByEmail(ctx context.Context, role principal.Role, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, role, email)
	if infra.IsKind(err, infra.KindNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r principalRepo) Create(ctx context.Context, p *principal.Principal) (int64, error) {
	byID, err := r.store(p.Role())
	if err != nil {
		return 0, err
	}
	for _, existing := range byID {
		if existing.Email().Value() == p.Email().Value() {
			return 0, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	id := r.u.state.id(0)
	byID[id] = principal.Reconstruct(id, p.Role(), p.Email().Value(), p.PasswordHash(), p.Name().Value(), p.PhoneNumber().Value(), p.CreatedAt())
	return id, nil
}

type restaurantRepo struct{ u *UnitOfWork }

func (r restaurantRepo) FindByID(_ context.Context, id int64) (*restaurant.Restaurant, error) {
	rest, ok := r.u.state.restaurants[id]
	if !ok {
		return nil, notFound("restaurant not found")
	}
	return rest, nil
}

func (r restaurantRepo) Create(_ context.Context, rest *restaurant.Restaurant) (int64, error) {
	if _, ok := r.u.state.principals[principal.RoleManager][rest.ManagerID()]; !ok {
		return 0, infra.WrapRepoErr("manager missing", nil, infra.KindForeignKeyViolated)
	}
	id := r.u.state.id(0)
	r.u.state.restaurants[id] = restaurant.Reconstruct(id, rest.ManagerID(), rest.Name(), rest.Location(), rest.Description(), rest.PhoneNumber(), rest.CreatedAt(), rest.UpdatedAt())
	return id, nil
}

type reservationRepo struct{ u *UnitOfWork }

func (r reservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	if err := r.u.FailSave; err != nil {
		r.u.FailSave = nil
		return err
	}

	if res.IsNew() {
		id := r.u.state.id(0)
		res.MarkPersisted(id)
		r.u.state.reservations[id] = cloneReservation(id, res)
		return nil
	}

	stored, ok := r.u.state.reservations[res.ID()]
	if !ok || stored.Status() != res.PersistedStatus() {
		return infra.WrapRepoErr("reservation status changed since it was read", nil, infra.KindConflict)
	}
	r.u.state.reservations[res.ID()] = cloneReservation(res.ID(), res)
	res.MarkPersisted(res.ID())
	return nil
}

func (r reservationRepo) FindByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	res, ok := r.u.state.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return cloneReservation(id, res), nil
}

func (r reservationRepo) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return r.FindByID(ctx, id)
}

func (r reservationRepo) FindAccepted(_ context.Context, until time.Time) ([]*reservation.Reservation, error) {
	var result []*reservation.Reservation
	for id, res := range r.u.state.reservations {
		if res.Status() == reservation.StatusAccepted && !res.ReservationTime().After(until) {
			result = append(result, cloneReservation(id, res))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReservationTime().Before(result[j].ReservationTime())
	})
	return result, nil
}

type reviewRepo struct{ u *UnitOfWork }

func (r reviewRepo) Create(_ context.Context, rev *review.Review) (int64, error) {
	for _, existing := range r.u.state.reviews {
		if existing.ReservationID() == rev.ReservationID() {
			return 0, infra.WrapRepoErr("duplicate review", nil, infra.KindDuplicateKey)
		}
	}
	id := r.u.state.id(0)
	rev.AssignID(id)
	r.u.state.reviews[id] = cloneReview(id, rev)
	return id, nil
}

func (r reviewRepo) FindByID(_ context.Context, id int64) (*review.Review, error) {
	rev, ok := r.u.state.reviews[id]
	if !ok {
		return nil, notFound("review not found")
	}
	return cloneReview(id, rev), nil
}

func (r reviewRepo) Update(_ context.Context, rev *review.Review) error {
	if _, ok := r.u.state.reviews[rev.ID()]; !ok {
		return notFound("review not found")
	}
	r.u.state.reviews[rev.ID()] = cloneReview(rev.ID(), rev)
	return nil
}

func (r reviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.u.state.reviews[id]; !ok {
		return notFound("review not found")
	}
	delete(r.u.state.reviews, id)
	return nil
}

func (r reviewRepo) ExistsForReservation(_ context.Context, reservationID int64) (bool, error) {
	for _, rev := range r.u.state.reviews {
		if rev.ReservationID() == reservationID {
			return true, nil
		}
	}
	return false, nil
}

type outboxRepo struct{ u *UnitOfWork }

func (r outboxRepo) Enqueue(_ context.Context, event reservation.Event) error {
	id := r.u.state.id(0)
	r.u.state.outbox[id] = shared.OutboxMessage{
		ID:            id,
		ReservationID: event.ReservationID,
		EventType:     event.Type.String(),
		Payload:       []byte(event.Type.String()),
		CreatedAt:     event.OccurredAt,
	}
	r.u.Events = append(r.u.Events, event)
	return nil
}

func (r outboxRepo) FetchPending(_ context.Context, limit int32) ([]shared.OutboxMessage, error) {
	var pending []shared.OutboxMessage
	for id, m := range r.u.state.outbox {
		if _, done := r.u.state.published[id]; !done {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].ID < pending[j].ID })
	if int32(len(pending)) > limit {
		pending = pending[:limit]
	}
	return pending, nil
}

func (r outboxRepo) MarkPublished(_ context.Context, ids []int64, at time.Time) error {
	for _, id := range ids {
		r.u.state.published[id] = at
	}
	return nil
}
