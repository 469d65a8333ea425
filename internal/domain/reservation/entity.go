package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus            = errors.New("invalid reservation status")
	ErrInvalidDecision          = errors.New("invalid reservation decision")
	ErrInvalidPeopleCount       = errors.New("people count must be between 1 and 100")
	ErrReservationTimeNotFuture = errors.New("reservation time must be in the future")
	ErrInvalidVisitForm         = errors.New("visitor name and phone number are required")

	ErrAlreadyCancelled  = errors.New("reservation already cancelled")
	ErrAlreadyVisited    = errors.New("reservation already visited")
	ErrAlreadyProcessed  = errors.New("reservation already processed")
	ErrNotYetProcessed   = errors.New("reservation not yet processed")
	ErrCustomerMismatch  = errors.New("visitor does not match the reservation customer")
	ErrNotExpirable      = errors.New("reservation is not due for expiry")
	ErrIllegalTransition = errors.New("illegal reservation status transition")
)

// RestaurantRef carries what a new reservation copies from its restaurant.
type RestaurantRef struct {
	ID        int64
	ManagerID int64
}

type Reservation struct {
	id              int64
	customerID      int64
	restaurantID    int64
	managerID       int64
	peopleCount     PeopleCount
	reservationTime time.Time
	status          Status
	visited         bool
	createdAt       time.Time
	updatedAt       time.Time

	// status as last read from or written to the store; saves compare against it
	persistedStatus Status
}

func NewReservation(customerID int64, restaurant RestaurantRef, peopleCount PeopleCount, reservationTime, now time.Time) (*Reservation, error) {
	if !reservationTime.After(now) {
		return nil, ErrReservationTimeNotFuture
	}
	if peopleCount.Value() < MinPeopleCount {
		return nil, ErrInvalidPeopleCount
	}

	return &Reservation{
		customerID:      customerID,
		restaurantID:    restaurant.ID,
		managerID:       restaurant.ManagerID,
		peopleCount:     peopleCount,
		reservationTime: reservationTime,
		status:          StatusPending,
		visited:         false,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, customerID, restaurantID, managerID int64,
	peopleCount int,
	reservationTime time.Time,
	status Status,
	visited bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		customerID:      customerID,
		restaurantID:    restaurantID,
		managerID:       managerID,
		peopleCount:     PeopleCount{value: peopleCount},
		reservationTime: reservationTime,
		status:          status,
		visited:         visited,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		persistedStatus: status,
	}
}

// Decide applies a manager's accept or refuse to a pending reservation.
func (r *Reservation) Decide(d Decision, now time.Time) error {
	if !d.IsValid() {
		return ErrInvalidDecision
	}
	switch r.status {
	case StatusPending:
	case StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrAlreadyProcessed
	}
	return r.transition(d.target(), now)
}

// ConfirmVisit completes an accepted reservation. Contact matching is the caller's job.
func (r *Reservation) ConfirmVisit(now time.Time) error {
	switch r.status {
	case StatusAccepted:
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyVisited
	default:
		return ErrNotYetProcessed
	}
	if err := r.transition(StatusCompleted, now); err != nil {
		return err
	}
	r.visited = true
	return nil
}

// IsOverdue reports an accepted reservation whose time has passed without a visit.
func (r *Reservation) IsOverdue(now time.Time) bool {
	return r.status == StatusAccepted && !r.visited && r.reservationTime.Before(now)
}

// Expire cancels an overdue accepted reservation.
func (r *Reservation) Expire(now time.Time) error {
	if !r.IsOverdue(now) {
		return ErrNotExpirable
	}
	return r.transition(StatusCancelled, now)
}

func (r *Reservation) transition(to Status, now time.Time) error {
	if !r.status.CanTransitionTo(to) {
		return ErrIllegalTransition
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// MarkPersisted records the store-assigned id and the status now held by the store.
func (r *Reservation) MarkPersisted(id int64) {
	r.id = id
	r.persistedStatus = r.status
}

func (r *Reservation) IsNew() bool                { return r.id == 0 }
func (r *Reservation) ID() int64                  { return r.id }
func (r *Reservation) CustomerID() int64          { return r.customerID }
func (r *Reservation) RestaurantID() int64        { return r.restaurantID }
func (r *Reservation) ManagerID() int64           { return r.managerID }
func (r *Reservation) PeopleCount() PeopleCount   { return r.peopleCount }
func (r *Reservation) ReservationTime() time.Time { return r.reservationTime }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) PersistedStatus() Status    { return r.persistedStatus }
func (r *Reservation) Visited() bool              { return r.visited }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }
