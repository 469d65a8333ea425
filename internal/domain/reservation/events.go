package reservation

import "time"

type EventType string

const (
	EventCreated   EventType = "reservation.created"
	EventAccepted  EventType = "reservation.accepted"
	EventRefused   EventType = "reservation.refused"
	EventCompleted EventType = "reservation.completed"
	EventExpired   EventType = "reservation.expired"
)

func (t EventType) String() string {
	return string(t)
}

// Event is a lifecycle fact recorded alongside the transition that produced it.
type Event struct {
	Type            EventType `json:"type"`
	ReservationID   int64     `json:"reservationId"`
	CustomerID      int64     `json:"customerId"`
	RestaurantID    int64     `json:"restaurantId"`
	Status          Status    `json:"status"`
	PeopleCount     int       `json:"peopleCount"`
	ReservationTime time.Time `json:"reservationTime"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// NewEvent snapshots r. Call it after the reservation has been saved so the id is set.
func NewEvent(t EventType, r *Reservation, now time.Time) Event {
	return Event{
		Type:            t,
		ReservationID:   r.id,
		CustomerID:      r.customerID,
		RestaurantID:    r.restaurantID,
		Status:          r.status,
		PeopleCount:     r.peopleCount.Value(),
		ReservationTime: r.reservationTime,
		OccurredAt:      now,
	}
}

// DecisionEvent names the event for a manager decision.
func DecisionEvent(d Decision) EventType {
	if d == DecisionAccept {
		return EventAccepted
	}
	return EventRefused
}
