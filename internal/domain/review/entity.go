package review

import (
	"errors"
	"time"

	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/pkg/patch"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidTitle   = errors.New("title must be between 1 and 100 characters")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
	ErrCannotReview   = errors.New("only completed reservations can be reviewed")
)

type Review struct {
	id            int64
	customerID    int64
	restaurantID  int64
	reservationID int64
	title         Title
	comment       Comment
	rating        Rating
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReview writes a review for a completed reservation. Authorship is checked by the caller.
func NewReview(res *reservation.Reservation, title, comment string, rating int, now time.Time) (*Review, error) {
	if res == nil || res.Status() != reservation.StatusCompleted {
		return nil, ErrCannotReview
	}

	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	c, err := NewComment(comment)
	if err != nil {
		return nil, err
	}
	r, err := NewRating(rating)
	if err != nil {
		return nil, err
	}

	return &Review{
		customerID:    res.CustomerID(),
		restaurantID:  res.RestaurantID(),
		reservationID: res.ID(),
		title:         t,
		comment:       c,
		rating:        r,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(id, customerID, restaurantID, reservationID int64, title, comment string, rating int, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		reservationID: reservationID,
		title:         Title{text: title},
		comment:       Comment{text: comment},
		rating:        Rating{value: rating},
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Revise applies a partial edit. Nil fields keep their current value.
func (r *Review) Revise(title, comment *string, rating *int, now time.Time) error {
	t, err := NewTitle(patch.Coalesce(title, r.title.String()))
	if err != nil {
		return err
	}
	c, err := NewComment(patch.Coalesce(comment, r.comment.String()))
	if err != nil {
		return err
	}
	rt, err := NewRating(patch.Coalesce(rating, r.rating.Value()))
	if err != nil {
		return err
	}

	r.title, r.comment, r.rating = t, c, rt
	r.updatedAt = now
	return nil
}

func (r *Review) IsAuthoredBy(customerID int64) bool {
	return r.customerID == customerID
}

func (r *Review) AssignID(id int64) { r.id = id }

func (r *Review) ID() int64            { return r.id }
func (r *Review) CustomerID() int64    { return r.customerID }
func (r *Review) RestaurantID() int64  { return r.restaurantID }
func (r *Review) ReservationID() int64 { return r.reservationID }
func (r *Review) Title() Title         { return r.title }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
