package commands

import (
	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/domain/restaurant"
	"restaurant-reservation/internal/domain/review"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/errs"
)

var ErrConcurrentModification = errs.New("reservation was modified concurrently")

var validationErrors = []error{
	principal.ErrInvalidEmail,
	principal.ErrInvalidRole,
	principal.ErrPasswordTooWeak,
	principal.ErrInvalidName,
	principal.ErrInvalidPhoneNumber,
	reservation.ErrInvalidDecision,
	reservation.ErrInvalidPeopleCount,
	reservation.ErrReservationTimeNotFuture,
	reservation.ErrInvalidVisitForm,
	restaurant.ErrInvalidName,
	restaurant.ErrInvalidLocation,
	restaurant.ErrDescriptionTooLong,
	restaurant.ErrInvalidPhoneNumber,
	restaurant.ErrInvalidManager,
	review.ErrInvalidRating,
	review.ErrInvalidTitle,
	review.ErrEmptyComment,
	review.ErrCommentTooLong,
}

var transitionErrors = []error{
	reservation.ErrAlreadyCancelled,
	reservation.ErrAlreadyVisited,
	reservation.ErrAlreadyProcessed,
	reservation.ErrNotYetProcessed,
	reservation.ErrCustomerMismatch,
	reservation.ErrNotExpirable,
	reservation.ErrIllegalTransition,
	review.ErrCannotReview,
}

// markDomainErr attaches the error category to a domain rule violation.
// Errors that are not domain rules pass through unchanged.
func markDomainErr(err error) error {
	if err == nil {
		return nil
	}
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			return errs.Mark(err, errs.ErrValidation)
		}
	}
	for _, t := range transitionErrors {
		if errs.Is(err, t) {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}
	}
	return err
}

// notFoundAs replaces a repository NOT_FOUND with the given sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(sentinel, errs.ErrNotFound)
	}
	return err
}

// saveErr turns a lost compare-and-swap into ErrConcurrentModification.
func saveErr(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(ErrConcurrentModification, errs.ErrInvalidStateTransition)
	}
	return err
}
