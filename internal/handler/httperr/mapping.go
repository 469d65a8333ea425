package httperr

import (
	"net/http"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/domain/restaurant"
	"restaurant-reservation/internal/domain/review"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/pkg/jwt"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/internal/usecase/commands"
	"restaurant-reservation/internal/usecase/shared"
)

const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInvalidState     = "INVALID_STATE_TRANSITION"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

var categoryStatus = []struct {
	category error
	status   int
	code     string
}{
	{errs.ErrAuthentication, http.StatusUnauthorized, CodeUnauthenticated},
	{errs.ErrAuthorization, http.StatusForbidden, CodeForbidden},
	{errs.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{errs.ErrInvalidStateTransition, http.StatusConflict, CodeInvalidState},
	{errs.ErrConflict, http.StatusConflict, CodeConflict},
	{errs.ErrValidation, http.StatusUnprocessableEntity, CodeValidationFailed},
}

// sentinelCodes are checked in order; the first match names the code.
var sentinelCodes = []struct {
	err  error
	code string
}{
	// authentication
	{usecase.ErrMissingToken, "MISSING_TOKEN"},
	{usecase.ErrInvalidToken, "INVALID_TOKEN"},
	{usecase.ErrPrincipalNotFound, "PRINCIPAL_NOT_FOUND"},
	{jwt.ErrMalformedHeader, "MALFORMED_AUTHORIZATION_HEADER"},
	{commands.ErrInvalidCredentials, "INVALID_CREDENTIALS"},

	// authorization
	{principal.ErrForbidden, "ROLE_NOT_ALLOWED"},
	{shared.ErrNotRestaurantManager, "NOT_RESTAURANT_MANAGER"},
	{shared.ErrNotReservationCustomer, "NOT_RESERVATION_CUSTOMER"},
	{commands.ErrReviewNotOwned, "REVIEW_NOT_OWNED"},

	// not found
	{shared.ErrCustomerNotFound, "CUSTOMER_NOT_FOUND"},
	{shared.ErrManagerNotFound, "MANAGER_NOT_FOUND"},
	{shared.ErrRestaurantNotFound, "RESTAURANT_NOT_FOUND"},
	{shared.ErrReservationNotFound, "RESERVATION_NOT_FOUND"},
	{shared.ErrReviewNotFound, "REVIEW_NOT_FOUND"},

	// state transitions
	{reservation.ErrAlreadyCancelled, "RESERVATION_ALREADY_CANCELED"},
	{reservation.ErrAlreadyVisited, "RESERVATION_ALREADY_VISITED"},
	{reservation.ErrAlreadyProcessed, "RESERVATION_ALREADY_PROCESSED"},
	{reservation.ErrNotYetProcessed, "RESERVATION_NOT_YET_PROCESSED"},
	{reservation.ErrCustomerMismatch, "CUSTOMER_MISMATCH"},
	{reservation.ErrNotExpirable, "RESERVATION_NOT_EXPIRABLE"},
	{reservation.ErrIllegalTransition, "ILLEGAL_STATUS_TRANSITION"},
	{commands.ErrConcurrentModification, "CONCURRENT_MODIFICATION"},
	{review.ErrCannotReview, "RESERVATION_NOT_REVIEWABLE"},

	// conflicts
	{commands.ErrEmailAlreadyExists, "EMAIL_ALREADY_EXISTS"},
	{commands.ErrReviewAlreadyExists, "REVIEW_ALREADY_EXISTS"},

	// validation
	{reservation.ErrInvalidPeopleCount, "INVALID_PEOPLE_COUNT"},
	{reservation.ErrReservationTimeNotFuture, "RESERVATION_TIME_NOT_FUTURE"},
	{reservation.ErrInvalidVisitForm, "INVALID_VISIT_FORM"},
	{reservation.ErrInvalidDecision, "INVALID_DECISION"},
	{principal.ErrInvalidEmail, "INVALID_EMAIL"},
	{principal.ErrPasswordTooWeak, "PASSWORD_TOO_WEAK"},
	{principal.ErrInvalidName, "INVALID_NAME"},
	{principal.ErrInvalidPhoneNumber, "INVALID_PHONE_NUMBER"},
	{principal.ErrInvalidRole, "INVALID_ROLE"},
	{restaurant.ErrInvalidName, "INVALID_RESTAURANT_NAME"},
	{restaurant.ErrInvalidLocation, "INVALID_RESTAURANT_LOCATION"},
	{restaurant.ErrDescriptionTooLong, "RESTAURANT_DESCRIPTION_TOO_LONG"},
	{restaurant.ErrInvalidPhoneNumber, "INVALID_RESTAURANT_PHONE_NUMBER"},
	{restaurant.ErrInvalidManager, "INVALID_RESTAURANT_MANAGER"},
	{review.ErrInvalidRating, "INVALID_RATING"},
	{review.ErrInvalidTitle, "INVALID_REVIEW_TITLE"},
	{review.ErrEmptyComment, "EMPTY_REVIEW_COMMENT"},
	{review.ErrCommentTooLong, "REVIEW_COMMENT_TOO_LONG"},
}

// FromError maps an error to its HTTP status, a stable code and the message shown to clients.
// Errors without a category are internal: their text never reaches the client.
func FromError(err error) (status int, code, message string) {
	for _, c := range categoryStatus {
		if !errs.Is(err, c.category) {
			continue
		}
		code = c.code
		for _, s := range sentinelCodes {
			if errs.Is(err, s.err) {
				code = s.code
				message = s.err.Error()
				break
			}
		}
		if message == "" {
			message = c.category.Error()
		}
		return c.status, code, message
	}
	return http.StatusInternalServerError, CodeInternal, "Internal server error"
}
