package errs

// Error categories shared by every layer. Specific sentinels are marked with one of
// these at the usecase boundary so the transport layer can map categories to statuses.
var (
	ErrAuthentication         = New("authentication failure")
	ErrAuthorization          = New("authorization failure")
	ErrNotFound               = New("resource not found")
	ErrInvalidStateTransition = New("invalid state transition")
	ErrValidation             = New("validation failure")
	ErrConflict               = New("conflict")
)

var categories = []error{
	ErrAuthentication,
	ErrAuthorization,
	ErrNotFound,
	ErrInvalidStateTransition,
	ErrValidation,
	ErrConflict,
}

// Category returns the category err was marked with, or nil.
func Category(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range categories {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
