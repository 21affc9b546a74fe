package apperrors

import "errors"

// Sentinel errors shared by services and handlers. Services wrap these with
// a user-facing message; handlers map the category to an HTTP status.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// E pairs a sentinel category with the message the client should see.
type E struct {
	Kind    error
	Message string
}

func (e *E) Error() string { return e.Message }

func (e *E) Unwrap() error { return e.Kind }

// New builds a categorized error with a client-facing message.
func New(kind error, message string) error {
	return &E{Kind: kind, Message: message}
}

// Message extracts the client-facing text, or empty if err is not ours.
func Message(err error) string {
	var ae *E
	if errors.As(err, &ae) {
		return ae.Message
	}
	return ""
}
