package common

import "errors"

// Kind classifies an application failure so the error boundary can map it to
// an HTTP status without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
)

// Error is the tagged failure value raised by services and middleware.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Conflict(message string) *Error {
	return NewError(KindConflict, message)
}

func NotFound(message string) *Error {
	return NewError(KindNotFound, message)
}

func Unauthorized(message string) *Error {
	return NewError(KindUnauthorized, message)
}

func Internal(message string) *Error {
	return NewError(KindInternal, message)
}

// KindOf extracts the kind of err, unwrapping as needed. Anything that is not
// a tagged application error is internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
