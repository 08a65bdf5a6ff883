package backend

import "errors"

// Kind classifies a failed backend call per the error taxonomy the UI
// surfaces: inline notice, redirect to login, or generic retry message.
type Kind string

const (
	KindAuthMissing     Kind = "AUTH_MISSING"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindValidation      Kind = "VALIDATION"
	KindServer          Kind = "SERVER"
	KindNetwork         Kind = "NETWORK"
)

type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// KindOf extracts the classification, or "" for foreign errors.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// ErrNoToken is returned before any request is made when the session holds
// no bearer token.
var ErrNoToken = &Error{Kind: KindAuthMissing, Message: "authentication required"}

func classify(status int, message string) *Error {
	e := &Error{Status: status, Message: message}
	switch {
	case status == 401:
		e.Kind = KindUnauthenticated
		if e.Message == "" {
			e.Message = "session expired"
		}
	case status == 403:
		e.Kind = KindForbidden
		if e.Message == "" {
			e.Message = "you are not allowed to do that"
		}
	case status == 404:
		e.Kind = KindNotFound
		if e.Message == "" {
			e.Message = "not found"
		}
	case status >= 400 && status < 500:
		e.Kind = KindValidation
		if e.Message == "" {
			e.Message = "invalid request"
		}
	default:
		// 5xx: never surface backend internals to the user.
		e.Kind = KindServer
		e.Message = "something went wrong, try again later"
	}
	return e
}
