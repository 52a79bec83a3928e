package apperr

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// Kind identifies the class of an auth guard failure. It is stable across
// releases so that callers can branch on it.
type Kind string

const (
	KindNone            Kind = ""
	KindSDKNotAvailable Kind = "sdk_not_available"
	KindAuthFailed      Kind = "auth_failed"
	KindPopupBlocked    Kind = "popup_blocked"
	KindTimeout         Kind = "timeout"
	KindUserCancelled   Kind = "user_cancelled"
)

// KindOf extracts the auth error kind from an error chain. It returns
// KindNone for nil errors and errors that are not auth guard failures.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case goerr.HasTag(err, ErrTagSDKNotAvailable):
		return KindSDKNotAvailable
	case goerr.HasTag(err, ErrTagPopupBlocked):
		return KindPopupBlocked
	case goerr.HasTag(err, ErrTagTimeout):
		return KindTimeout
	case goerr.HasTag(err, ErrTagUserCancelled):
		return KindUserCancelled
	case goerr.HasTag(err, ErrTagAuthFailed):
		return KindAuthFailed
	default:
		return KindNone
	}
}

// IsAuthError reports whether the error carries one of the auth guard
// kinds.
func IsAuthError(err error) bool {
	return KindOf(err) != KindNone
}

// HTTPStatusFromError returns the appropriate HTTP status code based on error tags
func HTTPStatusFromError(err error) int {
	switch {
	// 400 Bad Request
	case goerr.HasTag(err, ErrTagValidation),
		goerr.HasTag(err, ErrTagInvalidInput):
		return http.StatusBadRequest

	// 401 Unauthorized
	case goerr.HasTag(err, ErrTagAuthFailed),
		goerr.HasTag(err, ErrTagUserCancelled):
		return http.StatusUnauthorized

	// 403 Forbidden
	case goerr.HasTag(err, ErrTagPopupBlocked):
		return http.StatusForbidden

	// 404 Not Found
	case goerr.HasTag(err, ErrTagNotFound):
		return http.StatusNotFound

	// 408 Request Timeout
	case goerr.HasTag(err, ErrTagTimeout):
		return http.StatusRequestTimeout

	// 502 Bad Gateway
	case goerr.HasTag(err, ErrTagExternal):
		return http.StatusBadGateway

	// 503 Service Unavailable
	case goerr.HasTag(err, ErrTagSDKNotAvailable):
		return http.StatusServiceUnavailable

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}
