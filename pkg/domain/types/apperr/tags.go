package apperr

import "github.com/m-mizutani/goerr/v2"

// Auth guard error kinds. Callers branch on these tags, never on message
// text.
var (
	ErrTagSDKNotAvailable = goerr.NewTag("sdk_not_available")
	ErrTagAuthFailed      = goerr.NewTag("auth_failed")
	ErrTagPopupBlocked    = goerr.NewTag("popup_blocked")
	ErrTagTimeout         = goerr.NewTag("timeout")
	ErrTagUserCancelled   = goerr.NewTag("user_cancelled")
)

// Validation errors (HTTP 400)
var (
	ErrTagValidation   = goerr.NewTag("validation")
	ErrTagInvalidInput = goerr.NewTag("invalid_input")
)

// Lookup errors (HTTP 404)
var (
	ErrTagNotFound = goerr.NewTag("not_found")
)

// External service errors (HTTP 502)
var (
	ErrTagExternal = goerr.NewTag("external")
)

// System errors (HTTP 500)
var (
	ErrTagInternal = goerr.NewTag("internal")
)
