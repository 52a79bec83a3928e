package apperr

import "github.com/m-mizutani/goerr/v2"

// Auth guard related errors
var (
	ErrSDKNotAvailable = goerr.New("AI SDK handle is not available",
		goerr.T(ErrTagSDKNotAvailable)).ID("ERR_SDK_NOT_AVAILABLE")

	ErrAuthRequired = goerr.New("session is not authenticated",
		goerr.T(ErrTagAuthFailed)).ID("ERR_AUTH_REQUIRED")

	ErrPopupBlocked = goerr.New("login popup was blocked by the browser",
		goerr.T(ErrTagPopupBlocked)).ID("ERR_POPUP_BLOCKED")

	ErrAuthTimeout = goerr.New("authentication timed out",
		goerr.T(ErrTagTimeout)).ID("ERR_AUTH_TIMEOUT")

	ErrUserCancelled = goerr.New("authentication cancelled by user",
		goerr.T(ErrTagUserCancelled)).ID("ERR_USER_CANCELLED")
)

// Message related errors
var (
	ErrInvalidMessage = goerr.New("invalid message",
		goerr.T(ErrTagValidation)).ID("ERR_INVALID_MESSAGE")

	ErrRenderNotFound = goerr.New("render record not found",
		goerr.T(ErrTagNotFound)).ID("ERR_RENDER_NOT_FOUND")
)
