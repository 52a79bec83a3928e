package apperr_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected apperr.Kind
	}{
		{name: "nil error", err: nil, expected: apperr.KindNone},
		{name: "untagged error", err: goerr.New("something broke"), expected: apperr.KindNone},
		{name: "sdk not available", err: apperr.ErrSDKNotAvailable, expected: apperr.KindSDKNotAvailable},
		{name: "auth required", err: apperr.ErrAuthRequired, expected: apperr.KindAuthFailed},
		{name: "popup blocked", err: apperr.ErrPopupBlocked, expected: apperr.KindPopupBlocked},
		{name: "timeout", err: apperr.ErrAuthTimeout, expected: apperr.KindTimeout},
		{name: "user cancelled", err: apperr.ErrUserCancelled, expected: apperr.KindUserCancelled},
		{
			name:     "kind survives wrapping",
			err:      goerr.Wrap(goerr.Wrap(apperr.ErrAuthTimeout, "inner"), "outer"),
			expected: apperr.KindTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, apperr.KindOf(tt.err), tt.expected)
			gt.Equal(t, apperr.IsAuthError(tt.err), tt.expected != apperr.KindNone)
		})
	}
}

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: apperr.ErrInvalidMessage, expected: http.StatusBadRequest},
		{name: "auth failed", err: apperr.ErrAuthRequired, expected: http.StatusUnauthorized},
		{name: "user cancelled", err: apperr.ErrUserCancelled, expected: http.StatusUnauthorized},
		{name: "popup blocked", err: apperr.ErrPopupBlocked, expected: http.StatusForbidden},
		{name: "not found", err: apperr.ErrRenderNotFound, expected: http.StatusNotFound},
		{name: "timeout", err: apperr.ErrAuthTimeout, expected: http.StatusRequestTimeout},
		{name: "sdk not available", err: apperr.ErrSDKNotAvailable, expected: http.StatusServiceUnavailable},
		{name: "plain error", err: goerr.New("unknown"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, apperr.HTTPStatusFromError(tt.err), tt.expected)
		})
	}
}
