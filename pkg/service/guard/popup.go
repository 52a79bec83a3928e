package guard

import (
	"context"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
)

// popupState tracks the explicit state machine of the popup flow:
// opening -> polling -> {resolved, rejected}. Exactly one terminal
// transition occurs per flow.
type popupState string

const (
	stateOpening  popupState = "opening"
	statePolling  popupState = "polling"
	stateResolved popupState = "resolved"
	stateRejected popupState = "rejected"
)

// popupFlow opens a login window and polls for session confirmation until
// it succeeds, times out, or the user closes the window. The window and
// the ticker are released on every terminal transition.
func (g *Guard) popupFlow(ctx context.Context, opt *options) error {
	logger := ctxlog.From(ctx)

	if g.opener == nil {
		return goerr.New("no window opener configured", goerr.T(apperr.ErrTagAuthFailed))
	}

	loginURL := opt.loginURL + url.QueryEscape(opt.currentURL)
	logger.Debug("popup auth flow", "state", stateOpening, "login_url", loginURL)

	win, err := g.opener.Open(ctx, loginURL, interfaces.WindowSpec{
		Width:    500,
		Height:   600,
		Centered: true,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to open login window", goerr.T(apperr.ErrTagPopupBlocked))
	}
	// A nil or immediately-closed window means the browser refused the
	// popup. Checked before any polling timer exists.
	if win == nil || win.Closed() {
		logger.Debug("popup auth flow", "state", stateRejected, "reason", "popup blocked")
		return goerr.Wrap(apperr.ErrPopupBlocked, "login window did not open",
			goerr.V("login_url", opt.loginURL),
		)
	}

	openedAt := g.clock.Now()
	ticker := g.clock.NewTicker(PollInterval)
	defer ticker.Stop()
	logger.Debug("popup auth flow", "state", statePolling, "timeout", opt.timeout)

	for {
		select {
		case <-ctx.Done():
			g.closeWindow(ctx, win)
			logger.Debug("popup auth flow", "state", stateRejected, "reason", "context done")
			return goerr.Wrap(ctx.Err(), "authentication aborted", goerr.T(apperr.ErrTagAuthFailed))

		case <-ticker.Chan():
			if g.clock.Now().Sub(openedAt) > opt.timeout {
				g.closeWindow(ctx, win)
				logger.Debug("popup auth flow", "state", stateRejected, "reason", "timeout")
				return goerr.Wrap(apperr.ErrAuthTimeout, "gave up waiting for authentication",
					goerr.V("timeout", opt.timeout),
				)
			}

			if win.Closed() {
				// The user may have closed the window right after
				// completing login; give the session one last chance.
				if g.sessionValid(ctx) {
					logger.Debug("popup auth flow", "state", stateResolved)
					return nil
				}
				logger.Debug("popup auth flow", "state", stateRejected, "reason", "window closed")
				return goerr.Wrap(apperr.ErrUserCancelled, "login window closed before authentication")
			}

			if g.sessionValid(ctx) {
				g.closeWindow(ctx, win)
				logger.Debug("popup auth flow", "state", stateResolved)
				return nil
			}
			// Probe failed; wait for the next tick.
		}
	}
}

// closeWindow closes the login window best-effort; it may already be gone
func (g *Guard) closeWindow(ctx context.Context, win interfaces.Window) {
	if err := win.Close(); err != nil {
		ctxlog.From(ctx).Debug("failed to close login window", "error", err)
	}
}
