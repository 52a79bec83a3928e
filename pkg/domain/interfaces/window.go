package interfaces

import "context"

// WindowSpec describes the desired geometry of a login window. Openers
// that cannot control geometry (e.g. a system browser tab) may ignore it.
type WindowSpec struct {
	Width    int
	Height   int
	Centered bool
}

// Window is an open login window
type Window interface {
	// Closed reports whether the window has been closed, by the user or
	// otherwise
	Closed() bool
	// Close closes the window. The window may already be gone; callers
	// treat failures as best-effort.
	Close() error
}

// WindowOpener opens a login window at the given URL. A nil window with a
// nil error means the environment refused to open one (popup blocked).
type WindowOpener interface {
	Open(ctx context.Context, url string, spec WindowSpec) (Window, error)
}
