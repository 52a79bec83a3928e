package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
)

// Window is a fake login window whose closed state tests control directly
type Window struct {
	mu       sync.Mutex
	closed   bool
	closeErr error
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closeErr != nil {
		return w.closeErr
	}
	w.closed = true
	return nil
}

// MarkClosed simulates the user closing the window
func (w *Window) MarkClosed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// SetCloseError makes Close fail, simulating a window that is already gone
func (w *Window) SetCloseError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closeErr = err
}

// WindowOpener is a fake opener that hands out a pre-configured window
type WindowOpener struct {
	mu      sync.Mutex
	win     *Window
	openErr error
	opened  []string
}

func NewWindowOpener(win *Window) *WindowOpener {
	return &WindowOpener{win: win}
}

func (o *WindowOpener) Open(ctx context.Context, url string, spec interfaces.WindowSpec) (interfaces.Window, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opened = append(o.opened, url)
	if o.openErr != nil {
		return nil, o.openErr
	}
	if o.win == nil {
		return nil, nil
	}
	return o.win, nil
}

// SetOpenError makes Open fail
func (o *WindowOpener) SetOpenError(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.openErr = err
}

// OpenedURLs returns the URLs passed to Open, in order
func (o *WindowOpener) OpenedURLs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string{}, o.opened...)
}
