package browser

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/pkg/browser"
)

// Opener opens the login page in the system browser. A browser tab cannot
// report when the user closes it, so Closed always returns false and the
// flow terminates via session confirmation or timeout. WindowSpec geometry
// is advisory and ignored here.
type Opener struct {
	openURL func(url string) error
}

func NewOpener() *Opener {
	return &Opener{openURL: browser.OpenURL}
}

func (o *Opener) Open(ctx context.Context, rawURL string, _ interfaces.WindowSpec) (interfaces.Window, error) {
	if err := o.openURL(rawURL); err != nil {
		return nil, goerr.Wrap(err, "failed to open system browser", goerr.V("url", rawURL))
	}
	return &tab{}, nil
}

type tab struct{}

func (*tab) Closed() bool { return false }
func (*tab) Close() error { return nil }
