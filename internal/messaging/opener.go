package messaging

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Opener hands a deep link to whatever can act on it.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// PrintOpener writes each link on its own line.
type PrintOpener struct {
	W io.Writer
}

func (p PrintOpener) Open(_ context.Context, url string) error {
	if _, err := fmt.Fprintln(p.W, url); err != nil {
		return fmt.Errorf("messaging: print link: %w", err)
	}
	return nil
}

// BrowserOpener opens links with the system URL handler.
type BrowserOpener struct{}

func (BrowserOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("messaging: open %s: %w", url, err)
	}
	return nil
}
