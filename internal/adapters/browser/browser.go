// Package browser provides the URL-opening surface, handing URLs to the
// operating system's default handler.
package browser

import (
	"fmt"

	"github.com/pkg/browser"
)

// Opener implements domain.URLOpener using the OS default handler.
type Opener struct{}

// NewOpener creates an Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open hands the URL to the OS default handler.
func (o *Opener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
