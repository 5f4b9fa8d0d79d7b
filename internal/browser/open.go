// Package browser opens application links in the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	pkgbrowser "github.com/pkg/browser"
)

// ErrNoURL is returned when the application has no link to open
var ErrNoURL = errors.New("no URL to open")

// Opener opens a URL outside the program
type Opener interface {
	Open(rawURL string) error
}

// SystemOpener hands URLs to the operating system's default browser
type SystemOpener struct{}

// NewSystemOpener returns an Opener backed by the default browser.
// The launcher's own stdout/stderr chatter is discarded so it cannot
// scribble over the terminal UI.
func NewSystemOpener() *SystemOpener {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return &SystemOpener{}
}

// Open normalizes rawURL and opens it. Failures are logged and returned.
func (o *SystemOpener) Open(rawURL string) error {
	target, err := Normalize(rawURL)
	if err != nil {
		return err
	}

	if err := pkgbrowser.OpenURL(target); err != nil {
		slog.Warn("failed to open url", "url", target, "error", err)
		return fmt.Errorf("failed to open %s: %w", target, err)
	}

	slog.Debug("opened url", "url", target)
	return nil
}

// Normalize trims rawURL and adds https:// when no scheme is present
func Normalize(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", ErrNoURL
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("invalid url %q", rawURL)
	}

	return parsed.String(), nil
}
