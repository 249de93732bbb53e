package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Opener implements ports.LinkOpener
type Opener struct {
	goos string
}

// NewOpener creates an opener for the current operating system
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open launches rawURL in the default browser
func (o *Opener) Open(rawURL string) error {
	cmd, err := o.Command(rawURL)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the platform command that opens rawURL.
// Only absolute http and https links are accepted.
func (o *Opener) Command(rawURL string) (*exec.Cmd, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", u), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", u), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", u), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// ValidateURL checks that rawURL is an absolute web link and returns its canonical form
func ValidateURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("refusing to open %q: only http and https links are supported", rawURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid link %q: missing host", rawURL)
	}
	return u.String(), nil
}
